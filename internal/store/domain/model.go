package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// NotificationType selects the visual treatment of a notification.
type NotificationType string

const (
	NotificationTypeSuccess = NotificationType("success")
	NotificationTypeError   = NotificationType("error")
	NotificationTypeInfo    = NotificationType("info")
)

// Notification is the single transient banner shown after an action. Active
// turns false when the banner is dismissed; the message survives dismissal so
// the exit transition still has something to render.
type Notification struct {
	ID      snowflake.ID     `json:"id"`
	Message string           `json:"message"`
	Type    NotificationType `json:"type"`
	Timeout time.Duration    `json:"timeout"`
	Active  bool             `json:"active"`
}

// NotificationRequest asks the controller to show a new banner.
type NotificationRequest struct {
	Message string
	Type    NotificationType
}

// App is the static application metadata surfaced to views.
type App struct {
	Name             string `json:"name"`
	URL              string `json:"url"`
	Environment      string `json:"environment"`
	DashboardURL     string `json:"dashboard_url"`
	DocumentationURL string `json:"documentation_url"`
	GithubURL        string `json:"github_url"`
	CDNURL           string `json:"cdn_url"`
}

// Package backend is the HTTP client for the SuperButton REST API. It mirrors
// the wire format of the backend exactly: every endpoint answers with a
// {status, message, data} envelope and validation failures carry a per-field
// message map.
package backend

import (
	"time"

	"github.com/google/uuid"
)

// UserID is the ID of a user as issued by the identity provider.
type UserID string

// User is the backend-side profile record for an authenticated identity.
type User struct {
	ID        UserID    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Project is the tenant-owned root entity.
type Project struct {
	ID                     uuid.UUID `json:"id"`
	UserID                 UserID    `json:"user_id"`
	Name                   string    `json:"name"`
	URL                    string    `json:"url"`
	Color                  string    `json:"color"`
	Greeting               string    `json:"greeting"`
	GreetingTimeoutSeconds uint      `json:"greeting_timeout_seconds"`
	Icon                   string    `json:"icon"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// IntegrationType identifies the kind of a project integration.
type IntegrationType string

const (
	IntegrationTypeWhatsapp  = IntegrationType("whatsapp")
	IntegrationTypeContent   = IntegrationType("content")
	IntegrationTypePhoneCall = IntegrationType("phone-call")
	IntegrationTypeLink      = IntegrationType("link")
)

// WhatsappIntegration contains whatsapp integration settings.
type WhatsappIntegration struct {
	ID          uuid.UUID `json:"id"`
	UserID      UserID    `json:"user_id"`
	ProjectID   uuid.UUID `json:"project_id"`
	Enabled     bool      `json:"enabled"`
	Name        string    `json:"name"`
	Text        string    `json:"text"`
	PhoneNumber string    `json:"phone_number"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ContentIntegration contains content integration settings.
type ContentIntegration struct {
	ID        uuid.UUID `json:"id"`
	UserID    UserID    `json:"user_id"`
	ProjectID uuid.UUID `json:"project_id"`
	Enabled   bool      `json:"enabled"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PhoneCallIntegration contains phone call integration settings.
type PhoneCallIntegration struct {
	ID          uuid.UUID `json:"id"`
	UserID      UserID    `json:"user_id"`
	ProjectID   uuid.UUID `json:"project_id"`
	Enabled     bool      `json:"enabled"`
	Name        string    `json:"name"`
	Text        string    `json:"text"`
	PhoneNumber string    `json:"phone_number"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LinkIntegration contains link integration settings.
type LinkIntegration struct {
	ID        uuid.UUID `json:"id"`
	UserID    UserID    `json:"user_id"`
	ProjectID uuid.UUID `json:"project_id"`
	Enabled   bool      `json:"enabled"`
	Name      string    `json:"name"`
	Text      string    `json:"text"`
	URL       string    `json:"url"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProjectIntegration is the ordered reference a project keeps to one of its
// integrations.
type ProjectIntegration struct {
	ID            uuid.UUID       `json:"id"`
	UserID        UserID          `json:"user_id"`
	ProjectID     uuid.UUID       `json:"project_id"`
	IntegrationID uuid.UUID       `json:"integration_id"`
	Type          IntegrationType `json:"type"`
	Name          string          `json:"name"`
	Position      uint            `json:"position"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProjectSettings is the widget-facing view of a project: the project itself
// plus its enabled integrations in display order.
type ProjectSettings struct {
	Project      *Project                      `json:"project"`
	Integrations []*ProjectSettingsIntegration `json:"integrations"`
}

// ProjectSettingsIntegration is one integration inside ProjectSettings.
type ProjectSettingsIntegration struct {
	Type     IntegrationType `json:"type"`
	ID       uuid.UUID       `json:"id"`
	Settings any             `json:"settings"`
}

// Package domain holds the sandbox API's persistence model. The column
// layout mirrors the production backend so the client cannot tell the two
// apart.
package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Project struct {
	ID                     uuid.UUID `json:"id" gorm:"primaryKey;type:uuid"`
	UserID                 string    `json:"user_id" gorm:"index"`
	Name                   string    `json:"name"`
	URL                    string    `json:"url"`
	Color                  string    `json:"color"`
	Greeting               string    `json:"greeting"`
	GreetingTimeoutSeconds uint      `json:"greeting_timeout_seconds"`
	Icon                   string    `json:"icon"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

type WhatsappIntegration struct {
	ID          uuid.UUID `json:"id" gorm:"primaryKey;type:uuid"`
	UserID      string    `json:"user_id" gorm:"index"`
	ProjectID   uuid.UUID `json:"project_id" gorm:"index;type:uuid"`
	Name        string    `json:"name"`
	Text        string    `json:"text"`
	PhoneNumber string    `json:"phone_number"`
	Icon        string    `json:"icon"`
	Enabled     bool      `json:"enabled"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ContentIntegration struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid"`
	UserID    string    `json:"user_id" gorm:"index"`
	ProjectID uuid.UUID `json:"project_id" gorm:"index;type:uuid"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	Text      string    `json:"text"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PhoneCallIntegration struct {
	ID          uuid.UUID `json:"id" gorm:"primaryKey;type:uuid"`
	UserID      string    `json:"user_id" gorm:"index"`
	ProjectID   uuid.UUID `json:"project_id" gorm:"index;type:uuid"`
	Name        string    `json:"name"`
	Text        string    `json:"text"`
	PhoneNumber string    `json:"phone_number"`
	Icon        string    `json:"icon"`
	Enabled     bool      `json:"enabled"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type LinkIntegration struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid"`
	UserID    string    `json:"user_id" gorm:"index"`
	ProjectID uuid.UUID `json:"project_id" gorm:"index;type:uuid"`
	Name      string    `json:"name"`
	Text      string    `json:"text"`
	URL       string    `json:"url"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProjectIntegration is the ordered reference a project keeps to each of its
// integrations, regardless of type. Settings is a denormalized snapshot of
// the integration row, refreshed on every write, so the public settings
// endpoint answers from one query.
type ProjectIntegration struct {
	ID            uuid.UUID      `json:"id" gorm:"primaryKey;type:uuid"`
	UserID        string         `json:"user_id" gorm:"index"`
	ProjectID     uuid.UUID      `json:"project_id" gorm:"index;type:uuid"`
	IntegrationID uuid.UUID      `json:"integration_id" gorm:"index;type:uuid"`
	Type          string         `json:"type"`
	Name          string         `json:"name"`
	Position      uint           `json:"position"`
	Settings      datatypes.JSON `json:"-"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

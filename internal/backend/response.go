package backend

// MessageResponse is the envelope for endpoints that return no data, e.g.
// deletes.
type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// UserResponse is the envelope carrying a single user.
type UserResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    User   `json:"data"`
}

// ProjectResponse is the envelope carrying a single project.
type ProjectResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Data    Project `json:"data"`
}

// ProjectsResponse is the envelope carrying the full project collection.
type ProjectsResponse struct {
	Status  string    `json:"status"`
	Message string    `json:"message"`
	Data    []Project `json:"data"`
}

// WhatsappIntegrationResponse is the envelope carrying a whatsapp integration.
type WhatsappIntegrationResponse struct {
	Status  string              `json:"status"`
	Message string              `json:"message"`
	Data    WhatsappIntegration `json:"data"`
}

// WhatsappIntegrationsResponse is the envelope carrying a list of whatsapp
// integrations.
type WhatsappIntegrationsResponse struct {
	Status  string                `json:"status"`
	Message string                `json:"message"`
	Data    []WhatsappIntegration `json:"data"`
}

// ContentIntegrationResponse is the envelope carrying a content integration.
type ContentIntegrationResponse struct {
	Status  string             `json:"status"`
	Message string             `json:"message"`
	Data    ContentIntegration `json:"data"`
}

// ContentIntegrationsResponse is the envelope carrying a list of content
// integrations.
type ContentIntegrationsResponse struct {
	Status  string               `json:"status"`
	Message string               `json:"message"`
	Data    []ContentIntegration `json:"data"`
}

// PhoneCallIntegrationResponse is the envelope carrying a phone call
// integration.
type PhoneCallIntegrationResponse struct {
	Status  string               `json:"status"`
	Message string               `json:"message"`
	Data    PhoneCallIntegration `json:"data"`
}

// PhoneCallIntegrationsResponse is the envelope carrying a list of phone call
// integrations.
type PhoneCallIntegrationsResponse struct {
	Status  string                 `json:"status"`
	Message string                 `json:"message"`
	Data    []PhoneCallIntegration `json:"data"`
}

// LinkIntegrationResponse is the envelope carrying a link integration.
type LinkIntegrationResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    LinkIntegration `json:"data"`
}

// LinkIntegrationsResponse is the envelope carrying a list of link
// integrations.
type LinkIntegrationsResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Data    []LinkIntegration `json:"data"`
}

// ProjectIntegrationsResponse is the envelope carrying a project's ordered
// integration references.
type ProjectIntegrationsResponse struct {
	Status  string               `json:"status"`
	Message string               `json:"message"`
	Data    []ProjectIntegration `json:"data"`
}

// ProjectSettingsResponse is the envelope carrying a project's widget
// settings.
type ProjectSettingsResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    ProjectSettings `json:"data"`
}

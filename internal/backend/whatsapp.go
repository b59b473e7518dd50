package backend

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// WhatsappIntegrationService manages a project's whatsapp integrations.
type WhatsappIntegrationService struct {
	client *Client
}

// WhatsappIntegrationParams is the payload for creating or updating a
// whatsapp integration.
type WhatsappIntegrationParams struct {
	Name        string `json:"name"`
	Text        string `json:"text"`
	PhoneNumber string `json:"phone_number"`
}

func (s *WhatsappIntegrationService) List(ctx context.Context, projectID uuid.UUID) (*WhatsappIntegrationsResponse, error) {
	response := new(WhatsappIntegrationsResponse)
	if err := s.client.do(ctx, http.MethodGet, whatsappPath(projectID), nil, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (s *WhatsappIntegrationService) Get(ctx context.Context, projectID, integrationID uuid.UUID) (*WhatsappIntegrationResponse, error) {
	response := new(WhatsappIntegrationResponse)
	if err := s.client.do(ctx, http.MethodGet, whatsappPath(projectID)+"/"+integrationID.String(), nil, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (s *WhatsappIntegrationService) Create(ctx context.Context, projectID uuid.UUID, params WhatsappIntegrationParams) (*WhatsappIntegrationResponse, error) {
	response := new(WhatsappIntegrationResponse)
	if err := s.client.do(ctx, http.MethodPost, whatsappPath(projectID), params, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (s *WhatsappIntegrationService) Update(ctx context.Context, projectID, integrationID uuid.UUID, params WhatsappIntegrationParams) (*WhatsappIntegrationResponse, error) {
	response := new(WhatsappIntegrationResponse)
	if err := s.client.do(ctx, http.MethodPut, whatsappPath(projectID)+"/"+integrationID.String(), params, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (s *WhatsappIntegrationService) Delete(ctx context.Context, projectID, integrationID uuid.UUID) (*MessageResponse, error) {
	response := new(MessageResponse)
	if err := s.client.do(ctx, http.MethodDelete, whatsappPath(projectID)+"/"+integrationID.String(), nil, response); err != nil {
		return nil, err
	}
	return response, nil
}

func whatsappPath(projectID uuid.UUID) string {
	return "/projects/" + projectID.String() + "/whatsapp-integrations"
}

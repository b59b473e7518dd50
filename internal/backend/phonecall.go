package backend

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// PhoneCallIntegrationService manages a project's phone call integrations.
type PhoneCallIntegrationService struct {
	client *Client
}

// PhoneCallIntegrationParams is the payload for creating or updating a phone
// call integration.
type PhoneCallIntegrationParams struct {
	Name        string `json:"name"`
	Text        string `json:"text"`
	PhoneNumber string `json:"phone_number"`
}

func (s *PhoneCallIntegrationService) List(ctx context.Context, projectID uuid.UUID) (*PhoneCallIntegrationsResponse, error) {
	response := new(PhoneCallIntegrationsResponse)
	if err := s.client.do(ctx, http.MethodGet, phoneCallPath(projectID), nil, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (s *PhoneCallIntegrationService) Get(ctx context.Context, projectID, integrationID uuid.UUID) (*PhoneCallIntegrationResponse, error) {
	response := new(PhoneCallIntegrationResponse)
	if err := s.client.do(ctx, http.MethodGet, phoneCallPath(projectID)+"/"+integrationID.String(), nil, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (s *PhoneCallIntegrationService) Create(ctx context.Context, projectID uuid.UUID, params PhoneCallIntegrationParams) (*PhoneCallIntegrationResponse, error) {
	response := new(PhoneCallIntegrationResponse)
	if err := s.client.do(ctx, http.MethodPost, phoneCallPath(projectID), params, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (s *PhoneCallIntegrationService) Update(ctx context.Context, projectID, integrationID uuid.UUID, params PhoneCallIntegrationParams) (*PhoneCallIntegrationResponse, error) {
	response := new(PhoneCallIntegrationResponse)
	if err := s.client.do(ctx, http.MethodPut, phoneCallPath(projectID)+"/"+integrationID.String(), params, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (s *PhoneCallIntegrationService) Delete(ctx context.Context, projectID, integrationID uuid.UUID) (*MessageResponse, error) {
	response := new(MessageResponse)
	if err := s.client.do(ctx, http.MethodDelete, phoneCallPath(projectID)+"/"+integrationID.String(), nil, response); err != nil {
		return nil, err
	}
	return response, nil
}

func phoneCallPath(projectID uuid.UUID) string {
	return "/projects/" + projectID.String() + "/phone-call-integrations"
}

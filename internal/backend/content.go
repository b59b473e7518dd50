package backend

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// ContentIntegrationService manages a project's content integrations.
type ContentIntegrationService struct {
	client *Client
}

// ContentIntegrationParams is the payload for creating or updating a content
// integration.
type ContentIntegrationParams struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Text    string `json:"text"`
}

func (s *ContentIntegrationService) List(ctx context.Context, projectID uuid.UUID) (*ContentIntegrationsResponse, error) {
	response := new(ContentIntegrationsResponse)
	if err := s.client.do(ctx, http.MethodGet, contentPath(projectID), nil, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (s *ContentIntegrationService) Get(ctx context.Context, projectID, integrationID uuid.UUID) (*ContentIntegrationResponse, error) {
	response := new(ContentIntegrationResponse)
	if err := s.client.do(ctx, http.MethodGet, contentPath(projectID)+"/"+integrationID.String(), nil, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (s *ContentIntegrationService) Create(ctx context.Context, projectID uuid.UUID, params ContentIntegrationParams) (*ContentIntegrationResponse, error) {
	response := new(ContentIntegrationResponse)
	if err := s.client.do(ctx, http.MethodPost, contentPath(projectID), params, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (s *ContentIntegrationService) Update(ctx context.Context, projectID, integrationID uuid.UUID, params ContentIntegrationParams) (*ContentIntegrationResponse, error) {
	response := new(ContentIntegrationResponse)
	if err := s.client.do(ctx, http.MethodPut, contentPath(projectID)+"/"+integrationID.String(), params, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (s *ContentIntegrationService) Delete(ctx context.Context, projectID, integrationID uuid.UUID) (*MessageResponse, error) {
	response := new(MessageResponse)
	if err := s.client.do(ctx, http.MethodDelete, contentPath(projectID)+"/"+integrationID.String(), nil, response); err != nil {
		return nil, err
	}
	return response, nil
}

func contentPath(projectID uuid.UUID) string {
	return "/projects/" + projectID.String() + "/content-integrations"
}

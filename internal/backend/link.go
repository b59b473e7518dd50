package backend

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// LinkIntegrationService manages a project's link integrations.
type LinkIntegrationService struct {
	client *Client
}

// LinkIntegrationParams is the payload for creating or updating a link
// integration.
type LinkIntegrationParams struct {
	Name    string `json:"name"`
	Text    string `json:"text"`
	Website string `json:"website"`
	Icon    string `json:"icon"`
	Color   string `json:"color"`
}

func (s *LinkIntegrationService) List(ctx context.Context, projectID uuid.UUID) (*LinkIntegrationsResponse, error) {
	response := new(LinkIntegrationsResponse)
	if err := s.client.do(ctx, http.MethodGet, linkPath(projectID), nil, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (s *LinkIntegrationService) Get(ctx context.Context, projectID, integrationID uuid.UUID) (*LinkIntegrationResponse, error) {
	response := new(LinkIntegrationResponse)
	if err := s.client.do(ctx, http.MethodGet, linkPath(projectID)+"/"+integrationID.String(), nil, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (s *LinkIntegrationService) Create(ctx context.Context, projectID uuid.UUID, params LinkIntegrationParams) (*LinkIntegrationResponse, error) {
	response := new(LinkIntegrationResponse)
	if err := s.client.do(ctx, http.MethodPost, linkPath(projectID), params, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (s *LinkIntegrationService) Update(ctx context.Context, projectID, integrationID uuid.UUID, params LinkIntegrationParams) (*LinkIntegrationResponse, error) {
	response := new(LinkIntegrationResponse)
	if err := s.client.do(ctx, http.MethodPut, linkPath(projectID)+"/"+integrationID.String(), params, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (s *LinkIntegrationService) Delete(ctx context.Context, projectID, integrationID uuid.UUID) (*MessageResponse, error) {
	response := new(MessageResponse)
	if err := s.client.do(ctx, http.MethodDelete, linkPath(projectID)+"/"+integrationID.String(), nil, response); err != nil {
		return nil, err
	}
	return response, nil
}

func linkPath(projectID uuid.UUID) string {
	return "/projects/" + projectID.String() + "/link-integrations"
}

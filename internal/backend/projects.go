package backend

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// ProjectService manages the authenticated user's projects.
type ProjectService struct {
	client *Client
}

// ProjectCreateParams is the payload for creating a project.
type ProjectCreateParams struct {
	Name    string `json:"name"`
	Website string `json:"website"`
}

// ProjectUpdateParams is the payload for updating a project.
type ProjectUpdateParams struct {
	Name            string `json:"name"`
	Website         string `json:"website"`
	Icon            string `json:"icon"`
	Greeting        string `json:"greeting"`
	GreetingTimeout uint   `json:"greeting_timeout"`
	Color           string `json:"color"`
}

// List fetches all projects of the authenticated user.
func (s *ProjectService) List(ctx context.Context) (*ProjectsResponse, error) {
	response := new(ProjectsResponse)
	if err := s.client.do(ctx, http.MethodGet, "/projects", nil, response); err != nil {
		return nil, err
	}
	return response, nil
}

// Create creates a new project.
func (s *ProjectService) Create(ctx context.Context, params ProjectCreateParams) (*ProjectResponse, error) {
	response := new(ProjectResponse)
	if err := s.client.do(ctx, http.MethodPost, "/projects", params, response); err != nil {
		return nil, err
	}
	return response, nil
}

// Update replaces a project's mutable attributes.
func (s *ProjectService) Update(ctx context.Context, projectID uuid.UUID, params ProjectUpdateParams) (*ProjectResponse, error) {
	response := new(ProjectResponse)
	if err := s.client.do(ctx, http.MethodPut, "/projects/"+projectID.String(), params, response); err != nil {
		return nil, err
	}
	return response, nil
}

// Delete removes a project and all integrations it owns.
func (s *ProjectService) Delete(ctx context.Context, projectID uuid.UUID) (*MessageResponse, error) {
	response := new(MessageResponse)
	if err := s.client.do(ctx, http.MethodDelete, "/projects/"+projectID.String(), nil, response); err != nil {
		return nil, err
	}
	return response, nil
}

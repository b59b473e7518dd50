package backend

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// ProjectIntegrationService exposes the aggregated view of a project's
// integrations across all types, plus reordering.
type ProjectIntegrationService struct {
	client *Client
}

type projectIntegrationsUpdateRequest struct {
	Order []uuid.UUID `json:"order"`
}

func (s *ProjectIntegrationService) List(ctx context.Context, projectID uuid.UUID) (*ProjectIntegrationsResponse, error) {
	response := new(ProjectIntegrationsResponse)
	if err := s.client.do(ctx, http.MethodGet, "/projects/"+projectID.String()+"/integrations", nil, response); err != nil {
		return nil, err
	}
	return response, nil
}

// Update persists a new display order. The order slice holds project
// integration IDs from first to last position.
func (s *ProjectIntegrationService) Update(ctx context.Context, projectID uuid.UUID, order []uuid.UUID) (*ProjectIntegrationsResponse, error) {
	response := new(ProjectIntegrationsResponse)
	body := projectIntegrationsUpdateRequest{Order: order}
	if err := s.client.do(ctx, http.MethodPut, "/projects/"+projectID.String()+"/integrations", body, response); err != nil {
		return nil, err
	}
	return response, nil
}

package backend

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// SettingsService fetches the public widget settings for a project. This
// endpoint is unauthenticated on the server side and is what the embeddable
// button loads at render time.
type SettingsService struct {
	client *Client
}

func (s *SettingsService) Get(ctx context.Context, userID UserID, projectID uuid.UUID) (*ProjectSettingsResponse, error) {
	response := new(ProjectSettingsResponse)
	path := "/settings/" + string(userID) + "/projects/" + projectID.String()
	if err := s.client.do(ctx, http.MethodGet, path, nil, response); err != nil {
		return nil, err
	}
	return response, nil
}

package backend

import (
	"context"
	"net/http"
)

// UserService reads the backend profile of the authenticated identity.
type UserService struct {
	client *Client
}

// Me fetches the profile of the currently authenticated user. The backend
// provisions the profile on first call.
func (s *UserService) Me(ctx context.Context) (*UserResponse, error) {
	response := new(UserResponse)
	if err := s.client.do(ctx, http.MethodGet, "/users/me", nil, response); err != nil {
		return nil, err
	}
	return response, nil
}

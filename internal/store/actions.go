package store

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/superbutton/superbutton-go/internal/backend"
	"github.com/superbutton/superbutton-go/internal/store/domain"
)

// mutation describes one mutating backend call: the call itself, the success
// message to fall back on when the backend sends none, and whether the
// project collection must be re-fetched afterwards.
type mutation struct {
	call            func(ctx context.Context) (message string, err error)
	fallbackMessage string
	refreshProjects bool
}

// mutate runs the shared mutation lifecycle: clear stale validation errors,
// perform the call, then either show a success banner and refresh the owning
// collection, or commit the failure and hand the original error back to the
// caller.
func (s *Store) mutate(ctx context.Context, m mutation) error {
	s.clearErrorMessages()

	message, err := m.call(ctx)
	if err != nil {
		s.commitFailure(err)
		return err
	}

	if message == "" {
		message = m.fallbackMessage
	}
	s.notifications.Notify(domain.NotificationRequest{
		Message: message,
		Type:    domain.NotificationTypeSuccess,
	})

	if m.refreshProjects {
		return s.LoadProjects(ctx)
	}
	return nil
}

// LoadUser fetches the backend profile and replaces the cached one.
func (s *Store) LoadUser(ctx context.Context) error {
	response, err := s.client.Users.Me(ctx)
	if err != nil {
		s.notifyFailure(err)
		return err
	}

	s.mu.Lock()
	user := response.Data
	s.user = &user
	s.mu.Unlock()
	return nil
}

// LoadProjects replaces the project snapshot with the backend's current
// collection and re-validates the active selection against it.
func (s *Store) LoadProjects(ctx context.Context) error {
	response, err := s.client.Projects.List(ctx)
	if err != nil {
		s.notifyFailure(err)
		return err
	}

	s.mu.Lock()
	s.projects = response.Data
	s.activeProjectID = s.correctedActiveProjectID()
	s.mu.Unlock()

	s.log.Debug("projects loaded", zap.Int("count", len(response.Data)))
	return nil
}

// CreateProject creates a project, makes it the active selection and
// refreshes the collection. CreatingProject reports true for the duration.
func (s *Store) CreateProject(ctx context.Context, params backend.ProjectCreateParams) error {
	s.clearErrorMessages()
	s.setCreatingProject(true)
	defer s.setCreatingProject(false)

	response, err := s.client.Projects.Create(ctx, params)
	if err != nil {
		s.commitFailure(err)
		return err
	}

	s.mu.Lock()
	s.activeProjectID = response.Data.ID.String()
	s.mu.Unlock()

	message := response.Message
	if message == "" {
		message = "Project created successfully"
	}
	s.notifications.Notify(domain.NotificationRequest{
		Message: message,
		Type:    domain.NotificationTypeSuccess,
	})

	return s.LoadProjects(ctx)
}

func (s *Store) UpdateProject(ctx context.Context, projectID uuid.UUID, params backend.ProjectUpdateParams) error {
	return s.mutate(ctx, mutation{
		fallbackMessage: "Project updated successfully",
		refreshProjects: true,
		call: func(ctx context.Context) (string, error) {
			response, err := s.client.Projects.Update(ctx, projectID, params)
			if err != nil {
				return "", err
			}
			return response.Message, nil
		},
	})
}

func (s *Store) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	return s.mutate(ctx, mutation{
		fallbackMessage: "Project deleted successfully",
		refreshProjects: true,
		call: func(ctx context.Context) (string, error) {
			response, err := s.client.Projects.Delete(ctx, projectID)
			if err != nil {
				return "", err
			}
			return response.Message, nil
		},
	})
}

// LoadIntegrations fetches a project's aggregated integration list. The
// result is not cached; edit pages fetch on demand.
func (s *Store) LoadIntegrations(ctx context.Context, projectID uuid.UUID) ([]backend.ProjectIntegration, error) {
	response, err := s.client.Integrations.List(ctx, projectID)
	if err != nil {
		s.notifyFailure(err)
		return nil, err
	}
	return response.Data, nil
}

// ReorderIntegrations persists a new display order for a project's
// integrations.
func (s *Store) ReorderIntegrations(ctx context.Context, projectID uuid.UUID, order []uuid.UUID) error {
	return s.mutate(ctx, mutation{
		fallbackMessage: "Integrations updated successfully",
		call: func(ctx context.Context) (string, error) {
			response, err := s.client.Integrations.Update(ctx, projectID, order)
			if err != nil {
				return "", err
			}
			return response.Message, nil
		},
	})
}

// ProjectSettings fetches the widget settings the embeddable button renders
// from.
func (s *Store) ProjectSettings(ctx context.Context, userID backend.UserID, projectID uuid.UUID) (*backend.ProjectSettings, error) {
	response, err := s.client.Settings.Get(ctx, userID, projectID)
	if err != nil {
		s.notifyFailure(err)
		return nil, err
	}
	return &response.Data, nil
}

func (s *Store) WhatsappIntegrations(ctx context.Context, projectID uuid.UUID) ([]backend.WhatsappIntegration, error) {
	response, err := s.client.Whatsapp.List(ctx, projectID)
	if err != nil {
		s.notifyFailure(err)
		return nil, err
	}
	return response.Data, nil
}

func (s *Store) WhatsappIntegration(ctx context.Context, projectID, integrationID uuid.UUID) (*backend.WhatsappIntegration, error) {
	response, err := s.client.Whatsapp.Get(ctx, projectID, integrationID)
	if err != nil {
		s.notifyFailure(err)
		return nil, err
	}
	return &response.Data, nil
}

func (s *Store) CreateWhatsappIntegration(ctx context.Context, projectID uuid.UUID, params backend.WhatsappIntegrationParams) error {
	return s.mutate(ctx, mutation{
		fallbackMessage: "Whatsapp integration created successfully",
		call: func(ctx context.Context) (string, error) {
			response, err := s.client.Whatsapp.Create(ctx, projectID, params)
			if err != nil {
				return "", err
			}
			return response.Message, nil
		},
	})
}

func (s *Store) UpdateWhatsappIntegration(ctx context.Context, projectID, integrationID uuid.UUID, params backend.WhatsappIntegrationParams) error {
	return s.mutate(ctx, mutation{
		fallbackMessage: "Whatsapp integration updated successfully",
		call: func(ctx context.Context) (string, error) {
			response, err := s.client.Whatsapp.Update(ctx, projectID, integrationID, params)
			if err != nil {
				return "", err
			}
			return response.Message, nil
		},
	})
}

func (s *Store) DeleteWhatsappIntegration(ctx context.Context, projectID, integrationID uuid.UUID) error {
	return s.mutate(ctx, mutation{
		fallbackMessage: "Whatsapp integration deleted successfully",
		call: func(ctx context.Context) (string, error) {
			response, err := s.client.Whatsapp.Delete(ctx, projectID, integrationID)
			if err != nil {
				return "", err
			}
			return response.Message, nil
		},
	})
}

func (s *Store) ContentIntegrations(ctx context.Context, projectID uuid.UUID) ([]backend.ContentIntegration, error) {
	response, err := s.client.Content.List(ctx, projectID)
	if err != nil {
		s.notifyFailure(err)
		return nil, err
	}
	return response.Data, nil
}

func (s *Store) ContentIntegration(ctx context.Context, projectID, integrationID uuid.UUID) (*backend.ContentIntegration, error) {
	response, err := s.client.Content.Get(ctx, projectID, integrationID)
	if err != nil {
		s.notifyFailure(err)
		return nil, err
	}
	return &response.Data, nil
}

func (s *Store) CreateContentIntegration(ctx context.Context, projectID uuid.UUID, params backend.ContentIntegrationParams) error {
	return s.mutate(ctx, mutation{
		fallbackMessage: "Content integration created successfully",
		call: func(ctx context.Context) (string, error) {
			response, err := s.client.Content.Create(ctx, projectID, params)
			if err != nil {
				return "", err
			}
			return response.Message, nil
		},
	})
}

func (s *Store) UpdateContentIntegration(ctx context.Context, projectID, integrationID uuid.UUID, params backend.ContentIntegrationParams) error {
	return s.mutate(ctx, mutation{
		fallbackMessage: "Content integration updated successfully",
		call: func(ctx context.Context) (string, error) {
			response, err := s.client.Content.Update(ctx, projectID, integrationID, params)
			if err != nil {
				return "", err
			}
			return response.Message, nil
		},
	})
}

func (s *Store) DeleteContentIntegration(ctx context.Context, projectID, integrationID uuid.UUID) error {
	return s.mutate(ctx, mutation{
		fallbackMessage: "Content integration deleted successfully",
		call: func(ctx context.Context) (string, error) {
			response, err := s.client.Content.Delete(ctx, projectID, integrationID)
			if err != nil {
				return "", err
			}
			return response.Message, nil
		},
	})
}

func (s *Store) PhoneCallIntegrations(ctx context.Context, projectID uuid.UUID) ([]backend.PhoneCallIntegration, error) {
	response, err := s.client.PhoneCalls.List(ctx, projectID)
	if err != nil {
		s.notifyFailure(err)
		return nil, err
	}
	return response.Data, nil
}

func (s *Store) PhoneCallIntegration(ctx context.Context, projectID, integrationID uuid.UUID) (*backend.PhoneCallIntegration, error) {
	response, err := s.client.PhoneCalls.Get(ctx, projectID, integrationID)
	if err != nil {
		s.notifyFailure(err)
		return nil, err
	}
	return &response.Data, nil
}

func (s *Store) CreatePhoneCallIntegration(ctx context.Context, projectID uuid.UUID, params backend.PhoneCallIntegrationParams) error {
	return s.mutate(ctx, mutation{
		fallbackMessage: "Phone call integration created successfully",
		call: func(ctx context.Context) (string, error) {
			response, err := s.client.PhoneCalls.Create(ctx, projectID, params)
			if err != nil {
				return "", err
			}
			return response.Message, nil
		},
	})
}

func (s *Store) UpdatePhoneCallIntegration(ctx context.Context, projectID, integrationID uuid.UUID, params backend.PhoneCallIntegrationParams) error {
	return s.mutate(ctx, mutation{
		fallbackMessage: "Phone call integration updated successfully",
		call: func(ctx context.Context) (string, error) {
			response, err := s.client.PhoneCalls.Update(ctx, projectID, integrationID, params)
			if err != nil {
				return "", err
			}
			return response.Message, nil
		},
	})
}

func (s *Store) DeletePhoneCallIntegration(ctx context.Context, projectID, integrationID uuid.UUID) error {
	return s.mutate(ctx, mutation{
		fallbackMessage: "Phone call integration deleted successfully",
		call: func(ctx context.Context) (string, error) {
			response, err := s.client.PhoneCalls.Delete(ctx, projectID, integrationID)
			if err != nil {
				return "", err
			}
			return response.Message, nil
		},
	})
}

func (s *Store) LinkIntegrations(ctx context.Context, projectID uuid.UUID) ([]backend.LinkIntegration, error) {
	response, err := s.client.Links.List(ctx, projectID)
	if err != nil {
		s.notifyFailure(err)
		return nil, err
	}
	return response.Data, nil
}

func (s *Store) LinkIntegration(ctx context.Context, projectID, integrationID uuid.UUID) (*backend.LinkIntegration, error) {
	response, err := s.client.Links.Get(ctx, projectID, integrationID)
	if err != nil {
		s.notifyFailure(err)
		return nil, err
	}
	return &response.Data, nil
}

func (s *Store) CreateLinkIntegration(ctx context.Context, projectID uuid.UUID, params backend.LinkIntegrationParams) error {
	return s.mutate(ctx, mutation{
		fallbackMessage: "Link integration created successfully",
		call: func(ctx context.Context) (string, error) {
			response, err := s.client.Links.Create(ctx, projectID, params)
			if err != nil {
				return "", err
			}
			return response.Message, nil
		},
	})
}

func (s *Store) UpdateLinkIntegration(ctx context.Context, projectID, integrationID uuid.UUID, params backend.LinkIntegrationParams) error {
	return s.mutate(ctx, mutation{
		fallbackMessage: "Link integration updated successfully",
		call: func(ctx context.Context) (string, error) {
			response, err := s.client.Links.Update(ctx, projectID, integrationID, params)
			if err != nil {
				return "", err
			}
			return response.Message, nil
		},
	})
}

func (s *Store) DeleteLinkIntegration(ctx context.Context, projectID, integrationID uuid.UUID) error {
	return s.mutate(ctx, mutation{
		fallbackMessage: "Link integration deleted successfully",
		call: func(ctx context.Context) (string, error) {
			response, err := s.client.Links.Delete(ctx, projectID, integrationID)
			if err != nil {
				return "", err
			}
			return response.Message, nil
		},
	})
}

func (s *Store) clearErrorMessages() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errorMessages = backend.FieldErrors{}
}

func (s *Store) setCreatingProject(busy bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creatingProject = busy
}

// commitFailure records a failed mutation: the normalized field errors
// replace the previous mapping and the failure message is shown.
func (s *Store) commitFailure(err error) {
	s.mu.Lock()
	s.errorMessages = backend.FieldErrorsFromError(err)
	s.mu.Unlock()
	s.notifyFailure(err)
}

func (s *Store) notifyFailure(err error) {
	s.log.Warn("action failed", zap.Error(err))
	s.notifications.Notify(domain.NotificationRequest{
		Message: backend.MessageFromError(err),
		Type:    domain.NotificationTypeError,
	})
}

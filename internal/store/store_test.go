package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/superbutton/superbutton-go/internal/backend"
	identitydomain "github.com/superbutton/superbutton-go/internal/identity/domain"
	"github.com/superbutton/superbutton-go/internal/store/domain"
)

func newTestStore(t *testing.T, handler http.Handler) *Store {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := backend.New(backend.Config{BaseURL: server.URL}, backend.StaticTokenSource("test-token"), zap.NewNop())
	require.NoError(t, err)

	notifications, err := NewNotificationController(nil)
	require.NoError(t, err)

	app := domain.App{Name: "SuperButton", URL: "https://superbutton.app/"}
	return New(client, notifications, app, zap.NewNop())
}

func writeProjects(w http.ResponseWriter, projects ...map[string]any) {
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":  "success",
		"message": "projects fetched successfully",
		"data":    projects,
	})
}

func TestAppTrimsTrailingSlash(t *testing.T) {
	store := newTestStore(t, http.NotFoundHandler())
	assert.Equal(t, "https://superbutton.app", store.App().URL)
}

func TestOnAuthStateChangedRoundTrip(t *testing.T) {
	store := newTestStore(t, http.NotFoundHandler())
	assert.False(t, store.AuthStateResolved())

	user := &identitydomain.AuthUser{
		UID:         "user-1",
		Email:       "jane@example.com",
		PhotoURL:    "https://cdn.example.com/jane.png",
		DisplayName: "Jane Doe",
	}

	store.OnAuthStateChanged(user)
	assert.Equal(t, user, store.AuthUser())
	assert.True(t, store.AuthStateResolved())

	store.OnAuthStateChanged(nil)
	assert.Nil(t, store.AuthUser())
	assert.Nil(t, store.User())
	assert.True(t, store.AuthStateResolved())
}

func TestNextRouteRoundTrip(t *testing.T) {
	store := newTestStore(t, http.NotFoundHandler())
	assert.Empty(t, store.NextRoute())

	store.SetNextRoute("/settings")
	assert.Equal(t, "/settings", store.NextRoute())

	store.SetNextRoute("")
	assert.Empty(t, store.NextRoute())
}

func TestLoadProjectsReplacesSnapshot(t *testing.T) {
	firstID := uuid.New()
	secondID := uuid.New()

	snapshots := [][]map[string]any{
		{{"id": firstID.String(), "name": "First"}},
		{{"id": secondID.String(), "name": "Second"}},
	}
	var fetches int
	store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeProjects(w, snapshots[fetches]...)
		fetches++
	}))

	require.NoError(t, store.LoadProjects(context.Background()))
	require.NoError(t, store.LoadProjects(context.Background()))

	projects := store.Projects()
	require.Len(t, projects, 1)
	assert.Equal(t, secondID, projects[0].ID)
}

func TestActiveProjectIDSentinelWhenEmpty(t *testing.T) {
	store := newTestStore(t, http.NotFoundHandler())
	assert.Equal(t, DefaultProjectID, store.ActiveProjectID())
	assert.Nil(t, store.ActiveProject())
}

func TestActiveProjectIDCorrectsStaleSelection(t *testing.T) {
	projectID := uuid.New()
	store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeProjects(w, map[string]any{"id": projectID.String(), "name": "Main Website"})
	}))

	require.NoError(t, store.LoadProjects(context.Background()))
	store.SetActiveProjectID(uuid.New().String())

	assert.Equal(t, projectID.String(), store.ActiveProjectID())

	active := store.ActiveProject()
	require.NotNil(t, active)
	assert.Equal(t, "Main Website", active.Name)
}

func TestLoadProjectsRevalidatesActiveSelection(t *testing.T) {
	keptID := uuid.New()
	droppedID := uuid.New()

	snapshots := [][]map[string]any{
		{{"id": keptID.String()}, {"id": droppedID.String()}},
		{{"id": keptID.String()}},
	}
	var fetches int
	store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeProjects(w, snapshots[fetches]...)
		fetches++
	}))

	require.NoError(t, store.LoadProjects(context.Background()))
	store.SetActiveProjectID(droppedID.String())
	require.NoError(t, store.LoadProjects(context.Background()))

	assert.Equal(t, keptID.String(), store.ActiveProjectID())
}

func TestLoadUser(t *testing.T) {
	store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/me", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  "success",
			"message": "user fetched successfully",
			"data":    map[string]any{"id": "user-1", "email": "jane@example.com", "name": "Jane Doe"},
		})
	}))

	require.NoError(t, store.LoadUser(context.Background()))

	user := store.User()
	require.NotNil(t, user)
	assert.Equal(t, backend.UserID("user-1"), user.ID)
	assert.Equal(t, "jane@example.com", user.Email)
}

func TestCreateProjectSuccess(t *testing.T) {
	projectID := uuid.New()
	var store *Store
	store = newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			assert.True(t, store.CreatingProject())
			_ = json.NewEncoder(w).Encode(map[string]any{
				"status":  "success",
				"message": "project created successfully",
				"data":    map[string]any{"id": projectID.String(), "name": "Joe's Store"},
			})
			return
		}
		writeProjects(w, map[string]any{"id": projectID.String(), "name": "Joe's Store"})
	}))

	err := store.CreateProject(context.Background(), backend.ProjectCreateParams{
		Name:    "Joe's Store",
		Website: "https://example.com",
	})
	require.NoError(t, err)

	assert.False(t, store.CreatingProject())
	assert.Equal(t, projectID.String(), store.ActiveProjectID())
	assert.True(t, store.ErrorMessages().IsEmpty())

	notification := store.Notification()
	require.NotNil(t, notification)
	assert.True(t, notification.Active)
	assert.Equal(t, "project created successfully", notification.Message)
	assert.Equal(t, domain.NotificationTypeSuccess, notification.Type)
}

func TestCreateProjectValidationFailure(t *testing.T) {
	store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  "error",
			"message": "validation errors while creating project",
			"data":    map[string][]string{"name": {"name is a required field"}},
		})
	}))

	err := store.CreateProject(context.Background(), backend.ProjectCreateParams{Website: "https://example.com"})
	require.Error(t, err)

	var responseError *backend.ResponseError
	assert.ErrorAs(t, err, &responseError)

	assert.False(t, store.CreatingProject())
	assert.Equal(t, []string{"name is a required field"}, store.ErrorMessages().Get("name"))

	notification := store.Notification()
	require.NotNil(t, notification)
	assert.Equal(t, domain.NotificationTypeError, notification.Type)
	assert.Equal(t, "validation errors while creating project", notification.Message)
}

func TestUpdateProjectValidationFailure(t *testing.T) {
	projectID := uuid.New()
	store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  "error",
			"message": "validation errors while updating project",
			"data":    map[string][]string{"name": {"is required"}},
		})
	}))

	err := store.UpdateProject(context.Background(), projectID, backend.ProjectUpdateParams{})
	require.Error(t, err)
	assert.Equal(t, []string{"is required"}, store.ErrorMessages().Get("name"))
}

func TestMutationClearsPriorErrors(t *testing.T) {
	projectID := uuid.New()
	var failed bool
	store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !failed && r.Method == http.MethodPut {
			failed = true
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"status":  "error",
				"message": "validation errors while updating project",
				"data":    map[string][]string{"name": {"is required"}},
			})
			return
		}
		if r.Method == http.MethodPut {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"status":  "success",
				"message": "project updated successfully",
				"data":    map[string]any{"id": projectID.String(), "name": "Main Website"},
			})
			return
		}
		writeProjects(w, map[string]any{"id": projectID.String(), "name": "Main Website"})
	}))

	require.Error(t, store.UpdateProject(context.Background(), projectID, backend.ProjectUpdateParams{}))
	assert.False(t, store.ErrorMessages().IsEmpty())

	require.NoError(t, store.UpdateProject(context.Background(), projectID, backend.ProjectUpdateParams{Name: "Main Website"}))
	assert.True(t, store.ErrorMessages().IsEmpty())
}

func TestDeleteProjectRefreshesSnapshot(t *testing.T) {
	projectID := uuid.New()
	var deleted bool
	store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			deleted = true
			_ = json.NewEncoder(w).Encode(map[string]any{"status": "success", "message": "project deleted successfully"})
		default:
			if deleted {
				writeProjects(w)
				return
			}
			writeProjects(w, map[string]any{"id": projectID.String(), "name": "Main Website"})
		}
	}))

	require.NoError(t, store.LoadProjects(context.Background()))
	require.NoError(t, store.DeleteProject(context.Background(), projectID))

	assert.Empty(t, store.Projects())
	assert.Equal(t, DefaultProjectID, store.ActiveProjectID())
}

func TestLoadProjectsFailureNotifies(t *testing.T) {
	store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	require.Error(t, store.LoadProjects(context.Background()))

	notification := store.Notification()
	require.NotNil(t, notification)
	assert.Equal(t, domain.NotificationTypeError, notification.Type)
	assert.Equal(t, backend.ErrorMessageDefault, notification.Message)
}

func TestReorderIntegrations(t *testing.T) {
	projectID := uuid.New()
	first := uuid.New()
	second := uuid.New()

	store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  "success",
			"message": "project integrations updated successfully",
			"data": []map[string]any{
				{"id": second.String(), "position": 0},
				{"id": first.String(), "position": 1},
			},
		})
	}))

	require.NoError(t, store.ReorderIntegrations(context.Background(), projectID, []uuid.UUID{second, first}))

	notification := store.Notification()
	require.NotNil(t, notification)
	assert.Equal(t, "project integrations updated successfully", notification.Message)
}

func TestCreateWhatsappIntegrationFailure(t *testing.T) {
	store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  "error",
			"message": "validation errors while creating whatsapp integration",
			"data":    map[string][]string{"phone_number": {"phone_number is a required field"}},
		})
	}))

	err := store.CreateWhatsappIntegration(context.Background(), uuid.New(), backend.WhatsappIntegrationParams{Name: "Support"})
	require.Error(t, err)
	assert.Equal(t, "phone_number is a required field", store.ErrorMessages().First("phone_number"))
}

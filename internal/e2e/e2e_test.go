package e2e

import (
	"context"
	"fmt"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/superbutton/superbutton-go/internal/backend"
	"github.com/superbutton/superbutton-go/internal/guard"
	"github.com/superbutton/superbutton-go/internal/identity"
	"github.com/superbutton/superbutton-go/internal/sandbox"
	"github.com/superbutton/superbutton-go/internal/store"
	storedomain "github.com/superbutton/superbutton-go/internal/store/domain"
	"github.com/superbutton/superbutton-go/pkg/db"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type fixture struct {
	store   *store.Store
	session *identity.Session
	issuer  *sandbox.TokenIssuer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	database, err := db.Open(db.Config{
		Path: fmt.Sprintf("file:e2e-%s?mode=memory&cache=shared", t.Name()),
	})
	require.NoError(t, err)

	issuer := sandbox.NewTokenIssuer("test-secret")
	server, err := sandbox.NewServer(database, issuer, zap.NewNop())
	require.NoError(t, err)

	engine := gin.New()
	server.Register(engine)
	httpServer := httptest.NewServer(engine)
	t.Cleanup(httpServer.Close)

	session := identity.NewSession(nil)
	client, err := backend.New(backend.Config{BaseURL: httpServer.URL + "/v1"}, session, zap.NewNop())
	require.NoError(t, err)

	notifications, err := store.NewNotificationController(nil)
	require.NoError(t, err)

	s := store.New(client, notifications, storedomain.App{Name: "SuperButton", URL: "https://superbutton.app"}, zap.NewNop())
	session.Subscribe(s.OnAuthStateChanged)

	return &fixture{store: s, session: session, issuer: issuer}
}

func (f *fixture) signIn(t *testing.T) {
	t.Helper()

	token, err := f.issuer.Mint(sandbox.Claims{UID: "user-1", Email: "jane@example.com", Name: "Jane Doe"})
	require.NoError(t, err)
	require.NoError(t, f.session.SetIDToken(token))
}

func mintExpiredToken(t *testing.T) string {
	t.Helper()

	now := time.Now()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"iat": now.Add(-2 * time.Hour).Unix(),
		"exp": now.Add(-time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestDashboardFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Before the identity resolves, guards must wait rather than redirect.
	select {
	case <-f.session.Resolved():
		t.Fatal("session resolved before any auth state change")
	default:
	}

	f.signIn(t)
	require.NoError(t, guard.AwaitResolution(ctx, f.session))

	redirect, ok := guard.Auth(f.session)
	require.True(t, ok, "auth guard should pass after sign-in, wanted no redirect to %s", redirect)

	require.NoError(t, f.store.LoadUser(ctx))
	require.NotNil(t, f.store.User())
	assert.Equal(t, "jane@example.com", f.store.User().Email)

	require.NoError(t, f.store.LoadProjects(ctx))
	assert.Empty(t, f.store.Projects())
	assert.Equal(t, store.DefaultProjectID, f.store.ActiveProjectID())

	require.NoError(t, f.store.CreateProject(ctx, backend.ProjectCreateParams{
		Name:    "Joe's Store",
		Website: "https://example.com",
	}))

	projects := f.store.Projects()
	require.Len(t, projects, 1)
	assert.Equal(t, projects[0].ID.String(), f.store.ActiveProjectID())
	assert.False(t, f.store.CreatingProject())

	notification := f.store.Notification()
	require.NotNil(t, notification)
	assert.Equal(t, storedomain.NotificationTypeSuccess, notification.Type)
	assert.Equal(t, "project created successfully", notification.Message)

	projectID := projects[0].ID
	require.NoError(t, f.store.CreateWhatsappIntegration(ctx, projectID, backend.WhatsappIntegrationParams{
		Name:        "WhatsApp",
		Text:        "Chat with us",
		PhoneNumber: "+12025550101",
	}))

	integrations, err := f.store.LoadIntegrations(ctx, projectID)
	require.NoError(t, err)
	require.Len(t, integrations, 1)
	assert.Equal(t, backend.IntegrationTypeWhatsapp, integrations[0].Type)

	settings, err := f.store.ProjectSettings(ctx, f.store.User().ID, projectID)
	require.NoError(t, err)
	require.Len(t, settings.Integrations, 1)
}

func TestValidationFailureSurfacesFieldErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.signIn(t)

	err := f.store.CreateProject(ctx, backend.ProjectCreateParams{Name: "", Website: "https://example.com"})
	require.Error(t, err)

	assert.Equal(t, "name is a required field", f.store.ErrorMessages().First("name"))
	assert.False(t, f.store.CreatingProject())

	notification := f.store.Notification()
	require.NotNil(t, notification)
	assert.Equal(t, storedomain.NotificationTypeError, notification.Type)
}

func TestSignOutClearsIdentity(t *testing.T) {
	f := newFixture(t)

	f.signIn(t)
	require.NotNil(t, f.store.AuthUser())

	redirect, ok := guard.Guest(f.session)
	assert.False(t, ok)
	assert.Equal(t, guard.RootRoute, redirect)

	f.session.Clear()
	assert.Nil(t, f.store.AuthUser())

	redirect, ok = guard.Auth(f.session)
	assert.False(t, ok)
	assert.Equal(t, guard.LoginRoute, redirect)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.session.SetIDToken(mintExpiredToken(t)))

	err := f.store.LoadUser(ctx)
	require.Error(t, err)

	var responseError *backend.ResponseError
	require.ErrorAs(t, err, &responseError)
	assert.Equal(t, 401, responseError.StatusCode)

	// A 401 does not sign the session out; that is the identity listener's
	// call.
	assert.NotNil(t, f.session.User())
}

package sandbox

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/superbutton/superbutton-go/internal/backend"
	"github.com/superbutton/superbutton-go/pkg/db"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) (*httptest.Server, *TokenIssuer) {
	t.Helper()

	database, err := db.Open(db.Config{
		Path: fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	})
	require.NoError(t, err)

	issuer := NewTokenIssuer("test-secret")
	server, err := NewServer(database, issuer, zap.NewNop())
	require.NoError(t, err)

	engine := gin.New()
	server.Register(engine)

	httpServer := httptest.NewServer(engine)
	t.Cleanup(httpServer.Close)
	return httpServer, issuer
}

func newTestClient(t *testing.T, httpServer *httptest.Server, issuer *TokenIssuer) *backend.Client {
	t.Helper()

	token, err := issuer.Mint(Claims{UID: "user-1", Email: "jane@example.com", Name: "Jane Doe"})
	require.NoError(t, err)

	client, err := backend.New(
		backend.Config{BaseURL: httpServer.URL + "/v1"},
		backend.StaticTokenSource(token),
		zap.NewNop(),
	)
	require.NoError(t, err)
	return client
}

func TestRequestsWithoutTokenAreUnauthorized(t *testing.T) {
	httpServer, _ := newTestServer(t)

	client, err := backend.New(backend.Config{BaseURL: httpServer.URL + "/v1"}, nil, zap.NewNop())
	require.NoError(t, err)

	_, err = client.Users.Me(context.Background())
	require.Error(t, err)

	var responseError *backend.ResponseError
	require.ErrorAs(t, err, &responseError)
	assert.Equal(t, http.StatusUnauthorized, responseError.StatusCode)
	assert.Equal(t, "You are not authorized to carry out this request.", responseError.Message)
}

func TestMeUpsertsUser(t *testing.T) {
	httpServer, issuer := newTestServer(t)
	client := newTestClient(t, httpServer, issuer)

	response, err := client.Users.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, backend.UserID("user-1"), response.Data.ID)
	assert.Equal(t, "jane@example.com", response.Data.Email)
	assert.Equal(t, "Jane Doe", response.Data.Name)
}

func TestProjectLifecycle(t *testing.T) {
	httpServer, issuer := newTestServer(t)
	client := newTestClient(t, httpServer, issuer)
	ctx := context.Background()

	created, err := client.Projects.Create(ctx, backend.ProjectCreateParams{
		Name:    "Joe's Store",
		Website: "https://example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "project created successfully", created.Message)
	assert.Equal(t, "#283593", created.Data.Color)

	list, err := client.Projects.List(ctx)
	require.NoError(t, err)
	require.Len(t, list.Data, 1)

	updated, err := client.Projects.Update(ctx, created.Data.ID, backend.ProjectUpdateParams{
		Name:            "Joe's Store",
		Website:         "https://example.com",
		Greeting:        "Need help?",
		GreetingTimeout: 30,
		Color:           "#ff5722",
	})
	require.NoError(t, err)
	assert.Equal(t, "#FF5722", updated.Data.Color)
	assert.Equal(t, uint(30), updated.Data.GreetingTimeoutSeconds)

	deleted, err := client.Projects.Delete(ctx, created.Data.ID)
	require.NoError(t, err)
	assert.Equal(t, "project deleted successfully", deleted.Message)

	list, err = client.Projects.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list.Data)
}

func TestCreateProjectValidation(t *testing.T) {
	httpServer, issuer := newTestServer(t)
	client := newTestClient(t, httpServer, issuer)

	_, err := client.Projects.Create(context.Background(), backend.ProjectCreateParams{
		Name:    "",
		Website: "ftp://not-a-website",
	})
	require.Error(t, err)

	fieldErrors := backend.FieldErrorsFromError(err)
	assert.Equal(t, "name is a required field", fieldErrors.First("name"))
	assert.Equal(t, "website must be a valid URL", fieldErrors.First("website"))
	assert.Equal(t, "validation errors while creating project", backend.MessageFromError(err))
}

func TestProjectsAreScopedToUser(t *testing.T) {
	httpServer, issuer := newTestServer(t)
	client := newTestClient(t, httpServer, issuer)
	ctx := context.Background()

	_, err := client.Projects.Create(ctx, backend.ProjectCreateParams{Name: "Mine", Website: "https://example.com"})
	require.NoError(t, err)

	otherToken, err := issuer.Mint(Claims{UID: "user-2", Email: "john@example.com", Name: "John Doe"})
	require.NoError(t, err)
	otherClient, err := backend.New(backend.Config{BaseURL: httpServer.URL + "/v1"}, backend.StaticTokenSource(otherToken), zap.NewNop())
	require.NoError(t, err)

	list, err := otherClient.Projects.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list.Data)
}

func TestIntegrationLifecycle(t *testing.T) {
	httpServer, issuer := newTestServer(t)
	client := newTestClient(t, httpServer, issuer)
	ctx := context.Background()

	project, err := client.Projects.Create(ctx, backend.ProjectCreateParams{Name: "Main", Website: "https://example.com"})
	require.NoError(t, err)
	projectID := project.Data.ID

	whatsapp, err := client.Whatsapp.Create(ctx, projectID, backend.WhatsappIntegrationParams{
		Name:        "WhatsApp",
		Text:        "Chat with us",
		PhoneNumber: "+12025550101",
	})
	require.NoError(t, err)
	assert.True(t, whatsapp.Data.Enabled)

	link, err := client.Links.Create(ctx, projectID, backend.LinkIntegrationParams{
		Name:    "Pricing",
		Text:    "See our pricing",
		Website: "https://example.com/pricing",
		Icon:    "link",
		Color:   "#283593",
	})
	require.NoError(t, err)

	tracked, err := client.Integrations.List(ctx, projectID)
	require.NoError(t, err)
	require.Len(t, tracked.Data, 2)
	assert.Equal(t, backend.IntegrationTypeWhatsapp, tracked.Data[0].Type)
	assert.Equal(t, uint(0), tracked.Data[0].Position)
	assert.Equal(t, backend.IntegrationTypeLink, tracked.Data[1].Type)
	assert.Equal(t, uint(1), tracked.Data[1].Position)

	// Move the link first.
	reordered, err := client.Integrations.Update(ctx, projectID, []uuid.UUID{tracked.Data[1].ID, tracked.Data[0].ID})
	require.NoError(t, err)
	require.Len(t, reordered.Data, 2)
	assert.Equal(t, backend.IntegrationTypeLink, reordered.Data[0].Type)

	_, err = client.Whatsapp.Delete(ctx, projectID, whatsapp.Data.ID)
	require.NoError(t, err)

	tracked, err = client.Integrations.List(ctx, projectID)
	require.NoError(t, err)
	require.Len(t, tracked.Data, 1)
	assert.Equal(t, backend.IntegrationTypeLink, tracked.Data[0].Type)
	assert.Equal(t, uint(0), tracked.Data[0].Position)

	_, err = client.Links.Get(ctx, projectID, link.Data.ID)
	require.NoError(t, err)
}

func TestIntegrationValidation(t *testing.T) {
	httpServer, issuer := newTestServer(t)
	client := newTestClient(t, httpServer, issuer)
	ctx := context.Background()

	project, err := client.Projects.Create(ctx, backend.ProjectCreateParams{Name: "Main", Website: "https://example.com"})
	require.NoError(t, err)

	_, err = client.Whatsapp.Create(ctx, project.Data.ID, backend.WhatsappIntegrationParams{Name: "WhatsApp"})
	require.Error(t, err)

	fieldErrors := backend.FieldErrorsFromError(err)
	assert.Equal(t, "text is a required field", fieldErrors.First("text"))
	assert.Equal(t, "phone_number is a required field", fieldErrors.First("phone_number"))
}

func TestProjectSettings(t *testing.T) {
	httpServer, issuer := newTestServer(t)
	client := newTestClient(t, httpServer, issuer)
	ctx := context.Background()

	project, err := client.Projects.Create(ctx, backend.ProjectCreateParams{Name: "Main", Website: "https://example.com"})
	require.NoError(t, err)
	projectID := project.Data.ID

	phoneCall, err := client.PhoneCalls.Create(ctx, projectID, backend.PhoneCallIntegrationParams{
		Name:        "Call us",
		Text:        "Call our support line",
		PhoneNumber: "+12025550102",
	})
	require.NoError(t, err)

	// The settings endpoint is public; no token required.
	anonymous, err := backend.New(backend.Config{BaseURL: httpServer.URL + "/v1"}, nil, zap.NewNop())
	require.NoError(t, err)

	settings, err := anonymous.Settings.Get(ctx, "user-1", projectID)
	require.NoError(t, err)
	require.NotNil(t, settings.Data.Project)
	assert.Equal(t, projectID, settings.Data.Project.ID)
	require.Len(t, settings.Data.Integrations, 1)
	assert.Equal(t, backend.IntegrationTypePhoneCall, settings.Data.Integrations[0].Type)
	assert.Equal(t, phoneCall.Data.ID, settings.Data.Integrations[0].ID)
}

func TestSettingsUnknownProject(t *testing.T) {
	httpServer, _ := newTestServer(t)

	anonymous, err := backend.New(backend.Config{BaseURL: httpServer.URL + "/v1"}, nil, zap.NewNop())
	require.NoError(t, err)

	_, err = anonymous.Settings.Get(context.Background(), "user-1", uuid.New())
	require.Error(t, err)

	var responseError *backend.ResponseError
	require.ErrorAs(t, err, &responseError)
	assert.Equal(t, http.StatusNotFound, responseError.StatusCode)
}

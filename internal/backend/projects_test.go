package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectServiceList(t *testing.T) {
	projectID := uuid.New()
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/projects", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  "success",
			"message": "projects fetched successfully",
			"data": []map[string]any{
				{"id": projectID.String(), "name": "Main Website", "url": "https://example.com", "color": "#283593"},
			},
		})
	}))

	response, err := client.Projects.List(context.Background())
	require.NoError(t, err)

	require.Len(t, response.Data, 1)
	assert.Equal(t, projectID, response.Data[0].ID)
	assert.Equal(t, "Main Website", response.Data[0].Name)
	assert.Equal(t, "#283593", response.Data[0].Color)
}

func TestProjectServiceCreate(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/projects", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Main Website","website":"https://example.com"}`, string(body))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  "success",
			"message": "project created successfully",
			"data":    map[string]any{"id": uuid.New().String(), "name": "Main Website", "url": "https://example.com"},
		})
	}))

	response, err := client.Projects.Create(context.Background(), ProjectCreateParams{
		Name:    "Main Website",
		Website: "https://example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "project created successfully", response.Message)
	assert.Equal(t, "Main Website", response.Data.Name)
}

func TestProjectServiceCreateValidationError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  "error",
			"message": "validation errors while creating project",
			"data":    map[string][]string{"name": {"name is a required field"}},
		})
	}))

	_, err := client.Projects.Create(context.Background(), ProjectCreateParams{Website: "https://example.com"})
	require.Error(t, err)
	assert.Equal(t, "name is a required field", FieldErrorsFromError(err).First("name"))
	assert.Equal(t, "validation errors while creating project", MessageFromError(err))
}

func TestProjectServiceUpdate(t *testing.T) {
	projectID := uuid.New()
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/projects/"+projectID.String(), r.URL.Path)

		var params ProjectUpdateParams
		require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		assert.Equal(t, uint(60), params.GreetingTimeout)
		assert.Equal(t, "#FF5722", params.Color)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  "success",
			"message": "project updated successfully",
			"data":    map[string]any{"id": projectID.String(), "name": "Main Website", "color": "#FF5722"},
		})
	}))

	response, err := client.Projects.Update(context.Background(), projectID, ProjectUpdateParams{
		Name:            "Main Website",
		Website:         "https://example.com",
		Greeting:        "Need help?",
		GreetingTimeout: 60,
		Color:           "#FF5722",
	})
	require.NoError(t, err)
	assert.Equal(t, "#FF5722", response.Data.Color)
}

func TestProjectServiceDelete(t *testing.T) {
	projectID := uuid.New()
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/projects/"+projectID.String(), r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "success", "message": "project deleted successfully"})
	}))

	response, err := client.Projects.Delete(context.Background(), projectID)
	require.NoError(t, err)
	assert.Equal(t, "project deleted successfully", response.Message)
}

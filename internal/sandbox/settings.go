package sandbox

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/superbutton/superbutton-go/internal/sandbox/domain"
)

type projectSettings struct {
	Project      domain.Project               `json:"project"`
	Integrations []projectSettingsIntegration `json:"integrations"`
}

type projectSettingsIntegration struct {
	Type     string          `json:"type"`
	ID       uuid.UUID       `json:"id"`
	Settings json.RawMessage `json:"settings"`
}

// projectSettings answers the embeddable widget: the project plus every
// enabled integration's settings snapshot, in display order.
func (s *Server) projectSettings(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}
	ownerID := c.Param("userId")

	var project domain.Project
	err := s.db.WithContext(c.Request.Context()).
		First(&project, "id = ? AND user_id = ?", projectID, ownerID).
		Error
	if err != nil {
		respondNotFound(c, "cannot find project")
		return
	}

	tracked := make([]domain.ProjectIntegration, 0)
	err = s.db.WithContext(c.Request.Context()).
		Where("project_id = ?", projectID).
		Order("position ASC").
		Find(&tracked).
		Error
	if err != nil {
		s.log.Error("cannot load project integrations", zap.Error(err))
		respondInternalError(c)
		return
	}

	settings := projectSettings{
		Project:      project,
		Integrations: make([]projectSettingsIntegration, 0, len(tracked)),
	}
	for _, integration := range tracked {
		var snapshot struct {
			Enabled bool `json:"enabled"`
		}
		if err := json.Unmarshal(integration.Settings, &snapshot); err != nil || !snapshot.Enabled {
			continue
		}
		settings.Integrations = append(settings.Integrations, projectSettingsIntegration{
			Type:     integration.Type,
			ID:       integration.IntegrationID,
			Settings: json.RawMessage(integration.Settings),
		})
	}

	respondOK(c, "project settings fetched successfully", settings)
}

package sandbox

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/superbutton/superbutton-go/internal/sandbox/domain"
)

const (
	integrationTypeWhatsapp  = "whatsapp"
	integrationTypeContent   = "content"
	integrationTypePhoneCall = "phone-call"
	integrationTypeLink      = "link"
)

// trackIntegration appends a new integration to the project's ordered list
// and snapshots its settings.
func trackIntegration(tx *gorm.DB, userID string, projectID, integrationID uuid.UUID, integrationType, name string, settings any) error {
	var count int64
	err := tx.Model(&domain.ProjectIntegration{}).
		Where("project_id = ?", projectID).
		Count(&count).
		Error
	if err != nil {
		return err
	}

	snapshot, err := json.Marshal(settings)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	return tx.Create(&domain.ProjectIntegration{
		ID:            uuid.New(),
		UserID:        userID,
		ProjectID:     projectID,
		IntegrationID: integrationID,
		Type:          integrationType,
		Name:          name,
		Position:      uint(count),
		Settings:      datatypes.JSON(snapshot),
		CreatedAt:     now,
		UpdatedAt:     now,
	}).Error
}

// refreshIntegration re-snapshots a tracked integration after an update.
func refreshIntegration(tx *gorm.DB, integrationID uuid.UUID, name string, settings any) error {
	snapshot, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return tx.Model(&domain.ProjectIntegration{}).
		Where("integration_id = ?", integrationID).
		Updates(map[string]any{
			"name":       name,
			"settings":   datatypes.JSON(snapshot),
			"updated_at": time.Now().UTC(),
		}).
		Error
}

// untrackIntegration removes a tracked integration and closes the position
// gap it leaves behind.
func untrackIntegration(tx *gorm.DB, projectID, integrationID uuid.UUID) error {
	err := tx.Where("integration_id = ?", integrationID).
		Delete(&domain.ProjectIntegration{}).
		Error
	if err != nil {
		return err
	}

	remaining := make([]domain.ProjectIntegration, 0)
	err = tx.Where("project_id = ?", projectID).
		Order("position ASC").
		Find(&remaining).
		Error
	if err != nil {
		return err
	}

	for index := range remaining {
		if remaining[index].Position == uint(index) {
			continue
		}
		err = tx.Model(&domain.ProjectIntegration{}).
			Where("id = ?", remaining[index].ID).
			Update("position", uint(index)).
			Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Server) listIntegrations(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}

	var project domain.Project
	if !firstOwned(c, s.db, &project, "cannot find project", "id = ?", projectID) {
		return
	}

	integrations := make([]domain.ProjectIntegration, 0)
	err := s.db.WithContext(c.Request.Context()).
		Where("project_id = ?", projectID).
		Order("position ASC").
		Find(&integrations).
		Error
	if err != nil {
		s.log.Error("cannot list project integrations", zap.Error(err))
		respondInternalError(c)
		return
	}

	respondOK(c, "project integrations fetched successfully", integrations)
}

func (s *Server) reorderIntegrations(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}

	var request integrationsUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	var project domain.Project
	if !firstOwned(c, s.db, &project, "cannot find project", "id = ?", projectID) {
		return
	}

	err := s.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		for index, id := range request.Order {
			err := tx.Model(&domain.ProjectIntegration{}).
				Where("id = ? AND project_id = ?", id, projectID).
				Update("position", uint(index)).
				Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.Error("cannot reorder project integrations", zap.Error(err))
		respondInternalError(c)
		return
	}

	integrations := make([]domain.ProjectIntegration, 0)
	err = s.db.WithContext(c.Request.Context()).
		Where("project_id = ?", projectID).
		Order("position ASC").
		Find(&integrations).
		Error
	if err != nil {
		respondInternalError(c)
		return
	}

	respondOK(c, "project integrations updated successfully", integrations)
}

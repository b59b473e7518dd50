package sandbox

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/superbutton/superbutton-go/internal/sandbox/domain"
)

func (s *Server) registerContentRoutes(group *gin.RouterGroup) {
	group.GET("/projects/:projectId/content-integrations", s.listContentIntegrations)
	group.POST("/projects/:projectId/content-integrations", s.createContentIntegration)
	group.GET("/projects/:projectId/content-integrations/:integrationId", s.getContentIntegration)
	group.PUT("/projects/:projectId/content-integrations/:integrationId", s.updateContentIntegration)
	group.DELETE("/projects/:projectId/content-integrations/:integrationId", s.deleteContentIntegration)
}

func (s *Server) listContentIntegrations(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}

	integrations := make([]domain.ContentIntegration, 0)
	err := s.db.WithContext(c.Request.Context()).
		Where("user_id = ? AND project_id = ?", userID(c), projectID).
		Order("created_at ASC").
		Find(&integrations).
		Error
	if err != nil {
		s.log.Error("cannot list content integrations", zap.Error(err))
		respondInternalError(c)
		return
	}

	respondOK(c, "content integrations fetched successfully", integrations)
}

func (s *Server) getContentIntegration(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}
	integrationID, ok := pathUUID(c, "integrationId")
	if !ok {
		return
	}

	var integration domain.ContentIntegration
	if !firstOwned(c, s.db, &integration, "cannot find content integration", "id = ? AND project_id = ?", integrationID, projectID) {
		return
	}

	respondOK(c, "content integration fetched successfully", integration)
}

func (s *Server) createContentIntegration(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}

	var request contentIntegrationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if errors := request.validate(); len(errors) > 0 {
		respondUnprocessable(c, "validation errors while creating content integration", errors)
		return
	}

	var project domain.Project
	if !firstOwned(c, s.db, &project, "cannot find project", "id = ?", projectID) {
		return
	}

	now := time.Now().UTC()
	integration := domain.ContentIntegration{
		ID:        uuid.New(),
		UserID:    userID(c),
		ProjectID: projectID,
		Name:      request.Name,
		Title:     request.Title,
		Summary:   request.Summary,
		Text:      request.Text,
		Enabled:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&integration).Error; err != nil {
			return err
		}
		return trackIntegration(tx, userID(c), projectID, integration.ID, integrationTypeContent, integration.Name, integration)
	})
	if err != nil {
		s.log.Error("cannot create content integration", zap.Error(err))
		respondInternalError(c)
		return
	}

	respondCreated(c, "content integration created successfully", integration)
}

func (s *Server) updateContentIntegration(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}
	integrationID, ok := pathUUID(c, "integrationId")
	if !ok {
		return
	}

	var request contentIntegrationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if errors := request.validate(); len(errors) > 0 {
		respondUnprocessable(c, "validation errors while updating content integration", errors)
		return
	}

	var integration domain.ContentIntegration
	if !firstOwned(c, s.db, &integration, "cannot find content integration", "id = ? AND project_id = ?", integrationID, projectID) {
		return
	}

	integration.Name = request.Name
	integration.Title = request.Title
	integration.Summary = request.Summary
	integration.Text = request.Text
	integration.UpdatedAt = time.Now().UTC()

	err := s.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&integration).Error; err != nil {
			return err
		}
		return refreshIntegration(tx, integration.ID, integration.Name, integration)
	})
	if err != nil {
		s.log.Error("cannot update content integration", zap.Error(err))
		respondInternalError(c)
		return
	}

	respondOK(c, "content integration updated successfully", integration)
}

func (s *Server) deleteContentIntegration(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}
	integrationID, ok := pathUUID(c, "integrationId")
	if !ok {
		return
	}

	var integration domain.ContentIntegration
	if !firstOwned(c, s.db, &integration, "cannot find content integration", "id = ? AND project_id = ?", integrationID, projectID) {
		return
	}

	err := s.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&integration).Error; err != nil {
			return err
		}
		return untrackIntegration(tx, projectID, integration.ID)
	})
	if err != nil {
		s.log.Error("cannot delete content integration", zap.Error(err))
		respondInternalError(c)
		return
	}

	respondOK(c, "content integration deleted successfully", nil)
}

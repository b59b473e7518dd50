package sandbox

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/superbutton/superbutton-go/internal/sandbox/domain"
)

func (s *Server) registerLinkRoutes(group *gin.RouterGroup) {
	group.GET("/projects/:projectId/link-integrations", s.listLinkIntegrations)
	group.POST("/projects/:projectId/link-integrations", s.createLinkIntegration)
	group.GET("/projects/:projectId/link-integrations/:integrationId", s.getLinkIntegration)
	group.PUT("/projects/:projectId/link-integrations/:integrationId", s.updateLinkIntegration)
	group.DELETE("/projects/:projectId/link-integrations/:integrationId", s.deleteLinkIntegration)
}

func (s *Server) listLinkIntegrations(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}

	integrations := make([]domain.LinkIntegration, 0)
	err := s.db.WithContext(c.Request.Context()).
		Where("user_id = ? AND project_id = ?", userID(c), projectID).
		Order("created_at ASC").
		Find(&integrations).
		Error
	if err != nil {
		s.log.Error("cannot list link integrations", zap.Error(err))
		respondInternalError(c)
		return
	}

	respondOK(c, "link integrations fetched successfully", integrations)
}

func (s *Server) getLinkIntegration(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}
	integrationID, ok := pathUUID(c, "integrationId")
	if !ok {
		return
	}

	var integration domain.LinkIntegration
	if !firstOwned(c, s.db, &integration, "cannot find link integration", "id = ? AND project_id = ?", integrationID, projectID) {
		return
	}

	respondOK(c, "link integration fetched successfully", integration)
}

func (s *Server) createLinkIntegration(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}

	var request linkIntegrationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if errors := request.validate(); len(errors) > 0 {
		respondUnprocessable(c, "validation errors while creating link integration", errors)
		return
	}

	var project domain.Project
	if !firstOwned(c, s.db, &project, "cannot find project", "id = ?", projectID) {
		return
	}

	now := time.Now().UTC()
	integration := domain.LinkIntegration{
		ID:        uuid.New(),
		UserID:    userID(c),
		ProjectID: projectID,
		Name:      request.Name,
		Text:      request.Text,
		URL:       request.Website,
		Icon:      request.Icon,
		Color:     request.Color,
		Enabled:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&integration).Error; err != nil {
			return err
		}
		return trackIntegration(tx, userID(c), projectID, integration.ID, integrationTypeLink, integration.Name, integration)
	})
	if err != nil {
		s.log.Error("cannot create link integration", zap.Error(err))
		respondInternalError(c)
		return
	}

	respondCreated(c, "link integration created successfully", integration)
}

func (s *Server) updateLinkIntegration(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}
	integrationID, ok := pathUUID(c, "integrationId")
	if !ok {
		return
	}

	var request linkIntegrationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if errors := request.validate(); len(errors) > 0 {
		respondUnprocessable(c, "validation errors while updating link integration", errors)
		return
	}

	var integration domain.LinkIntegration
	if !firstOwned(c, s.db, &integration, "cannot find link integration", "id = ? AND project_id = ?", integrationID, projectID) {
		return
	}

	integration.Name = request.Name
	integration.Text = request.Text
	integration.URL = request.Website
	integration.Icon = request.Icon
	integration.Color = request.Color
	integration.UpdatedAt = time.Now().UTC()

	err := s.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&integration).Error; err != nil {
			return err
		}
		return refreshIntegration(tx, integration.ID, integration.Name, integration)
	})
	if err != nil {
		s.log.Error("cannot update link integration", zap.Error(err))
		respondInternalError(c)
		return
	}

	respondOK(c, "link integration updated successfully", integration)
}

func (s *Server) deleteLinkIntegration(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}
	integrationID, ok := pathUUID(c, "integrationId")
	if !ok {
		return
	}

	var integration domain.LinkIntegration
	if !firstOwned(c, s.db, &integration, "cannot find link integration", "id = ? AND project_id = ?", integrationID, projectID) {
		return
	}

	err := s.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&integration).Error; err != nil {
			return err
		}
		return untrackIntegration(tx, projectID, integration.ID)
	})
	if err != nil {
		s.log.Error("cannot delete link integration", zap.Error(err))
		respondInternalError(c)
		return
	}

	respondOK(c, "link integration deleted successfully", nil)
}

package sandbox

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/superbutton/superbutton-go/internal/sandbox/domain"
)

func (s *Server) registerWhatsappRoutes(group *gin.RouterGroup) {
	group.GET("/projects/:projectId/whatsapp-integrations", s.listWhatsappIntegrations)
	group.POST("/projects/:projectId/whatsapp-integrations", s.createWhatsappIntegration)
	group.GET("/projects/:projectId/whatsapp-integrations/:integrationId", s.getWhatsappIntegration)
	group.PUT("/projects/:projectId/whatsapp-integrations/:integrationId", s.updateWhatsappIntegration)
	group.DELETE("/projects/:projectId/whatsapp-integrations/:integrationId", s.deleteWhatsappIntegration)
}

func (s *Server) listWhatsappIntegrations(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}

	integrations := make([]domain.WhatsappIntegration, 0)
	err := s.db.WithContext(c.Request.Context()).
		Where("user_id = ? AND project_id = ?", userID(c), projectID).
		Order("created_at ASC").
		Find(&integrations).
		Error
	if err != nil {
		s.log.Error("cannot list whatsapp integrations", zap.Error(err))
		respondInternalError(c)
		return
	}

	respondOK(c, "whatsapp integrations fetched successfully", integrations)
}

func (s *Server) getWhatsappIntegration(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}
	integrationID, ok := pathUUID(c, "integrationId")
	if !ok {
		return
	}

	var integration domain.WhatsappIntegration
	if !firstOwned(c, s.db, &integration, "cannot find whatsapp integration", "id = ? AND project_id = ?", integrationID, projectID) {
		return
	}

	respondOK(c, "whatsapp integration fetched successfully", integration)
}

func (s *Server) createWhatsappIntegration(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}

	var request whatsappIntegrationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if errors := request.validate(); len(errors) > 0 {
		respondUnprocessable(c, "validation errors while creating whatsapp integration", errors)
		return
	}

	var project domain.Project
	if !firstOwned(c, s.db, &project, "cannot find project", "id = ?", projectID) {
		return
	}

	now := time.Now().UTC()
	integration := domain.WhatsappIntegration{
		ID:          uuid.New(),
		UserID:      userID(c),
		ProjectID:   projectID,
		Name:        request.Name,
		Text:        request.Text,
		PhoneNumber: request.PhoneNumber,
		Icon:        "whatsapp",
		Enabled:     true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&integration).Error; err != nil {
			return err
		}
		return trackIntegration(tx, userID(c), projectID, integration.ID, integrationTypeWhatsapp, integration.Name, integration)
	})
	if err != nil {
		s.log.Error("cannot create whatsapp integration", zap.Error(err))
		respondInternalError(c)
		return
	}

	respondCreated(c, "whatsapp integration created successfully", integration)
}

func (s *Server) updateWhatsappIntegration(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}
	integrationID, ok := pathUUID(c, "integrationId")
	if !ok {
		return
	}

	var request whatsappIntegrationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if errors := request.validate(); len(errors) > 0 {
		respondUnprocessable(c, "validation errors while updating whatsapp integration", errors)
		return
	}

	var integration domain.WhatsappIntegration
	if !firstOwned(c, s.db, &integration, "cannot find whatsapp integration", "id = ? AND project_id = ?", integrationID, projectID) {
		return
	}

	integration.Name = request.Name
	integration.Text = request.Text
	integration.PhoneNumber = request.PhoneNumber
	integration.UpdatedAt = time.Now().UTC()

	err := s.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&integration).Error; err != nil {
			return err
		}
		return refreshIntegration(tx, integration.ID, integration.Name, integration)
	})
	if err != nil {
		s.log.Error("cannot update whatsapp integration", zap.Error(err))
		respondInternalError(c)
		return
	}

	respondOK(c, "whatsapp integration updated successfully", integration)
}

func (s *Server) deleteWhatsappIntegration(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}
	integrationID, ok := pathUUID(c, "integrationId")
	if !ok {
		return
	}

	var integration domain.WhatsappIntegration
	if !firstOwned(c, s.db, &integration, "cannot find whatsapp integration", "id = ? AND project_id = ?", integrationID, projectID) {
		return
	}

	err := s.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&integration).Error; err != nil {
			return err
		}
		return untrackIntegration(tx, projectID, integration.ID)
	})
	if err != nil {
		s.log.Error("cannot delete whatsapp integration", zap.Error(err))
		respondInternalError(c)
		return
	}

	respondOK(c, "whatsapp integration deleted successfully", nil)
}

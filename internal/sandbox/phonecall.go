package sandbox

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/superbutton/superbutton-go/internal/sandbox/domain"
)

func (s *Server) registerPhoneCallRoutes(group *gin.RouterGroup) {
	group.GET("/projects/:projectId/phone-call-integrations", s.listPhoneCallIntegrations)
	group.POST("/projects/:projectId/phone-call-integrations", s.createPhoneCallIntegration)
	group.GET("/projects/:projectId/phone-call-integrations/:integrationId", s.getPhoneCallIntegration)
	group.PUT("/projects/:projectId/phone-call-integrations/:integrationId", s.updatePhoneCallIntegration)
	group.DELETE("/projects/:projectId/phone-call-integrations/:integrationId", s.deletePhoneCallIntegration)
}

func (s *Server) listPhoneCallIntegrations(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}

	integrations := make([]domain.PhoneCallIntegration, 0)
	err := s.db.WithContext(c.Request.Context()).
		Where("user_id = ? AND project_id = ?", userID(c), projectID).
		Order("created_at ASC").
		Find(&integrations).
		Error
	if err != nil {
		s.log.Error("cannot list phone call integrations", zap.Error(err))
		respondInternalError(c)
		return
	}

	respondOK(c, "phone call integrations fetched successfully", integrations)
}

func (s *Server) getPhoneCallIntegration(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}
	integrationID, ok := pathUUID(c, "integrationId")
	if !ok {
		return
	}

	var integration domain.PhoneCallIntegration
	if !firstOwned(c, s.db, &integration, "cannot find phone call integration", "id = ? AND project_id = ?", integrationID, projectID) {
		return
	}

	respondOK(c, "phone call integration fetched successfully", integration)
}

func (s *Server) createPhoneCallIntegration(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}

	var request phoneCallIntegrationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if errors := request.validate(); len(errors) > 0 {
		respondUnprocessable(c, "validation errors while creating phone call integration", errors)
		return
	}

	var project domain.Project
	if !firstOwned(c, s.db, &project, "cannot find project", "id = ?", projectID) {
		return
	}

	now := time.Now().UTC()
	integration := domain.PhoneCallIntegration{
		ID:          uuid.New(),
		UserID:      userID(c),
		ProjectID:   projectID,
		Name:        request.Name,
		Text:        request.Text,
		PhoneNumber: request.PhoneNumber,
		Icon:        "phone",
		Enabled:     true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&integration).Error; err != nil {
			return err
		}
		return trackIntegration(tx, userID(c), projectID, integration.ID, integrationTypePhoneCall, integration.Name, integration)
	})
	if err != nil {
		s.log.Error("cannot create phone call integration", zap.Error(err))
		respondInternalError(c)
		return
	}

	respondCreated(c, "phone call integration created successfully", integration)
}

func (s *Server) updatePhoneCallIntegration(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}
	integrationID, ok := pathUUID(c, "integrationId")
	if !ok {
		return
	}

	var request phoneCallIntegrationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if errors := request.validate(); len(errors) > 0 {
		respondUnprocessable(c, "validation errors while updating phone call integration", errors)
		return
	}

	var integration domain.PhoneCallIntegration
	if !firstOwned(c, s.db, &integration, "cannot find phone call integration", "id = ? AND project_id = ?", integrationID, projectID) {
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
		s.log.Error("cannot update phone call integration", zap.Error(err))
		respondInternalError(c)
		return
	}

	respondOK(c, "phone call integration updated successfully", integration)
}

func (s *Server) deletePhoneCallIntegration(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}
	integrationID, ok := pathUUID(c, "integrationId")
	if !ok {
		return
	}

	var integration domain.PhoneCallIntegration
	if !firstOwned(c, s.db, &integration, "cannot find phone call integration", "id = ? AND project_id = ?", integrationID, projectID) {
		return
	}

	err := s.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&integration).Error; err != nil {
			return err
		}
		return untrackIntegration(tx, projectID, integration.ID)
	})
	if err != nil {
		s.log.Error("cannot delete phone call integration", zap.Error(err))
		respondInternalError(c)
		return
	}

	respondOK(c, "phone call integration deleted successfully", nil)
}

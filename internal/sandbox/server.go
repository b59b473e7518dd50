// Package sandbox is an in-process rendition of the SuperButton REST API.
// It exists so the dashboard, the CLI and the test suite can run against a
// real HTTP surface without the hosted backend.
package sandbox

import (
	"fmt"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/superbutton/superbutton-go/internal/sandbox/domain"
)

type Server struct {
	db     *gorm.DB
	issuer *TokenIssuer
	log    *zap.Logger
}

func NewServer(database *gorm.DB, issuer *TokenIssuer, log *zap.Logger) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}

	err := database.AutoMigrate(
		&domain.User{},
		&domain.Project{},
		&domain.WhatsappIntegration{},
		&domain.ContentIntegration{},
		&domain.PhoneCallIntegration{},
		&domain.LinkIntegration{},
		&domain.ProjectIntegration{},
	)
	if err != nil {
		return nil, fmt.Errorf("cannot migrate sandbox schema: %w", err)
	}

	return &Server{db: database, issuer: issuer, log: log.Named("sandbox")}, nil
}

// Register mounts the API under /v1.
func (s *Server) Register(router gin.IRouter) {
	v1 := router.Group("/v1")

	// The settings endpoint is what the embeddable widget loads; it has no
	// authentication on purpose.
	v1.GET("/settings/:userId/projects/:projectId", s.projectSettings)

	authenticated := v1.Group("", s.authenticate())
	authenticated.GET("/users/me", s.me)

	authenticated.GET("/projects", s.listProjects)
	authenticated.POST("/projects", s.createProject)
	authenticated.PUT("/projects/:projectId", s.updateProject)
	authenticated.DELETE("/projects/:projectId", s.deleteProject)

	authenticated.GET("/projects/:projectId/integrations", s.listIntegrations)
	authenticated.PUT("/projects/:projectId/integrations", s.reorderIntegrations)

	s.registerWhatsappRoutes(authenticated)
	s.registerContentRoutes(authenticated)
	s.registerPhoneCallRoutes(authenticated)
	s.registerLinkRoutes(authenticated)
}

func (s *Server) me(c *gin.Context) {
	var user domain.User
	if err := s.db.WithContext(c.Request.Context()).First(&user, "id = ?", userID(c)).Error; err != nil {
		respondNotFound(c, "cannot find user")
		return
	}
	respondOK(c, "user fetched successfully", user)
}

func (s *Server) listProjects(c *gin.Context) {
	projects := make([]domain.Project, 0)
	err := s.db.WithContext(c.Request.Context()).
		Where("user_id = ?", userID(c)).
		Order("created_at ASC").
		Find(&projects).
		Error
	if err != nil {
		s.log.Error("cannot list projects", zap.Error(err))
		respondInternalError(c)
		return
	}
	respondOK(c, "projects fetched successfully", projects)
}

func (s *Server) createProject(c *gin.Context) {
	var request projectCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	request.sanitize()
	if errors := request.validate(); len(errors) > 0 {
		respondUnprocessable(c, "validation errors while creating project", errors)
		return
	}

	now := time.Now().UTC()
	project := domain.Project{
		ID:        uuid.New(),
		UserID:    userID(c),
		Name:      request.Name,
		URL:       request.Website,
		Color:     defaultProjectColor,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.db.WithContext(c.Request.Context()).Create(&project).Error; err != nil {
		s.log.Error("cannot create project", zap.Error(err))
		respondInternalError(c)
		return
	}

	respondCreated(c, "project created successfully", project)
}

func (s *Server) updateProject(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}

	var request projectUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	request.sanitize()
	if errors := request.validate(); len(errors) > 0 {
		respondUnprocessable(c, "validation errors while updating project", errors)
		return
	}

	var project domain.Project
	if !firstOwned(c, s.db, &project, "cannot find project", "id = ?", projectID) {
		return
	}

	project.Name = request.Name
	project.URL = request.Website
	project.Icon = request.Icon
	project.Greeting = request.Greeting
	project.GreetingTimeoutSeconds = request.GreetingTimeout
	project.Color = request.Color
	project.UpdatedAt = time.Now().UTC()

	if err := s.db.WithContext(c.Request.Context()).Save(&project).Error; err != nil {
		s.log.Error("cannot update project", zap.Error(err))
		respondInternalError(c)
		return
	}

	respondOK(c, "project updated successfully", project)
}

func (s *Server) deleteProject(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}

	var project domain.Project
	if !firstOwned(c, s.db, &project, "cannot find project", "id = ?", projectID) {
		return
	}

	err := s.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{
			&domain.ProjectIntegration{},
			&domain.WhatsappIntegration{},
			&domain.ContentIntegration{},
			&domain.PhoneCallIntegration{},
			&domain.LinkIntegration{},
		} {
			err := tx.Where("user_id = ? AND project_id = ?", userID(c), projectID).Delete(model).Error
			if err != nil {
				return err
			}
		}
		return tx.Delete(&project).Error
	})
	if err != nil {
		s.log.Error("cannot delete project", zap.Error(err))
		respondInternalError(c)
		return
	}

	respondOK(c, "project deleted successfully", nil)
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondUnprocessable(c, "validation errors while parsing the request", url.Values{
			name: []string{name + " must be a valid UUID"},
		})
		return uuid.Nil, false
	}
	return id, true
}

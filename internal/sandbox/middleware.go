package sandbox

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/superbutton/superbutton-go/internal/sandbox/domain"
)

const contextKeyUserID = "sandbox.userID"

// authenticate verifies the bearer token and upserts the user record behind
// it, so a first request after sign-up already has a profile row.
func (s *Server) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			respondUnauthorized(c, "missing bearer token")
			return
		}

		claims, err := s.issuer.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			respondUnauthorized(c, "invalid bearer token")
			return
		}

		now := time.Now().UTC()
		user := domain.User{
			ID:        claims.UID,
			Email:     claims.Email,
			Name:      claims.Name,
			CreatedAt: now,
			UpdatedAt: now,
		}
		err = s.db.WithContext(c.Request.Context()).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"email", "name", "updated_at"}),
			}).
			Create(&user).Error
		if err != nil {
			s.log.Error("cannot upsert user", zap.String("uid", claims.UID), zap.Error(err))
			respondInternalError(c)
			c.Abort()
			return
		}

		c.Set(contextKeyUserID, claims.UID)
		c.Next()
	}
}

func userID(c *gin.Context) string {
	return c.GetString(contextKeyUserID)
}

// firstOwned loads an entity scoped to the requesting user. A miss answers
// false with the 404 already written.
func firstOwned[T any](c *gin.Context, db *gorm.DB, out *T, message string, query string, args ...any) bool {
	err := db.WithContext(c.Request.Context()).
		Where("user_id = ?", userID(c)).
		Where(query, args...).
		First(out).
		Error
	if err == nil {
		return true
	}
	respondNotFound(c, message)
	return false
}

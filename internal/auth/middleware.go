package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"erp-reporting-backend/internal/models"
)

type UserStore interface {
	FindByID(id uuid.UUID) (*models.User, error)
}

// RequireAuth loads the session user and stores it in the request context.
func RequireAuth(sessions *Sessions, users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sessions.UserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error_msg": "Please log in to view that resource"})
			return
		}
		user, err := users.FindByID(id)
		if err != nil || user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error_msg": "Please log in to view that resource"})
			return
		}
		c.Set("user", user)
		c.Next()
	}
}

// RequireRoles rejects authenticated users whose role is not in the allowed set.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error_msg": "Please log in to view that resource"})
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error_msg": "You are not authorized to view this page"})
	}
}

// CheckAccountExpiration blocks users whose account expiration date is unset
// or already past.
func CheckAccountExpiration() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found"})
			return
		}
		if user.AccountExpirationDate == nil || user.AccountExpirationDate.Before(time.Now()) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Account has expired"})
			return
		}
		c.Next()
	}
}

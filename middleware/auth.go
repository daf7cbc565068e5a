package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hearthware/store-api/auth"
	"github.com/hearthware/store-api/helpers"
	"github.com/hearthware/store-api/models"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// ValidateToken resolves the calling principal from the Authorization header
// and stores user_id and role in the gin context. The token's version must
// match the user's current one; logout and password changes bump the version,
// which invalidates everything issued before.
func ValidateToken(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			helpers.ErrorRes(c, http.StatusUnauthorized, "Authorization header is missing", nil)
			c.Abort()
			return
		}
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		claims, err := auth.ParseToken(tokenString)
		if err != nil {
			helpers.ErrorRes(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", claims.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				helpers.ErrorRes(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			} else {
				log.Printf("load principal failed: %v", err)
				helpers.ErrorRes(c, http.StatusInternalServerError, "Failed to authenticate request", nil)
			}
			c.Abort()
			return
		}
		if user.TokenVersion != claims.TokenVersion {
			helpers.ErrorRes(c, http.StatusUnauthorized, "Token has been revoked", nil)
			c.Abort()
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextRole, user.Role)
		c.Next()
	}
}

// RequireRole gates a route group on the caller's role. Role checks live here,
// before dispatch; handlers and services never compare role strings.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(ContextRole)
		if !exists {
			helpers.ErrorRes(c, http.StatusUnauthorized, "Unauthenticated", nil)
			c.Abort()
			return
		}
		role := roleVal.(models.Role)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		helpers.ErrorRes(c, http.StatusForbidden, "Unauthorize access", nil)
		c.Abort()
	}
}

// UserID reads the authenticated principal set by ValidateToken.
func UserID(c *gin.Context) uint {
	val, _ := c.Get(ContextUserID)
	id, _ := val.(uint)
	return id
}

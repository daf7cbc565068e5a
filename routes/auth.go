package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "github.com/hearthware/store-api/controllers/auth"
	"github.com/hearthware/store-api/services"
)

// SetupAuthRoutes registers the public endpoints. No middleware.
func SetupAuthRoutes(r *gin.Engine, users *services.UserService) {
	r.POST("/register", authControllers.Register(users))
	r.POST("/login", authControllers.Login(users))
}

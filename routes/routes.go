package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hearthware/store-api/repository"
	"github.com/hearthware/store-api/services"
)

// SetupRoutes is the single entry-point that wires up the public, user and
// admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	repo := repository.NewGormRepository(db)

	users := services.NewUserService(repo)
	carts := services.NewCartService(repo)
	orders := services.NewOrderService(repo)
	products := services.NewProductService(repo)

	SetupAuthRoutes(r, users)
	SetupUserRoutes(r, db, users, carts, orders, products)
	SetupAdminRoutes(r, db, orders, products)
}

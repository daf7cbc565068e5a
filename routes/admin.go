package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/hearthware/store-api/controllers/order"
	productControllers "github.com/hearthware/store-api/controllers/product"
	"github.com/hearthware/store-api/helpers"
	"github.com/hearthware/store-api/middleware"
	"github.com/hearthware/store-api/models"
	"github.com/hearthware/store-api/services"
)

// SetupAdminRoutes registers the role-gated management endpoints.
func SetupAdminRoutes(
	r *gin.Engine,
	db *gorm.DB,
	orders *services.OrderService,
	products *services.ProductService,
) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken(db), middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin))
	{
		adminGroup.GET("/orders/all", orderControllers.ListAllOrders(orders))
		adminGroup.GET("/orders/:id", orderControllers.GetOrder(orders))

		adminGroup.POST("/store-products", productControllers.StoreProduct(products))
		adminGroup.GET("/products", productControllers.GetProducts(products))
		adminGroup.GET("/products/export", productControllers.ExportProducts(products))

		adminGroup.GET("/dashboard", func(c *gin.Context) {
			helpers.SuccessRes(c, http.StatusOK, "Admin Dashboard", nil)
		})
	}

	superGroup := r.Group("/")
	superGroup.Use(middleware.ValidateToken(db), middleware.RequireRole(models.RoleSuperAdmin))
	{
		superGroup.GET("/superadmin/dashboard", func(c *gin.Context) {
			helpers.SuccessRes(c, http.StatusOK, "Super Admin Dashboard", nil)
		})
		superGroup.DELETE("/orders/delete/:id", orderControllers.DeleteOrder(orders))
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authControllers "github.com/hearthware/store-api/controllers/auth"
	cartControllers "github.com/hearthware/store-api/controllers/cart"
	orderControllers "github.com/hearthware/store-api/controllers/order"
	productControllers "github.com/hearthware/store-api/controllers/product"
	userControllers "github.com/hearthware/store-api/controllers/user"
	"github.com/hearthware/store-api/middleware"
	"github.com/hearthware/store-api/models"
	"github.com/hearthware/store-api/services"
)

// SetupUserRoutes registers everything behind a bearer token. Profile routes
// accept any role; the cart/order/catalog routes require the user role.
func SetupUserRoutes(
	r *gin.Engine,
	db *gorm.DB,
	users *services.UserService,
	carts *services.CartService,
	orders *services.OrderService,
	products *services.ProductService,
) {
	authed := r.Group("/")
	authed.Use(middleware.ValidateToken(db))
	{
		authed.POST("/logout", authControllers.Logout(users))
		authed.GET("/user-details", userControllers.UserDetails(users))
		authed.POST("/password-update", userControllers.PasswordUpdate(users))

		userOnly := authed.Group("/")
		userOnly.Use(middleware.RequireRole(models.RoleUser))
		{
			userOnly.GET("/cart", cartControllers.GetCart(carts))
			userOnly.POST("/cart/add", cartControllers.AddToCart(carts))
			userOnly.DELETE("/cart/remove/:id", cartControllers.RemoveFromCart(carts))
			userOnly.DELETE("/cart/clear", cartControllers.ClearCart(carts))

			userOnly.GET("/orders", orderControllers.ListOrders(orders))
			userOnly.POST("/orders/place", orderControllers.PlaceOrder(orders))
			userOnly.POST("/orders/cancel/:id", orderControllers.CancelOrder(orders))

			userOnly.GET("/products", productControllers.GetProducts(products))
		}
	}
}

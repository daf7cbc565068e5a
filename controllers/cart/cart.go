package cartControllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hearthware/store-api/helpers"
	"github.com/hearthware/store-api/middleware"
	"github.com/hearthware/store-api/services"
)

type AddToCartInput struct {
	Products []CartEntryInput `json:"products" binding:"required,min=1,dive"`
}

type CartEntryInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gte=1"`
}

// GET /cart
func GetCart(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, payable, err := carts.Cart(middleware.UserID(c))
		if err != nil {
			log.Printf("fetch cart failed: %v", err)
			helpers.ErrorRes(c, http.StatusInternalServerError, "Failed to fetch cart", nil)
			return
		}
		helpers.SuccessRes(c, http.StatusOK, "Products added to cart", gin.H{
			"cart_data":      cart,
			"payable_amount": payable,
		})
	}
}

// POST /cart/add
func AddToCart(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			helpers.ErrorRes(c, http.StatusUnprocessableEntity, "Validation errors", helpers.ValidationErrors(err))
			return
		}

		entries := make([]services.CartEntry, 0, len(input.Products))
		for _, p := range input.Products {
			entries = append(entries, services.CartEntry{ProductID: p.ProductID, Quantity: p.Quantity})
		}

		items, payable, err := carts.AddItems(middleware.UserID(c), entries)
		if err == services.ErrNotFound {
			helpers.ErrorRes(c, http.StatusUnprocessableEntity, "Validation errors", gin.H{
				"products": []string{"The selected product does not exist"},
			})
			return
		}
		if err != nil {
			log.Printf("add to cart failed: %v", err)
			helpers.ErrorRes(c, http.StatusInternalServerError, "Failed to update cart", nil)
			return
		}

		helpers.SuccessRes(c, http.StatusOK, "Products added to cart", gin.H{
			"cart_data":      items,
			"payable_amount": payable,
		})
	}
}

// DELETE /cart/remove/:id
func RemoveFromCart(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			helpers.ErrorRes(c, http.StatusUnprocessableEntity, "Invalid cart item id", nil)
			return
		}

		cart, payable, err := carts.RemoveItem(middleware.UserID(c), uint(itemID))
		if err == services.ErrNotFound {
			helpers.ErrorRes(c, http.StatusNotFound, "Cart item not found", nil)
			return
		}
		if err != nil {
			log.Printf("remove cart item failed: %v", err)
			helpers.ErrorRes(c, http.StatusInternalServerError, "Failed to remove item", nil)
			return
		}

		helpers.SuccessRes(c, http.StatusOK, "Item removed from cart", gin.H{
			"cart_data":      cart,
			"payable_amount": payable,
		})
	}
}

// DELETE /cart/clear
func ClearCart(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := carts.Clear(middleware.UserID(c)); err != nil {
			log.Printf("clear cart failed: %v", err)
			helpers.ErrorRes(c, http.StatusInternalServerError, "Failed to clear cart", nil)
			return
		}
		helpers.SuccessRes(c, http.StatusOK, "Cart cleared", nil)
	}
}

package orderControllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hearthware/store-api/helpers"
	"github.com/hearthware/store-api/middleware"
	"github.com/hearthware/store-api/services"
)

func orderIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		helpers.ErrorRes(c, http.StatusUnprocessableEntity, "Invalid order id", nil)
		return 0, false
	}
	return uint(id), true
}

// GET /orders
func ListOrders(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := orders.List(middleware.UserID(c))
		if err != nil {
			log.Printf("list orders failed: %v", err)
			helpers.ErrorRes(c, http.StatusInternalServerError, "Failed to fetch orders", nil)
			return
		}
		helpers.SuccessRes(c, http.StatusOK, "User Order Details", result)
	}
}

// POST /orders/place
func PlaceOrder(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := orders.Place(middleware.UserID(c))
		if err == services.ErrCartEmpty {
			helpers.ErrorRes(c, http.StatusForbidden, "Cart is empty", nil)
			return
		}
		if err != nil {
			log.Printf("place order failed: %v", err)
			helpers.ErrorRes(c, http.StatusInternalServerError, "Failed to place order", nil)
			return
		}
		helpers.SuccessRes(c, http.StatusOK, "Order placed successfully", order)
	}
}

// POST /orders/cancel/:id
func CancelOrder(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := orderIDParam(c)
		if !ok {
			return
		}
		err := orders.Cancel(middleware.UserID(c), orderID)
		if err == services.ErrNotFound {
			helpers.ErrorRes(c, http.StatusNotFound, "Order not found", nil)
			return
		}
		if err != nil {
			log.Printf("cancel order failed: %v", err)
			helpers.ErrorRes(c, http.StatusInternalServerError, "Failed to cancel order", nil)
			return
		}
		helpers.SuccessRes(c, http.StatusOK, "Order cancelled successfully", nil)
	}
}

// GET /admin/orders/all
func ListAllOrders(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := orders.ListAll()
		if err != nil {
			log.Printf("list all orders failed: %v", err)
			helpers.ErrorRes(c, http.StatusInternalServerError, "Failed to fetch orders", nil)
			return
		}
		helpers.SuccessRes(c, http.StatusOK, "All Order Details", result)
	}
}

// GET /admin/orders/:id
func GetOrder(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := orderIDParam(c)
		if !ok {
			return
		}
		order, err := orders.Get(orderID)
		if err == services.ErrNotFound {
			helpers.ErrorRes(c, http.StatusNotFound, "Order not found", nil)
			return
		}
		if err != nil {
			log.Printf("fetch order failed: %v", err)
			helpers.ErrorRes(c, http.StatusInternalServerError, "Failed to fetch order", nil)
			return
		}
		helpers.SuccessRes(c, http.StatusOK, "Order Details", order)
	}
}

// DELETE /orders/delete/:id
func DeleteOrder(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := orderIDParam(c)
		if !ok {
			return
		}
		err := orders.Delete(orderID)
		if err == services.ErrNotFound {
			helpers.ErrorRes(c, http.StatusNotFound, "Order not found", nil)
			return
		}
		if err != nil {
			log.Printf("delete order failed: %v", err)
			helpers.ErrorRes(c, http.StatusInternalServerError, "Failed to delete order", nil)
			return
		}
		helpers.SuccessRes(c, http.StatusOK, "Order deleted successfully", nil)
	}
}

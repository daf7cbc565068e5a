package productControllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hearthware/store-api/helpers"
	"github.com/hearthware/store-api/services"
)

// GET /products
func GetProducts(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}

		result, err := products.List(search, page)
		if err != nil {
			log.Printf("list products failed: %v", err)
			helpers.ErrorRes(c, http.StatusInternalServerError, "Failed to fetch products", nil)
			return
		}
		helpers.SuccessRes(c, http.StatusOK, "Products fetched successfully", result)
	}
}

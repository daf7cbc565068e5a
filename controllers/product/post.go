package productControllers

import (
	"encoding/hex"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hearthware/store-api/helpers"
	"github.com/hearthware/store-api/services"
)

// POST /admin/store-products
//
// Multipart form: name, detail, price, optional image file, optional id for an
// in-place update.
func StoreProduct(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		detail := c.PostForm("detail")
		priceStr := c.PostForm("price")

		fieldErrs := make(map[string][]string)
		if name == "" {
			fieldErrs["name"] = append(fieldErrs["name"], "The name field is required")
		}
		if detail == "" {
			fieldErrs["detail"] = append(fieldErrs["detail"], "The detail field is required")
		}
		price, err := decimal.NewFromString(priceStr)
		if priceStr == "" || err != nil || price.IsNegative() {
			fieldErrs["price"] = append(fieldErrs["price"], "The price must be a number of at least 0")
		}
		if len(fieldErrs) > 0 {
			helpers.ErrorRes(c, http.StatusUnprocessableEntity, "Validation errors", fieldErrs)
			return
		}

		var id uint
		if idStr := c.PostForm("id"); idStr != "" {
			id64, err := strconv.ParseUint(idStr, 10, 64)
			if err != nil {
				helpers.ErrorRes(c, http.StatusUnprocessableEntity, "Invalid product id", nil)
				return
			}
			id = uint(id64)
		}

		imagePath := ""
		if file, err := c.FormFile("image"); err == nil {
			imagePath, err = saveProductImage(c, file)
			if err != nil {
				log.Printf("save product image failed: %v", err)
				helpers.ErrorRes(c, http.StatusInternalServerError, "Failed to store image", nil)
				return
			}
		}

		product, created, err := products.Upsert(services.ProductInput{
			ID:     id,
			Name:   name,
			Detail: detail,
			Price:  price,
			Image:  imagePath,
		})
		if err != nil {
			log.Printf("store product failed: %v", err)
			helpers.ErrorRes(c, http.StatusInternalServerError, "Failed to store product", nil)
			return
		}

		message := "Product updated successfully"
		if created {
			message = "Product created successfully"
		}
		helpers.SuccessRes(c, http.StatusOK, message, product)
	}
}

// saveProductImage stores the upload under UPLOAD_DIR/products with a random
// name and returns the path kept on the product row.
func saveProductImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	id := uuid.New()
	imageName := hex.EncodeToString(id[:]) + filepath.Ext(file.Filename)

	dir := filepath.Join(uploadDir(), "products")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := c.SaveUploadedFile(file, filepath.Join(dir, imageName)); err != nil {
		return "", err
	}
	return "products/" + imageName, nil
}

func uploadDir() string {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "./uploads"
	}
	return dir
}

package productControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/hearthware/store-api/helpers"
	"github.com/hearthware/store-api/services"
)

// GET /admin/products/export
func ExportProducts(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := products.All()
		if err != nil {
			log.Printf("export products failed: %v", err)
			helpers.ErrorRes(c, http.StatusInternalServerError, "Failed to fetch products", nil)
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			helpers.ErrorRes(c, http.StatusInternalServerError, "Failed to create Excel sheet", nil)
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range []string{"ID", "Name", "Detail", "Price", "Image", "CreatedAt", "UpdatedAt"} {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range all {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Detail)
			row.AddCell().SetValue(p.Price.StringFixed(2))
			row.AddCell().SetValue(p.Image)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(p.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			helpers.ErrorRes(c, http.StatusInternalServerError, "Failed to write Excel file", nil)
			return
		}
	}
}

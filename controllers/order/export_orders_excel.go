package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/Tuka1911/dymokminiapp/order"
)

// GET /orders/export (operator)
//
// Spreadsheet of all archived orders for manual payment reconciliation.
func ExportOrdersToExcel(archive order.Archive) gin.HandlerFunc {
	return func(c *gin.Context) {
		recs, err := archive.List()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"Number", "OrderID", "CreatedAt", "Phone", "Address", "Zone",
			"Subtotal", "Discount", "DeliveryFee", "Total",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, rec := range recs {
			row := sheet.AddRow()

			row.AddCell().SetValue(rec.Number)
			row.AddCell().SetValue(rec.OrderID)
			row.AddCell().SetValue(rec.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(rec.Phone)
			row.AddCell().SetValue(rec.Address)
			row.AddCell().SetValue(rec.Zone)
			row.AddCell().SetValue(rec.Subtotal)
			row.AddCell().SetValue(rec.Discount)
			if rec.ManualQuote {
				// Never printed as a plain zero: the operator still owes
				// this customer a delivery quote.
				row.AddCell().SetValue("manual quote")
			} else {
				row.AddCell().SetValue(rec.DeliveryFee)
			}
			row.AddCell().SetValue(rec.Total)
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}

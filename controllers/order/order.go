package orderControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Tuka1911/dymokminiapp/models"
	"github.com/Tuka1911/dymokminiapp/order"
	"github.com/Tuka1911/dymokminiapp/qr"
)

// GET /orders (operator)
func ListOrders(archive order.Archive) gin.HandlerFunc {
	return func(c *gin.Context) {
		recs, err := archive.List()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, recs)
	}
}

// GET /orders/:number/qr?size=
//
// Renders the payment QR for a finalized order: card to pay to, grand
// total, order number as the transfer comment.
func OrderQR(archive order.Archive, payment models.PaymentInstructions, encoder qr.Encoder) gin.HandlerFunc {
	return func(c *gin.Context) {
		number := c.Param("number")
		rec, err := archive.FindByNumber(number)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		if rec == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		size := 256
		if s := c.Query("size"); s != "" {
			if n, err := strconv.Atoi(s); err == nil && n >= 64 && n <= 1024 {
				size = n
			}
		}

		payload := qr.PaymentPayload(payment.CardNumber, rec.Total, rec.Number)
		png, err := encoder.Encode(payload, size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render QR code"})
			return
		}
		c.Data(http.StatusOK, "image/png", png)
	}
}

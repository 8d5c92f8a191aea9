package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/Tuka1911/dymokminiapp/controllers/order"
	"github.com/Tuka1911/dymokminiapp/middleware"
)

func SetupOrderRoutes(r *gin.Engine, deps Deps) {
	orders := r.Group("/orders")
	{
		// Operator surfaces (API-key protected)
		orders.GET("/", middleware.ValidateAPIKey, orderControllers.ListOrders(deps.Archive))
		orders.GET("/export", middleware.ValidateAPIKey, orderControllers.ExportOrdersToExcel(deps.Archive))

		// websocket endpoint for the live order feed
		orders.GET("/ws", deps.Feed.Handler())

		// Payment QR for a finalized order (customer-facing)
		orders.GET("/qr/:number", orderControllers.OrderQR(deps.Archive, deps.Payment, deps.Encoder))
	}
}

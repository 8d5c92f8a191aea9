package routes

import (
	"github.com/gin-gonic/gin"

	selectionControllers "github.com/Tuka1911/dymokminiapp/controllers/selection"
)

func SetupSelectionRoutes(r *gin.Engine, deps Deps) {
	s := r.Group("/selection")
	{
		s.GET("/", selectionControllers.GetSelection(deps.Selection))
		s.POST("/", selectionControllers.PickProduct(deps.Catalog, deps.Selection))
		s.POST("/flavor", selectionControllers.PickFlavor(deps.Selection))
		s.POST("/add", selectionControllers.AddToCart(deps.Selection, deps.Cart))
		s.DELETE("/", selectionControllers.CancelSelection(deps.Selection))
	}
}

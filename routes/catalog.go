package routes

import (
	"github.com/gin-gonic/gin"

	catalogControllers "github.com/Tuka1911/dymokminiapp/controllers/catalog"
)

func SetupCatalogRoutes(r *gin.Engine, deps Deps) {
	products := r.Group("/products")
	{
		products.GET("/", catalogControllers.ListProducts(deps.Catalog))

		// websocket endpoint for debounced live search
		products.GET("/live", catalogControllers.LiveSearch(deps.Catalog))
	}
}

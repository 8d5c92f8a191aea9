package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/Tuka1911/dymokminiapp/controllers/cart"
)

func SetupCartRoutes(r *gin.Engine, deps Deps) {
	c := r.Group("/cart")
	{
		c.GET("/", cartControllers.GetCart(deps.Cart))
		c.POST("/items", cartControllers.AddItem(deps.Catalog, deps.Cart))
		c.PUT("/items", cartControllers.SetQuantity(deps.Cart))
		c.DELETE("/items", cartControllers.RemoveItem(deps.Cart))
		c.DELETE("/", cartControllers.ClearCart(deps.Cart))
	}
}

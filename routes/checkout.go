package routes

import (
	"github.com/gin-gonic/gin"

	checkoutControllers "github.com/Tuka1911/dymokminiapp/controllers/checkout"
)

func SetupCheckoutRoutes(r *gin.Engine, deps Deps) {
	co := r.Group("/checkout")
	{
		co.GET("/", checkoutControllers.GetCheckout(deps.Checkout, deps.Cart))
		co.PUT("/", checkoutControllers.UpdateForm(deps.Checkout))
		co.GET("/quote", checkoutControllers.Quote(deps.Rules, deps.Cart))
		co.POST("/submit", checkoutControllers.Submit(deps.Checkout, deps.Finalizer, deps.Cart))
		co.DELETE("/", checkoutControllers.Reset(deps.Checkout))
	}
}

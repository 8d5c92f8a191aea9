package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Tuka1911/dymokminiapp/cart"
	"github.com/Tuka1911/dymokminiapp/catalog"
	"github.com/Tuka1911/dymokminiapp/checkout"
	orderControllers "github.com/Tuka1911/dymokminiapp/controllers/order"
	"github.com/Tuka1911/dymokminiapp/models"
	"github.com/Tuka1911/dymokminiapp/order"
	"github.com/Tuka1911/dymokminiapp/qr"
	"github.com/Tuka1911/dymokminiapp/selection"
)

// Deps carries the wired collaborators handlers close over.
type Deps struct {
	Catalog   catalog.Provider
	Cart      *cart.Store
	Selection *selection.Flow
	Checkout  *checkout.Flow
	Rules     checkout.Rules
	Finalizer *order.Finalizer
	Archive   order.Archive
	Feed      *orderControllers.Feed
	Payment   models.PaymentInstructions
	Encoder   qr.Encoder
}

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	SetupCatalogRoutes(r, deps)

	SetupCartRoutes(r, deps)

	SetupSelectionRoutes(r, deps)

	SetupCheckoutRoutes(r, deps)

	SetupOrderRoutes(r, deps)
}

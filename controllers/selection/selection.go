package selectionControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tuka1911/dymokminiapp/cart"
	"github.com/Tuka1911/dymokminiapp/catalog"
	"github.com/Tuka1911/dymokminiapp/selection"
)

type PickInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

type FlavorInput struct {
	Flavor string `json:"flavor" binding:"required"`
}

func selectionView(flow *selection.Flow) gin.H {
	state, product, flavor := flow.Snapshot()
	view := gin.H{"state": state}
	if state == selection.StateChoosing {
		view["product"] = product
		view["flavor"] = flavor
	}
	return view
}

// GET /selection
func GetSelection(flow *selection.Flow) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, selectionView(flow))
	}
}

// POST /selection
func PickProduct(provider catalog.Provider, flow *selection.Flow) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PickInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, ok := catalog.FindProduct(provider, input.ProductID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		flow.Pick(product)
		c.JSON(http.StatusOK, selectionView(flow))
	}
}

// POST /selection/flavor
func PickFlavor(flow *selection.Flow) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input FlavorInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := flow.PickFlavor(input.Flavor); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, selectionView(flow))
	}
}

// POST /selection/add
func AddToCart(flow *selection.Flow, store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := flow.AddToCart(store); err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, selection.ErrNoSelection) {
				status = http.StatusConflict
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":     "Added to cart",
			"total_items": store.TotalItemCount(),
		})
	}
}

// DELETE /selection
func CancelSelection(flow *selection.Flow) gin.HandlerFunc {
	return func(c *gin.Context) {
		flow.Cancel()
		c.JSON(http.StatusOK, gin.H{"message": "Selection cancelled"})
	}
}

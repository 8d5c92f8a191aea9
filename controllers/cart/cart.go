package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tuka1911/dymokminiapp/cart"
	"github.com/Tuka1911/dymokminiapp/catalog"
	"github.com/Tuka1911/dymokminiapp/models"
)

type AddItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Flavor    string `json:"flavor" binding:"required"`
}

type SetQuantityInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Flavor    string `json:"flavor" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type RemoveItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Flavor    string `json:"flavor" binding:"required"`
}

type cartView struct {
	Lines      []models.CartLine `json:"lines"`
	TotalItems int               `json:"total_items"`
	TotalPrice int               `json:"total_price"`
}

func viewOf(store *cart.Store) cartView {
	return cartView{
		Lines:      store.Lines(),
		TotalItems: store.TotalItemCount(),
		TotalPrice: store.TotalPrice(),
	}
}

// GET /cart
func GetCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, viewOf(store))
	}
}

// POST /cart/items
func AddItem(provider catalog.Provider, store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, ok := catalog.FindProduct(provider, input.ProductID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}
		if !product.HasFlavor(input.Flavor) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Flavor not offered for this product"})
			return
		}

		store.AddItem(product, input.Flavor)
		c.JSON(http.StatusCreated, viewOf(store))
	}
}

// PUT /cart/items
func SetQuantity(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SetQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Quantity below 1 removes the line, same as DELETE.
		store.SetQuantity(input.ProductID, input.Flavor, input.Quantity)
		c.JSON(http.StatusOK, viewOf(store))
	}
}

// DELETE /cart/items
func RemoveItem(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RemoveItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		store.RemoveItem(input.ProductID, input.Flavor)
		c.JSON(http.StatusOK, viewOf(store))
	}
}

// DELETE /cart
func ClearCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

package catalogControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tuka1911/dymokminiapp/catalog"
)

// GET /products?search=&sort=
func ListProducts(provider catalog.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		opt := catalog.ParseSortOption(c.Query("sort"))
		products := catalog.Filter(provider.ListProducts(), c.Query("search"), opt)
		c.JSON(http.StatusOK, products)
	}
}

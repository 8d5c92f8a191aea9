package cartControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tuka1911/dymokminiapp/cart"
	"github.com/Tuka1911/dymokminiapp/catalog"
)

func setupRouter() (*gin.Engine, *cart.Store) {
	gin.SetMode(gin.TestMode)
	provider := catalog.NewStaticProvider(catalog.DefaultProducts)
	store := cart.NewStore(cart.NewMemoryStorage())

	r := gin.New()
	r.GET("/cart", GetCart(store))
	r.POST("/cart/items", AddItem(provider, store))
	r.PUT("/cart/items", SetQuantity(store))
	r.DELETE("/cart/items", RemoveItem(store))
	r.DELETE("/cart", ClearCart(store))
	return r, store
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddItemEndpoint(t *testing.T) {
	r, store := setupRouter()

	w := doJSON(t, r, http.MethodPost, "/cart/items", gin.H{
		"product_id": "waka-8000",
		"flavor":     "Арбуз",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var view cartView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 12000, view.TotalPrice)
	assert.Equal(t, 1, store.TotalItemCount())
}

func TestAddItemRejectsUnknownProductAndFlavor(t *testing.T) {
	r, store := setupRouter()

	w := doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"product_id": "nope", "flavor": "Арбуз"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"product_id": "waka-8000", "flavor": "Шоколад"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, 0, store.TotalItemCount())
}

func TestSetQuantityBelowOneRemovesLine(t *testing.T) {
	r, store := setupRouter()

	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"product_id": "waka-8000", "flavor": "Арбуз"})

	w := doJSON(t, r, http.MethodPut, "/cart/items", gin.H{
		"product_id": "waka-8000",
		"flavor":     "Арбуз",
		"quantity":   0,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, store.TotalItemCount())
}

func TestRemoveAndClearEndpoints(t *testing.T) {
	r, store := setupRouter()

	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"product_id": "waka-8000", "flavor": "Арбуз"})
	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"product_id": "waka-8000", "flavor": "Манго"})

	w := doJSON(t, r, http.MethodDelete, "/cart/items", gin.H{"product_id": "waka-8000", "flavor": "Арбуз"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, store.TotalItemCount())

	w = doJSON(t, r, http.MethodDelete, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, store.TotalItemCount())
}

func TestGetCartView(t *testing.T) {
	r, _ := setupRouter()

	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"product_id": "waka-10000", "flavor": "Малиновый арбуз"})
	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"product_id": "waka-10000", "flavor": "Малиновый арбуз"})

	w := doJSON(t, r, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var view cartView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 2, view.Lines[0].Quantity)
	assert.Equal(t, 2, view.TotalItems)
	assert.Equal(t, 30000, view.TotalPrice)
}

package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tuka1911/dymokminiapp/cart"
	"github.com/Tuka1911/dymokminiapp/models"
)

var waka = models.Product{
	ID:      "waka-8000",
	Name:    "Waka 8000",
	Price:   12000,
	Flavors: []string{"Арбуз", "Манго"},
}

func TestPickOpensFlow(t *testing.T) {
	f := NewFlow()

	state, _, _ := f.Snapshot()
	assert.Equal(t, StateClosed, state)

	f.Pick(waka)

	state, product, flavor := f.Snapshot()
	assert.Equal(t, StateChoosing, state)
	assert.Equal(t, "waka-8000", product.ID)
	assert.Empty(t, flavor)
}

func TestPickFlavorReplacesPriorChoice(t *testing.T) {
	f := NewFlow()
	f.Pick(waka)

	require.NoError(t, f.PickFlavor("Арбуз"))
	require.NoError(t, f.PickFlavor("Манго"))

	_, _, flavor := f.Snapshot()
	assert.Equal(t, "Манго", flavor)
}

func TestPickFlavorRejectsUnknownFlavor(t *testing.T) {
	f := NewFlow()
	f.Pick(waka)

	assert.ErrorIs(t, f.PickFlavor("Шоколад"), ErrUnknownFlavor)
}

func TestPickFlavorRequiresOpenFlow(t *testing.T) {
	f := NewFlow()
	assert.ErrorIs(t, f.PickFlavor("Арбуз"), ErrNoSelection)
}

func TestAddToCartGatedOnFlavorChoice(t *testing.T) {
	f := NewFlow()
	store := cart.NewStore(cart.NewMemoryStorage())

	f.Pick(waka)
	assert.ErrorIs(t, f.AddToCart(store), ErrNoFlavor)
	assert.Equal(t, 0, store.TotalItemCount())

	require.NoError(t, f.PickFlavor("Арбуз"))
	require.NoError(t, f.AddToCart(store))

	assert.Equal(t, 1, store.TotalItemCount())
	state, _, _ := f.Snapshot()
	assert.Equal(t, StateClosed, state, "successful add closes the flow")
}

func TestCancelDiscardsSelection(t *testing.T) {
	f := NewFlow()
	store := cart.NewStore(cart.NewMemoryStorage())

	f.Pick(waka)
	require.NoError(t, f.PickFlavor("Арбуз"))
	f.Cancel()

	state, _, _ := f.Snapshot()
	assert.Equal(t, StateClosed, state)
	assert.ErrorIs(t, f.AddToCart(store), ErrNoSelection)
	assert.Equal(t, 0, store.TotalItemCount())
}

func TestRepickClearsFlavor(t *testing.T) {
	f := NewFlow()
	f.Pick(waka)
	require.NoError(t, f.PickFlavor("Арбуз"))

	f.Pick(waka)

	_, _, flavor := f.Snapshot()
	assert.Empty(t, flavor)
}

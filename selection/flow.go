package selection

import (
	"errors"
	"sync"

	"github.com/Tuka1911/dymokminiapp/cart"
	"github.com/Tuka1911/dymokminiapp/models"
)

// State of the flavor-selection flow.
type State string

const (
	StateClosed   State = "closed"
	StateChoosing State = "choosing"
)

var (
	ErrNoSelection   = errors.New("no product selected")
	ErrNoFlavor      = errors.New("flavor not chosen")
	ErrUnknownFlavor = errors.New("flavor not offered for this product")
)

// Flow tracks which product and flavor are being chosen before an add to
// cart. It exists only while the selection modal is open: add-to-cart and
// cancel both return it to closed with no leftover choice.
type Flow struct {
	mu      sync.Mutex
	state   State
	product models.Product
	flavor  string
}

func NewFlow() *Flow {
	return &Flow{state: StateClosed}
}

// Pick opens the flow for a product, clearing any prior flavor choice.
func (f *Flow) Pick(p models.Product) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateChoosing
	f.product = p
	f.flavor = ""
}

// PickFlavor replaces the current flavor choice; it never accumulates.
func (f *Flow) PickFlavor(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateChoosing {
		return ErrNoSelection
	}
	if !f.product.HasFlavor(name) {
		return ErrUnknownFlavor
	}
	f.flavor = name
	return nil
}

// Cancel closes the flow and discards the selection.
func (f *Flow) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
}

// AddToCart pushes the chosen pair into the cart and closes the flow.
// Rejected while no flavor is chosen; that is the disabled add button,
// not a runtime fault.
func (f *Flow) AddToCart(store *cart.Store) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateChoosing {
		return ErrNoSelection
	}
	if f.flavor == "" {
		return ErrNoFlavor
	}
	store.AddItem(f.product, f.flavor)
	f.reset()
	return nil
}

// Snapshot returns the current state for display.
func (f *Flow) Snapshot() (State, models.Product, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state, f.product, f.flavor
}

func (f *Flow) reset() {
	f.state = StateClosed
	f.product = models.Product{}
	f.flavor = ""
}

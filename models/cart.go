package models

import "time"

// CartLine is one (product, flavor) entry in the cart. The pair
// (ID, SelectedFlavor) is unique across the cart; Quantity is always >= 1.
// Product fields are copied at the time of add so later catalog changes
// never reach existing carts. JSON names match the persisted snapshot
// format used by every storefront revision.
type CartLine struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Price          int      `json:"price"`
	Image          string   `json:"image"`
	Puffs          int      `json:"puffs"`
	Flavors        []string `json:"flavors,omitempty"`
	SelectedFlavor string   `json:"selectedFlavor"`
	Quantity       int      `json:"quantity"`
}

// NewCartLine snapshots a product into a line with quantity 1.
func NewCartLine(p Product, flavor string) CartLine {
	flavors := make([]string, len(p.Flavors))
	copy(flavors, p.Flavors)
	return CartLine{
		ID:             p.ID,
		Name:           p.Name,
		Price:          p.Price,
		Image:          p.Image,
		Puffs:          p.Puffs,
		Flavors:        flavors,
		SelectedFlavor: flavor,
		Quantity:       1,
	}
}

// Subtotal is price x quantity for this line.
func (l CartLine) Subtotal() int {
	return l.Price * l.Quantity
}

// CartSnapshot is the persisted cart row: one JSON payload per storage key.
type CartSnapshot struct {
	Key       string `gorm:"primaryKey;size:64"`
	Payload   string
	UpdatedAt time.Time
}

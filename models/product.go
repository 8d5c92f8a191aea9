package models

// Product is one catalog entry. The catalog is fixed at process start and
// products are never mutated; popularity and on-sale are only read by the
// catalog filter.
type Product struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Price      int      `json:"price"` // integer tenge, no minor units
	Image      string   `json:"image"`
	Puffs      int      `json:"puffs"`
	Flavors    []string `json:"flavors"`
	Popularity int      `json:"popularity,omitempty"`
	OnSale     bool     `json:"onSale,omitempty"`
}

// HasFlavor reports whether name is one of the product's offered flavors.
func (p Product) HasFlavor(name string) bool {
	for _, f := range p.Flavors {
		if f == name {
			return true
		}
	}
	return false
}

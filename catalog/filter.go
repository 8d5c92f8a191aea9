package catalog

import (
	"sort"
	"strings"

	"github.com/Tuka1911/dymokminiapp/models"
)

// SortOption controls ordering (and, for on_sale_only, an extra predicate)
// of the filtered catalog view.
type SortOption string

const (
	SortNone           SortOption = ""
	SortPriceAsc       SortOption = "price_asc"
	SortPriceDesc      SortOption = "price_desc"
	SortPopularityDesc SortOption = "popularity_desc"
	SortOnSaleOnly     SortOption = "on_sale_only"
)

// ParseSortOption maps a query-string value to a SortOption. Unknown
// values fall back to no sorting rather than erroring.
func ParseSortOption(s string) SortOption {
	switch SortOption(strings.ToLower(s)) {
	case SortPriceAsc, SortPriceDesc, SortPopularityDesc, SortOnSaleOnly:
		return SortOption(strings.ToLower(s))
	default:
		return SortNone
	}
}

// Filter returns a new view of products matching term (case-insensitive
// substring of the name or of any flavor), ordered per opt. The input
// slice is never modified.
func Filter(products []models.Product, term string, opt SortOption) []models.Product {
	needle := strings.ToLower(strings.TrimSpace(term))

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if opt == SortOnSaleOnly && !p.OnSale {
			continue
		}
		if needle != "" && !matches(p, needle) {
			continue
		}
		out = append(out, p)
	}

	switch opt {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortPopularityDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Popularity > out[j].Popularity })
	}
	return out
}

func matches(p models.Product, needle string) bool {
	if strings.Contains(strings.ToLower(p.Name), needle) {
		return true
	}
	for _, f := range p.Flavors {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

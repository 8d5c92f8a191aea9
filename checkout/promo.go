package checkout

// Rule computes the discount a promo code grants on a subtotal.
type Rule interface {
	Discount(subtotal int) int
}

// PercentOff takes a flat percentage off the subtotal.
type PercentOff struct {
	Percent int
}

func (p PercentOff) Discount(subtotal int) int {
	return subtotal * p.Percent / 100
}

// Rules maps promo codes to their discount policies. New codes are added
// here, not in checkout logic.
type Rules map[string]Rule

// DefaultRules carries the store's recognized codes.
func DefaultRules() Rules {
	return Rules{
		"DISCOUNT10": PercentOff{Percent: 10},
	}
}

// Discount resolves a code against the rule set. Unrecognized codes grant
// nothing; entering one is not an error and never blocks checkout.
func (r Rules) Discount(code string, subtotal int) int {
	rule, ok := r[code]
	if !ok {
		return 0
	}
	return rule.Discount(subtotal)
}

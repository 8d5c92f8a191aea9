package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscount10(t *testing.T) {
	rules := DefaultRules()
	assert.Equal(t, 4200, rules.Discount("DISCOUNT10", 42000))
}

func TestUnknownCodeGrantsNothing(t *testing.T) {
	rules := DefaultRules()
	assert.Equal(t, 0, rules.Discount("WRONG", 42000))
	assert.Equal(t, 0, rules.Discount("", 42000))
}

func TestRulesArePluggable(t *testing.T) {
	rules := Rules{
		"HALF": PercentOff{Percent: 50},
	}
	assert.Equal(t, 21000, rules.Discount("HALF", 42000))
	assert.Equal(t, 0, rules.Discount("DISCOUNT10", 42000), "default codes absent from a custom set")
}

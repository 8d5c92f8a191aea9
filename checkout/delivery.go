package checkout

import (
	"fmt"
	"strings"

	"github.com/Tuka1911/dymokminiapp/models"
)

// Zone is the delivery pricing tier.
type Zone string

const (
	ZoneNear    Zone = "near"    // within walking distance of the store
	ZoneCity    Zone = "city"    // anywhere else in town
	ZoneOutside Zone = "outside" // quoted manually by the operator
)

// ParseZone maps user input to a Zone.
func ParseZone(s string) (Zone, error) {
	switch Zone(strings.ToLower(strings.TrimSpace(s))) {
	case ZoneNear:
		return ZoneNear, nil
	case ZoneCity:
		return ZoneCity, nil
	case ZoneOutside:
		return ZoneOutside, nil
	default:
		return "", fmt.Errorf("unknown delivery zone %q", s)
	}
}

// FeeForZone prices delivery. Outside the city the fee is not zero, it is
// undetermined: the manual-quote flag travels with the totals so displays
// and receipts can say so.
func FeeForZone(z Zone) models.Fee {
	switch z {
	case ZoneNear:
		return models.Fee{Amount: 1500}
	case ZoneCity:
		return models.Fee{Amount: 2500}
	case ZoneOutside:
		return models.Fee{ManualQuote: true}
	default:
		return models.Fee{}
	}
}

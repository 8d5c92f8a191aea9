package order

import (
	"fmt"
	"math/rand"
	"time"
)

// Number formats a display order number: ORD-YYMMDD-RRRR with a random
// 4-digit suffix in [1000, 9999]. The suffix alone does not guarantee
// uniqueness; the order's uuid does. This number is what customers and
// operators read out loud.
func Number(now time.Time) string {
	return fmt.Sprintf("ORD-%s-%d", now.Format("060102"), 1000+rand.Intn(9000))
}

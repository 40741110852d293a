package booking

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateReference produces a human-readable booking reference of the form
// ANG-<year>-<4-digit zero-padded number>. The suffix is a uniform random
// draw over [0, 9999]; uniqueness is enforced only by the store's unique
// index, with the caller regenerating on collision. Safe for concurrent use.
func GenerateReference() string {
	year := time.Now().Year()
	return fmt.Sprintf("ANG-%d-%04d", year, rand.Intn(10000))
}

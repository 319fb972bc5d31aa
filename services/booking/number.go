package booking

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// NewBookingNumber mints a human-facing reference like GD-20241224-4F7A2C.
// The random suffix is hex to stay unambiguous when read over the phone.
func NewBookingNumber(now time.Time) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1<<24))
	if err != nil {
		return "", fmt.Errorf("failed to generate booking number: %w", err)
	}
	return fmt.Sprintf("GD-%s-%06X", now.Format("20060102"), n.Int64()), nil
}

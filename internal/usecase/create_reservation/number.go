package create_reservation

import (
	"crypto/rand"
	"fmt"

	"github.com/ymgn-dev/SLB-ReservationService/internal/domain"
)

const numberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateReservationNumber produces a short human-readable booking
// reference. Uniqueness is enforced by the ledger's unique index; on a
// collision the insert fails and the caller retries.
func generateReservationNumber() (string, error) {
	buf := make([]byte, domain.ReservationNumberLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	for i := range buf {
		buf[i] = numberAlphabet[int(buf[i])%len(numberAlphabet)]
	}
	return string(buf), nil
}

package utils

import (
	"strings"

	"github.com/google/uuid"
)

// Public identifiers are opaque prefixed strings: a prefix plus a slice of
// uppercased UUID hex. Collisions are as unlikely as UUID collisions.

func generateID(prefix string, hexLen int) string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return prefix + strings.ToUpper(hex[:hexLen])
}

// GenerateBookingID creates an ID like BK3F2A9C01
func GenerateBookingID() string {
	return generateID("BK", 8)
}

// GeneratePaymentID creates an ID like PAY8D41B2E7
func GeneratePaymentID() string {
	return generateID("PAY", 8)
}

// GenerateTransactionID creates an ID like TXN5C0FA2D4B19E
func GenerateTransactionID() string {
	return generateID("TXN", 12)
}

// GenerateRefundID creates an ID like REF7A3D90CE
func GenerateRefundID() string {
	return generateID("REF", 8)
}

package entity

import (
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusSuccess    PaymentStatus = "success"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

// Payment represents one payment attempt tied to exactly one booking.
// Amount always equals the owning booking's total price at creation.
type Payment struct {
	ID            string        `db:"id"`
	BookingID     string        `db:"booking_id"`
	Amount        float64       `db:"amount"`
	Currency      string        `db:"currency"`
	Status        PaymentStatus `db:"status"`
	Method        string        `db:"method"`
	TransactionID string        `db:"transaction_id"`
	CreatedAt     time.Time     `db:"created_at"`
}

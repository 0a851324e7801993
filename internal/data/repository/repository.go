package repository

import (
	"sports-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Booking BookingRepository
	Payment PaymentRepository
}

// NewRepository builds Postgres-backed repositories
func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Booking: NewBookingRepository(db, log),
		Payment: NewPaymentRepository(db, log),
	}
}

// NewMemoryRepository builds in-process repositories; records live for the
// process lifetime only
func NewMemoryRepository(log *zap.Logger) *Repository {
	return &Repository{
		Booking: NewMemoryBookingRepository(log),
		Payment: NewMemoryPaymentRepository(log),
	}
}

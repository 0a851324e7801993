package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"sports-booking/internal/data/entity"

	"go.uber.org/zap"
)

func errNotStored(kind, id string) error {
	return fmt.Errorf("%s %s not found", kind, id)
}

// In-process booking store. Records live for the process lifetime; the
// mutex keeps concurrent tool calls from corrupting the maps.

type memoryBookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]*entity.Booking
	log      *zap.Logger
}

func NewMemoryBookingRepository(log *zap.Logger) BookingRepository {
	return &memoryBookingRepository{
		bookings: make(map[string]*entity.Booking),
		log:      log.With(zap.String("repository", "booking-memory")),
	}
}

func (r *memoryBookingRepository) Create(_ context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *booking
	r.bookings[booking.ID] = &copied
	return nil
}

func (r *memoryBookingRepository) FindByID(_ context.Context, id string) (*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}

	copied := *booking
	return &copied, nil
}

func (r *memoryBookingRepository) FindByUserEmail(_ context.Context, email string) ([]*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var bookings []*entity.Booking
	for _, booking := range r.bookings {
		if booking.UserEmail == email {
			copied := *booking
			bookings = append(bookings, &copied)
		}
	}

	// Newest first, same ordering as the Postgres repository
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})

	return bookings, nil
}

func (r *memoryBookingRepository) UpdateStatus(_ context.Context, id string, status entity.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return errNotStored("booking", id)
	}

	booking.Status = status
	return nil
}

func (r *memoryBookingRepository) LinkPayment(_ context.Context, id string, paymentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return errNotStored("booking", id)
	}

	booking.PaymentID = paymentID
	return nil
}

func (r *memoryBookingRepository) LinkCalendarEvent(_ context.Context, id string, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return errNotStored("booking", id)
	}

	booking.CalendarEventID = eventID
	return nil
}

type memoryPaymentRepository struct {
	mu       sync.RWMutex
	payments map[string]*entity.Payment
	log      *zap.Logger
}

func NewMemoryPaymentRepository(log *zap.Logger) PaymentRepository {
	return &memoryPaymentRepository{
		payments: make(map[string]*entity.Payment),
		log:      log.With(zap.String("repository", "payment-memory")),
	}
}

func (r *memoryPaymentRepository) Create(_ context.Context, payment *entity.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *payment
	r.payments[payment.ID] = &copied
	return nil
}

func (r *memoryPaymentRepository) FindByID(_ context.Context, id string) (*entity.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payment, ok := r.payments[id]
	if !ok {
		return nil, nil
	}

	copied := *payment
	return &copied, nil
}

func (r *memoryPaymentRepository) FindByBookingID(_ context.Context, bookingID string) ([]*entity.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var payments []*entity.Payment
	for _, payment := range r.payments {
		if payment.BookingID == bookingID {
			copied := *payment
			payments = append(payments, &copied)
		}
	}

	sort.Slice(payments, func(i, j int) bool {
		return payments[i].CreatedAt.Before(payments[j].CreatedAt)
	})

	return payments, nil
}

func (r *memoryPaymentRepository) UpdateStatus(_ context.Context, id string, status entity.PaymentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	payment, ok := r.payments[id]
	if !ok {
		return errNotStored("payment", id)
	}

	payment.Status = status
	return nil
}

func (r *memoryPaymentRepository) UpdateResult(_ context.Context, id string, status entity.PaymentStatus, transactionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	payment, ok := r.payments[id]
	if !ok {
		return errNotStored("payment", id)
	}

	payment.Status = status
	payment.TransactionID = transactionID
	return nil
}

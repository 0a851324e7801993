package repository

import (
	"context"
	"fmt"

	"sports-booking/internal/data/entity"
	"sports-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BookingRepository is the booking half of the booking store. Lookups by an
// unknown identifier return (nil, nil), never an error.
type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id string) (*entity.Booking, error)
	FindByUserEmail(ctx context.Context, email string) ([]*entity.Booking, error)
	UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) error
	LinkPayment(ctx context.Context, id string, paymentID string) error
	LinkCalendarEvent(ctx context.Context, id string, eventID string) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, user_name, user_email, user_phone, activity_id, activity_name,
	venue_name, venue_address, sport_type, date, time_slot, duration_hours,
	price_per_hour, total_price, num_players, status, payment_id, calendar_event_id, created_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID,
		&b.UserName,
		&b.UserEmail,
		&b.UserPhone,
		&b.ActivityID,
		&b.ActivityName,
		&b.VenueName,
		&b.VenueAddress,
		&b.SportType,
		&b.Date,
		&b.TimeSlot,
		&b.DurationHours,
		&b.PricePerHour,
		&b.TotalPrice,
		&b.NumPlayers,
		&b.Status,
		&b.PaymentID,
		&b.CalendarEventID,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.UserName,
		booking.UserEmail,
		booking.UserPhone,
		booking.ActivityID,
		booking.ActivityName,
		booking.VenueName,
		booking.VenueAddress,
		booking.SportType,
		booking.Date,
		booking.TimeSlot,
		booking.DurationHours,
		booking.PricePerHour,
		booking.TotalPrice,
		booking.NumPlayers,
		booking.Status,
		booking.PaymentID,
		booking.CalendarEventID,
		booking.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID),
			zap.String("user_email", booking.UserEmail),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUserEmail(ctx context.Context, email string) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_email = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		r.log.Error("Failed to find bookings by user email",
			zap.Error(err),
			zap.String("user_email", email),
		)
		return nil, fmt.Errorf("find bookings by user email %s: %w", email, err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", id, string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id)
	}

	return nil
}

func (r *bookingRepository) LinkPayment(ctx context.Context, id string, paymentID string) error {
	query := `UPDATE bookings SET payment_id = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, paymentID)
	if err != nil {
		r.log.Error("Failed to link payment to booking",
			zap.Error(err),
			zap.String("booking_id", id),
			zap.String("payment_id", paymentID),
		)
		return fmt.Errorf("link payment %s to booking %s: %w", paymentID, id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id)
	}

	return nil
}

func (r *bookingRepository) LinkCalendarEvent(ctx context.Context, id string, eventID string) error {
	query := `UPDATE bookings SET calendar_event_id = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, eventID)
	if err != nil {
		r.log.Error("Failed to link calendar event to booking",
			zap.Error(err),
			zap.String("booking_id", id),
			zap.String("event_id", eventID),
		)
		return fmt.Errorf("link calendar event %s to booking %s: %w", eventID, id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id)
	}

	return nil
}

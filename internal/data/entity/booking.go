package entity

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Booking represents one reservation request for a sports activity slot.
// TotalPrice is fixed at creation (price per hour times duration) and is
// never recomputed afterwards.
type Booking struct {
	ID              string        `db:"id"`
	UserName        string        `db:"user_name"`
	UserEmail       string        `db:"user_email"`
	UserPhone       string        `db:"user_phone"`
	ActivityID      string        `db:"activity_id"`
	ActivityName    string        `db:"activity_name"`
	VenueName       string        `db:"venue_name"`
	VenueAddress    string        `db:"venue_address"`
	SportType       string        `db:"sport_type"`
	Date            string        `db:"date"`
	TimeSlot        string        `db:"time_slot"`
	DurationHours   float64       `db:"duration_hours"`
	PricePerHour    float64       `db:"price_per_hour"`
	TotalPrice      float64       `db:"total_price"`
	NumPlayers      int           `db:"num_players"`
	Status          BookingStatus `db:"status"`
	PaymentID       string        `db:"payment_id"`
	CalendarEventID string        `db:"calendar_event_id"`
	CreatedAt       time.Time     `db:"created_at"`
}

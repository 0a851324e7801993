package response

import (
	"time"

	"sports-booking/internal/data/entity"
)

type BookingResponse struct {
	ID              string               `json:"id"`
	UserName        string               `json:"user_name"`
	UserEmail       string               `json:"user_email"`
	UserPhone       string               `json:"user_phone"`
	ActivityID      string               `json:"activity_id"`
	ActivityName    string               `json:"activity_name"`
	VenueName       string               `json:"venue_name"`
	VenueAddress    string               `json:"venue_address"`
	SportType       string               `json:"sport_type"`
	Date            string               `json:"date"`
	TimeSlot        string               `json:"time_slot"`
	DurationHours   float64              `json:"duration_hours"`
	PricePerHour    float64              `json:"price_per_hour"`
	TotalPrice      float64              `json:"total_price"`
	NumPlayers      int                  `json:"num_players"`
	Status          entity.BookingStatus `json:"status"`
	PaymentID       string               `json:"payment_id,omitempty"`
	CalendarEventID string               `json:"calendar_event_id,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	NextStep        string               `json:"next_step,omitempty"`
}

type PaymentResponse struct {
	ID            string               `json:"id"`
	BookingID     string               `json:"booking_id"`
	Amount        float64              `json:"amount"`
	Currency      string               `json:"currency"`
	Status        entity.PaymentStatus `json:"status"`
	Method        string               `json:"method"`
	TransactionID string               `json:"transaction_id,omitempty"`
	BookingStatus entity.BookingStatus `json:"booking_status,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	NextStep      string               `json:"next_step,omitempty"`
}

type BookingDetailResponse struct {
	BookingResponse
	Payments []PaymentResponse `json:"payments,omitempty"`
}

type RefundResponse struct {
	RefundID      string  `json:"refund_id"`
	RefundAmount  float64 `json:"refund_amount"`
	RefundStatus  string  `json:"refund_status"`
	EstimatedDays string  `json:"estimated_days"`
}

type CancellationResponse struct {
	BookingID string               `json:"booking_id"`
	Status    entity.BookingStatus `json:"status"`
	Reason    string               `json:"reason,omitempty"`
	Refund    *RefundResponse      `json:"refund,omitempty"`
}

type CalendarEventResponse struct {
	EventID         string `json:"event_id"`
	BookingID       string `json:"booking_id"`
	Summary         string `json:"summary"`
	Location        string `json:"location,omitempty"`
	Start           string `json:"start_time"`
	End             string `json:"end_time"`
	Timezone        string `json:"timezone"`
	ReminderMinutes int    `json:"reminder_minutes"`
	Link            string `json:"calendar_link,omitempty"`
	ICalUID         string `json:"ical_uid,omitempty"`
}

// Helper converters

func BookingToResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		UserName:        b.UserName,
		UserEmail:       b.UserEmail,
		UserPhone:       b.UserPhone,
		ActivityID:      b.ActivityID,
		ActivityName:    b.ActivityName,
		VenueName:       b.VenueName,
		VenueAddress:    b.VenueAddress,
		SportType:       b.SportType,
		Date:            b.Date,
		TimeSlot:        b.TimeSlot,
		DurationHours:   b.DurationHours,
		PricePerHour:    b.PricePerHour,
		TotalPrice:      b.TotalPrice,
		NumPlayers:      b.NumPlayers,
		Status:          b.Status,
		PaymentID:       b.PaymentID,
		CalendarEventID: b.CalendarEventID,
		CreatedAt:       b.CreatedAt,
	}
}

func PaymentToResponse(p *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		BookingID:     p.BookingID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		Status:        p.Status,
		Method:        p.Method,
		TransactionID: p.TransactionID,
		CreatedAt:     p.CreatedAt,
	}
}

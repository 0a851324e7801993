package request

type CreateBookingRequest struct {
	UserName      string  `json:"user_name" validate:"required"`
	UserEmail     string  `json:"user_email" validate:"required,email"`
	UserPhone     string  `json:"user_phone" validate:"required"`
	ActivityID    string  `json:"activity_id" validate:"required"`
	ActivityName  string  `json:"activity_name" validate:"required"`
	VenueName     string  `json:"venue_name" validate:"required"`
	VenueAddress  string  `json:"venue_address" validate:"required"`
	SportType     string  `json:"sport_type" validate:"required"`
	Date          string  `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot      string  `json:"time_slot" validate:"required"`
	DurationHours float64 `json:"duration_hours" validate:"omitempty,gt=0"`
	PricePerHour  float64 `json:"price_per_hour" validate:"omitempty,gte=0"`
	NumPlayers    int     `json:"num_players" validate:"omitempty,min=1"`
}

type ProcessPaymentRequest struct {
	BookingID     string `json:"booking_id" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=upi card netbanking wallet"`
	UPIID         string `json:"upi_id,omitempty"`
	CardNumber    string `json:"card_number,omitempty"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

type SyncCalendarRequest struct {
	Timezone          string `json:"timezone"`
	ReminderMinutes   int    `json:"reminder_minutes" validate:"omitempty,min=0,max=1440"`
	SendNotifications *bool  `json:"send_notifications,omitempty"`
}

package wire

import (
	"sports-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCalendar(r chi.Router, calendarHandler *adaptor.CalendarHandler) {
	// POST /api/bookings/{id}/calendar - Put a confirmed booking on the calendar
	r.Post("/api/bookings/{id}/calendar", calendarHandler.SyncBooking)

	// GET /api/calendar/events - Upcoming events
	r.Get("/api/calendar/events", calendarHandler.ListEvents)
}

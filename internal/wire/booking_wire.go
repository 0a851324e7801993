package wire

import (
	"sports-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// POST /api/bookings - Create a pending booking
	r.Post("/api/bookings", bookingHandler.CreateBooking)

	// GET /api/bookings?email= - Booking history for a user
	r.Get("/api/bookings", bookingHandler.ListBookings)

	// GET /api/bookings/{id} - Booking details with payment history
	r.Get("/api/bookings/{id}", bookingHandler.GetBooking)

	// GET /api/bookings/{id}/payments - Payment attempts for a booking
	r.Get("/api/bookings/{id}/payments", bookingHandler.GetBookingPayments)

	// PUT /api/bookings/{id}/cancel - Cancel and refund if paid
	r.Put("/api/bookings/{id}/cancel", bookingHandler.CancelBooking)

	// POST /api/payments - Pay for a pending booking
	r.Post("/api/payments", bookingHandler.ProcessPayment)
}

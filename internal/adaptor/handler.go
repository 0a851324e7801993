package adaptor

import (
	"sports-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Geo      *GeoHandler
	Reddit   *RedditHandler
	Activity *ActivityHandler
	Booking  *BookingHandler
	Calendar *CalendarHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Geo:      NewGeoHandler(service.Geo, log),
		Reddit:   NewRedditHandler(service.Reddit, log),
		Activity: NewActivityHandler(service.Activity, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Calendar: NewCalendarHandler(service.Calendar, log),
	}
}

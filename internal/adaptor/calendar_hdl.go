package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"sports-booking/internal/dto/request"
	"sports-booking/internal/usecase"
	"sports-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CalendarHandler struct {
	service usecase.CalendarService
	log     *zap.Logger
}

func NewCalendarHandler(service usecase.CalendarService, log *zap.Logger) *CalendarHandler {
	return &CalendarHandler{
		service: service,
		log:     log.With(zap.String("handler", "calendar")),
	}
}

// SyncBooking handles POST /api/bookings/{id}/calendar
func (h *CalendarHandler) SyncBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	// Body is optional; configured defaults fill the gaps
	var req request.SyncCalendarRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	event, err := h.service.SyncBooking(r.Context(), bookingID, &req)
	if err != nil {
		h.handleServiceError(w, err, "sync booking to calendar")
		return
	}

	utils.ResponseCreated(w, "success", event)
}

// ListEvents handles GET /api/calendar/events?days_ahead=&max_results=
func (h *CalendarHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	daysAhead := utils.ParseInt(query.Get("days_ahead"), 7)
	maxResults := utils.ParseInt(query.Get("max_results"), 10)

	events, err := h.service.ListEvents(r.Context(), daysAhead, maxResults)
	if err != nil {
		h.handleServiceError(w, err, "list calendar events")
		return
	}

	utils.ResponseSuccess(w, "success", events)
}

// handleServiceError handles errors for calendar operations
func (h *CalendarHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, usecase.ErrBookingNotFound):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case errors.Is(err, usecase.ErrBookingNotConfirmed):
		h.log.Warn(operation+" failed - booking not confirmed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	case errors.Is(err, usecase.ErrAuthenticationRequired):
		h.log.Warn(operation+" failed - calendar not authenticated",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadGateway(w, errMsg)
	}
}

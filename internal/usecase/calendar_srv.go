package usecase

import (
	"context"
	"errors"
	"fmt"

	"sports-booking/internal/client/gcal"
	"sports-booking/internal/data/entity"
	"sports-booking/internal/data/repository"
	"sports-booking/internal/dto/request"
	"sports-booking/internal/dto/response"
	"sports-booking/pkg/utils"

	"go.uber.org/zap"
)

type CalendarService interface {
	SyncBooking(ctx context.Context, bookingID string, req *request.SyncCalendarRequest) (*response.CalendarEventResponse, error)
	ListEvents(ctx context.Context, daysAhead, maxResults int) ([]*gcal.EventRef, error)
}

type calendarService struct {
	repo     *repository.Repository
	calendar gcal.Client
	cfg      utils.CalendarConfig
	log      *zap.Logger
}

func NewCalendarService(repo *repository.Repository, client gcal.Client, cfg utils.CalendarConfig, log *zap.Logger) CalendarService {
	return &calendarService{
		repo:     repo,
		calendar: client,
		cfg:      cfg,
		log:      log.With(zap.String("service", "calendar")),
	}
}

func (s *calendarService) SyncBooking(ctx context.Context, bookingID string, req *request.SyncCalendarRequest) (*response.CalendarEventResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Sync calendar validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}

	// Only confirmed bookings go on the calendar; checked before any
	// external call is made
	if booking.Status != entity.BookingStatusConfirmed {
		return nil, fmt.Errorf("%w: booking %s is %s", ErrBookingNotConfirmed, bookingID, booking.Status)
	}

	start, end, err := parseTimeSlot(booking.TimeSlot, booking.Date)
	if err != nil {
		return nil, fmt.Errorf("parse time slot for booking %s: %w", bookingID, err)
	}

	timezone := req.Timezone
	if timezone == "" {
		timezone = s.cfg.Timezone
	}

	reminder := req.ReminderMinutes
	if reminder <= 0 {
		reminder = s.cfg.ReminderMinutes
	}

	notify := true
	if req.SendNotifications != nil {
		notify = *req.SendNotifications
	}

	input := &gcal.EventInput{
		Summary:  fmt.Sprintf("%s at %s", booking.SportType, booking.VenueName),
		Location: booking.VenueAddress,
		Description: fmt.Sprintf(
			"Sports booking details\n\n"+
				"Booking ID: %s\n"+
				"Activity: %s\n"+
				"Venue: %s\n"+
				"Address: %s\n"+
				"Players: %d\n"+
				"Duration: %g hour(s)\n"+
				"Amount paid: %.2f INR\n\n"+
				"Contact: %s\n"+
				"Email: %s",
			booking.ID,
			booking.ActivityName,
			booking.VenueName,
			booking.VenueAddress,
			booking.NumPlayers,
			booking.DurationHours,
			booking.TotalPrice,
			booking.UserPhone,
			booking.UserEmail,
		),
		Start:             start,
		End:               end,
		Timezone:          timezone,
		ReminderMinutes:   int64(reminder),
		AttendeeEmail:     booking.UserEmail,
		SendNotifications: notify,
	}

	event, err := s.calendar.CreateEvent(ctx, input)
	if err != nil {
		if errors.Is(err, gcal.ErrNotAuthenticated) {
			return nil, fmt.Errorf("%w: %v", ErrAuthenticationRequired, err)
		}
		s.log.Error("Failed to create calendar event",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("create calendar event for booking %s: %w", bookingID, err)
	}

	if err := s.repo.Booking.LinkCalendarEvent(ctx, bookingID, event.ID); err != nil {
		s.log.Error("Failed to link calendar event to booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("event_id", event.ID),
		)
	}

	s.log.Info("Booking synced to calendar",
		zap.String("booking_id", bookingID),
		zap.String("event_id", event.ID),
	)

	return &response.CalendarEventResponse{
		EventID:         event.ID,
		BookingID:       bookingID,
		Summary:         event.Summary,
		Location:        event.Location,
		Start:           event.Start,
		End:             event.End,
		Timezone:        timezone,
		ReminderMinutes: reminder,
		Link:            event.HTMLLink,
		ICalUID:         event.ICalUID,
	}, nil
}

func (s *calendarService) ListEvents(ctx context.Context, daysAhead, maxResults int) ([]*gcal.EventRef, error) {
	if daysAhead <= 0 {
		daysAhead = 7
	}
	if maxResults <= 0 {
		maxResults = 10
	}

	events, err := s.calendar.ListEvents(ctx, daysAhead, int64(maxResults))
	if err != nil {
		if errors.Is(err, gcal.ErrNotAuthenticated) {
			return nil, fmt.Errorf("%w: %v", ErrAuthenticationRequired, err)
		}
		s.log.Error("Failed to list calendar events", zap.Error(err))
		return nil, fmt.Errorf("list calendar events: %w", err)
	}

	return events, nil
}

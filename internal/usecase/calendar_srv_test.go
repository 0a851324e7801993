package usecase

import (
	"context"
	"testing"
	"time"

	"sports-booking/internal/client/gcal"
	"sports-booking/internal/data/entity"
	"sports-booking/internal/data/repository"
	"sports-booking/internal/dto/request"
	"sports-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeCalendar records event creations instead of calling Google
type fakeCalendar struct {
	created []*gcal.EventInput
	err     error
}

func (f *fakeCalendar) CreateEvent(_ context.Context, in *gcal.EventInput) (*gcal.EventRef, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, in)
	return &gcal.EventRef{
		ID:       "evt_123",
		Summary:  in.Summary,
		Location: in.Location,
		Start:    in.Start.Format(time.RFC3339),
		End:      in.End.Format(time.RFC3339),
		HTMLLink: "https://calendar.google.com/event?eid=evt_123",
	}, nil
}

func (f *fakeCalendar) ListEvents(_ context.Context, _ int, _ int64) ([]*gcal.EventRef, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []*gcal.EventRef{{ID: "evt_123", Summary: "Badminton at Smash Arena"}}, nil
}

func testCalendarConfig() utils.CalendarConfig {
	return utils.CalendarConfig{
		Timezone:        "Asia/Kolkata",
		ReminderMinutes: 30,
	}
}

func seedBooking(t *testing.T, repo *repository.Repository, status entity.BookingStatus) *entity.Booking {
	t.Helper()
	booking := &entity.Booking{
		ID:            utils.GenerateBookingID(),
		UserName:      "Rahul Sharma",
		UserEmail:     "rahul@example.com",
		UserPhone:     "+919876543210",
		ActivityName:  "Badminton Doubles",
		VenueName:     "Smash Arena",
		VenueAddress:  "12 MG Road, Bengaluru",
		SportType:     "Badminton",
		Date:          "2025-11-24",
		TimeSlot:      "6:00 PM - 7:00 PM",
		DurationHours: 1,
		TotalPrice:    500,
		NumPlayers:    4,
		Status:        status,
		CreatedAt:     time.Now(),
	}
	require.NoError(t, repo.Booking.Create(context.Background(), booking))
	return booking
}

func TestSyncBooking(t *testing.T) {
	repo := repository.NewMemoryRepository(zap.NewNop())
	cal := &fakeCalendar{}
	svc := NewCalendarService(repo, cal, testCalendarConfig(), zap.NewNop())
	ctx := context.Background()

	booking := seedBooking(t, repo, entity.BookingStatusConfirmed)

	event, err := svc.SyncBooking(ctx, booking.ID, &request.SyncCalendarRequest{})
	require.NoError(t, err)

	assert.Equal(t, "evt_123", event.EventID)
	assert.Equal(t, booking.ID, event.BookingID)
	assert.Equal(t, "Asia/Kolkata", event.Timezone)
	assert.Equal(t, 30, event.ReminderMinutes)

	require.Len(t, cal.created, 1)
	in := cal.created[0]
	assert.Equal(t, "Badminton at Smash Arena", in.Summary)
	assert.Equal(t, "12 MG Road, Bengaluru", in.Location)
	assert.Equal(t, "rahul@example.com", in.AttendeeEmail)
	assert.Equal(t, 18, in.Start.Hour())
	assert.Equal(t, 19, in.End.Hour())
	assert.True(t, in.SendNotifications)

	// Event id lands back on the booking
	stored, err := repo.Booking.FindByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, "evt_123", stored.CalendarEventID)
}

func TestSyncBookingOverrides(t *testing.T) {
	repo := repository.NewMemoryRepository(zap.NewNop())
	cal := &fakeCalendar{}
	svc := NewCalendarService(repo, cal, testCalendarConfig(), zap.NewNop())

	booking := seedBooking(t, repo, entity.BookingStatusConfirmed)

	noNotify := false
	event, err := svc.SyncBooking(context.Background(), booking.ID, &request.SyncCalendarRequest{
		Timezone:          "Europe/Berlin",
		ReminderMinutes:   60,
		SendNotifications: &noNotify,
	})
	require.NoError(t, err)

	assert.Equal(t, "Europe/Berlin", event.Timezone)
	assert.Equal(t, 60, event.ReminderMinutes)
	require.Len(t, cal.created, 1)
	assert.False(t, cal.created[0].SendNotifications)
}

func TestSyncBookingNotConfirmed(t *testing.T) {
	repo := repository.NewMemoryRepository(zap.NewNop())
	cal := &fakeCalendar{}
	svc := NewCalendarService(repo, cal, testCalendarConfig(), zap.NewNop())

	booking := seedBooking(t, repo, entity.BookingStatusPending)

	_, err := svc.SyncBooking(context.Background(), booking.ID, &request.SyncCalendarRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBookingNotConfirmed)
	// Rejected before any calendar call
	assert.Empty(t, cal.created)
}

func TestSyncBookingNotFound(t *testing.T) {
	repo := repository.NewMemoryRepository(zap.NewNop())
	svc := NewCalendarService(repo, &fakeCalendar{}, testCalendarConfig(), zap.NewNop())

	_, err := svc.SyncBooking(context.Background(), "BK_MISSING", &request.SyncCalendarRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestSyncBookingNotAuthenticated(t *testing.T) {
	repo := repository.NewMemoryRepository(zap.NewNop())
	cal := &fakeCalendar{err: gcal.ErrNotAuthenticated}
	svc := NewCalendarService(repo, cal, testCalendarConfig(), zap.NewNop())

	booking := seedBooking(t, repo, entity.BookingStatusConfirmed)

	_, err := svc.SyncBooking(context.Background(), booking.ID, &request.SyncCalendarRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthenticationRequired)
}

func TestListEvents(t *testing.T) {
	repo := repository.NewMemoryRepository(zap.NewNop())
	svc := NewCalendarService(repo, &fakeCalendar{}, testCalendarConfig(), zap.NewNop())

	events, err := svc.ListEvents(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "evt_123", events[0].ID)
}

func TestListEventsNotAuthenticated(t *testing.T) {
	repo := repository.NewMemoryRepository(zap.NewNop())
	svc := NewCalendarService(repo, &fakeCalendar{err: gcal.ErrNotAuthenticated}, testCalendarConfig(), zap.NewNop())

	_, err := svc.ListEvents(context.Background(), 7, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthenticationRequired)
}

// Package gcal wraps the Google Calendar API behind a small event-creation
// interface. The OAuth credential and token files live outside the process
// and persist across runs; token refresh is the oauth2 library's job.
package gcal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"sports-booking/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// ErrNotAuthenticated means no usable credential is cached; the operator
// has to run the out-of-band authorization flow first.
var ErrNotAuthenticated = errors.New("google calendar not authenticated")

// EventInput carries everything needed to create one calendar event
type EventInput struct {
	Summary           string
	Location          string
	Description       string
	Start             time.Time
	End               time.Time
	Timezone          string
	ReminderMinutes   int64
	AttendeeEmail     string
	SendNotifications bool
}

// EventRef is the projected shape of one calendar event
type EventRef struct {
	ID          string `json:"id"`
	Summary     string `json:"summary"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	Start       string `json:"start"`
	End         string `json:"end"`
	HTMLLink    string `json:"link,omitempty"`
	ICalUID     string `json:"ical_uid,omitempty"`
}

// Client is the calendar capability the booking workflow depends on
type Client interface {
	CreateEvent(ctx context.Context, in *EventInput) (*EventRef, error)
	ListEvents(ctx context.Context, daysAhead int, maxResults int64) ([]*EventRef, error)
}

type googleClient struct {
	cfg utils.CalendarConfig
	log *zap.Logger
}

func NewClient(cfg utils.CalendarConfig, log *zap.Logger) Client {
	return &googleClient{
		cfg: cfg,
		log: log.With(zap.String("client", "gcal")),
	}
}

// service authenticates from the cached credential and token files and
// persists the token back if the refresh produced a new one
func (c *googleClient) service(ctx context.Context) (*calendar.Service, error) {
	secret, err := os.ReadFile(c.cfg.CredentialsFile)
	if err != nil {
		c.log.Warn("Calendar credentials file missing",
			zap.String("path", c.cfg.CredentialsFile),
		)
		return nil, fmt.Errorf("%w: read credentials %s: %v", ErrNotAuthenticated, c.cfg.CredentialsFile, err)
	}

	conf, err := google.ConfigFromJSON(secret, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("parse calendar credentials: %w", err)
	}

	raw, err := os.ReadFile(c.cfg.TokenFile)
	if err != nil {
		c.log.Warn("Calendar token file missing; authorization flow required",
			zap.String("path", c.cfg.TokenFile),
		)
		return nil, fmt.Errorf("%w: read token %s: %v", ErrNotAuthenticated, c.cfg.TokenFile, err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(raw, &tok); err != nil {
		return nil, fmt.Errorf("%w: parse token %s: %v", ErrNotAuthenticated, c.cfg.TokenFile, err)
	}

	source := conf.TokenSource(ctx, &tok)
	fresh, err := source.Token()
	if err != nil {
		c.log.Warn("Calendar token refresh failed", zap.Error(err))
		return nil, fmt.Errorf("%w: refresh token: %v", ErrNotAuthenticated, err)
	}

	if fresh.AccessToken != tok.AccessToken {
		c.saveToken(fresh)
	}

	srv, err := calendar.NewService(ctx, option.WithTokenSource(source))
	if err != nil {
		return nil, fmt.Errorf("build calendar service: %w", err)
	}

	return srv, nil
}

func (c *googleClient) saveToken(tok *oauth2.Token) {
	data, err := json.Marshal(tok)
	if err != nil {
		c.log.Error("Failed to marshal refreshed token", zap.Error(err))
		return
	}
	if err := os.WriteFile(c.cfg.TokenFile, data, 0600); err != nil {
		c.log.Error("Failed to persist refreshed token",
			zap.Error(err),
			zap.String("path", c.cfg.TokenFile),
		)
	}
}

func (c *googleClient) CreateEvent(ctx context.Context, in *EventInput) (*EventRef, error) {
	srv, err := c.service(ctx)
	if err != nil {
		return nil, err
	}

	event := &calendar.Event{
		Summary:     in.Summary,
		Location:    in.Location,
		Description: in.Description,
		Start: &calendar.EventDateTime{
			DateTime: in.Start.Format("2006-01-02T15:04:05"),
			TimeZone: in.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: in.End.Format("2006-01-02T15:04:05"),
			TimeZone: in.Timezone,
		},
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "email", Minutes: in.ReminderMinutes},
				{Method: "popup", Minutes: in.ReminderMinutes},
			},
			ForceSendFields: []string{"UseDefault"},
		},
		ColorId: "4",
	}

	if in.AttendeeEmail != "" {
		event.Attendees = []*calendar.EventAttendee{
			{Email: in.AttendeeEmail},
		}
	}

	call := srv.Events.Insert("primary", event).Context(ctx)
	if in.SendNotifications {
		call = call.SendUpdates("all")
	}

	created, err := call.Do()
	if err != nil {
		c.log.Error("Calendar event insert failed",
			zap.Error(err),
			zap.String("summary", in.Summary),
		)
		return nil, fmt.Errorf("insert calendar event: %w", err)
	}

	c.log.Info("Calendar event created",
		zap.String("event_id", created.Id),
		zap.String("summary", created.Summary),
	)

	return eventToRef(created), nil
}

func (c *googleClient) ListEvents(ctx context.Context, daysAhead int, maxResults int64) ([]*EventRef, error) {
	srv, err := c.service(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	result, err := srv.Events.List("primary").
		TimeMin(now.Format(time.RFC3339)).
		TimeMax(now.AddDate(0, 0, daysAhead).Format(time.RFC3339)).
		MaxResults(maxResults).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		c.log.Error("Calendar event list failed", zap.Error(err))
		return nil, fmt.Errorf("list calendar events: %w", err)
	}

	events := make([]*EventRef, 0, len(result.Items))
	for _, item := range result.Items {
		events = append(events, eventToRef(item))
	}

	return events, nil
}

func eventToRef(ev *calendar.Event) *EventRef {
	ref := &EventRef{
		ID:          ev.Id,
		Summary:     ev.Summary,
		Location:    ev.Location,
		Description: truncate(ev.Description, 100),
		HTMLLink:    ev.HtmlLink,
		ICalUID:     ev.ICalUID,
	}
	if ev.Start != nil {
		ref.Start = ev.Start.DateTime
		if ref.Start == "" {
			ref.Start = ev.Start.Date
		}
	}
	if ev.End != nil {
		ref.End = ev.End.DateTime
		if ref.End == "" {
			ref.End = ev.End.Date
		}
	}
	return ref
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

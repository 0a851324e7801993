package usecase

import (
	"fmt"
	"strings"
	"time"
)

// parseTimeSlot turns a free-text slot like "6:00 PM - 7:00 PM" plus a
// booking date into a start/end pair. Each side may be 12-hour or 24-hour;
// a missing end defaults the window to one hour. A slot that cannot be
// parsed at all falls back to midnight-to-one-hour-later on the booking
// date instead of failing the operation. Only an unparseable date errors.
func parseTimeSlot(slot, date string) (time.Time, time.Time, error) {
	day, err := parseDate(date)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse booking date %q: %w", date, err)
	}

	parts := strings.SplitN(slot, "-", 2)
	startStr := strings.TrimSpace(parts[0])

	start, err := parseClock(startStr)
	if err != nil {
		// Unparseable slot: midnight to one hour later
		return day, day.Add(time.Hour), nil
	}

	startAt := time.Date(day.Year(), day.Month(), day.Day(), start.Hour(), start.Minute(), 0, 0, day.Location())

	if len(parts) < 2 || strings.TrimSpace(parts[1]) == "" {
		return startAt, startAt.Add(time.Hour), nil
	}

	end, err := parseClock(strings.TrimSpace(parts[1]))
	if err != nil {
		return day, day.Add(time.Hour), nil
	}

	endAt := time.Date(day.Year(), day.Month(), day.Day(), end.Hour(), end.Minute(), 0, 0, day.Location())
	return startAt, endAt, nil
}

func parseDate(date string) (time.Time, error) {
	if strings.Contains(date, "T") {
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
			if t, err := time.Parse(layout, date); err == nil {
				return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
			}
		}
		return time.Time{}, fmt.Errorf("unrecognized timestamp %q", date)
	}
	return time.Parse("2006-01-02", date)
}

func parseClock(s string) (time.Time, error) {
	upper := strings.ToUpper(s)

	var layouts []string
	if strings.Contains(upper, "AM") || strings.Contains(upper, "PM") {
		layouts = []string{"3:04 PM", "3 PM", "3:04PM", "3PM"}
	} else {
		layouts = []string{"15:04"}
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, upper); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized clock time %q", s)
}

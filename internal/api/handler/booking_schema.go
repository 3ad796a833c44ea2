package handler

import (
	"fmt"
	"time"
)

type createBookingRequest struct {
	CustomerName    string `json:"customerName"    validate:"required"`
	Email           string `json:"email"           validate:"required,email"`
	Service         string `json:"service"         validate:"required"`
	AppointmentDate string `json:"appointmentDate" validate:"required"`
}

type createBookingResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

const dateOnlyLayout = "2006-01-02"

// parseDate accepts a calendar date ("2024-01-31") or a full RFC 3339
// timestamp. It reports whether the input was date-only so callers can
// widen an end bound to cover the whole day.
func parseDate(raw string) (time.Time, bool, error) {
	if t, err := time.Parse(dateOnlyLayout, raw); err == nil {
		return t.UTC(), true, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), false, nil
	}
	return time.Time{}, false, fmt.Errorf("invalid date %q, expected %s or RFC3339", raw, dateOnlyLayout)
}

// parseEndDate widens a date-only bound to the end of that day so the
// documented inclusive range holds at day granularity.
func parseEndDate(raw string) (time.Time, error) {
	t, dateOnly, err := parseDate(raw)
	if err != nil {
		return time.Time{}, err
	}
	if dateOnly {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return t, nil
}

package domain

import (
	"errors"
	"time"
)

// BookingStatus is the lifecycle state of a booking. The set is open:
// the store accepts whatever status string it is given, these are just
// the values the salon actually uses.
type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusConfirmed BookingStatus = "Confirmed"
	StatusCompleted BookingStatus = "Completed"
)

var ErrBookingNotFound = errors.New("booking not found")
var ErrMissingBookingFields = errors.New("missing booking fields")
var ErrInvalidDateRange = errors.New("invalid date range")

// Booking is an appointment a customer made for a salon service.
type Booking struct {
	ID              string        `json:"id"`
	CustomerName    string        `json:"customerName"`
	Email           string        `json:"email"`
	Service         string        `json:"service"`
	AppointmentDate time.Time     `json:"appointmentDate"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
}

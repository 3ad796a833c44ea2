package ports

import (
	"context"
	"time"

	"github.com/artonus/pos-api/internal/core/domain"
)

// CreateBookingInput carries all data needed to record a new booking.
type CreateBookingInput struct {
	CustomerName    string
	Email           string
	Service         string
	AppointmentDate time.Time
}

// BookingService defines use-case operations for bookings.
type BookingService interface {
	// CreateBooking persists the booking and fires a confirmation email.
	// The email send is best-effort: its failure never surfaces here.
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	ListBookings(ctx context.Context, filter ListBookingsFilter) ([]*domain.Booking, error)
}

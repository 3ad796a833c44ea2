package ports

import (
	"context"
	"time"

	"github.com/artonus/pos-api/internal/core/domain"
)

// ListBookingsFilter carries the optional query parameters for listing
// bookings. Zero-value fields impose no constraint: an empty filter
// matches every booking.
type ListBookingsFilter struct {
	CustomerName string     // case-insensitive substring match
	Status       string     // exact match
	From         *time.Time // appointment_date >= From
	To           *time.Time // appointment_date <= To
}

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	// Find returns all bookings matching filter in store order.
	Find(ctx context.Context, filter ListBookingsFilter) ([]*domain.Booking, error)
}

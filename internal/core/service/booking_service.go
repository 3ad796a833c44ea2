package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/artonus/pos-api/internal/api/metrics"
	"github.com/artonus/pos-api/internal/core/domain"
	"github.com/artonus/pos-api/internal/core/ports"
)

const notifyTimeout = 15 * time.Second

// BookingService implements booking creation and filtered listing.
type BookingService struct {
	repo   ports.BookingRepository
	mailer ports.Mailer
	logger zerolog.Logger
}

func NewBookingService(repo ports.BookingRepository, mailer ports.Mailer, logger zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, mailer: mailer, logger: logger}
}

// CreateBooking persists a booking with the default Pending status and
// fires the confirmation email in the background. The email is at-most-once:
// a failed send is logged and counted but the booking stays committed.
func (s *BookingService) CreateBooking(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	if input.CustomerName == "" || input.Email == "" || input.Service == "" || input.AppointmentDate.IsZero() {
		return nil, domain.ErrMissingBookingFields
	}

	booking := &domain.Booking{
		CustomerName:    input.CustomerName,
		Email:           input.Email,
		Service:         input.Service,
		AppointmentDate: input.AppointmentDate.UTC(),
		Status:          domain.StatusPending,
		CreatedAt:       time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, booking)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create booking")
		return nil, err
	}

	s.logger.Info().
		Str("booking_id", created.ID).
		Str("service", created.Service).
		Msg("booking created")
	metrics.BookingsCreatedTotal.WithLabelValues(created.Service).Inc()

	// Fire-and-forget: the HTTP response must not wait on the mail transport,
	// and a send failure must not roll back the committed write.
	go s.sendConfirmation(created)

	return created, nil
}

func (s *BookingService) ListBookings(ctx context.Context, filter ports.ListBookingsFilter) ([]*domain.Booking, error) {
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, domain.ErrInvalidDateRange
	}
	return s.repo.Find(ctx, filter)
}

func (s *BookingService) sendConfirmation(b *domain.Booking) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	when := b.AppointmentDate.Format("Monday, 2 January 2006 at 15:04")
	subject := "Booking Confirmation"
	text := fmt.Sprintf(
		"Hello %s,\n\nThank you for booking a %s on %s!\nWe look forward to seeing you.\n\n- Artonus Nailsroom",
		b.CustomerName, b.Service, when,
	)
	html := fmt.Sprintf(
		"<p>Hello %s,</p><p>Thank you for booking a <b>%s</b> on %s!<br>We look forward to seeing you.</p><p>- Artonus Nailsroom</p>",
		b.CustomerName, b.Service, when,
	)

	if err := s.mailer.Send(ctx, b.Email, b.CustomerName, subject, text, html); err != nil {
		s.logger.Warn().Err(err).
			Str("booking_id", b.ID).
			Str("email", b.Email).
			Msg("confirmation email failed")
		metrics.NotificationsTotal.WithLabelValues("error").Inc()
		return
	}

	s.logger.Info().Str("booking_id", b.ID).Msg("confirmation email sent")
	metrics.NotificationsTotal.WithLabelValues("sent").Inc()
}

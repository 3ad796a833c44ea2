package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/artonus/pos-api/internal/core/domain"
	"github.com/artonus/pos-api/internal/core/ports"
)

type stubBookingRepo struct {
	created    []*domain.Booking
	lastFilter ports.ListBookingsFilter
	findResult []*domain.Booking
	createErr  error
}

func (r *stubBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	created := *b
	created.ID = "booking_1"
	r.created = append(r.created, &created)
	return &created, nil
}

func (r *stubBookingRepo) Find(_ context.Context, filter ports.ListBookingsFilter) ([]*domain.Booking, error) {
	r.lastFilter = filter
	return r.findResult, nil
}

// stubMailer signals each send on a channel so tests can wait for the
// fire-and-forget goroutine.
type stubMailer struct {
	sent chan string
	err  error
}

func newStubMailer(err error) *stubMailer {
	return &stubMailer{sent: make(chan string, 1), err: err}
}

func (m *stubMailer) Send(_ context.Context, toEmail, _, _, _, _ string) error {
	m.sent <- toEmail
	return m.err
}

func validInput() ports.CreateBookingInput {
	return ports.CreateBookingInput{
		CustomerName:    "Anna",
		Email:           "anna@example.com",
		Service:         "manicure",
		AppointmentDate: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestBookingService_CreateBooking_Success(t *testing.T) {
	repo := &stubBookingRepo{}
	mail := newStubMailer(nil)
	svc := NewBookingService(repo, mail, zerolog.Nop())

	booking, err := svc.CreateBooking(context.Background(), validInput())
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}
	if booking.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if booking.Status != domain.StatusPending {
		t.Fatalf("expected Pending status, got %s", booking.Status)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one stored booking, got %d", len(repo.created))
	}

	select {
	case to := <-mail.sent:
		if to != "anna@example.com" {
			t.Fatalf("confirmation sent to %s", to)
		}
	case <-time.After(time.Second):
		t.Fatalf("confirmation email never attempted")
	}
}

func TestBookingService_CreateBooking_MissingFields(t *testing.T) {
	repo := &stubBookingRepo{}
	svc := NewBookingService(repo, newStubMailer(nil), zerolog.Nop())

	cases := []ports.CreateBookingInput{
		{Email: "a@b.c", Service: "manicure", AppointmentDate: time.Now()},
		{CustomerName: "Anna", Service: "manicure", AppointmentDate: time.Now()},
		{CustomerName: "Anna", Email: "a@b.c", AppointmentDate: time.Now()},
		{CustomerName: "Anna", Email: "a@b.c", Service: "manicure"},
	}
	for i, input := range cases {
		if _, err := svc.CreateBooking(context.Background(), input); err != domain.ErrMissingBookingFields {
			t.Fatalf("case %d: expected ErrMissingBookingFields, got %v", i, err)
		}
	}
	if len(repo.created) != 0 {
		t.Fatalf("no booking should be stored on validation failure")
	}
}

func TestBookingService_CreateBooking_MailFailureDoesNotFailBooking(t *testing.T) {
	repo := &stubBookingRepo{}
	mail := newStubMailer(errors.New("smtp down"))
	svc := NewBookingService(repo, mail, zerolog.Nop())

	booking, err := svc.CreateBooking(context.Background(), validInput())
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}
	if booking == nil || len(repo.created) != 1 {
		t.Fatalf("booking write must survive a mail failure")
	}

	select {
	case <-mail.sent:
	case <-time.After(time.Second):
		t.Fatalf("confirmation email never attempted")
	}
}

func TestBookingService_CreateBooking_RepoError(t *testing.T) {
	repo := &stubBookingRepo{createErr: errors.New("mongo down")}
	mail := newStubMailer(nil)
	svc := NewBookingService(repo, mail, zerolog.Nop())

	if _, err := svc.CreateBooking(context.Background(), validInput()); err == nil {
		t.Fatalf("expected error")
	}

	select {
	case <-mail.sent:
		t.Fatalf("no email should be sent when the write fails")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBookingService_ListBookings_ForwardsFilter(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	repo := &stubBookingRepo{findResult: []*domain.Booking{{ID: "b1"}}}
	svc := NewBookingService(repo, newStubMailer(nil), zerolog.Nop())

	filter := ports.ListBookingsFilter{CustomerName: "ann", Status: "Confirmed", From: &from, To: &to}
	bookings, err := svc.ListBookings(context.Background(), filter)
	if err != nil {
		t.Fatalf("ListBookings returned error: %v", err)
	}
	if len(bookings) != 1 || bookings[0].ID != "b1" {
		t.Fatalf("unexpected result: %+v", bookings)
	}
	if repo.lastFilter.CustomerName != "ann" || repo.lastFilter.Status != "Confirmed" {
		t.Fatalf("filter not forwarded: %+v", repo.lastFilter)
	}
	if repo.lastFilter.From == nil || !repo.lastFilter.From.Equal(from) {
		t.Fatalf("from bound not forwarded")
	}
}

func TestBookingService_ListBookings_InvertedRange(t *testing.T) {
	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := NewBookingService(&stubBookingRepo{}, newStubMailer(nil), zerolog.Nop())

	if _, err := svc.ListBookings(context.Background(), ports.ListBookingsFilter{From: &from, To: &to}); err != domain.ErrInvalidDateRange {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}

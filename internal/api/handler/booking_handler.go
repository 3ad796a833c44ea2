package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/artonus/pos-api/internal/core/ports"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Create handles POST /create-booking.
//
// @Summary      Create a new booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  createBookingResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /create-booking [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	when, _, err := parseDate(req.AppointmentDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.service.CreateBooking(c.Request().Context(), ports.CreateBookingInput{
		CustomerName:    req.CustomerName,
		Email:           req.Email,
		Service:         req.Service,
		AppointmentDate: when,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createBookingResponse{
		Message: "booking created successfully",
		ID:      booking.ID,
	})
}

// List handles GET /bookings. Admin only; all query parameters optional.
//
// @Summary      List bookings with optional filters
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        customerName  query     string  false  "Case-insensitive substring match"
// @Param        status        query     string  false  "Exact status match"
// @Param        startDate     query     string  false  "appointmentDate >= startDate (2006-01-02 or RFC3339)"
// @Param        endDate       query     string  false  "appointmentDate <= endDate (2006-01-02 or RFC3339)"
// @Success      200  {array}   domain.Booking
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	filter := ports.ListBookingsFilter{
		CustomerName: c.QueryParam("customerName"),
		Status:       c.QueryParam("status"),
	}

	if raw := c.QueryParam("startDate"); raw != "" {
		from, _, err := parseDate(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		filter.From = &from
	}
	if raw := c.QueryParam("endDate"); raw != "" {
		to, err := parseEndDate(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		filter.To = &to
	}

	bookings, err := h.service.ListBookings(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, bookings)
}

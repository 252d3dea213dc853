package handler

import (
	"errors"
	"net/http"

	"github.com/kev-n-dev/sky-way/internal/dto"
	"github.com/kev-n-dev/sky-way/internal/middleware"
	"github.com/kev-n-dev/sky-way/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	bookings service.BookingService
}

func NewBookingHandler(bookings service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo, requireAuth echo.MiddlewareFunc) {
	api := e.Group("/api", requireAuth)
	api.POST("/booking", h.CreateBooking)
	api.GET("/booking", h.ListBookings)
	api.POST("/booking/confirmation", h.PayBooking)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	passengers := make([]service.PassengerInput, len(req.Passengers))
	for i, p := range req.Passengers {
		passengers[i] = service.PassengerInput{
			Email:     p.Email,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Gender:    p.Gender,
			DOB:       p.DOB,
		}
	}

	booking, err := h.bookings.CreateBooking(c.Request().Context(), middleware.UserID(c), service.CreateBookingInput{
		DepartureFlightID: req.DepartingFlight.FlightID,
		ReturnDate:        req.ReturnDate,
		Passengers:        passengers,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingOwner),
			errors.Is(err, service.ErrMissingDepartureFlight),
			errors.Is(err, service.ErrInvalidDate):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrFlightNotFound),
			errors.Is(err, service.ErrUserNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.Success(dto.ToBookingResponse(booking)))
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	email := c.QueryParam("email")
	reference := c.QueryParam("reference_number")

	bookings, err := h.bookings.ListBookings(c.Request().Context(), email, reference)
	if err != nil {
		if errors.Is(err, service.ErrMissingLookupKey) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.Success(dto.ToBookingResponses(bookings)))
}

func (h *BookingHandler) PayBooking(c echo.Context) error {
	var req dto.PayBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, err := h.bookings.PayBooking(c.Request().Context(), req.BookingID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrAlreadyPaid):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.Success(dto.PaymentResponse{
		ReferenceNumber: booking.ReferenceNumber,
		Status:          "Paid",
		PaymentReceived: booking.PaymentReceived,
	}))
}

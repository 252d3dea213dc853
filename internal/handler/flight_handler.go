package handler

import (
	"errors"
	"net/http"

	"github.com/kev-n-dev/sky-way/internal/dto"
	"github.com/kev-n-dev/sky-way/internal/middleware"
	"github.com/kev-n-dev/sky-way/internal/service"
	"github.com/labstack/echo/v4"
)

type FlightHandler struct {
	flights  service.FlightService
	searches service.SearchService
}

func NewFlightHandler(flights service.FlightService, searches service.SearchService) *FlightHandler {
	return &FlightHandler{flights: flights, searches: searches}
}

func (h *FlightHandler) RegisterRoutes(e *echo.Echo, requireAuth echo.MiddlewareFunc) {
	e.GET("/api/airports", h.ListAirports)

	api := e.Group("/api", requireAuth)
	api.GET("/search_flights", h.SearchFlights)
	api.POST("/add_to_search_history/:flight_id", h.AddToSearchHistory)
}

func (h *FlightHandler) ListAirports(c echo.Context) error {
	airports, err := h.flights.ListAirports(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.Success(dto.ToAirportResponses(airports)))
}

func (h *FlightHandler) SearchFlights(c echo.Context) error {
	from := c.QueryParam("from")
	to := c.QueryParam("to")
	depart := c.QueryParam("depart")
	returnDate := c.QueryParam("return")

	ctx := c.Request().Context()

	outgoing, err := h.flights.FindCloseFlights(ctx, from, to, depart)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDate):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNoFlightsFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	// An empty returning leg is not an error: the outgoing results are
	// still useful and the return flight can be synthesized at booking
	// time.
	returning := []dto.FlightResponse{}
	if returnDate != "" {
		flights, err := h.flights.FindCloseFlights(ctx, to, from, returnDate)
		switch {
		case err == nil:
			returning = dto.ToFlightResponses(flights)
		case errors.Is(err, service.ErrNoFlightsFound):
		case errors.Is(err, service.ErrInvalidDate):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.Success(dto.SearchFlightsResponse{
		OutgoingFlights:  dto.ToFlightResponses(outgoing),
		ReturningFlights: returning,
	}))
}

func (h *FlightHandler) AddToSearchHistory(c echo.Context) error {
	flightID := c.Param("flight_id")
	userID := middleware.UserID(c)

	record, err := h.searches.RecordSearch(c.Request().Context(), userID, flightID)
	if err != nil {
		if errors.Is(err, service.ErrFlightNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.Success(dto.ToSearchHistoryResponse(record)))
}

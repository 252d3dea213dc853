package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/kev-n-dev/sky-way/internal/dto"
	"github.com/kev-n-dev/sky-way/internal/models"
	"github.com/kev-n-dev/sky-way/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlight() models.Flight {
	return models.Flight{
		ID:            "fl-1",
		FlightNum:     "SKY-abc",
		DepartureTime: "06:45 AM",
		ArrivalTime:   "10:15 AM",
		StartDate:     time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		DepartureAirport: &models.Airport{ID: "ap-jfk", Code: "JFK", Name: "John F. Kennedy International"},
		ArrivalAirport:   &models.Airport{ID: "ap-lax", Code: "LAX", Name: "Los Angeles International"},
	}
}

func TestListAirports_Handler(t *testing.T) {
	svc := &mockFlightService{
		listAirportsFn: func(ctx context.Context) ([]models.Airport, error) {
			return []models.Airport{
				{ID: "ap-jfk", Code: "JFK", Name: "John F. Kennedy International"},
				{ID: "ap-lax", Code: "LAX", Name: "Los Angeles International"},
			}, nil
		},
	}

	c, rec := newTestContext(http.MethodGet, "/api/airports", "")

	h := NewFlightHandler(svc, &mockSearchService{})
	err := h.ListAirports(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []dto.AirportResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "JFK", resp.Data[0].Code)
}

func TestSearchFlights_Handler_RoundTrip(t *testing.T) {
	svc := &mockFlightService{
		findCloseFn: func(ctx context.Context, origin, destination, date string) ([]models.Flight, error) {
			return []models.Flight{testFlight()}, nil
		},
	}

	c, rec := newTestContext(http.MethodGet,
		"/api/search_flights?from=JFK&to=LAX&depart=2026-06-10&return=2026-06-17", "")
	asAuthenticated(c, "user-1")

	h := NewFlightHandler(svc, &mockSearchService{})
	err := h.SearchFlights(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data dto.SearchFlightsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.OutgoingFlights, 1)
	assert.Len(t, resp.Data.ReturningFlights, 1)
	assert.Equal(t, "SKY-abc", resp.Data.OutgoingFlights[0].FlightNum)
}

func TestSearchFlights_Handler_EmptyReturningLeg(t *testing.T) {
	svc := &mockFlightService{
		findCloseFn: func(ctx context.Context, origin, destination, date string) ([]models.Flight, error) {
			if origin == "JFK" {
				return []models.Flight{testFlight()}, nil
			}
			return nil, service.ErrNoFlightsFound
		},
	}

	c, rec := newTestContext(http.MethodGet,
		"/api/search_flights?from=JFK&to=LAX&depart=2026-06-10&return=2026-06-17", "")
	asAuthenticated(c, "user-1")

	h := NewFlightHandler(svc, &mockSearchService{})
	err := h.SearchFlights(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data dto.SearchFlightsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.OutgoingFlights, 1)
	assert.Empty(t, resp.Data.ReturningFlights)
}

func TestSearchFlights_Handler_NoOutgoingFlights(t *testing.T) {
	svc := &mockFlightService{
		findCloseFn: func(ctx context.Context, origin, destination, date string) ([]models.Flight, error) {
			return nil, service.ErrNoFlightsFound
		},
	}

	c, _ := newTestContext(http.MethodGet,
		"/api/search_flights?from=JFK&to=LAX&depart=2026-06-10", "")
	asAuthenticated(c, "user-1")

	h := NewFlightHandler(svc, &mockSearchService{})
	err := h.SearchFlights(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestSearchFlights_Handler_InvalidDate(t *testing.T) {
	svc := &mockFlightService{
		findCloseFn: func(ctx context.Context, origin, destination, date string) ([]models.Flight, error) {
			return nil, service.ErrInvalidDate
		},
	}

	c, _ := newTestContext(http.MethodGet,
		"/api/search_flights?from=JFK&to=LAX&depart=10-06-2026", "")
	asAuthenticated(c, "user-1")

	h := NewFlightHandler(svc, &mockSearchService{})
	err := h.SearchFlights(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestAddToSearchHistory_Handler(t *testing.T) {
	searches := &mockSearchService{
		recordFn: func(ctx context.Context, userID, flightID string) (*models.SearchHistory, error) {
			assert.Equal(t, "user-1", userID)
			assert.Equal(t, "fl-1", flightID)
			return &models.SearchHistory{ID: 7, UserID: userID, FlightID: flightID, SearchCount: 2}, nil
		},
	}

	c, rec := newTestContext(http.MethodPost, "/api/add_to_search_history/fl-1", "")
	c.SetParamNames("flight_id")
	c.SetParamValues("fl-1")
	asAuthenticated(c, "user-1")

	h := NewFlightHandler(&mockFlightService{}, searches)
	err := h.AddToSearchHistory(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data dto.SearchHistoryResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Data.SearchCount)
}

func TestAddToSearchHistory_Handler_UnknownFlight(t *testing.T) {
	searches := &mockSearchService{
		recordFn: func(ctx context.Context, userID, flightID string) (*models.SearchHistory, error) {
			return nil, service.ErrFlightNotFound
		},
	}

	c, _ := newTestContext(http.MethodPost, "/api/add_to_search_history/fl-ghost", "")
	c.SetParamNames("flight_id")
	c.SetParamValues("fl-ghost")
	asAuthenticated(c, "user-1")

	h := NewFlightHandler(&mockFlightService{}, searches)
	err := h.AddToSearchHistory(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

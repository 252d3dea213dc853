package service

import (
	"context"
	"errors"
	"time"

	"github.com/kev-n-dev/sky-way/internal/models"
	"github.com/kev-n-dev/sky-way/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrFlightNotFound = errors.New("flight not found")
	ErrInvalidDate    = errors.New("invalid date format, use YYYY-MM-DD")
	ErrNoFlightsFound = errors.New("no flights found close to the specified date")
)

// closeDateRangeDays is the widening window applied when no flight
// exists on the exact requested date.
const closeDateRangeDays = 3

const dateLayout = "2006-01-02"

type FlightService interface {
	// FindCloseFlights searches for flights on the exact date first, then
	// widens to ±3 days when nothing matches. Empty airport codes mean
	// no filter on that leg.
	FindCloseFlights(ctx context.Context, originCode, destinationCode, date string) ([]models.Flight, error)
	GetFlight(ctx context.Context, id string) (*models.Flight, error)
	ListAirports(ctx context.Context) ([]models.Airport, error)
}

// AirportCache is an optional read-through cache for the airport list.
type AirportCache interface {
	GetAirports(ctx context.Context) ([]models.Airport, error)
	SetAirports(ctx context.Context, airports []models.Airport) error
}

type flightService struct {
	flights  repository.FlightRepository
	airports repository.AirportRepository
	cache    AirportCache
}

func NewFlightService(flights repository.FlightRepository, airports repository.AirportRepository, cache AirportCache) FlightService {
	return &flightService{flights: flights, airports: airports, cache: cache}
}

func (s *flightService) FindCloseFlights(ctx context.Context, originCode, destinationCode, date string) ([]models.Flight, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	flights, err := s.flights.FindByRoute(ctx, originCode, destinationCode, day, day)
	if err != nil {
		return nil, err
	}
	if len(flights) > 0 {
		return flights, nil
	}

	start := day.AddDate(0, 0, -closeDateRangeDays)
	end := day.AddDate(0, 0, closeDateRangeDays)
	flights, err = s.flights.FindByRoute(ctx, originCode, destinationCode, start, end)
	if err != nil {
		return nil, err
	}
	if len(flights) > 0 {
		return flights, nil
	}

	return nil, ErrNoFlightsFound
}

func (s *flightService) GetFlight(ctx context.Context, id string) (*models.Flight, error) {
	flight, err := s.flights.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFlightNotFound
		}
		return nil, err
	}
	return flight, nil
}

func (s *flightService) ListAirports(ctx context.Context) ([]models.Airport, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetAirports(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	airports, err := s.airports.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetAirports(ctx, airports)
	}
	return airports, nil
}

var _ FlightService = (*flightService)(nil)

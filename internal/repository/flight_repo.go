package repository

import (
	"context"
	"errors"
	"time"

	"github.com/kev-n-dev/sky-way/internal/models"
	"gorm.io/gorm"
)

type FlightRepository interface {
	// FindByRoute filters flights by optional airport codes and a
	// start-date range. An unknown airport code yields an empty result,
	// not an error. Equal start and end dates mean an exact-date match.
	FindByRoute(ctx context.Context, originCode, destinationCode string, startDate, endDate time.Time) ([]models.Flight, error)
	FindByID(ctx context.Context, id string) (*models.Flight, error)
	Create(ctx context.Context, tx *gorm.DB, flight *models.Flight) error
}

type flightRepository struct {
	db *gorm.DB
}

func NewFlightRepository(db *gorm.DB) FlightRepository {
	return &flightRepository{db: db}
}

func (r *flightRepository) FindByRoute(ctx context.Context, originCode, destinationCode string, startDate, endDate time.Time) ([]models.Flight, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Flight{}).
		Where("flights.deleted_at IS NULL")

	if originCode != "" {
		airportID, ok, err := r.airportID(ctx, originCode)
		if err != nil {
			return nil, err
		}
		if !ok {
			return []models.Flight{}, nil
		}
		q = q.Where("departure_airport_id = ?", airportID)
	}

	if destinationCode != "" {
		airportID, ok, err := r.airportID(ctx, destinationCode)
		if err != nil {
			return nil, err
		}
		if !ok {
			return []models.Flight{}, nil
		}
		q = q.Where("arrival_airport_id = ?", airportID)
	}

	if startDate.Equal(endDate) {
		q = q.Where("start_date = ?", startDate)
	} else {
		q = q.Where("start_date >= ? AND start_date <= ?", startDate, endDate)
	}

	var flights []models.Flight
	err := q.Preload("DepartureAirport").
		Preload("ArrivalAirport").
		Order("start_date ASC, departure_time ASC").
		Find(&flights).Error
	if err != nil {
		return nil, err
	}
	return flights, nil
}

func (r *flightRepository) FindByID(ctx context.Context, id string) (*models.Flight, error) {
	var flight models.Flight
	err := r.db.WithContext(ctx).
		Preload("DepartureAirport").
		Preload("ArrivalAirport").
		Where("id = ? AND deleted_at IS NULL", id).
		First(&flight).Error
	if err != nil {
		return nil, err
	}
	return &flight, nil
}

func (r *flightRepository) Create(ctx context.Context, tx *gorm.DB, flight *models.Flight) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(flight).Error
}

func (r *flightRepository) airportID(ctx context.Context, code string) (string, bool, error) {
	var airport models.Airport
	err := r.db.WithContext(ctx).
		Select("id").
		Where("code = ? AND deleted_at IS NULL", code).
		First(&airport).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return airport.ID, true, nil
}

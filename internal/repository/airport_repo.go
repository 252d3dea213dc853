package repository

import (
	"context"

	"github.com/kev-n-dev/sky-way/internal/models"
	"gorm.io/gorm"
)

type AirportRepository interface {
	FindAll(ctx context.Context) ([]models.Airport, error)
	FindByID(ctx context.Context, id string) (*models.Airport, error)
	FindByCode(ctx context.Context, code string) (*models.Airport, error)
}

type airportRepository struct {
	db *gorm.DB
}

func NewAirportRepository(db *gorm.DB) AirportRepository {
	return &airportRepository{db: db}
}

func (r *airportRepository) FindAll(ctx context.Context) ([]models.Airport, error) {
	var airports []models.Airport
	err := r.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("code ASC").
		Find(&airports).Error
	if err != nil {
		return nil, err
	}
	return airports, nil
}

func (r *airportRepository) FindByID(ctx context.Context, id string) (*models.Airport, error) {
	var airport models.Airport
	err := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&airport).Error
	if err != nil {
		return nil, err
	}
	return &airport, nil
}

func (r *airportRepository) FindByCode(ctx context.Context, code string) (*models.Airport, error) {
	var airport models.Airport
	err := r.db.WithContext(ctx).
		Where("code = ? AND deleted_at IS NULL", code).
		First(&airport).Error
	if err != nil {
		return nil, err
	}
	return &airport, nil
}

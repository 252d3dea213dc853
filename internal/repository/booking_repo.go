package repository

import (
	"context"
	"time"

	"github.com/kev-n-dev/sky-way/internal/models"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	FindByID(ctx context.Context, id string) (*models.Booking, error)
	FindByReference(ctx context.Context, reference string) (*models.Booking, error)
	FindByOwnerEmail(ctx context.Context, email string) ([]models.Booking, error)
	// MarkPaid sets payment_received and completed only when payment has
	// not been received yet, and reports how many rows changed. Zero rows
	// means a concurrent payment got there first.
	MarkPaid(ctx context.Context, id string, at time.Time) (int64, error)
	// WithTransaction runs fn inside a single database transaction.
	WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	if tx == nil {
		tx = r.db
	}
	// Omit shared associations so gorm only inserts the booking row and
	// the booking_passengers join rows, never new Flight/User copies.
	return tx.WithContext(ctx).
		Omit("Owner", "DepartureFlight", "ReturningFlight", "Passengers.*").
		Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.preloaded(ctx).Where("bookings.id = ?", id).First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByReference(ctx context.Context, reference string) (*models.Booking, error) {
	var booking models.Booking
	err := r.preloaded(ctx).Where("reference_number = ?", reference).First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByOwnerEmail(ctx context.Context, email string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.preloaded(ctx).
		Joins("JOIN users ON users.id = bookings.owner_id").
		Where("users.email = ? AND users.deleted_at IS NULL", email).
		Order("bookings.created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) MarkPaid(ctx context.Context, id string, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND payment_received IS NULL", id).
		Updates(map[string]interface{}{
			"payment_received": at,
			"completed":        at,
		})
	return res.RowsAffected, res.Error
}

func (r *bookingRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Preload("Owner").
		Preload("Passengers").
		Preload("DepartureFlight.DepartureAirport").
		Preload("DepartureFlight.ArrivalAirport").
		Preload("ReturningFlight.DepartureAirport").
		Preload("ReturningFlight.ArrivalAirport")
}

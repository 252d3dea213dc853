package repository

import (
	"context"
	"time"

	"github.com/kev-n-dev/sky-way/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SearchHistoryRepository interface {
	// Upsert inserts a (user, flight) row with count 1, or atomically
	// bumps the counter when the pair was searched before.
	Upsert(ctx context.Context, userID, flightID string, at time.Time) (*models.SearchHistory, error)
}

type searchHistoryRepository struct {
	db *gorm.DB
}

func NewSearchHistoryRepository(db *gorm.DB) SearchHistoryRepository {
	return &searchHistoryRepository{db: db}
}

func (r *searchHistoryRepository) Upsert(ctx context.Context, userID, flightID string, at time.Time) (*models.SearchHistory, error) {
	record := models.SearchHistory{
		UserID:      userID,
		FlightID:    flightID,
		SearchedAt:  at,
		SearchCount: 1,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "flight_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"search_count": gorm.Expr("search_histories.search_count + 1"),
			"searched_at":  at,
		}),
	}).Create(&record).Error
	if err != nil {
		return nil, err
	}

	// Re-read so callers see the post-increment count on the update path.
	var current models.SearchHistory
	err = r.db.WithContext(ctx).
		Where("user_id = ? AND flight_id = ?", userID, flightID).
		First(&current).Error
	if err != nil {
		return nil, err
	}
	return &current, nil
}

package service

import (
	"context"
	"time"

	"github.com/kev-n-dev/sky-way/internal/models"
	"github.com/kev-n-dev/sky-way/internal/repository"
)

type SearchService interface {
	// RecordSearch upserts the per-user, per-flight search counter:
	// first search inserts with count 1, repeats increment it.
	RecordSearch(ctx context.Context, userID, flightID string) (*models.SearchHistory, error)
}

type searchService struct {
	history repository.SearchHistoryRepository
	finder  FlightService
}

func NewSearchService(history repository.SearchHistoryRepository, finder FlightService) SearchService {
	return &searchService{history: history, finder: finder}
}

func (s *searchService) RecordSearch(ctx context.Context, userID, flightID string) (*models.SearchHistory, error) {
	if _, err := s.finder.GetFlight(ctx, flightID); err != nil {
		return nil, err
	}
	return s.history.Upsert(ctx, userID, flightID, time.Now().UTC())
}

package models

import "time"

// SearchHistory counts how often a user has searched a given flight.
// The composite unique index makes the counter upsert race-free: two
// concurrent searches can never produce two rows for the same pair.
type SearchHistory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"type:uuid;not null;uniqueIndex:idx_search_user_flight" json:"user_id"`
	FlightID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_search_user_flight" json:"flight_id"`
	SearchedAt  time.Time `json:"searched_at"`
	SearchCount int       `gorm:"not null;default:1" json:"search_count"`
}

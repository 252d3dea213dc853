package models

import "time"

type Airport struct {
	ID        string     `gorm:"primaryKey;type:uuid" json:"id"`
	Code      string     `gorm:"type:varchar(3);uniqueIndex;not null" json:"code"`
	Name      string     `gorm:"not null" json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"-"`
}

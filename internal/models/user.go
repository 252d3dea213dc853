package models

import "time"

type User struct {
	ID           string     `gorm:"primaryKey;type:uuid" json:"id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Gender       string     `gorm:"type:varchar(20)" json:"gender"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"column:password_hash" json:"-"`
	DOB          *time.Time `gorm:"type:date" json:"dob,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `gorm:"index" json:"-"`
}

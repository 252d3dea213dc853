package models

import "time"

type Booking struct {
	ID                string     `gorm:"primaryKey;type:uuid" json:"id"`
	ReferenceNumber   string     `gorm:"uniqueIndex;not null" json:"reference_number"`
	OwnerID           string     `gorm:"type:uuid;not null" json:"owner_id"`
	DepartureFlightID string     `gorm:"type:uuid;not null" json:"departure_flight_id"`
	ReturningFlightID *string    `gorm:"type:uuid" json:"returning_flight_id,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	Completed         *time.Time `json:"completed,omitempty"`
	PaymentReceived   *time.Time `json:"payment_received,omitempty"`

	Owner           *User   `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	DepartureFlight *Flight `gorm:"foreignKey:DepartureFlightID" json:"departure_flight,omitempty"`
	ReturningFlight *Flight `gorm:"foreignKey:ReturningFlightID" json:"returning_flight,omitempty"`
	Passengers      []User  `gorm:"many2many:booking_passengers" json:"passengers,omitempty"`
}

// RoundTrip reports whether the booking carries a returning flight.
func (b *Booking) RoundTrip() bool {
	return b.ReturningFlightID != nil
}

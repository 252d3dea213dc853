package models

import (
	"math"
	"time"
)

// HourlyRate is the flat fare per flight hour, in currency units.
const HourlyRate = 47.0

// clockLayout is the 12-hour wall-clock format flights are stored with,
// e.g. "06:45 AM". The time-of-day is independent of the calendar dates.
const clockLayout = "03:04 PM"

type Flight struct {
	ID                 string     `gorm:"primaryKey;type:uuid" json:"id"`
	FlightNum          string     `gorm:"uniqueIndex;not null" json:"flight_num"`
	DepartureAirportID string     `gorm:"type:uuid;not null" json:"-"`
	ArrivalAirportID   string     `gorm:"type:uuid;not null" json:"-"`
	DepartureTime      string     `gorm:"type:varchar(8);not null" json:"departure_time"`
	ArrivalTime        string     `gorm:"type:varchar(8);not null" json:"arrival_time"`
	StartDate          time.Time  `gorm:"type:date;not null;index" json:"start_date"`
	EndDate            time.Time  `gorm:"type:date;not null" json:"end_date"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	DeletedAt          *time.Time `gorm:"index" json:"-"`

	DepartureAirport *Airport `gorm:"foreignKey:DepartureAirportID" json:"departure_airport,omitempty"`
	ArrivalAirport   *Airport `gorm:"foreignKey:ArrivalAirportID" json:"arrival_airport,omitempty"`
}

// DepartureInstant combines the start date with the wall-clock departure time.
func (f *Flight) DepartureInstant() time.Time {
	return combine(f.StartDate, f.DepartureTime)
}

// ArrivalInstant combines the end date with the wall-clock arrival time.
func (f *Flight) ArrivalInstant() time.Time {
	return combine(f.EndDate, f.ArrivalTime)
}

// Duration is the flight length in hours, rounded to one decimal place.
func (f *Flight) Duration() float64 {
	hours := f.ArrivalInstant().Sub(f.DepartureInstant()).Hours()
	return math.Round(hours*10) / 10
}

// Cost is the fare derived from the duration at the flat hourly rate.
func (f *Flight) Cost() float64 {
	return f.Duration() * HourlyRate
}

func combine(date time.Time, clock string) time.Time {
	t, err := time.Parse(clockLayout, clock)
	if err != nil {
		// Malformed stored clock strings collapse to midnight rather
		// than poisoning every caller with an error return.
		t = time.Time{}
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0, time.UTC,
	)
}

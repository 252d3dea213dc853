package dto

import (
	"fmt"
	"strconv"
	"time"

	"github.com/kev-n-dev/sky-way/internal/models"
)

const dateLayout = "2006-01-02"

// Response is the envelope every endpoint answers with.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

func Success(data any) Response {
	return Response{Status: "success", Data: data}
}

func Error(message string) Response {
	return Response{Status: "error", Message: message, Data: nil}
}

type AirportResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type FlightResponse struct {
	ID               string           `json:"id"`
	FlightNum        string           `json:"flight_num"`
	DepartureAirport *AirportResponse `json:"departure_airport,omitempty"`
	ArrivalAirport   *AirportResponse `json:"arrival_airport,omitempty"`
	DepartureTime    string           `json:"departure_time"`
	ArrivalTime      string           `json:"arrival_time"`
	StartDate        string           `json:"start_date"`
	EndDate          string           `json:"end_date"`
	Duration         string           `json:"duration"`
	Cost             string           `json:"cost"`
}

type UserResponse struct {
	ID        string  `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Gender    string  `json:"gender,omitempty"`
	Email     string  `json:"email"`
	DOB       *string `json:"dob,omitempty"`
}

type BookingResponse struct {
	ID              string          `json:"id"`
	ReferenceNumber string          `json:"reference_number"`
	Owner           *UserResponse   `json:"owner,omitempty"`
	DepartureFlight *FlightResponse `json:"departure_flight,omitempty"`
	ReturningFlight *FlightResponse `json:"returning_flight,omitempty"`
	Passengers      []UserResponse  `json:"passengers"`
	CreatedAt       time.Time       `json:"created_at"`
	Completed       *time.Time      `json:"completed,omitempty"`
	PaymentReceived *time.Time      `json:"payment_received,omitempty"`
}

type SearchFlightsResponse struct {
	OutgoingFlights  []FlightResponse `json:"outgoing_flights"`
	ReturningFlights []FlightResponse `json:"returning_flights"`
}

type SearchHistoryResponse struct {
	ID          uint      `json:"id"`
	UserID      string    `json:"user_id"`
	FlightID    string    `json:"flight_id"`
	SearchedAt  time.Time `json:"searched_at"`
	SearchCount int       `json:"search_count"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type PaymentResponse struct {
	ReferenceNumber string     `json:"reference_number"`
	Status          string     `json:"status"`
	PaymentReceived *time.Time `json:"payment_received"`
}

func ToAirportResponse(a *models.Airport) AirportResponse {
	return AirportResponse{ID: a.ID, Name: a.Name, Code: a.Code}
}

func ToAirportResponses(airports []models.Airport) []AirportResponse {
	out := make([]AirportResponse, len(airports))
	for i := range airports {
		out[i] = ToAirportResponse(&airports[i])
	}
	return out
}

func ToFlightResponse(f *models.Flight) FlightResponse {
	resp := FlightResponse{
		ID:            f.ID,
		FlightNum:     f.FlightNum,
		DepartureTime: f.DepartureTime,
		ArrivalTime:   f.ArrivalTime,
		StartDate:     f.StartDate.Format(dateLayout),
		EndDate:       f.EndDate.Format(dateLayout),
		Duration:      strconv.FormatFloat(f.Duration(), 'f', 1, 64),
		Cost:          fmt.Sprintf("$%.2f", f.Cost()),
	}
	if f.DepartureAirport != nil {
		a := ToAirportResponse(f.DepartureAirport)
		resp.DepartureAirport = &a
	}
	if f.ArrivalAirport != nil {
		a := ToAirportResponse(f.ArrivalAirport)
		resp.ArrivalAirport = &a
	}
	return resp
}

func ToFlightResponses(flights []models.Flight) []FlightResponse {
	out := make([]FlightResponse, len(flights))
	for i := range flights {
		out[i] = ToFlightResponse(&flights[i])
	}
	return out
}

func ToUserResponse(u *models.User) UserResponse {
	resp := UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Gender:    u.Gender,
		Email:     u.Email,
	}
	if u.DOB != nil {
		dob := u.DOB.Format(dateLayout)
		resp.DOB = &dob
	}
	return resp
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	resp := BookingResponse{
		ID:              b.ID,
		ReferenceNumber: b.ReferenceNumber,
		Passengers:      make([]UserResponse, len(b.Passengers)),
		CreatedAt:       b.CreatedAt,
		Completed:       b.Completed,
		PaymentReceived: b.PaymentReceived,
	}
	if b.Owner != nil {
		o := ToUserResponse(b.Owner)
		resp.Owner = &o
	}
	if b.DepartureFlight != nil {
		f := ToFlightResponse(b.DepartureFlight)
		resp.DepartureFlight = &f
	}
	if b.ReturningFlight != nil {
		f := ToFlightResponse(b.ReturningFlight)
		resp.ReturningFlight = &f
	}
	for i := range b.Passengers {
		resp.Passengers[i] = ToUserResponse(&b.Passengers[i])
	}
	return resp
}

func ToBookingResponses(bookings []models.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i := range bookings {
		out[i] = ToBookingResponse(&bookings[i])
	}
	return out
}

func ToSearchHistoryResponse(h *models.SearchHistory) SearchHistoryResponse {
	return SearchHistoryResponse{
		ID:          h.ID,
		UserID:      h.UserID,
		FlightID:    h.FlightID,
		SearchedAt:  h.SearchedAt,
		SearchCount: h.SearchCount,
	}
}

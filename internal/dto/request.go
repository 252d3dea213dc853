package dto

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender"`
	Email     string `json:"email" validate:"omitempty,email"`
	Password  string `json:"password" validate:"omitempty,min=6"`
}

type PassengerRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender"`
	DOB       string `json:"dob"`
}

type DepartingFlightRequest struct {
	FlightID string `json:"flight_id" validate:"required"`
}

type CreateBookingRequest struct {
	DepartingFlight DepartingFlightRequest `json:"departing_flight"`
	ReturnDate      string                 `json:"return_date"`
	Passengers      []PassengerRequest     `json:"passengers" validate:"dive"`
}

type PayBookingRequest struct {
	BookingID string `json:"booking_id" validate:"required"`
}

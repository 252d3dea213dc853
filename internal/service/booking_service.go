package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/kev-n-dev/sky-way/internal/models"
	"github.com/kev-n-dev/sky-way/internal/repository"
	"github.com/kev-n-dev/sky-way/pkg/rabbitmq"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound        = errors.New("booking not found")
	ErrAlreadyPaid            = errors.New("this booking has already been paid for")
	ErrMissingOwner           = errors.New("booking owner is required")
	ErrMissingDepartureFlight = errors.New("departure flight is required")
	ErrMissingLookupKey       = errors.New("email or reference number is required")
)

// Synthetic schedule assigned to return flights that have to be created
// on the fly: departs 01:00, lands 03:00, arrival date rolls to the
// next day.
const (
	syntheticDepartureTime = "01:00 AM"
	syntheticArrivalTime   = "03:00 AM"
)

type PassengerInput struct {
	Email     string
	FirstName string
	LastName  string
	Gender    string
	DOB       string
}

type CreateBookingInput struct {
	DepartureFlightID string
	ReturnDate        string
	Passengers        []PassengerInput
}

type Producer interface {
	Publish(routingKey string, payload any) error
}

type BookingService interface {
	CreateBooking(ctx context.Context, ownerID string, input CreateBookingInput) (*models.Booking, error)
	PayBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	GetBookingByReference(ctx context.Context, reference string) (*models.Booking, error)
	ListBookings(ctx context.Context, email, reference string) ([]models.Booking, error)
}

type bookingService struct {
	bookings repository.BookingRepository
	flights  repository.FlightRepository
	users    repository.UserRepository
	finder   FlightService
	producer Producer
}

func NewBookingService(
	bookings repository.BookingRepository,
	flights repository.FlightRepository,
	users repository.UserRepository,
	finder FlightService,
	producer Producer,
) BookingService {
	return &bookingService{
		bookings: bookings,
		flights:  flights,
		users:    users,
		finder:   finder,
		producer: producer,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, ownerID string, input CreateBookingInput) (*models.Booking, error) {
	if ownerID == "" {
		return nil, ErrMissingOwner
	}
	if input.DepartureFlightID == "" {
		return nil, ErrMissingDepartureFlight
	}

	owner, err := s.users.FindByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	departure, err := s.finder.GetFlight(ctx, input.DepartureFlightID)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ID:                uuid.NewString(),
		ReferenceNumber:   newReferenceNumber(),
		OwnerID:           owner.ID,
		DepartureFlightID: departure.ID,
		CreatedAt:         time.Now().UTC(),
	}

	// Passenger resolution, return-flight synthesis and the booking
	// insert commit or roll back together.
	err = s.bookings.WithTransaction(ctx, func(tx *gorm.DB) error {
		if input.ReturnDate != "" {
			returningID, err := s.resolveReturnFlight(ctx, tx, departure, input.ReturnDate)
			if err != nil {
				return err
			}
			booking.ReturningFlightID = returningID
		}

		passengers, err := s.resolvePassengers(ctx, tx, input.Passengers)
		if err != nil {
			return err
		}
		booking.Passengers = passengers

		return s.bookings.Create(ctx, tx, booking)
	})
	if err != nil {
		return nil, err
	}

	s.publish("booking.created", booking, owner.Email)
	return s.bookings.FindByID(ctx, booking.ID)
}

// resolveReturnFlight finds a flight on the reversed route close to the
// requested date, or synthesizes one when none exists.
func (s *bookingService) resolveReturnFlight(ctx context.Context, tx *gorm.DB, departure *models.Flight, returnDate string) (*string, error) {
	day, err := time.Parse(dateLayout, returnDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	matches, err := s.finder.FindCloseFlights(
		ctx,
		departure.ArrivalAirport.Code,
		departure.DepartureAirport.Code,
		returnDate,
	)
	if err == nil && len(matches) > 0 {
		return &matches[0].ID, nil
	}
	if err != nil && !errors.Is(err, ErrNoFlightsFound) {
		return nil, err
	}

	returning := &models.Flight{
		ID:                 uuid.NewString(),
		FlightNum:          newFlightNumber(),
		DepartureAirportID: departure.ArrivalAirportID,
		ArrivalAirportID:   departure.DepartureAirportID,
		DepartureTime:      syntheticDepartureTime,
		ArrivalTime:        syntheticArrivalTime,
		StartDate:          day,
		EndDate:            day.AddDate(0, 0, 1),
	}
	if err := s.flights.Create(ctx, tx, returning); err != nil {
		return nil, fmt.Errorf("create return flight: %w", err)
	}
	return &returning.ID, nil
}

// resolvePassengers attaches existing users by email and creates
// password-less users for the rest.
func (s *bookingService) resolvePassengers(ctx context.Context, tx *gorm.DB, inputs []PassengerInput) ([]models.User, error) {
	passengers := make([]models.User, 0, len(inputs))
	for _, p := range inputs {
		if p.Email == "" {
			continue
		}

		existing, err := s.users.FindByEmail(ctx, tx, p.Email)
		if err == nil {
			passengers = append(passengers, *existing)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		var dob *time.Time
		if p.DOB != "" {
			parsed, err := time.Parse(dateLayout, p.DOB)
			if err != nil {
				return nil, ErrInvalidDate
			}
			dob = &parsed
		}

		created := models.User{
			ID:        uuid.NewString(),
			Email:     p.Email,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Gender:    p.Gender,
			DOB:       dob,
		}
		if err := s.users.Create(ctx, tx, &created); err != nil {
			return nil, fmt.Errorf("create passenger %s: %w", p.Email, err)
		}
		passengers = append(passengers, created)
	}
	return passengers, nil
}

func (s *bookingService) PayBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if booking.PaymentReceived != nil {
		return nil, ErrAlreadyPaid
	}

	rows, err := s.bookings.MarkPaid(ctx, booking.ID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	// A concurrent payment can win between the read and the guarded
	// update; zero affected rows means it did.
	if rows == 0 {
		return nil, ErrAlreadyPaid
	}

	paid, err := s.bookings.FindByID(ctx, booking.ID)
	if err != nil {
		return nil, err
	}

	ownerEmail := ""
	if paid.Owner != nil {
		ownerEmail = paid.Owner.Email
	}
	s.publish("booking.paid", paid, ownerEmail)
	return paid, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) GetBookingByReference(ctx context.Context, reference string) (*models.Booking, error) {
	booking, err := s.bookings.FindByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, email, reference string) ([]models.Booking, error) {
	if reference != "" {
		booking, err := s.GetBookingByReference(ctx, reference)
		if err != nil {
			if errors.Is(err, ErrBookingNotFound) {
				return []models.Booking{}, nil
			}
			return nil, err
		}
		return []models.Booking{*booking}, nil
	}
	if email != "" {
		return s.bookings.FindByOwnerEmail(ctx, email)
	}
	return nil, ErrMissingLookupKey
}

func (s *bookingService) publish(routingKey string, booking *models.Booking, ownerEmail string) {
	if s.producer == nil {
		return
	}
	event := rabbitmq.BookingEvent{
		BookingID:       booking.ID,
		ReferenceNumber: booking.ReferenceNumber,
		OwnerEmail:      ownerEmail,
		RoundTrip:       booking.RoundTrip(),
		PaymentReceived: booking.PaymentReceived,
	}
	if err := s.producer.Publish(routingKey, event); err != nil {
		log.Printf("WARNING: failed to publish %s for booking %s: %v", routingKey, booking.ReferenceNumber, err)
	}
}

func newReferenceNumber() string {
	return "SKY-" + uuid.NewString()
}

func newFlightNumber() string {
	return "SKY-" + uuid.NewString()
}

var _ BookingService = (*bookingService)(nil)

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/kev-n-dev/sky-way/internal/middleware"
	"github.com/kev-n-dev/sky-way/internal/models"
	"github.com/kev-n-dev/sky-way/internal/service"
	"github.com/kev-n-dev/sky-way/internal/validation"
	"github.com/labstack/echo/v4"
)

// --- Mock UserService ---

type mockUserService struct {
	registerFn func(ctx context.Context, name, email, password string) (*models.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *models.User, error)
	getFn      func(ctx context.Context, id string) (*models.User, error)
	updateFn   func(ctx context.Context, id string, input service.UpdateUserInput) (*models.User, error)
	deleteFn   func(ctx context.Context, id string) error
}

func (m *mockUserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	return m.registerFn(ctx, name, email, password)
}
func (m *mockUserService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	return m.loginFn(ctx, email, password)
}
func (m *mockUserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return m.getFn(ctx, id)
}
func (m *mockUserService) UpdateUser(ctx context.Context, id string, input service.UpdateUserInput) (*models.User, error) {
	return m.updateFn(ctx, id, input)
}
func (m *mockUserService) DeleteUser(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

// --- Mock FlightService ---

type mockFlightService struct {
	findCloseFn    func(ctx context.Context, origin, destination, date string) ([]models.Flight, error)
	getFlightFn    func(ctx context.Context, id string) (*models.Flight, error)
	listAirportsFn func(ctx context.Context) ([]models.Airport, error)
}

func (m *mockFlightService) FindCloseFlights(ctx context.Context, origin, destination, date string) ([]models.Flight, error) {
	return m.findCloseFn(ctx, origin, destination, date)
}
func (m *mockFlightService) GetFlight(ctx context.Context, id string) (*models.Flight, error) {
	return m.getFlightFn(ctx, id)
}
func (m *mockFlightService) ListAirports(ctx context.Context) ([]models.Airport, error) {
	return m.listAirportsFn(ctx)
}

// --- Mock SearchService ---

type mockSearchService struct {
	recordFn func(ctx context.Context, userID, flightID string) (*models.SearchHistory, error)
}

func (m *mockSearchService) RecordSearch(ctx context.Context, userID, flightID string) (*models.SearchHistory, error) {
	return m.recordFn(ctx, userID, flightID)
}

// --- Mock BookingService ---

type mockBookingService struct {
	createFn func(ctx context.Context, ownerID string, input service.CreateBookingInput) (*models.Booking, error)
	payFn    func(ctx context.Context, bookingID string) (*models.Booking, error)
	getFn    func(ctx context.Context, id string) (*models.Booking, error)
	byRefFn  func(ctx context.Context, reference string) (*models.Booking, error)
	listFn   func(ctx context.Context, email, reference string) ([]models.Booking, error)
}

func (m *mockBookingService) CreateBooking(ctx context.Context, ownerID string, input service.CreateBookingInput) (*models.Booking, error) {
	return m.createFn(ctx, ownerID, input)
}
func (m *mockBookingService) PayBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	return m.payFn(ctx, bookingID)
}
func (m *mockBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return m.getFn(ctx, id)
}
func (m *mockBookingService) GetBookingByReference(ctx context.Context, reference string) (*models.Booking, error) {
	return m.byRefFn(ctx, reference)
}
func (m *mockBookingService) ListBookings(ctx context.Context, email, reference string) ([]models.Booking, error) {
	return m.listFn(ctx, email, reference)
}

// --- Request helpers ---

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validation.New()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func asAuthenticated(c echo.Context, userID string) {
	c.Set(middleware.UserIDKey, userID)
}

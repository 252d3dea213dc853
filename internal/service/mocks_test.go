package service

import (
	"context"
	"time"

	"github.com/kev-n-dev/sky-way/internal/models"
	"gorm.io/gorm"
)

// --- Mock FlightRepository ---

type routeQuery struct {
	origin, destination string
	start, end          time.Time
}

type mockFlightRepo struct {
	routeQueries []routeQuery
	created      []*models.Flight

	findByRouteFn func(ctx context.Context, origin, destination string, start, end time.Time) ([]models.Flight, error)
	findByIDFn    func(ctx context.Context, id string) (*models.Flight, error)
	createFn      func(ctx context.Context, tx *gorm.DB, flight *models.Flight) error
}

func (m *mockFlightRepo) FindByRoute(ctx context.Context, origin, destination string, start, end time.Time) ([]models.Flight, error) {
	m.routeQueries = append(m.routeQueries, routeQuery{origin, destination, start, end})
	if m.findByRouteFn != nil {
		return m.findByRouteFn(ctx, origin, destination, start, end)
	}
	return []models.Flight{}, nil
}

func (m *mockFlightRepo) FindByID(ctx context.Context, id string) (*models.Flight, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFlightRepo) Create(ctx context.Context, tx *gorm.DB, flight *models.Flight) error {
	m.created = append(m.created, flight)
	if m.createFn != nil {
		return m.createFn(ctx, tx, flight)
	}
	return nil
}

// --- Mock AirportRepository ---

type mockAirportRepo struct {
	findAllCalls int
	findAllFn    func(ctx context.Context) ([]models.Airport, error)
}

func (m *mockAirportRepo) FindAll(ctx context.Context) ([]models.Airport, error) {
	m.findAllCalls++
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return []models.Airport{}, nil
}

func (m *mockAirportRepo) FindByID(ctx context.Context, id string) (*models.Airport, error) {
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAirportRepo) FindByCode(ctx context.Context, code string) (*models.Airport, error) {
	return nil, gorm.ErrRecordNotFound
}

// --- Mock UserRepository ---

type mockUserRepo struct {
	created []*models.User

	createFn      func(ctx context.Context, tx *gorm.DB, user *models.User) error
	findByIDFn    func(ctx context.Context, id string) (*models.User, error)
	findByEmailFn func(ctx context.Context, tx *gorm.DB, email string) (*models.User, error)
	emailTakenFn  func(ctx context.Context, email string) (bool, error)
	updateFn      func(ctx context.Context, user *models.User) error
	softDeleteFn  func(ctx context.Context, id string, at time.Time) (int64, error)
}

func (m *mockUserRepo) Create(ctx context.Context, tx *gorm.DB, user *models.User) error {
	m.created = append(m.created, user)
	if m.createFn != nil {
		return m.createFn(ctx, tx, user)
	}
	return nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, tx *gorm.DB, email string) (*models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, tx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) EmailTaken(ctx context.Context, email string) (bool, error) {
	if m.emailTakenFn != nil {
		return m.emailTakenFn(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepo) Update(ctx context.Context, user *models.User) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) SoftDelete(ctx context.Context, id string, at time.Time) (int64, error) {
	if m.softDeleteFn != nil {
		return m.softDeleteFn(ctx, id, at)
	}
	return 1, nil
}

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	created *models.Booking

	createFn           func(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	findByIDFn         func(ctx context.Context, id string) (*models.Booking, error)
	findByReferenceFn  func(ctx context.Context, reference string) (*models.Booking, error)
	findByOwnerEmailFn func(ctx context.Context, email string) ([]models.Booking, error)
	markPaidFn         func(ctx context.Context, id string, at time.Time) (int64, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	m.created = booking
	if m.createFn != nil {
		return m.createFn(ctx, tx, booking)
	}
	return nil
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id string) (*models.Booking, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	if m.created != nil && m.created.ID == id {
		return m.created, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBookingRepo) FindByReference(ctx context.Context, reference string) (*models.Booking, error) {
	if m.findByReferenceFn != nil {
		return m.findByReferenceFn(ctx, reference)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBookingRepo) FindByOwnerEmail(ctx context.Context, email string) ([]models.Booking, error) {
	if m.findByOwnerEmailFn != nil {
		return m.findByOwnerEmailFn(ctx, email)
	}
	return []models.Booking{}, nil
}

func (m *mockBookingRepo) MarkPaid(ctx context.Context, id string, at time.Time) (int64, error) {
	if m.markPaidFn != nil {
		return m.markPaidFn(ctx, id, at)
	}
	return 1, nil
}

func (m *mockBookingRepo) WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

// --- Mock SearchHistoryRepository ---

type mockHistoryRepo struct {
	upsertFn func(ctx context.Context, userID, flightID string, at time.Time) (*models.SearchHistory, error)
}

func (m *mockHistoryRepo) Upsert(ctx context.Context, userID, flightID string, at time.Time) (*models.SearchHistory, error) {
	return m.upsertFn(ctx, userID, flightID, at)
}

// --- Mock FlightService (finder) ---

type mockFinder struct {
	findCloseFn    func(ctx context.Context, origin, destination, date string) ([]models.Flight, error)
	getFlightFn    func(ctx context.Context, id string) (*models.Flight, error)
	listAirportsFn func(ctx context.Context) ([]models.Airport, error)
}

func (m *mockFinder) FindCloseFlights(ctx context.Context, origin, destination, date string) ([]models.Flight, error) {
	return m.findCloseFn(ctx, origin, destination, date)
}

func (m *mockFinder) GetFlight(ctx context.Context, id string) (*models.Flight, error) {
	return m.getFlightFn(ctx, id)
}

func (m *mockFinder) ListAirports(ctx context.Context) ([]models.Airport, error) {
	if m.listAirportsFn != nil {
		return m.listAirportsFn(ctx)
	}
	return []models.Airport{}, nil
}

// --- Mock Producer ---

type publishedEvent struct {
	routingKey string
	payload    any
}

type mockProducer struct {
	published []publishedEvent
}

func (m *mockProducer) Publish(routingKey string, payload any) error {
	m.published = append(m.published, publishedEvent{routingKey, payload})
	return nil
}

// --- Mock AirportCache ---

type mockAirportCache struct {
	airports []models.Airport
	setCalls int
}

func (m *mockAirportCache) GetAirports(ctx context.Context) ([]models.Airport, error) {
	return m.airports, nil
}

func (m *mockAirportCache) SetAirports(ctx context.Context, airports []models.Airport) error {
	m.airports = airports
	m.setCalls++
	return nil
}

// --- Stub TokenIssuer ---

type stubTokens struct{}

func (stubTokens) Generate(userID, email string) (string, error) {
	return "token-" + userID, nil
}

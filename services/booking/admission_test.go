package booking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	bookingRepo "docportal/database/repository/booking"
	"docportal/models"
	"docportal/services/availability"
	"docportal/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockCatalogRepo struct{ mock.Mock }

func (m *mockCatalogRepo) GetAll(ctx context.Context) ([]models.AppointmentOption, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.AppointmentOption), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogRepo) GetByName(ctx context.Context, name string) (*models.AppointmentOption, error) {
	args := m.Called(ctx, name)
	if v := args.Get(0); v != nil {
		return v.(*models.AppointmentOption), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogRepo) GetSpecialties(ctx context.Context) ([]models.Specialty, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Specialty), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) GetByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.([]models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) GetByDate(ctx context.Context, date string) ([]models.Booking, error) {
	args := m.Called(ctx, date)
	if v := args.Get(0); v != nil {
		return v.([]models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) CountByTuple(ctx context.Context, date, email, treatment string) (int64, error) {
	args := m.Called(ctx, date, email, treatment)
	return args.Get(0).(int64), args.Error(1)
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) BookingConfirmed(ctx context.Context, b models.Booking) error {
	return m.Called(ctx, b).Error(0)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *mockCache) Del(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}

func bracesOption() *models.AppointmentOption {
	return &models.AppointmentOption{
		Name:  "Braces",
		Price: 300,
		Slots: []string{"09:00", "10:00"},
	}
}

func newService(catalog *mockCatalogRepo, bookings *mockBookingRepo, notifier *mockNotifier, cache *mockCache) *booking.DefaultAdmissionService {
	return &booking.DefaultAdmissionService{
		Catalog:  catalog,
		Bookings: bookings,
		Notifier: notifier,
		Cache:    cache,
		Logger:   zap.NewNop(),
	}
}

func TestSubmit_Success(t *testing.T) {
	catalog := &mockCatalogRepo{}
	bookings := &mockBookingRepo{}
	notifier := &mockNotifier{}
	cache := &mockCache{}
	svc := newService(catalog, bookings, notifier, cache)

	ctx := context.Background()
	candidate := models.Booking{
		AppointmentDate: "Jan 1, 2024",
		Email:           "patient@example.com",
		Treatment:       "Braces",
		Slot:            "09:00",
		Price:           300,
	}

	catalog.On("GetByName", ctx, "Braces").Return(bracesOption(), nil)
	bookings.On("CountByTuple", ctx, "Jan 1, 2024", "patient@example.com", "Braces").Return(int64(0), nil)
	bookings.On("Create", ctx, mock.AnythingOfType("*models.Booking")).Return(nil)
	cache.On("Del", ctx, []string{availability.CacheKey("Jan 1, 2024")}).Return(nil)
	notifier.On("BookingConfirmed", ctx, mock.AnythingOfType("models.Booking")).Return(nil)

	stored, err := svc.Submit(ctx, candidate)

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEmpty(t, stored.ID)
	assert.False(t, stored.Paid)
	assert.Empty(t, stored.TransactionID)
	bookings.AssertExpectations(t)
	notifier.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestSubmit_RejectsDuplicateTuple(t *testing.T) {
	catalog := &mockCatalogRepo{}
	bookings := &mockBookingRepo{}
	svc := newService(catalog, bookings, &mockNotifier{}, &mockCache{})

	ctx := context.Background()
	candidate := models.Booking{
		AppointmentDate: "Jan 1, 2024",
		Email:           "patient@example.com",
		Treatment:       "Braces",
		Slot:            "09:00",
	}

	catalog.On("GetByName", ctx, "Braces").Return(bracesOption(), nil)
	bookings.On("CountByTuple", ctx, "Jan 1, 2024", "patient@example.com", "Braces").Return(int64(1), nil)

	stored, err := svc.Submit(ctx, candidate)

	assert.Nil(t, stored)
	var alreadyBooked *booking.AlreadyBookedError
	require.ErrorAs(t, err, &alreadyBooked)
	assert.Equal(t, "You already have a booking on Jan 1, 2024", err.Error())
	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmit_DuplicateCheckIsPerTupleNotPerSlot(t *testing.T) {
	catalog := &mockCatalogRepo{}
	bookings := &mockBookingRepo{}
	svc := newService(catalog, bookings, &mockNotifier{}, &mockCache{})

	ctx := context.Background()
	// Same (date, email, treatment) as an existing booking, different slot:
	// still rejected.
	candidate := models.Booking{
		AppointmentDate: "Jan 1, 2024",
		Email:           "patient@example.com",
		Treatment:       "Braces",
		Slot:            "10:00",
	}

	catalog.On("GetByName", ctx, "Braces").Return(bracesOption(), nil)
	bookings.On("CountByTuple", ctx, "Jan 1, 2024", "patient@example.com", "Braces").Return(int64(1), nil)

	_, err := svc.Submit(ctx, candidate)

	var alreadyBooked *booking.AlreadyBookedError
	require.ErrorAs(t, err, &alreadyBooked)
	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmit_IndexDecidesLostRace(t *testing.T) {
	catalog := &mockCatalogRepo{}
	bookings := &mockBookingRepo{}
	svc := newService(catalog, bookings, &mockNotifier{}, &mockCache{})

	ctx := context.Background()
	candidate := models.Booking{
		AppointmentDate: "Jan 1, 2024",
		Email:           "patient@example.com",
		Treatment:       "Braces",
		Slot:            "09:00",
	}

	// The pre-check saw nothing, but a concurrent admission won the insert.
	catalog.On("GetByName", ctx, "Braces").Return(bracesOption(), nil)
	bookings.On("CountByTuple", ctx, "Jan 1, 2024", "patient@example.com", "Braces").Return(int64(0), nil)
	bookings.On("Create", ctx, mock.AnythingOfType("*models.Booking")).Return(bookingRepo.ErrDuplicateBooking)

	_, err := svc.Submit(ctx, candidate)

	var alreadyBooked *booking.AlreadyBookedError
	require.ErrorAs(t, err, &alreadyBooked)
}

func TestSubmit_SlotClaimedByAnotherPatient(t *testing.T) {
	catalog := &mockCatalogRepo{}
	bookings := &mockBookingRepo{}
	svc := newService(catalog, bookings, &mockNotifier{}, &mockCache{})

	ctx := context.Background()
	candidate := models.Booking{
		AppointmentDate: "Jan 1, 2024",
		Email:           "other@example.com",
		Treatment:       "Braces",
		Slot:            "09:00",
	}

	catalog.On("GetByName", ctx, "Braces").Return(bracesOption(), nil)
	bookings.On("CountByTuple", ctx, "Jan 1, 2024", "other@example.com", "Braces").Return(int64(0), nil)
	bookings.On("Create", ctx, mock.AnythingOfType("*models.Booking")).Return(bookingRepo.ErrSlotTaken)

	_, err := svc.Submit(ctx, candidate)

	var slotTaken *booking.SlotTakenError
	require.ErrorAs(t, err, &slotTaken)
	assert.Equal(t, "09:00", slotTaken.Slot)
}

func TestSubmit_ValidatesRequiredFields(t *testing.T) {
	bookings := &mockBookingRepo{}
	svc := newService(&mockCatalogRepo{}, bookings, &mockNotifier{}, &mockCache{})

	_, err := svc.Submit(context.Background(), models.Booking{
		Email:     "patient@example.com",
		Treatment: "Braces",
		Slot:      "09:00",
	})

	var validationErr *booking.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "appointmentDate", validationErr.Field)
	bookings.AssertNotCalled(t, "CountByTuple", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmit_RejectsSlotOutsideCatalog(t *testing.T) {
	catalog := &mockCatalogRepo{}
	svc := newService(catalog, &mockBookingRepo{}, &mockNotifier{}, &mockCache{})

	ctx := context.Background()
	candidate := models.Booking{
		AppointmentDate: "Jan 1, 2024",
		Email:           "patient@example.com",
		Treatment:       "Braces",
		Slot:            "23:00",
	}

	catalog.On("GetByName", ctx, "Braces").Return(bracesOption(), nil)

	_, err := svc.Submit(ctx, candidate)

	assert.ErrorIs(t, err, booking.ErrSlotNotOffered)
}

func TestSubmit_RejectsUnknownTreatment(t *testing.T) {
	catalog := &mockCatalogRepo{}
	svc := newService(catalog, &mockBookingRepo{}, &mockNotifier{}, &mockCache{})

	ctx := context.Background()
	catalog.On("GetByName", ctx, "Phrenology").Return(nil, nil)

	_, err := svc.Submit(ctx, models.Booking{
		AppointmentDate: "Jan 1, 2024",
		Email:           "patient@example.com",
		Treatment:       "Phrenology",
		Slot:            "09:00",
	})

	assert.ErrorIs(t, err, booking.ErrUnknownTreatment)
}

func TestSubmit_NotificationFailureDoesNotFailBooking(t *testing.T) {
	catalog := &mockCatalogRepo{}
	bookings := &mockBookingRepo{}
	notifier := &mockNotifier{}
	cache := &mockCache{}
	svc := newService(catalog, bookings, notifier, cache)

	ctx := context.Background()
	candidate := models.Booking{
		AppointmentDate: "Jan 1, 2024",
		Email:           "patient@example.com",
		Treatment:       "Braces",
		Slot:            "09:00",
	}

	catalog.On("GetByName", ctx, "Braces").Return(bracesOption(), nil)
	bookings.On("CountByTuple", ctx, "Jan 1, 2024", "patient@example.com", "Braces").Return(int64(0), nil)
	bookings.On("Create", ctx, mock.AnythingOfType("*models.Booking")).Return(nil)
	cache.On("Del", ctx, mock.Anything).Return(nil)
	notifier.On("BookingConfirmed", ctx, mock.AnythingOfType("models.Booking")).Return(errors.New("smtp down"))

	stored, err := svc.Submit(ctx, candidate)

	require.NoError(t, err)
	assert.NotNil(t, stored)
}

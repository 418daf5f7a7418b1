package payment_test

import (
	"context"
	"testing"

	paymentRepo "docportal/database/repository/payment"
	"docportal/models"
	"docportal/services/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockPaymentRepo struct{ mock.Mock }

func (m *mockPaymentRepo) ApplyPayment(ctx context.Context, p *models.Payment) (*models.Booking, error) {
	args := m.Called(ctx, p)
	if v := args.Get(0); v != nil {
		return v.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPaymentRepo) GetByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error) {
	args := m.Called(ctx, transactionID)
	if v := args.Get(0); v != nil {
		return v.(*models.Payment), args.Error(1)
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

func newService(payments *mockPaymentRepo, bookings *mockBookingRepo) *payment.DefaultService {
	return &payment.DefaultService{
		Payments: payments,
		Bookings: bookings,
		Logger:   zap.NewNop(),
	}
}

func TestConfirm_AppliesPaymentToBooking(t *testing.T) {
	payments := &mockPaymentRepo{}
	bookings := &mockBookingRepo{}
	svc := newService(payments, bookings)

	ctx := context.Background()
	paid := &models.Booking{
		ID:            "b-1",
		Paid:          true,
		TransactionID: "txn-1",
	}

	payments.On("ApplyPayment", ctx, mock.MatchedBy(func(p *models.Payment) bool {
		return p.BookingID == "b-1" && p.TransactionID == "txn-1" && p.Amount == 300 && p.ID != ""
	})).Return(paid, nil)

	got, err := svc.Confirm(ctx, "b-1", "txn-1", 300)

	require.NoError(t, err)
	assert.True(t, got.Paid)
	assert.Equal(t, "txn-1", got.TransactionID)
	payments.AssertExpectations(t)
}

func TestConfirm_RepeatTransactionIsNoOp(t *testing.T) {
	payments := &mockPaymentRepo{}
	bookings := &mockBookingRepo{}
	svc := newService(payments, bookings)

	ctx := context.Background()
	paid := &models.Booking{ID: "b-1", Paid: true, TransactionID: "txn-1"}

	payments.On("ApplyPayment", ctx, mock.AnythingOfType("*models.Payment")).
		Return(nil, paymentRepo.ErrDuplicateTransaction)
	payments.On("GetByTransactionID", ctx, "txn-1").
		Return(&models.Payment{BookingID: "b-1", TransactionID: "txn-1"}, nil)
	bookings.On("GetByID", ctx, "b-1").Return(paid, nil)

	got, err := svc.Confirm(ctx, "b-1", "txn-1", 300)

	require.NoError(t, err)
	assert.True(t, got.Paid)
	// No second payment record was written.
	payments.AssertNumberOfCalls(t, "ApplyPayment", 1)
}

func TestConfirm_FreshTransactionOnPaidBookingRejected(t *testing.T) {
	payments := &mockPaymentRepo{}
	bookings := &mockBookingRepo{}
	svc := newService(payments, bookings)

	ctx := context.Background()
	payments.On("ApplyPayment", ctx, mock.AnythingOfType("*models.Payment")).
		Return(nil, paymentRepo.ErrBookingAlreadyPaid)

	// txn-2 is not a replay of txn-1; it must not settle b-1 a second time.
	_, err := svc.Confirm(ctx, "b-1", "txn-2", 300)

	assert.ErrorIs(t, err, payment.ErrAlreadyPaid)
	payments.AssertNumberOfCalls(t, "ApplyPayment", 1)
	payments.AssertNotCalled(t, "GetByTransactionID", mock.Anything, mock.Anything)
	bookings.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestConfirm_UnknownBooking(t *testing.T) {
	payments := &mockPaymentRepo{}
	svc := newService(payments, &mockBookingRepo{})

	ctx := context.Background()
	payments.On("ApplyPayment", ctx, mock.AnythingOfType("*models.Payment")).
		Return(nil, paymentRepo.ErrBookingNotFound)

	_, err := svc.Confirm(ctx, "missing", "txn-9", 100)

	assert.ErrorIs(t, err, payment.ErrBookingNotFound)
}

func TestConfirm_RejectsInvalidRequests(t *testing.T) {
	svc := newService(&mockPaymentRepo{}, &mockBookingRepo{})
	ctx := context.Background()

	_, err := svc.Confirm(ctx, "", "txn-1", 100)
	assert.ErrorIs(t, err, payment.ErrInvalidRequest)

	_, err = svc.Confirm(ctx, "b-1", "", 100)
	assert.ErrorIs(t, err, payment.ErrInvalidRequest)

	_, err = svc.Confirm(ctx, "b-1", "txn-1", 0)
	assert.ErrorIs(t, err, payment.ErrInvalidRequest)
}

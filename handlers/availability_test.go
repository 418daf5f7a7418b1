package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"docportal/handlers"
	"docportal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockAvailabilityService struct{ mock.Mock }

func (m *mockAvailabilityService) OptionsForDate(ctx context.Context, date string) ([]models.AppointmentOption, error) {
	args := m.Called(ctx, date)
	if v := args.Get(0); v != nil {
		return v.([]models.AppointmentOption), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAvailabilityService) Specialties(ctx context.Context) ([]models.Specialty, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Specialty), args.Error(1)
	}
	return nil, args.Error(1)
}

func newAvailabilityRouter(svc *mockAvailabilityService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewAvailabilityHandler(svc, zap.NewNop())

	r := gin.New()
	r.GET("/appointmentOptions", h.GetAppointmentOptions)
	r.GET("/appointmentSpecialty", h.GetSpecialties)
	return r
}

func TestGetSpecialties_EmptyCatalogIsEmptyArray(t *testing.T) {
	svc := &mockAvailabilityService{}
	r := newAvailabilityRouter(svc)

	svc.On("Specialties", mock.Anything).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/appointmentSpecialty", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetAppointmentOptions_EmptyCatalogIsEmptyArray(t *testing.T) {
	svc := &mockAvailabilityService{}
	r := newAvailabilityRouter(svc)

	svc.On("OptionsForDate", mock.Anything, "Jan 1, 2024").Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/appointmentOptions?date=Jan%201,%202024", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetAppointmentOptions_MissingDate(t *testing.T) {
	svc := &mockAvailabilityService{}
	r := newAvailabilityRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/appointmentOptions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "OptionsForDate", mock.Anything, mock.Anything)
}

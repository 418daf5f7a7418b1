package handlers

import (
	"errors"
	"net/http"

	"docportal/middleware"
	"docportal/models"
	"docportal/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves booking admission and lookups.
type BookingHandler struct {
	Service booking.AdmissionService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.AdmissionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// ListBookings returns the authenticated patient's bookings. The email query
// must match the token identity.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "missing required query parameter: email"})
		return
	}
	if email != middleware.AuthedEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	bookings, err := h.Service.ListByEmail(c.Request.Context(), email)
	if err != nil {
		h.Logger.Error("failed to list bookings", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "failed to load bookings"})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBooking returns one booking by ID.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id := c.Param("id")

	b, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.Logger.Error("failed to fetch booking", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "failed to load booking"})
		return
	}
	if b == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "booking not found"})
		return
	}

	c.JSON(http.StatusOK, b)
}

// CreateBooking admits a booking candidate.
//
// A duplicate for the same (date, email, treatment) is not an error to the
// client: HTTP 200 with {acknowledge:false, message}. A slot claimed by
// another patient in the meantime is a real conflict status.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var candidate models.Booking
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid booking payload", "details": err.Error()})
		return
	}

	stored, err := h.Service.Submit(c.Request.Context(), candidate)
	if err != nil {
		var validationErr *booking.ValidationError
		var alreadyBooked *booking.AlreadyBookedError
		var slotTaken *booking.SlotTakenError

		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"acknowledge": false, "message": validationErr.Error()})
		case errors.Is(err, booking.ErrUnknownTreatment), errors.Is(err, booking.ErrSlotNotOffered):
			c.JSON(http.StatusBadRequest, gin.H{"acknowledge": false, "message": err.Error()})
		case errors.As(err, &alreadyBooked):
			c.JSON(http.StatusOK, gin.H{"acknowledge": false, "message": alreadyBooked.Error()})
		case errors.As(err, &slotTaken):
			c.JSON(http.StatusConflict, gin.H{"acknowledge": false, "message": slotTaken.Error()})
		default:
			h.Logger.Error("booking admission failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "failed to store booking"})
		}
		return
	}

	c.JSON(http.StatusOK, stored)
}

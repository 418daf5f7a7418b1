package handlers

import (
	"errors"
	"net/http"

	"docportal/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler serves payment-intent creation and payment confirmation.
type PaymentHandler struct {
	Service payment.Service
	Logger  *zap.Logger
}

func NewPaymentHandler(svc payment.Service, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Service: svc, Logger: logger}
}

// CreatePaymentIntent obtains a client secret from the payment processor for
// the booking price.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payment intent payload", "details": err.Error()})
		return
	}

	clientSecret, err := h.Service.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		if errors.Is(err, payment.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "price must be positive"})
			return
		}
		h.Logger.Error("failed to create payment intent", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "failed to create payment intent"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

// ConfirmPayment applies a successful payment to its booking.
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	var req struct {
		BookingID     string  `json:"bookingId"`
		TransactionID string  `json:"transactionId"`
		Amount        float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payment payload", "details": err.Error()})
		return
	}

	updated, err := h.Service.Confirm(c.Request.Context(), req.BookingID, req.TransactionID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"message": "bookingId, transactionId and a positive amount are required"})
		case errors.Is(err, payment.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "booking not found"})
		case errors.Is(err, payment.ErrAlreadyPaid):
			c.JSON(http.StatusConflict, gin.H{"message": "booking already paid"})
		default:
			h.Logger.Error("payment confirmation failed",
				zap.String("bookingId", req.BookingID), zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "failed to record payment"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledge": true, "booking": updated})
}

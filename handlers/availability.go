package handlers

import (
	"net/http"

	"docportal/models"
	"docportal/services/availability"
	"docportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the catalog and open-slot queries.
type AvailabilityHandler struct {
	Service availability.Service
	Logger  *zap.Logger
}

func NewAvailabilityHandler(svc availability.Service, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc, Logger: logger}
}

// GetAppointmentOptions returns the catalog with the slots still open on the
// requested date. The date is taken verbatim; no parsing happens anywhere in
// the pipeline.
func (h *AvailabilityHandler) GetAppointmentOptions(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing required query parameter", "date")
		return
	}

	options, err := h.Service.OptionsForDate(c.Request.Context(), date)
	if err != nil {
		h.Logger.Error("failed to compute availability", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "failed to load appointment options", "please retry")
		return
	}
	if options == nil {
		options = []models.AppointmentOption{}
	}

	c.JSON(http.StatusOK, options)
}

// GetSpecialties returns the distinct treatment names.
func (h *AvailabilityHandler) GetSpecialties(c *gin.Context) {
	specialties, err := h.Service.Specialties(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to load specialties", zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "failed to load specialties", "please retry")
		return
	}
	if specialties == nil {
		specialties = []models.Specialty{}
	}

	c.JSON(http.StatusOK, specialties)
}

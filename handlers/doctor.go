package handlers

import (
	"errors"
	"net/http"

	doctorRepo "docportal/database/repository/doctor"
	"docportal/models"
	"docportal/services/doctor"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler serves roster management. All routes are admin only.
type DoctorHandler struct {
	Service doctor.DoctorService
	Logger  *zap.Logger
}

func NewDoctorHandler(svc doctor.DoctorService, logger *zap.Logger) *DoctorHandler {
	return &DoctorHandler{Service: svc, Logger: logger}
}

// ListDoctors returns the roster.
func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.Service.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list doctors", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "failed to load doctors"})
		return
	}
	if doctors == nil {
		doctors = []models.Doctor{}
	}

	c.JSON(http.StatusOK, doctors)
}

// CreateDoctor adds a doctor to the roster.
func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var d models.Doctor
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid doctor payload", "details": err.Error()})
		return
	}

	stored, err := h.Service.Add(c.Request.Context(), d)
	if err != nil {
		switch {
		case errors.Is(err, doctor.ErrMissingFields), errors.Is(err, doctor.ErrUnknownSpecialty):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		case errors.Is(err, doctorRepo.ErrDuplicateDoctor):
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		default:
			h.Logger.Error("failed to add doctor", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "failed to store doctor"})
		}
		return
	}

	c.JSON(http.StatusOK, stored)
}

// DeleteDoctor removes a doctor from the roster.
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	id := c.Param("id")

	if err := h.Service.Remove(c.Request.Context(), id); err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "doctor not found"})
			return
		}
		h.Logger.Error("failed to delete doctor", zap.String("doctorId", id), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "failed to delete doctor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledge": true})
}

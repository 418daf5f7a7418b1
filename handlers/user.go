package handlers

import (
	"errors"
	"net/http"

	userRepo "docportal/database/repository/user"
	"docportal/models"
	"docportal/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves user registration, role checks and session tokens.
type UserHandler struct {
	Service user.UserService
	Logger  *zap.Logger
}

func NewUserHandler(svc user.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{Service: svc, Logger: logger}
}

// IssueJWT hands a session token to a registered email, 403 otherwise.
func (h *UserHandler) IssueJWT(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "missing required query parameter: email"})
		return
	}

	token, err := h.Service.IssueToken(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, user.ErrUnknownUser) {
			c.JSON(http.StatusForbidden, gin.H{"accessToken": ""})
			return
		}
		h.Logger.Error("failed to issue token", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}

// CreateUser registers (or refreshes) a user record on sign-in.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var u models.User
	if err := c.ShouldBindJSON(&u); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user payload", "details": err.Error()})
		return
	}

	stored, err := h.Service.Upsert(c.Request.Context(), u)
	if err != nil {
		h.Logger.Error("failed to store user", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "failed to store user"})
		return
	}

	c.JSON(http.StatusOK, stored)
}

// ListUsers returns every registered user. Admin only.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list users", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "failed to load users"})
		return
	}
	if users == nil {
		users = []models.User{}
	}

	c.JSON(http.StatusOK, users)
}

// CheckAdmin reports whether the given email carries the admin role. Used by
// the client to decide whether to render the admin dashboard.
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")

	isAdmin, err := h.Service.IsAdmin(c.Request.Context(), email)
	if err != nil {
		h.Logger.Error("failed to check role", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "failed to check role"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"isAdmin": isAdmin})
}

// PromoteUser grants the admin role. Admin only.
func (h *UserHandler) PromoteUser(c *gin.Context) {
	id := c.Param("id")

	if err := h.Service.Promote(c.Request.Context(), id); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
			return
		}
		h.Logger.Error("failed to promote user", zap.String("userId", id), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "failed to promote user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledge": true})
}

package handlers

import (
	"errors"
	"net/http"

	"resto_pos_backend/internal/services"
	"resto_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes the admin user management surface.
type UserHandler struct {
	sessions services.SessionService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(ss services.SessionService) *UserHandler {
	return &UserHandler{sessions: ss}
}

// respondUserError maps session-service sentinel errors to API responses.
func respondUserError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, services.ErrForbidden):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "Admin role required.", err.Error()))
	case errors.Is(err, services.ErrInvalidPIN):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "PIN must be exactly 4 digits.", err.Error()))
	case errors.Is(err, services.ErrPINTaken):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "PIN already in use.", err.Error()))
	case errors.Is(err, services.ErrUserNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "User not found.", err.Error()))
	case errors.Is(err, services.ErrValidation):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Input validation failed.", err.Error()))
	default:
		utils.LogError(err, action)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Internal error.", ""))
	}
}

// GetUsers lists all users.
func (h *UserHandler) GetUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.sessions.ListUsers())
}

// CreateUser adds a new user.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req services.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	user, err := h.sessions.AddUser(c.GetString("userID"), req)
	if err != nil {
		respondUserError(c, err, "CreateUser: Error from sessions.AddUser")
		return
	}
	c.JSON(http.StatusCreated, user)
}

// UpdateUserPin replaces a user's PIN.
func (h *UserHandler) UpdateUserPin(c *gin.Context) {
	var req services.UpdatePinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	if err := h.sessions.UpdateUserPin(c.GetString("userID"), c.Param("id"), req.PIN); err != nil {
		respondUserError(c, err, "UpdateUserPin: Error from sessions.UpdateUserPin")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "PIN updated"})
}

// DeleteUser removes a user.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.sessions.DeleteUser(c.GetString("userID"), c.Param("id")); err != nil {
		respondUserError(c, err, "DeleteUser: Error from sessions.DeleteUser")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

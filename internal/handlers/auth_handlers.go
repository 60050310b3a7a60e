package handlers

import (
	"errors"
	"net/http"

	"resto_pos_backend/internal/services"
	"resto_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the session service.
type AuthHandler struct {
	sessions services.SessionService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(ss services.SessionService) *AuthHandler {
	return &AuthHandler{sessions: ss}
}

// Login validates a PIN and opens the till session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	resp, err := h.sessions.Login(req.PIN)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid PIN.", ""))
			return
		}
		utils.LogError(err, "Login: Error from sessions.Login")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to log in.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout clears the session and voids the active cart.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Logout()
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetCurrentUser returns the user behind the active till session.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	user := h.sessions.CurrentUser()
	if user == nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "No active session.", ""))
		return
	}
	c.JSON(http.StatusOK, user)
}

package services

import (
	"errors"
	"fmt"

	"resto_pos_backend/internal/models"
	"resto_pos_backend/internal/store"
	"resto_pos_backend/pkg/utils"

	"github.com/google/uuid"
)

// --- Custom Service Errors ---
var (
	ErrInvalidCredentials = errors.New("no user with that PIN")
	ErrInvalidPIN         = errors.New("PIN must be exactly 4 digits")
	ErrPINTaken           = errors.New("PIN already in use by another user")
	ErrUserNotFound       = errors.New("user not found")
)

// --- Data Transfer Objects (DTOs) ---

// LoginRequest DTO
type LoginRequest struct {
	PIN string `json:"pin" binding:"required"`
}

// CreateUserRequest DTO
type CreateUserRequest struct {
	Name string `json:"name" binding:"required"`
	PIN  string `json:"pin" binding:"required"`
	Role string `json:"role" binding:"required"`
}

// UpdatePinRequest DTO
type UpdatePinRequest struct {
	PIN string `json:"pin" binding:"required"`
}

// AuthResponse DTO
type AuthResponse struct {
	User        *models.User `json:"user"`
	AccessToken string       `json:"access_token"`
}

// --- SessionService Interface ---

// SessionService owns the till session: PIN login/logout, the current user,
// and the admin-gated user mutations. There is a single active session per
// till; switching cashiers goes through Logout, which also voids the cart so
// a half-built order never leaks between operators.
type SessionService interface {
	Login(pin string) (*AuthResponse, error)
	Logout()
	CurrentUser() *models.User
	ListUsers() []models.User
	AddUser(actorID string, req CreateUserRequest) (*models.User, error)
	UpdateUserPin(actorID, userID, newPin string) error
	DeleteUser(actorID, userID string) error
}

type sessionService struct {
	st *store.State
}

// NewSessionService creates a new instance of SessionService.
func NewSessionService(st *store.State) SessionService {
	return &sessionService{st: st}
}

// Login looks up a user whose PIN exactly equals the input. Comparison is
// plain string equality on the 4 digit characters; there is no hashing and
// no lockout. A miss leaves the session untouched.
func (s *sessionService) Login(pin string) (*AuthResponse, error) {
	s.st.Lock()
	defer s.st.Unlock()

	for i := range s.st.Users {
		if s.st.Users[i].PIN == pin {
			user := s.st.Users[i]
			s.st.CurrentUser = &user

			token, err := utils.GenerateAccessToken(user.ID, user.Name, user.Role)
			if err != nil {
				return nil, fmt.Errorf("failed to generate access token: %w", err)
			}
			return &AuthResponse{User: &user, AccessToken: token}, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// Logout clears the current user and voids the active cart.
func (s *sessionService) Logout() {
	s.st.Lock()
	defer s.st.Unlock()
	s.st.CurrentUser = nil
	s.st.Cart = nil
}

// CurrentUser returns a copy of the logged-in user, or nil.
func (s *sessionService) CurrentUser() *models.User {
	s.st.Lock()
	defer s.st.Unlock()
	if s.st.CurrentUser == nil {
		return nil
	}
	user := *s.st.CurrentUser
	return &user
}

// ListUsers returns all users.
func (s *sessionService) ListUsers() []models.User {
	s.st.Lock()
	defer s.st.Unlock()
	out := make([]models.User, len(s.st.Users))
	copy(out, s.st.Users)
	return out
}

// AddUser creates a new user. Admin-gated; name, PIN shape, PIN uniqueness
// and role are all validated here so no call site can slip a duplicate in.
func (s *sessionService) AddUser(actorID string, req CreateUserRequest) (*models.User, error) {
	s.st.Lock()
	defer s.st.Unlock()

	if !s.st.FindUser(actorID).IsAdmin() {
		return nil, ErrForbidden
	}
	if utils.IsEmpty(req.Name) {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if !utils.IsValidPIN(req.PIN) {
		return nil, ErrInvalidPIN
	}
	if !models.IsValidRole(req.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, req.Role)
	}
	for i := range s.st.Users {
		if s.st.Users[i].PIN == req.PIN {
			return nil, ErrPINTaken
		}
	}

	user := models.User{
		ID:   uuid.New().String(),
		Name: req.Name,
		PIN:  req.PIN,
		Role: req.Role,
	}
	s.st.Users = append(s.st.Users, user)
	s.st.Persist()
	return &user, nil
}

// UpdateUserPin replaces a user's PIN. Admin-gated. A malformed PIN is
// rejected entirely, never truncated or padded, and the new PIN must not
// collide with any other user's.
func (s *sessionService) UpdateUserPin(actorID, userID, newPin string) error {
	s.st.Lock()
	defer s.st.Unlock()

	if !s.st.FindUser(actorID).IsAdmin() {
		return ErrForbidden
	}
	if !utils.IsValidPIN(newPin) {
		return ErrInvalidPIN
	}
	for i := range s.st.Users {
		if s.st.Users[i].PIN == newPin && s.st.Users[i].ID != userID {
			return ErrPINTaken
		}
	}

	user := s.st.FindUser(userID)
	if user == nil {
		return ErrUserNotFound
	}
	user.PIN = newPin
	if s.st.CurrentUser != nil && s.st.CurrentUser.ID == userID {
		s.st.CurrentUser.PIN = newPin
	}
	s.st.Persist()
	return nil
}

// DeleteUser removes a user. Admin-gated; an absent id is a no-op.
func (s *sessionService) DeleteUser(actorID, userID string) error {
	s.st.Lock()
	defer s.st.Unlock()

	if !s.st.FindUser(actorID).IsAdmin() {
		return ErrForbidden
	}

	kept := s.st.Users[:0]
	removed := false
	for _, u := range s.st.Users {
		if u.ID == userID {
			removed = true
			continue
		}
		kept = append(kept, u)
	}
	s.st.Users = kept
	if removed {
		s.st.Persist()
	}
	return nil
}

package services

import (
	"fmt"

	"resto_pos_backend/internal/models"
	"resto_pos_backend/internal/store"
)

// --- DTOs ---

// UpdateSettingsRequest replaces business info, tax rate and currency
// wholesale. Partial updates are not supported; admin screens load a working
// copy, edit it, and commit the whole thing back.
type UpdateSettingsRequest struct {
	BusinessInfo models.BusinessInfo `json:"business_info"`
	TaxRate      float64             `json:"tax_rate"`
	Currency     string              `json:"currency" binding:"required"`
}

// SettingsResponse is the full settings view.
type SettingsResponse struct {
	BusinessInfo models.BusinessInfo `json:"business_info"`
	Settings     models.Settings     `json:"settings"`
}

// --- SettingsService Interface ---

// SettingsService owns the business info singleton and the tax/currency
// settings. Updates are admin-gated.
type SettingsService interface {
	Get() SettingsResponse
	Update(actorID string, req UpdateSettingsRequest) (*SettingsResponse, error)
}

type settingsService struct {
	st *store.State
}

// NewSettingsService creates a new instance of SettingsService.
func NewSettingsService(st *store.State) SettingsService {
	return &settingsService{st: st}
}

func (s *settingsService) Get() SettingsResponse {
	s.st.Lock()
	defer s.st.Unlock()
	return SettingsResponse{
		BusinessInfo: s.st.BusinessInfo,
		Settings:     s.st.Settings,
	}
}

func (s *settingsService) Update(actorID string, req UpdateSettingsRequest) (*SettingsResponse, error) {
	s.st.Lock()
	defer s.st.Unlock()

	if !s.st.FindUser(actorID).IsAdmin() {
		return nil, ErrForbidden
	}
	if req.TaxRate < 0 || req.TaxRate > 1 {
		return nil, fmt.Errorf("%w: tax rate must be between 0 and 1", ErrValidation)
	}
	if !models.IsValidCurrency(req.Currency) {
		return nil, fmt.Errorf("%w: unsupported currency %q", ErrValidation, req.Currency)
	}

	s.st.BusinessInfo = req.BusinessInfo
	s.st.Settings = models.Settings{TaxRate: req.TaxRate, Currency: req.Currency}
	s.st.Persist()

	resp := SettingsResponse{BusinessInfo: s.st.BusinessInfo, Settings: s.st.Settings}
	return &resp, nil
}

package services

import (
	"errors"
	"testing"

	"resto_pos_backend/internal/models"
)

func TestUpdateSettings(t *testing.T) {
	st := newTestState()
	settings := NewSettingsService(st)

	req := UpdateSettingsRequest{
		BusinessInfo: models.BusinessInfo{Name: "New Name", Address: "1 Main St"},
		TaxRate:      0.21,
		Currency:     models.CurrencyEUR,
	}
	resp, err := settings.Update("u-admin", req)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if resp.Settings.TaxRate != 0.21 || resp.Settings.Currency != models.CurrencyEUR {
		t.Errorf("unexpected settings: %+v", resp.Settings)
	}
	if resp.BusinessInfo.Name != "New Name" {
		t.Errorf("unexpected business info: %+v", resp.BusinessInfo)
	}

	// The new tax rate immediately drives cart derivation.
	cart := NewCartService(st)
	if _, err := cart.AddToCart(AddToCartRequest{ProductID: "p-a"}); err != nil {
		t.Fatal(err)
	}
	if got := cart.Tax(); got != 1.37 { // round2(6.50 * 0.21)
		t.Errorf("expected tax 1.37, got %v", got)
	}
}

func TestUpdateSettings_Rejections(t *testing.T) {
	st := newTestState()
	settings := NewSettingsService(st)

	if _, err := settings.Update("u-cashier", UpdateSettingsRequest{TaxRate: 0.1, Currency: models.CurrencyUSD}); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
	if _, err := settings.Update("u-admin", UpdateSettingsRequest{TaxRate: 1.5, Currency: models.CurrencyUSD}); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for tax rate, got %v", err)
	}
	if _, err := settings.Update("u-admin", UpdateSettingsRequest{TaxRate: 0.1, Currency: "BTC"}); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for currency, got %v", err)
	}

	got := settings.Get()
	if got.Settings.TaxRate != 0.10 || got.Settings.Currency != models.CurrencyUSD {
		t.Error("rejected updates must leave settings unchanged")
	}
}

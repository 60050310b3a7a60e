package models

// Supported currency labels. Currency is a display label only; no
// conversion logic exists anywhere in the system.
const (
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
	CurrencyGBP = "GBP"
	CurrencyIDR = "IDR"
)

// IsValidCurrency reports whether c is one of the supported labels.
func IsValidCurrency(c string) bool {
	switch c {
	case CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyIDR:
		return true
	}
	return false
}

// BusinessInfo is the singleton business identity printed on receipts.
type BusinessInfo struct {
	Name    string  `json:"name"`
	Address string  `json:"address,omitempty"`
	Phone   string  `json:"phone,omitempty"`
	TaxID   string  `json:"tax_id,omitempty"`
	Logo    *string `json:"logo,omitempty"`
}

// Settings holds the till-wide tax rate and currency label.
type Settings struct {
	TaxRate  float64 `json:"tax_rate"` // decimal rate, 0.10 = 10%
	Currency string  `json:"currency"`
}

package models

// ReportFilters narrows report queries to a date range.
// Dates are inclusive and expected in YYYY-MM-DD format.
type ReportFilters struct {
	From *string `form:"from"`
	To   *string `form:"to"`
}

// PaymentBreakdown aggregates completed orders for one payment method.
type PaymentBreakdown struct {
	Method string  `json:"method"`
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// TopProduct is a product ranked by quantity sold.
type TopProduct struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Revenue   float64 `json:"revenue"`
}

// SalesSummary aggregates completed orders for the reporting screens.
// Cancelled orders are excluded from every figure.
type SalesSummary struct {
	OrderCount   int                `json:"order_count"`
	GrossSales   float64            `json:"gross_sales"`
	TaxCollected float64            `json:"tax_collected"`
	NetSales     float64            `json:"net_sales"`
	ByPayment    []PaymentBreakdown `json:"by_payment"`
	TopProducts  []TopProduct       `json:"top_products"`
}

// ReceiptHeader is the business header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	TaxID     string `json:"tax_id,omitempty"`
}

// ReceiptLine is a single line item on a receipt.
type ReceiptLine struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Receipt is a value object composed from an order and the current business
// info at request time. It is never persisted.
type Receipt struct {
	Header       ReceiptHeader `json:"header"`
	OrderID      string        `json:"order_id"`
	Date         string        `json:"date"`
	Cashier      string        `json:"cashier,omitempty"`
	PaymentType  string        `json:"payment_type"`
	Currency     string        `json:"currency"`
	Lines        []ReceiptLine `json:"lines"`
	Subtotal     float64       `json:"subtotal"`
	Tax          float64       `json:"tax"`
	Total        float64       `json:"total"`
	CashReceived *float64      `json:"cash_received,omitempty"`
	ChangeDue    *float64      `json:"change_due,omitempty"`
}

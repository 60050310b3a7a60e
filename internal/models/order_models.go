package models

import "time"

// Payment methods accepted at checkout.
const (
	PaymentCash    = "cash"
	PaymentCard    = "card"
	PaymentVoucher = "voucher"
)

// Order statuses.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// IsValidPaymentMethod reports whether m is one of the accepted methods.
func IsValidPaymentMethod(m string) bool {
	return m == PaymentCash || m == PaymentCard || m == PaymentVoucher
}

// CartItem is one line of the active, uncommitted order. The line id is
// distinct from the product id, and Price is the product's price captured
// when the line was first added, not re-read from the catalog afterwards.
type CartItem struct {
	ID              string   `json:"id"`
	ProductID       string   `json:"product_id"`
	Name            string   `json:"name"`
	Price           float64  `json:"price"`
	Quantity        int      `json:"quantity"`
	SelectedOptions []string `json:"selected_options,omitempty"`
}

// Order is the immutable record created from the cart at checkout. Later
// catalog edits never change a stored order's items or totals.
type Order struct {
	ID            string     `json:"id"`
	Items         []CartItem `json:"items"`
	Subtotal      float64    `json:"subtotal"`
	Tax           float64    `json:"tax"`
	Total         float64    `json:"total"`
	PaymentMethod string     `json:"payment_method"`
	CashReceived  *float64   `json:"cash_received,omitempty"` // cash payments only
	ChangeDue     *float64   `json:"change_due,omitempty"`    // cash payments only
	Status        string     `json:"status"`
	Timestamp     time.Time  `json:"timestamp"`
	CashierID     string     `json:"cashier_id"`
}

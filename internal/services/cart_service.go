package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"resto_pos_backend/internal/models"
	"resto_pos_backend/internal/store"

	"github.com/google/uuid"
)

// Custom Errors
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrNoSession        = errors.New("no user is logged in")
	ErrInsufficientCash = errors.New("cash received is less than the order total")
	ErrNotCancellable   = errors.New("only completed orders can be cancelled")
)

// --- Data Transfer Objects (DTOs) ---

// AddToCartRequest is used to add one product to the cart.
type AddToCartRequest struct {
	ProductID       string   `json:"product_id" binding:"required"`
	SelectedOptions []string `json:"selected_options"`
}

// UpdateQuantityRequest sets a cart line to an absolute quantity.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CheckoutRequest finalizes the cart into an order.
type CheckoutRequest struct {
	PaymentMethod string   `json:"payment_method" binding:"required"`
	CashReceived  *float64 `json:"cash_received"`
}

// CartView is the cart plus its derived totals, recomputed on every read.
type CartView struct {
	Items    []models.CartItem `json:"items"`
	Subtotal float64           `json:"subtotal"`
	Tax      float64           `json:"tax"`
	Total    float64           `json:"total"`
	Currency string            `json:"currency"`
}

// --- CartService Interface ---

// CartService is the cart and order engine. It owns the ordered cart line
// sequence and the order history. Subtotal, tax and total are never stored;
// they are derived from the lines on each read, which is also what keeps
// repeated add/remove cycles free of accumulated floating-point drift.
type CartService interface {
	AddToCart(req AddToCartRequest) (*models.CartItem, error)
	RemoveFromCart(lineID string)
	UpdateQuantity(lineID string, quantity int)
	ClearCart()
	Cart() CartView
	Subtotal() float64
	Tax() float64
	Total() float64
	CompleteOrder(req CheckoutRequest) (*models.Order, error)
	Orders() []models.Order
	GetOrder(orderID string) (*models.Order, error)
	CancelOrder(actorID, orderID string) (*models.Order, error)
	DeleteOrder(actorID, orderID string) error
}

type cartService struct {
	st *store.State
}

// NewCartService creates a new instance of CartService.
func NewCartService(st *store.State) CartService {
	return &cartService{st: st}
}

// round2 rounds to two decimal currency units.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// AddToCart appends a line for the product, or bumps the quantity of the
// existing line for the same product by one. The line price is captured from
// the catalog on first add and never re-read afterwards.
func (s *cartService) AddToCart(req AddToCartRequest) (*models.CartItem, error) {
	s.st.Lock()
	defer s.st.Unlock()

	for i := range s.st.Cart {
		if s.st.Cart[i].ProductID == req.ProductID {
			s.st.Cart[i].Quantity++
			line := s.st.Cart[i]
			return &line, nil
		}
	}

	product := s.st.FindProduct(req.ProductID)
	if product == nil {
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, req.ProductID)
	}

	line := models.CartItem{
		ID:              uuid.New().String(),
		ProductID:       product.ID,
		Name:            product.Name,
		Price:           product.Price,
		Quantity:        1,
		SelectedOptions: append([]string(nil), req.SelectedOptions...),
	}
	s.st.Cart = append(s.st.Cart, line)
	return &line, nil
}

// RemoveFromCart removes the line unconditionally; absent ids are a no-op.
func (s *cartService) RemoveFromCart(lineID string) {
	s.st.Lock()
	defer s.st.Unlock()
	s.removeLineLocked(lineID)
}

func (s *cartService) removeLineLocked(lineID string) {
	kept := s.st.Cart[:0]
	for _, line := range s.st.Cart {
		if line.ID != lineID {
			kept = append(kept, line)
		}
	}
	s.st.Cart = kept
}

// UpdateQuantity sets a line to an absolute quantity. Zero or below removes
// the line; a zero-quantity row never persists. Absent ids are a no-op.
func (s *cartService) UpdateQuantity(lineID string, quantity int) {
	s.st.Lock()
	defer s.st.Unlock()

	if quantity <= 0 {
		s.removeLineLocked(lineID)
		return
	}
	for i := range s.st.Cart {
		if s.st.Cart[i].ID == lineID {
			s.st.Cart[i].Quantity = quantity
			return
		}
	}
}

// ClearCart empties the cart unconditionally.
func (s *cartService) ClearCart() {
	s.st.Lock()
	defer s.st.Unlock()
	s.st.Cart = nil
}

// Cart returns the lines in insertion order with current derived totals.
func (s *cartService) Cart() CartView {
	s.st.Lock()
	defer s.st.Unlock()

	items := make([]models.CartItem, len(s.st.Cart))
	copy(items, s.st.Cart)

	subtotal := s.subtotalLocked()
	tax := round2(subtotal * s.st.Settings.TaxRate)
	return CartView{
		Items:    items,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    round2(subtotal + tax),
		Currency: s.st.Settings.Currency,
	}
}

func (s *cartService) subtotalLocked() float64 {
	var sum float64
	for _, line := range s.st.Cart {
		sum += line.Price * float64(line.Quantity)
	}
	return round2(sum)
}

// Subtotal is the sum of line price times quantity over all cart lines.
func (s *cartService) Subtotal() float64 {
	s.st.Lock()
	defer s.st.Unlock()
	return s.subtotalLocked()
}

// Tax is the subtotal times the configured tax rate.
func (s *cartService) Tax() float64 {
	s.st.Lock()
	defer s.st.Unlock()
	return round2(s.subtotalLocked() * s.st.Settings.TaxRate)
}

// Total is subtotal plus tax.
func (s *cartService) Total() float64 {
	s.st.Lock()
	defer s.st.Unlock()
	subtotal := s.subtotalLocked()
	return round2(subtotal + round2(subtotal*s.st.Settings.TaxRate))
}

// CompleteOrder turns the cart into an immutable completed order. Requires a
// logged-in user and a non-empty cart; cash payments must cover the total.
// The order snapshot, the prepend to history, the cart clear and the
// persistence trigger all happen under one lock acquisition, so no caller
// ever observes the order existing while the cart still has lines.
func (s *cartService) CompleteOrder(req CheckoutRequest) (*models.Order, error) {
	s.st.Lock()
	defer s.st.Unlock()

	if s.st.CurrentUser == nil {
		return nil, ErrNoSession
	}
	if len(s.st.Cart) == 0 {
		return nil, ErrEmptyCart
	}
	if !models.IsValidPaymentMethod(req.PaymentMethod) {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrValidation, req.PaymentMethod)
	}

	subtotal := s.subtotalLocked()
	tax := round2(subtotal * s.st.Settings.TaxRate)
	total := round2(subtotal + tax)

	order := models.Order{
		ID:            uuid.New().String(),
		Items:         snapshotLines(s.st.Cart),
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         total,
		PaymentMethod: req.PaymentMethod,
		Status:        models.StatusCompleted,
		Timestamp:     time.Now(),
		CashierID:     s.st.CurrentUser.ID,
	}

	if req.PaymentMethod == models.PaymentCash {
		if req.CashReceived == nil || *req.CashReceived < total {
			return nil, ErrInsufficientCash
		}
		received := round2(*req.CashReceived)
		change := round2(received - total)
		order.CashReceived = &received
		order.ChangeDue = &change
	}

	s.st.Orders = append([]models.Order{order}, s.st.Orders...)
	s.st.Cart = nil
	s.st.Persist()
	return &order, nil
}

// snapshotLines deep-copies cart lines so later cart or catalog mutations
// cannot reach into a stored order.
func snapshotLines(cart []models.CartItem) []models.CartItem {
	items := make([]models.CartItem, len(cart))
	copy(items, cart)
	for i := range items {
		items[i].SelectedOptions = append([]string(nil), items[i].SelectedOptions...)
	}
	return items
}

// Orders returns the order history, most recent first.
func (s *cartService) Orders() []models.Order {
	s.st.Lock()
	defer s.st.Unlock()
	out := make([]models.Order, len(s.st.Orders))
	copy(out, s.st.Orders)
	return out
}

// GetOrder returns one order by id.
func (s *cartService) GetOrder(orderID string) (*models.Order, error) {
	s.st.Lock()
	defer s.st.Unlock()
	for i := range s.st.Orders {
		if s.st.Orders[i].ID == orderID {
			order := s.st.Orders[i]
			return &order, nil
		}
	}
	return nil, ErrOrderNotFound
}

// CancelOrder flips a completed order to cancelled. Admin-gated. Items and
// totals stay frozen; only the status changes. There are no stock effects to
// reverse because completion never touched stock.
func (s *cartService) CancelOrder(actorID, orderID string) (*models.Order, error) {
	s.st.Lock()
	defer s.st.Unlock()

	if !s.st.FindUser(actorID).IsAdmin() {
		return nil, ErrForbidden
	}
	for i := range s.st.Orders {
		if s.st.Orders[i].ID == orderID {
			if s.st.Orders[i].Status != models.StatusCompleted {
				return nil, ErrNotCancellable
			}
			s.st.Orders[i].Status = models.StatusCancelled
			order := s.st.Orders[i]
			s.st.Persist()
			return &order, nil
		}
	}
	return nil, ErrOrderNotFound
}

// DeleteOrder removes an order from history unconditionally. Admin-gated;
// an absent id is a no-op.
func (s *cartService) DeleteOrder(actorID, orderID string) error {
	s.st.Lock()
	defer s.st.Unlock()

	if !s.st.FindUser(actorID).IsAdmin() {
		return ErrForbidden
	}

	kept := s.st.Orders[:0]
	removed := false
	for _, o := range s.st.Orders {
		if o.ID == orderID {
			removed = true
			continue
		}
		kept = append(kept, o)
	}
	s.st.Orders = kept
	if removed {
		s.st.Persist()
	}
	return nil
}

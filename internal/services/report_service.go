package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"resto_pos_backend/internal/models"
	"resto_pos_backend/internal/store"
)

// csvHeader is the fixed column order of the sales export.
var csvHeader = []string{
	"order_id", "timestamp", "cashier", "items", "subtotal", "tax", "total",
	"payment_method", "status",
}

// --- ReportService Interface ---

// ReportService derives sales and stock views from the canonical state.
// Everything here is a pure read; nothing is cached or persisted.
type ReportService interface {
	SalesSummary(filters models.ReportFilters) (*models.SalesSummary, error)
	ExportSalesCSV(w io.Writer, filters models.ReportFilters) error
	Receipt(orderID string) (*models.Receipt, error)
	LowStock() []models.Ingredient
}

type reportService struct {
	st *store.State
}

// NewReportService creates a new instance of ReportService.
func NewReportService(st *store.State) ReportService {
	return &reportService{st: st}
}

// parseRange turns the optional YYYY-MM-DD bounds into an inclusive window.
func parseRange(filters models.ReportFilters) (from, to time.Time, err error) {
	if filters.From != nil {
		from, err = time.Parse("2006-01-02", *filters.From)
		if err != nil {
			return from, to, fmt.Errorf("%w: invalid from date %q, expected YYYY-MM-DD", ErrValidation, *filters.From)
		}
	}
	if filters.To != nil {
		to, err = time.Parse("2006-01-02", *filters.To)
		if err != nil {
			return from, to, fmt.Errorf("%w: invalid to date %q, expected YYYY-MM-DD", ErrValidation, *filters.To)
		}
		to = to.Add(24 * time.Hour) // inclusive end of day
	}
	return from, to, nil
}

func inRange(ts, from, to time.Time) bool {
	if !from.IsZero() && ts.Before(from) {
		return false
	}
	if !to.IsZero() && !ts.Before(to) {
		return false
	}
	return true
}

// SalesSummary aggregates completed orders in the window. Cancelled orders
// are excluded entirely.
func (s *reportService) SalesSummary(filters models.ReportFilters) (*models.SalesSummary, error) {
	from, to, err := parseRange(filters)
	if err != nil {
		return nil, err
	}

	s.st.Lock()
	defer s.st.Unlock()

	summary := &models.SalesSummary{
		ByPayment:   []models.PaymentBreakdown{},
		TopProducts: []models.TopProduct{},
	}
	byPayment := map[string]*models.PaymentBreakdown{}
	byProduct := map[string]*models.TopProduct{}

	for _, order := range s.st.Orders {
		if order.Status != models.StatusCompleted || !inRange(order.Timestamp, from, to) {
			continue
		}
		summary.OrderCount++
		summary.GrossSales += order.Total
		summary.TaxCollected += order.Tax
		summary.NetSales += order.Subtotal

		pb, ok := byPayment[order.PaymentMethod]
		if !ok {
			pb = &models.PaymentBreakdown{Method: order.PaymentMethod}
			byPayment[order.PaymentMethod] = pb
		}
		pb.Count++
		pb.Amount += order.Total

		for _, line := range order.Items {
			tp, ok := byProduct[line.ProductID]
			if !ok {
				tp = &models.TopProduct{ProductID: line.ProductID, Name: line.Name}
				byProduct[line.ProductID] = tp
			}
			tp.Quantity += line.Quantity
			tp.Revenue += line.Price * float64(line.Quantity)
		}
	}

	for _, pb := range byPayment {
		summary.ByPayment = append(summary.ByPayment, *pb)
	}
	sort.Slice(summary.ByPayment, func(i, j int) bool {
		return summary.ByPayment[i].Method < summary.ByPayment[j].Method
	})

	for _, tp := range byProduct {
		summary.TopProducts = append(summary.TopProducts, *tp)
	}
	sort.Slice(summary.TopProducts, func(i, j int) bool {
		if summary.TopProducts[i].Quantity != summary.TopProducts[j].Quantity {
			return summary.TopProducts[i].Quantity > summary.TopProducts[j].Quantity
		}
		return summary.TopProducts[i].Name < summary.TopProducts[j].Name
	})
	if len(summary.TopProducts) > 10 {
		summary.TopProducts = summary.TopProducts[:10]
	}

	return summary, nil
}

// ExportSalesCSV writes one row per order in the window, fixed column order,
// UTF-8, free-text fields quoted by the csv writer as needed.
func (s *reportService) ExportSalesCSV(w io.Writer, filters models.ReportFilters) error {
	from, to, err := parseRange(filters)
	if err != nil {
		return err
	}

	s.st.Lock()
	defer s.st.Unlock()

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, order := range s.st.Orders {
		if !inRange(order.Timestamp, from, to) {
			continue
		}
		cashier := order.CashierID
		if u := s.st.FindUser(order.CashierID); u != nil {
			cashier = u.Name
		}
		itemCount := 0
		for _, line := range order.Items {
			itemCount += line.Quantity
		}
		row := []string{
			order.ID,
			order.Timestamp.Format(time.RFC3339),
			cashier,
			strconv.Itoa(itemCount),
			strconv.FormatFloat(order.Subtotal, 'f', 2, 64),
			strconv.FormatFloat(order.Tax, 'f', 2, 64),
			strconv.FormatFloat(order.Total, 'f', 2, 64),
			order.PaymentMethod,
			order.Status,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for order %s: %w", order.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Receipt composes a printable receipt from an order and the business info
// as it stands right now. The receipt is built on demand, never stored.
func (s *reportService) Receipt(orderID string) (*models.Receipt, error) {
	s.st.Lock()
	defer s.st.Unlock()

	var order *models.Order
	for i := range s.st.Orders {
		if s.st.Orders[i].ID == orderID {
			order = &s.st.Orders[i]
			break
		}
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	receipt := &models.Receipt{
		Header: models.ReceiptHeader{
			StoreName: s.st.BusinessInfo.Name,
			Address:   s.st.BusinessInfo.Address,
			Phone:     s.st.BusinessInfo.Phone,
			TaxID:     s.st.BusinessInfo.TaxID,
		},
		OrderID:      order.ID,
		Date:         order.Timestamp.Format("2006-01-02 15:04"),
		PaymentType:  order.PaymentMethod,
		Currency:     s.st.Settings.Currency,
		Subtotal:     order.Subtotal,
		Tax:          order.Tax,
		Total:        order.Total,
		CashReceived: order.CashReceived,
		ChangeDue:    order.ChangeDue,
	}
	if u := s.st.FindUser(order.CashierID); u != nil {
		receipt.Cashier = u.Name
	}
	for _, line := range order.Items {
		receipt.Lines = append(receipt.Lines, models.ReceiptLine{
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.Price,
			Total:     line.Price * float64(line.Quantity),
		})
	}
	return receipt, nil
}

// LowStock lists ingredients at or below their reorder threshold. Stock is
// informational only; nothing in the order path changes it.
func (s *reportService) LowStock() []models.Ingredient {
	s.st.Lock()
	defer s.st.Unlock()

	var out []models.Ingredient
	for _, ing := range s.st.Ingredients {
		if ing.Stock <= ing.MinStock {
			out = append(out, ing)
		}
	}
	return out
}

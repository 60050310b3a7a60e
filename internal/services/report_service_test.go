package services

import (
	"strings"
	"testing"

	"resto_pos_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutFixture(t *testing.T) (*reportFixture, ReportService) {
	t.Helper()
	st := newTestState()
	cart := NewCartService(st)
	loginAs(t, st, "5678")

	_, _ = cart.AddToCart(AddToCartRequest{ProductID: "p-a"})
	_, _ = cart.AddToCart(AddToCartRequest{ProductID: "p-a"})
	first, err := cart.CompleteOrder(CheckoutRequest{PaymentMethod: models.PaymentCash, CashReceived: cashPtr(50)})
	require.NoError(t, err)

	_, _ = cart.AddToCart(AddToCartRequest{ProductID: "p-b"})
	second, err := cart.CompleteOrder(CheckoutRequest{PaymentMethod: models.PaymentCard})
	require.NoError(t, err)

	return &reportFixture{cart: cart, first: first, second: second}, NewReportService(st)
}

type reportFixture struct {
	cart          CartService
	first, second *models.Order
}

func TestSalesSummary(t *testing.T) {
	fx, reports := checkoutFixture(t)

	summary, err := reports.SalesSummary(models.ReportFilters{})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.OrderCount)
	assert.InDelta(t, fx.first.Total+fx.second.Total, summary.GrossSales, 0.001)
	assert.InDelta(t, fx.first.Tax+fx.second.Tax, summary.TaxCollected, 0.001)
	require.Len(t, summary.ByPayment, 2)

	// Soup sold 2, Sandwich 1.
	require.NotEmpty(t, summary.TopProducts)
	assert.Equal(t, "Soup", summary.TopProducts[0].Name)
	assert.Equal(t, 2, summary.TopProducts[0].Quantity)
}

func TestSalesSummary_ExcludesCancelled(t *testing.T) {
	fx, reports := checkoutFixture(t)

	_, err := fx.cart.CancelOrder("u-admin", fx.first.ID)
	require.NoError(t, err)

	summary, err := reports.SalesSummary(models.ReportFilters{})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.OrderCount)
	assert.InDelta(t, fx.second.Total, summary.GrossSales, 0.001)
}

func TestSalesSummary_BadDateRange(t *testing.T) {
	_, reports := checkoutFixture(t)
	bad := "not-a-date"
	_, err := reports.SalesSummary(models.ReportFilters{From: &bad})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestExportSalesCSV(t *testing.T) {
	fx, reports := checkoutFixture(t)

	var buf strings.Builder
	require.NoError(t, reports.ExportSalesCSV(&buf, models.ReportFilters{}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3, "header plus one row per order")
	assert.Equal(t, "order_id,timestamp,cashier,items,subtotal,tax,total,payment_method,status", lines[0])

	// Most recent order first, cashier resolved to a name.
	assert.Contains(t, lines[1], fx.second.ID)
	assert.Contains(t, lines[1], "Ben")
	assert.Contains(t, lines[1], "card")
	assert.Contains(t, lines[2], "cash")
}

func TestReceipt(t *testing.T) {
	fx, reports := checkoutFixture(t)

	receipt, err := reports.Receipt(fx.first.ID)
	require.NoError(t, err)

	assert.Equal(t, fx.first.ID, receipt.OrderID)
	assert.Equal(t, "Ben", receipt.Cashier)
	assert.Equal(t, models.PaymentCash, receipt.PaymentType)
	require.Len(t, receipt.Lines, 1)
	assert.Equal(t, "Soup", receipt.Lines[0].Name)
	assert.Equal(t, 2, receipt.Lines[0].Quantity)
	assert.InDelta(t, 13.00, receipt.Lines[0].Total, 0.001)
	require.NotNil(t, receipt.ChangeDue)

	_, err = reports.Receipt("ghost")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestLowStock(t *testing.T) {
	st := newTestState()
	st.Ingredients = []models.Ingredient{
		{ID: "i-1", Name: "Salt", Stock: 1, MinStock: 2},
		{ID: "i-2", Name: "Pepper", Stock: 10, MinStock: 2},
		{ID: "i-3", Name: "Oil", Stock: 2, MinStock: 2},
	}
	reports := NewReportService(st)

	low := reports.LowStock()
	require.Len(t, low, 2)
	assert.Equal(t, "Salt", low[0].Name)
	assert.Equal(t, "Oil", low[1].Name)
}

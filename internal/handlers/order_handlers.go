package handlers

import (
	"errors"
	"net/http"

	"resto_pos_backend/internal/services"
	"resto_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// OrderHandler exposes the order history.
type OrderHandler struct {
	cart    services.CartService
	reports services.ReportService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(cs services.CartService, rs services.ReportService) *OrderHandler {
	return &OrderHandler{cart: cs, reports: rs}
}

// GetOrders returns the order history, most recent first.
func (h *OrderHandler) GetOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.cart.Orders())
}

// GetOrderByID returns a single order.
func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	order, err := h.cart.GetOrder(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Order not found.", err.Error()))
			return
		}
		utils.LogError(err, "GetOrderByID: Error from cart.GetOrder")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch order.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, order)
}

// GetReceipt composes a printable receipt for an order.
func (h *OrderHandler) GetReceipt(c *gin.Context) {
	receipt, err := h.reports.Receipt(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Order not found.", err.Error()))
			return
		}
		utils.LogError(err, "GetReceipt: Error from reports.Receipt")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build receipt.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// CancelOrder flips a completed order to cancelled.
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	order, err := h.cart.CancelOrder(c.GetString("userID"), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrForbidden):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "Admin role required.", err.Error()))
		case errors.Is(err, services.ErrOrderNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Order not found.", err.Error()))
		case errors.Is(err, services.ErrNotCancellable):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Only completed orders can be cancelled.", err.Error()))
		default:
			utils.LogError(err, "CancelOrder: Error from cart.CancelOrder")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to cancel order.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, order)
}

// DeleteOrder removes an order from history.
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.cart.DeleteOrder(c.GetString("userID"), c.Param("id")); err != nil {
		if errors.Is(err, services.ErrForbidden) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "Admin role required.", err.Error()))
			return
		}
		utils.LogError(err, "DeleteOrder: Error from cart.DeleteOrder")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete order.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}

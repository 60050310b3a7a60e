package handlers

import (
	"errors"
	"net/http"

	"resto_pos_backend/internal/services"
	"resto_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CartHandler exposes the active cart and checkout.
type CartHandler struct {
	cart services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cs services.CartService) *CartHandler {
	return &CartHandler{cart: cs}
}

// GetCart returns the cart lines with derived subtotal/tax/total.
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cart.Cart())
}

// AddItem adds one product to the cart.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req services.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	line, err := h.cart.AddToCart(req)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Product not found.", err.Error()))
			return
		}
		utils.LogError(err, "AddItem: Error from cart.AddToCart")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to add item.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"line": line, "cart": h.cart.Cart()})
}

// UpdateItem sets a cart line to an absolute quantity; zero or below removes it.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req services.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	h.cart.UpdateQuantity(c.Param("id"), req.Quantity)
	c.JSON(http.StatusOK, h.cart.Cart())
}

// RemoveItem removes a cart line. Absent ids are a no-op.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	h.cart.RemoveFromCart(c.Param("id"))
	c.JSON(http.StatusOK, h.cart.Cart())
}

// ClearCart voids the cart.
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.cart.ClearCart()
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

// Checkout finalizes the cart into a completed order.
func (h *CartHandler) Checkout(c *gin.Context) {
	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	order, err := h.cart.CompleteOrder(req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoSession):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No user is logged in at the till.", err.Error()))
		case errors.Is(err, services.ErrEmptyCart):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Cart is empty.", err.Error()))
		case errors.Is(err, services.ErrInsufficientCash):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Cash received does not cover the total.", err.Error()))
		case errors.Is(err, services.ErrValidation):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid payment method.", err.Error()))
		default:
			utils.LogError(err, "Checkout: Error from cart.CompleteOrder")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to complete order.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, order)
}

package public

import (
	"errors"

	"github.com/subhe-sadik/shop-api/internal/http/response"
	"github.com/subhe-sadik/shop-api/internal/logger"
	"github.com/subhe-sadik/shop-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutRequest customer details submitted with the order. Line items come
// from the server-side cart, never from the request body.
type CheckoutRequest struct {
	FullName          string `json:"full_name" binding:"required"`
	MobilePhoneNumber string `json:"mobile_phone_number" binding:"required"`
	Address           string `json:"address" binding:"required"`
	ShippingZone      string `json:"shipping_zone" binding:"required"`
	Email             string `json:"email"`
	OrderNotes        string `json:"order_notes"`
}

// Checkout places a cash-on-delivery order from the session cart and clears
// the cart on success.
func (h *Handler) Checkout(c *gin.Context) {
	key, ok := cartKey(c)
	if !ok {
		return
	}
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	cartView := h.CartService.Get(key)
	order, err := h.OrderService.PlaceOrder(service.PlaceOrderInput{
		Customer: service.CustomerInfo{
			FullName:          req.FullName,
			MobilePhoneNumber: req.MobilePhoneNumber,
			Address:           req.Address,
			ShippingZone:      req.ShippingZone,
			Email:             req.Email,
			OrderNotes:        req.OrderNotes,
		},
		Items: cartView.Items,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyOrder):
			respondError(c, response.CodeBadRequest, "cart is empty", nil)
		case errors.Is(err, service.ErrMissingCustomerField):
			respondError(c, response.CodeBadRequest, "missing required customer field", nil)
		case errors.Is(err, service.ErrInvalidShippingZone):
			respondError(c, response.CodeBadRequest, "invalid shipping zone", nil)
		case errors.Is(err, service.ErrInvalidEmail):
			respondError(c, response.CodeBadRequest, "invalid email address", nil)
		case errors.Is(err, service.ErrInvalidOrderItem):
			respondError(c, response.CodeBadRequest, "invalid order item", nil)
		default:
			respondError(c, response.CodeInternal, "failed to place order", err)
		}
		return
	}

	// The order is committed; a failed cart clear must not fail checkout.
	if _, err := h.CartService.Clear(key); err != nil {
		logger.Warnw("cart_clear_failed", "cart_key", key, "order_id", order.ID, "error", err)
	}

	response.SuccessWithMsg(c, "order placed", gin.H{
		"order_id":     order.ID,
		"order_status": order.OrderStatus,
		"total_amount": order.TotalAmount,
	})
}

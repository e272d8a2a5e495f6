package public

import (
	"errors"

	"github.com/subhe-sadik/shop-api/internal/cart"
	"github.com/subhe-sadik/shop-api/internal/http/response"
	"github.com/subhe-sadik/shop-api/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest add-to-cart payload.
type AddCartItemRequest struct {
	ProductID   uint   `json:"product_id" binding:"required"`
	VariantName string `json:"variant_name"`
	Quantity    int    `json:"quantity" binding:"required"`
	Silent      bool   `json:"silent"`
}

// UpdateCartItemRequest quantity-change payload.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// SetCartOpenRequest drawer-toggle payload.
type SetCartOpenRequest struct {
	Open bool `json:"open"`
}

// GetCart returns the session cart with derived totals.
func (h *Handler) GetCart(c *gin.Context) {
	key, ok := cartKey(c)
	if !ok {
		return
	}
	response.Success(c, h.CartService.Get(key))
}

// AddCartItem merges a product into the session cart.
func (h *Handler) AddCartItem(c *gin.Context) {
	key, ok := cartKey(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	notice, view, err := h.CartService.AddItem(key, req.ProductID, req.VariantName, req.Quantity, req.Silent)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			respondError(c, response.CodeNotFound, "product not found", nil)
		case errors.Is(err, service.ErrVariantNotFound):
			respondError(c, response.CodeBadRequest, "unknown product variant", nil)
		case errors.Is(err, service.ErrProductUnavailable):
			respondError(c, response.CodeBadRequest, "product out of stock", nil)
		case errors.Is(err, cart.ErrInvalidQuantity):
			respondError(c, response.CodeBadRequest, "invalid quantity", nil)
		default:
			respondError(c, response.CodeInternal, "failed to update cart", err)
		}
		return
	}

	response.Success(c, gin.H{
		"notice": notice,
		"cart":   view,
	})
}

// UpdateCartItem changes a line's quantity; zero or less removes it.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	key, ok := cartKey(c)
	if !ok {
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	view, err := h.CartService.UpdateQuantity(key, c.Param("item_id"), req.Quantity)
	if err != nil {
		respondCartMutationError(c, err)
		return
	}
	response.Success(c, view)
}

// RemoveCartItem drops a line from the session cart.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	key, ok := cartKey(c)
	if !ok {
		return
	}
	view, err := h.CartService.RemoveItem(key, c.Param("item_id"))
	if err != nil {
		respondCartMutationError(c, err)
		return
	}
	response.Success(c, view)
}

// ClearCart empties the session cart.
func (h *Handler) ClearCart(c *gin.Context) {
	key, ok := cartKey(c)
	if !ok {
		return
	}
	view, err := h.CartService.Clear(key)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to update cart", err)
		return
	}
	response.Success(c, view)
}

// SetCartOpen toggles the cart drawer flag.
func (h *Handler) SetCartOpen(c *gin.Context) {
	key, ok := cartKey(c)
	if !ok {
		return
	}
	var req SetCartOpenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	view, err := h.CartService.SetOpen(key, req.Open)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to update cart", err)
		return
	}
	response.Success(c, view)
}

func respondCartMutationError(c *gin.Context, err error) {
	if errors.Is(err, cart.ErrItemNotFound) {
		respondError(c, response.CodeNotFound, "cart item not found", nil)
		return
	}
	respondError(c, response.CodeInternal, "failed to update cart", err)
}

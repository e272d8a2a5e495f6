package service

import "errors"

// Shared business errors. Handlers map these onto response codes.
var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrOrderNotFound        = errors.New("order not found")
	ErrEmptyOrder           = errors.New("order has no items")
	ErrInvalidOrderItem     = errors.New("invalid order item")
	ErrMissingCustomerField = errors.New("missing required customer field")
	ErrInvalidShippingZone  = errors.New("invalid shipping zone")
	ErrInvalidOrderStatus   = errors.New("invalid order status")

	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product unavailable")
	ErrVariantNotFound    = errors.New("product variant not found")
	ErrInvalidVariant     = errors.New("invalid product variant")
	ErrSlugTaken          = errors.New("slug already in use")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryNotEmpty   = errors.New("category still has products")

	ErrCartItemNotFound = errors.New("cart item not found")
	ErrInvalidQuantity  = errors.New("invalid quantity")

	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
	ErrInvalidEmail              = errors.New("invalid email address")
	ErrEmailRecipientRejected    = errors.New("email recipient rejected")

	ErrUploadTooLarge       = errors.New("upload exceeds size limit")
	ErrUploadTypeNotAllowed = errors.New("upload type not allowed")
)

package constants

// Order status constants
const (
	OrderStatusPending   = "Pending"
	OrderStatusConfirmed = "Confirmed"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

// OrderStatuses lists every valid order status, in lifecycle order.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// Payment method constants
const (
	PaymentMethodCOD = "cod"
)

// Shipping zone constants
const (
	ShippingZoneInsideDhaka  = "Inside Dhaka"
	ShippingZoneOutsideDhaka = "Outside Dhaka"
)

// Queue constants
const (
	QueueDefault     = "default"
	TaskOrderCreated = "order:created"
)

// Cache constants
const (
	RedisPrefixDefault = "shop"
)

// HTTP header carrying the storefront cart session key
const (
	HeaderCartKey = "X-Cart-Key"
)

package pricing

import (
	"errors"

	"github.com/subhe-sadik/shop-api/internal/models"

	"github.com/shopspring/decimal"
)

// ErrUnknownShippingZone the requested zone is not in the delivery table.
var ErrUnknownShippingZone = errors.New("unknown shipping zone")

// ShippingZones maps each deliverable zone to its flat delivery charge.
// The public config endpoint exposes this same table to the storefront, so
// cart preview and order authority always agree.
var ShippingZones = map[string]models.Money{
	"Inside Dhaka":  models.NewMoneyFromInt(80),
	"Outside Dhaka": models.NewMoneyFromInt(130),
}

// Totals the derived amounts for a set of lines and a shipping zone.
type Totals struct {
	Subtotal       models.Money `json:"subtotal"`
	DeliveryCharge models.Money `json:"delivery_charge"`
	Total          models.Money `json:"total"`
}

// DeliveryCharge returns the charge for a zone.
func DeliveryCharge(zone string) (models.Money, error) {
	charge, ok := ShippingZones[zone]
	if !ok {
		return models.Money{}, ErrUnknownShippingZone
	}
	return charge, nil
}

// ComputeTotals derives subtotal, delivery charge and grand total from the
// captured unit prices. Prices on the lines are authoritative; the caller is
// expected to have validated quantities.
func ComputeTotals(items []models.LineItem, zone string) (Totals, error) {
	charge, err := DeliveryCharge(zone)
	if err != nil {
		return Totals{}, err
	}
	subtotal := itemsSubtotal(items)
	return Totals{
		Subtotal:       models.NewMoneyFromDecimal(subtotal),
		DeliveryCharge: charge,
		Total:          models.NewMoneyFromDecimal(subtotal.Add(charge.Decimal)),
	}, nil
}

// CartTotals returns the item count and price total for cart display.
func CartTotals(items []models.LineItem) (int, models.Money) {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count, models.NewMoneyFromDecimal(itemsSubtotal(items))
}

func itemsSubtotal(items []models.LineItem) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range items {
		line := item.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(line)
	}
	return subtotal
}

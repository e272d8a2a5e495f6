package pricing

import (
	"errors"
	"testing"

	"github.com/subhe-sadik/shop-api/internal/models"
)

func TestComputeTotalsInsideDhaka(t *testing.T) {
	items := []models.LineItem{
		{ID: "1-500g", ProductID: 1, Name: "Honey", UnitPrice: models.NewMoneyFromInt(600), Quantity: 3},
	}
	totals, err := ComputeTotals(items, "Inside Dhaka")
	if err != nil {
		t.Fatalf("compute totals failed: %v", err)
	}
	if totals.Subtotal.String() != "1800.00" {
		t.Fatalf("unexpected subtotal: %s", totals.Subtotal)
	}
	if totals.DeliveryCharge.String() != "80.00" {
		t.Fatalf("unexpected delivery charge: %s", totals.DeliveryCharge)
	}
	if totals.Total.String() != "1880.00" {
		t.Fatalf("unexpected total: %s", totals.Total)
	}
}

func TestComputeTotalsOutsideDhaka(t *testing.T) {
	items := []models.LineItem{
		{ID: "2-1kg", ProductID: 2, Name: "Dates", UnitPrice: models.NewMoneyFromInt(950), Quantity: 1},
		{ID: "3", ProductID: 3, Name: "Ghee", UnitPrice: models.NewMoneyFromInt(450), Quantity: 2},
	}
	totals, err := ComputeTotals(items, "Outside Dhaka")
	if err != nil {
		t.Fatalf("compute totals failed: %v", err)
	}
	if totals.Subtotal.String() != "1850.00" {
		t.Fatalf("unexpected subtotal: %s", totals.Subtotal)
	}
	if totals.Total.String() != "1980.00" {
		t.Fatalf("unexpected total: %s", totals.Total)
	}
}

func TestComputeTotalsUnknownZone(t *testing.T) {
	items := []models.LineItem{
		{ID: "1", ProductID: 1, UnitPrice: models.NewMoneyFromInt(100), Quantity: 1},
	}
	if _, err := ComputeTotals(items, "Chittagong"); !errors.Is(err, ErrUnknownShippingZone) {
		t.Fatalf("expected ErrUnknownShippingZone, got %v", err)
	}
}

func TestComputeTotalsEmptyItems(t *testing.T) {
	totals, err := ComputeTotals(nil, "Inside Dhaka")
	if err != nil {
		t.Fatalf("compute totals failed: %v", err)
	}
	if totals.Subtotal.String() != "0.00" {
		t.Fatalf("unexpected subtotal: %s", totals.Subtotal)
	}
	if totals.Total.String() != "80.00" {
		t.Fatalf("unexpected total: %s", totals.Total)
	}
}

func TestCartTotals(t *testing.T) {
	items := []models.LineItem{
		{ID: "1-500g", UnitPrice: models.NewMoneyFromInt(600), Quantity: 2},
		{ID: "1-1kg", UnitPrice: models.NewMoneyFromInt(1100), Quantity: 1},
	}
	count, total := CartTotals(items)
	if count != 3 {
		t.Fatalf("unexpected item count: %d", count)
	}
	if total.String() != "2300.00" {
		t.Fatalf("unexpected price total: %s", total)
	}
}

func TestDeliveryChargeTable(t *testing.T) {
	inside, err := DeliveryCharge("Inside Dhaka")
	if err != nil {
		t.Fatalf("inside dhaka lookup failed: %v", err)
	}
	if inside.String() != "80.00" {
		t.Fatalf("unexpected inside dhaka charge: %s", inside)
	}
	outside, err := DeliveryCharge("Outside Dhaka")
	if err != nil {
		t.Fatalf("outside dhaka lookup failed: %v", err)
	}
	if outside.String() != "130.00" {
		t.Fatalf("unexpected outside dhaka charge: %s", outside)
	}
}

package service

import (
	"fmt"
	"html"
	"strings"
	"unicode"

	"github.com/subhe-sadik/shop-api/internal/config"
	"github.com/subhe-sadik/shop-api/internal/models"

	"github.com/shopspring/decimal"
)

const orderDateLayout = "Jan 2, 2006 03:04 PM"

// buildOrderNotificationEmail drafts the new-order email for the shop admin:
// customer contact with call and WhatsApp links, an itemized product table,
// totals, and a deep link into the back office.
func buildOrderNotificationEmail(shop *config.ShopConfig, order *models.Order) (string, string) {
	subject := fmt.Sprintf("New Order #%d - %s", order.ID, shop.Name)

	var b strings.Builder
	b.WriteString(`<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto">`)
	fmt.Fprintf(&b, `<h2 style="color:#2e7d32">New order received on %s</h2>`, html.EscapeString(shop.Name))
	fmt.Fprintf(&b, `<p><strong>Order ID:</strong> #%d<br/>`, order.ID)
	fmt.Fprintf(&b, `<strong>Placed:</strong> %s</p>`, order.CreatedAt.Format(orderDateLayout))

	b.WriteString(`<h3>Customer</h3><p>`)
	fmt.Fprintf(&b, `%s<br/>`, html.EscapeString(order.FullName))
	phone := html.EscapeString(order.MobilePhoneNumber)
	fmt.Fprintf(&b, `<a href="tel:%s">%s</a> &middot; <a href="https://wa.me/%s">WhatsApp</a><br/>`,
		phone, phone, WhatsAppNumber(order.MobilePhoneNumber))
	fmt.Fprintf(&b, `%s (%s)`, html.EscapeString(order.Address), html.EscapeString(order.ShippingZone))
	if order.Email != "" {
		fmt.Fprintf(&b, `<br/>%s`, html.EscapeString(order.Email))
	}
	b.WriteString(`</p>`)
	if order.OrderNotes != "" {
		fmt.Fprintf(&b, `<p><strong>Notes:</strong> %s</p>`, html.EscapeString(order.OrderNotes))
	}

	b.WriteString(`<h3>Items</h3>`)
	b.WriteString(`<table style="width:100%;border-collapse:collapse" border="1" cellpadding="6">`)
	b.WriteString(`<tr style="background:#f5f5f5"><th align="left">Product</th><th>Size</th><th>Qty</th><th align="right">Price</th><th align="right">Total</th></tr>`)
	for _, product := range order.Products {
		lineTotal := product.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(product.Quantity)))
		size := product.Size
		if size == "" {
			size = "-"
		}
		fmt.Fprintf(&b, `<tr><td>%s</td><td align="center">%s</td><td align="center">%d</td><td align="right">%s</td><td align="right">%s</td></tr>`,
			html.EscapeString(product.Name),
			html.EscapeString(size),
			product.Quantity,
			product.UnitPrice.String(),
			models.NewMoneyFromDecimal(lineTotal).String(),
		)
	}
	b.WriteString(`</table>`)

	currency := shop.Currency
	fmt.Fprintf(&b, `<p style="text-align:right">Subtotal: %s %s<br/>`, order.Subtotal.String(), currency)
	fmt.Fprintf(&b, `Delivery (%s): %s %s<br/>`, html.EscapeString(order.ShippingZone), order.DeliveryCharge.String(), currency)
	fmt.Fprintf(&b, `<strong>Total: %s %s</strong></p>`, order.TotalAmount.String(), currency)

	fmt.Fprintf(&b, `<p><a href="%s" style="background:#2e7d32;color:#fff;padding:10px 20px;text-decoration:none;border-radius:4px">View order</a></p>`,
		adminOrderURL(shop.BaseURL, order.ID))
	b.WriteString(`</div>`)

	return subject, b.String()
}

// WhatsAppNumber normalizes a local mobile number for wa.me links: strips
// non-digits and rewrites the local 01 prefix to the 880 country code.
func WhatsAppNumber(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	normalized := digits.String()
	if strings.HasPrefix(normalized, "01") {
		return "88" + normalized
	}
	return normalized
}

func adminOrderURL(baseURL string, orderID uint) string {
	return fmt.Sprintf("%s/admin/orders/%d", strings.TrimRight(baseURL, "/"), orderID)
}

package service

import (
	"net/mail"
	"strings"

	"github.com/subhe-sadik/shop-api/internal/constants"
	"github.com/subhe-sadik/shop-api/internal/logger"
	"github.com/subhe-sadik/shop-api/internal/models"
	"github.com/subhe-sadik/shop-api/internal/pricing"
	"github.com/subhe-sadik/shop-api/internal/repository"
)

// OrderService order submission and back-office order management.
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates an order service.
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// CustomerInfo checkout contact and delivery details.
type CustomerInfo struct {
	FullName          string
	MobilePhoneNumber string
	Address           string
	ShippingZone      string
	Email             string
	OrderNotes        string
}

// PlaceOrderInput checkout submission.
type PlaceOrderInput struct {
	Customer CustomerInfo
	Items    []models.LineItem
}

// PlaceOrder validates the submission, recomputes totals server-side and
// creates the order in one atomic write. Client-supplied totals are never
// trusted; only the captured unit prices and quantities matter.
func (s *OrderService) PlaceOrder(input PlaceOrderInput) (*models.Order, error) {
	customer, err := validateCustomer(input.Customer)
	if err != nil {
		return nil, err
	}
	if len(input.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, item := range input.Items {
		if item.ProductID == 0 || strings.TrimSpace(item.Name) == "" {
			return nil, ErrInvalidOrderItem
		}
		if item.Quantity < 1 {
			return nil, ErrInvalidOrderItem
		}
		if item.UnitPrice.IsNegative() {
			return nil, ErrInvalidOrderItem
		}
	}

	totals, err := pricing.ComputeTotals(input.Items, customer.ShippingZone)
	if err != nil {
		return nil, ErrInvalidShippingZone
	}

	order := &models.Order{
		FullName:          customer.FullName,
		MobilePhoneNumber: customer.MobilePhoneNumber,
		Address:           customer.Address,
		ShippingZone:      customer.ShippingZone,
		Email:             customer.Email,
		OrderNotes:        customer.OrderNotes,
		Subtotal:          totals.Subtotal,
		DeliveryCharge:    totals.DeliveryCharge,
		TotalAmount:       totals.Total,
		PaymentMethod:     constants.PaymentMethodCOD,
		OrderStatus:       constants.OrderStatusPending,
	}

	products := make([]models.OrderProduct, 0, len(input.Items))
	for _, item := range input.Items {
		products = append(products, models.OrderProduct{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Size:      item.VariantName,
		})
	}

	if err := s.orderRepo.Create(order, products); err != nil {
		return nil, err
	}

	logger.Infow("order_placed",
		"order_id", order.ID,
		"phone", order.MobilePhoneNumber,
		"zone", order.ShippingZone,
		"total", order.TotalAmount.String(),
		"items", len(products),
	)
	order.Products = products
	return order, nil
}

// GetOrder fetches one order with its product rows.
func (s *OrderService) GetOrder(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListOrders lists orders for the back office.
func (s *OrderService) ListOrders(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListAdmin(filter)
}

// UpdateOrderStatus moves an order to a new lifecycle status.
func (s *OrderService) UpdateOrderStatus(id uint, status string) error {
	if !isValidOrderStatus(status) {
		return ErrInvalidOrderStatus
	}
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}
	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return err
	}
	logger.Infow("order_status_updated",
		"order_id", id,
		"from", order.OrderStatus,
		"to", status,
	)
	return nil
}

func isValidOrderStatus(status string) bool {
	for _, valid := range constants.OrderStatuses {
		if status == valid {
			return true
		}
	}
	return false
}

func validateCustomer(customer CustomerInfo) (CustomerInfo, error) {
	customer.FullName = strings.TrimSpace(customer.FullName)
	customer.MobilePhoneNumber = strings.TrimSpace(customer.MobilePhoneNumber)
	customer.Address = strings.TrimSpace(customer.Address)
	customer.ShippingZone = strings.TrimSpace(customer.ShippingZone)
	customer.Email = strings.TrimSpace(customer.Email)
	customer.OrderNotes = strings.TrimSpace(customer.OrderNotes)

	if customer.FullName == "" || customer.MobilePhoneNumber == "" || customer.Address == "" {
		return customer, ErrMissingCustomerField
	}
	if _, ok := pricing.ShippingZones[customer.ShippingZone]; !ok {
		return customer, ErrInvalidShippingZone
	}
	if customer.Email != "" {
		if _, err := mail.ParseAddress(customer.Email); err != nil {
			return customer, ErrInvalidEmail
		}
	}
	return customer, nil
}

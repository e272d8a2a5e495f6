package service

import (
	"strings"
	"time"

	"github.com/subhe-sadik/shop-api/internal/config"
	"github.com/subhe-sadik/shop-api/internal/logger"
	"github.com/subhe-sadik/shop-api/internal/models"
	"github.com/subhe-sadik/shop-api/internal/repository"
)

// Burst policy for repeated orders from one phone number. Deliberate policy
// values, not configuration: the threshold counts the just-created order.
const (
	orderBurstWindow    = 5 * time.Minute
	orderBurstThreshold = 4
)

// AdminMailer is the slice of the email service the trigger needs.
type AdminMailer interface {
	Configured() bool
	SendHTMLEmail(toEmail, subject, htmlBody string) error
}

// OrderNotifyService runs once per created order: flags suspicious bursts,
// then emails the admin. Every processed order ends in exactly one outcome
// (rate-limited, email sent, or email failed), except when SMTP credentials
// are absent, which aborts without touching the order.
type OrderNotifyService struct {
	cfg       *config.Config
	orderRepo repository.OrderRepository
	mailer    AdminMailer
	now       func() time.Time
}

// NewOrderNotifyService creates the order-created handler.
func NewOrderNotifyService(cfg *config.Config, orderRepo repository.OrderRepository, mailer AdminMailer) *OrderNotifyService {
	return &OrderNotifyService{
		cfg:       cfg,
		orderRepo: orderRepo,
		mailer:    mailer,
		now:       time.Now,
	}
}

// ProcessOrderCreated handles one order-created event. A returned error means
// the fetch or flag write failed and the task should be redelivered; all
// terminal outcomes (including email failure) return nil.
func (s *OrderNotifyService) ProcessOrderCreated(orderID uint) error {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		logger.Errorw("order_created_fetch_failed", "order_id", orderID, "error", err)
		return err
	}
	if order == nil {
		logger.Warnw("order_created_order_missing", "order_id", orderID)
		return nil
	}

	if err := validateOrderShape(order); err != nil {
		// Malformed document: abort without writing any outcome flags.
		logger.Errorw("order_created_malformed_order",
			"order_id", orderID,
			"error", err,
		)
		return nil
	}

	limited, err := s.checkOrderBurst(order)
	if err != nil {
		return err
	}
	if limited {
		return nil
	}

	if !s.mailer.Configured() || strings.TrimSpace(s.cfg.Email.AdminTo) == "" {
		logger.Errorw("order_created_email_credentials_missing",
			"order_id", orderID,
			"action", "notification_skipped",
		)
		return nil
	}

	subject, html := buildOrderNotificationEmail(&s.cfg.Shop, order)
	now := s.now()
	if sendErr := s.mailer.SendHTMLEmail(s.cfg.Email.AdminTo, subject, html); sendErr != nil {
		logger.Errorw("order_created_email_failed",
			"order_id", orderID,
			"error", sendErr,
		)
		sent := false
		if err := s.orderRepo.UpdateFields(order.ID, map[string]interface{}{
			"email_sent":      &sent,
			"email_error":     sendErr.Error(),
			"email_failed_at": &now,
		}); err != nil {
			logger.Errorw("order_created_flag_write_failed", "order_id", orderID, "error", err)
			return err
		}
		return nil
	}

	sent := true
	if err := s.orderRepo.UpdateFields(order.ID, map[string]interface{}{
		"email_sent":    &sent,
		"email_sent_at": &now,
	}); err != nil {
		logger.Errorw("order_created_flag_write_failed", "order_id", orderID, "error", err)
		return err
	}
	logger.Infow("order_created_email_sent", "order_id", orderID, "to", s.cfg.Email.AdminTo)
	return nil
}

// checkOrderBurst counts recent orders from the same phone and, at the
// threshold, marks the order suspicious instead of emailing. The count
// includes the current order. Count failures log and fail open; a failed
// flag write is returned so the task is redelivered.
func (s *OrderNotifyService) checkOrderBurst(order *models.Order) (bool, error) {
	since := s.now().Add(-orderBurstWindow)
	count, err := s.orderRepo.CountRecentByPhone(order.MobilePhoneNumber, since)
	if err != nil {
		logger.Warnw("order_burst_check_failed",
			"order_id", order.ID,
			"phone", order.MobilePhoneNumber,
			"error", err,
			"action", "proceeding_without_rate_limit",
		)
		return false, nil
	}
	if count < orderBurstThreshold {
		return false, nil
	}

	logger.Warnw("order_burst_detected",
		"order_id", order.ID,
		"phone", order.MobilePhoneNumber,
		"recent_orders", count,
		"window_minutes", int(orderBurstWindow.Minutes()),
	)
	now := s.now()
	sent := false
	if err := s.orderRepo.UpdateFields(order.ID, map[string]interface{}{
		"suspicious":      true,
		"email_sent":      &sent,
		"rate_limited_at": &now,
	}); err != nil {
		logger.Errorw("order_burst_flag_write_failed", "order_id", order.ID, "error", err)
		return true, err
	}
	return true, nil
}

func validateOrderShape(order *models.Order) error {
	if strings.TrimSpace(order.FullName) == "" {
		return ErrMissingCustomerField
	}
	if strings.TrimSpace(order.MobilePhoneNumber) == "" {
		return ErrMissingCustomerField
	}
	if len(order.Products) == 0 {
		return ErrEmptyOrder
	}
	for _, product := range order.Products {
		if product.Quantity < 1 || product.UnitPrice.IsNegative() {
			return ErrInvalidOrderItem
		}
	}
	if order.TotalAmount.IsNegative() {
		return ErrInvalidOrderItem
	}
	return nil
}

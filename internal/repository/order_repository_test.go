package repository

import (
	"testing"
	"time"

	"github.com/subhe-sadik/shop-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupOrderRepositoryTest(t *testing.T) *GormOrderRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.OrderProduct{}); err != nil {
		t.Fatalf("migrate orders failed: %v", err)
	}
	return NewOrderRepository(db)
}

func createTestOrder(t *testing.T, repo *GormOrderRepository, phone, status string) *models.Order {
	t.Helper()
	order := &models.Order{
		FullName:          "Rahim Uddin",
		MobilePhoneNumber: phone,
		Address:           "House 12, Road 3, Dhanmondi",
		ShippingZone:      "Inside Dhaka",
		Subtotal:          models.NewMoneyFromInt(600),
		DeliveryCharge:    models.NewMoneyFromInt(80),
		TotalAmount:       models.NewMoneyFromInt(680),
		PaymentMethod:     "cod",
		OrderStatus:       status,
	}
	products := []models.OrderProduct{
		{ProductID: 1, Name: "Sundarban Raw Honey", Quantity: 1, UnitPrice: models.NewMoneyFromInt(600), Size: "500g"},
	}
	if err := repo.Create(order, products); err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}

func TestOrderCreateWritesSnapshotRows(t *testing.T) {
	repo := setupOrderRepositoryTest(t)
	order := createTestOrder(t, repo, "01712345678", "Pending")

	got, err := repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if got == nil {
		t.Fatalf("expected order")
	}
	if len(got.Products) != 1 {
		t.Fatalf("product rows want 1 got %d", len(got.Products))
	}
	if got.Products[0].OrderID != order.ID {
		t.Fatalf("snapshot row not linked to order: %+v", got.Products[0])
	}
	if got.TotalAmount.String() != "680.00" {
		t.Fatalf("total want 680.00 got %s", got.TotalAmount.String())
	}
}

func TestOrderGetByIDMissingReturnsNil(t *testing.T) {
	repo := setupOrderRepositoryTest(t)

	got, err := repo.GetByID(9999)
	if err != nil {
		t.Fatalf("get missing order failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing order, got %+v", got)
	}
}

func TestCountRecentByPhone(t *testing.T) {
	repo := setupOrderRepositoryTest(t)

	for i := 0; i < 3; i++ {
		createTestOrder(t, repo, "01712345678", "Pending")
	}
	createTestOrder(t, repo, "01898765432", "Pending")

	count, err := repo.CountRecentByPhone("01712345678", time.Now().Add(-5*time.Minute))
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 3 {
		t.Fatalf("count want 3 got %d", count)
	}

	count, err = repo.CountRecentByPhone("01712345678", time.Now().Add(time.Minute))
	if err != nil {
		t.Fatalf("count with future window failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("count with future window want 0 got %d", count)
	}
}

func TestOrderListAdminFilters(t *testing.T) {
	repo := setupOrderRepositoryTest(t)

	pending := createTestOrder(t, repo, "01712345678", "Pending")
	createTestOrder(t, repo, "01712345678", "Delivered")
	flagged := createTestOrder(t, repo, "01898765432", "Pending")
	if err := repo.UpdateFields(flagged.ID, map[string]interface{}{"suspicious": true}); err != nil {
		t.Fatalf("flag order failed: %v", err)
	}

	_, total, err := repo.ListAdmin(OrderListFilter{Page: 1, PageSize: 10, Status: "Pending"})
	if err != nil {
		t.Fatalf("list by status failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("pending total want 2 got %d", total)
	}

	orders, total, err := repo.ListAdmin(OrderListFilter{Page: 1, PageSize: 10, Phone: "01712345678"})
	if err != nil {
		t.Fatalf("list by phone failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("phone total want 2 got %d", total)
	}
	for _, o := range orders {
		if o.MobilePhoneNumber != "01712345678" {
			t.Fatalf("wrong phone in results: %s", o.MobilePhoneNumber)
		}
	}

	suspicious := true
	orders, total, err = repo.ListAdmin(OrderListFilter{Page: 1, PageSize: 10, Suspicious: &suspicious})
	if err != nil {
		t.Fatalf("list suspicious failed: %v", err)
	}
	if total != 1 || orders[0].ID != flagged.ID {
		t.Fatalf("suspicious filter want order %d, got total=%d", flagged.ID, total)
	}

	_ = pending
}

func TestOrderUpdateStatusAndFields(t *testing.T) {
	repo := setupOrderRepositoryTest(t)
	order := createTestOrder(t, repo, "01712345678", "Pending")

	if err := repo.UpdateStatus(order.ID, "Confirmed"); err != nil {
		t.Fatalf("update status failed: %v", err)
	}

	sentAt := time.Now()
	sent := true
	if err := repo.UpdateFields(order.ID, map[string]interface{}{
		"email_sent":    &sent,
		"email_sent_at": &sentAt,
	}); err != nil {
		t.Fatalf("update fields failed: %v", err)
	}

	got, err := repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if got.OrderStatus != "Confirmed" {
		t.Fatalf("status want Confirmed got %s", got.OrderStatus)
	}
	if got.EmailSent == nil || !*got.EmailSent {
		t.Fatalf("email_sent flag not persisted: %+v", got.EmailSent)
	}
	if got.EmailSentAt == nil {
		t.Fatalf("email_sent_at not persisted")
	}
}

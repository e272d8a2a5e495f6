package repository

import (
	"testing"

	"github.com/subhe-sadik/shop-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCartRepositoryTest(t *testing.T) *GormCartRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Cart{}); err != nil {
		t.Fatalf("migrate cart failed: %v", err)
	}
	return NewCartRepository(db)
}

func TestCartSaveUpsertsByKey(t *testing.T) {
	repo := setupCartRepositoryTest(t)

	first := &models.Cart{
		CartKey: "session-abc",
		Items: models.LineItems{
			{ID: "1", ProductID: 1, Name: "Sundarban Raw Honey", UnitPrice: models.NewMoneyFromInt(600), Quantity: 1},
		},
		IsOpen: true,
	}
	if err := repo.Save(first); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	// A fresh struct with the same key must update the existing row.
	second := &models.Cart{
		CartKey: "session-abc",
		Items: models.LineItems{
			{ID: "1", ProductID: 1, Name: "Sundarban Raw Honey", UnitPrice: models.NewMoneyFromInt(600), Quantity: 3},
		},
		IsOpen: false,
	}
	if err := repo.Save(second); err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected upsert onto row %d, got new row %d", first.ID, second.ID)
	}

	got, err := repo.GetByKey("session-abc")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got == nil {
		t.Fatalf("expected cart")
	}
	if len(got.Items) != 1 || got.Items[0].Quantity != 3 {
		t.Fatalf("items not updated: %+v", got.Items)
	}
	if got.IsOpen {
		t.Fatalf("is_open should be false after update")
	}
}

func TestCartGetByKeyMissingReturnsNil(t *testing.T) {
	repo := setupCartRepositoryTest(t)

	got, err := repo.GetByKey("no-such-session")
	if err != nil {
		t.Fatalf("get missing cart failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing cart, got %+v", got)
	}
}

func TestCartDeleteByKey(t *testing.T) {
	repo := setupCartRepositoryTest(t)

	if err := repo.Save(&models.Cart{CartKey: "session-del", Items: models.LineItems{}}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := repo.DeleteByKey("session-del"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	got, err := repo.GetByKey("session-del")
	if err != nil {
		t.Fatalf("get after delete failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected cart gone, got %+v", got)
	}

	// Empty key is a no-op, not an error.
	if err := repo.DeleteByKey(""); err != nil {
		t.Fatalf("delete empty key failed: %v", err)
	}
}

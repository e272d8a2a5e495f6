package repository

import (
	"testing"

	"github.com/subhe-sadik/shop-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupProductRepositoryTest(t *testing.T) *GormProductRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		t.Fatalf("migrate product failed: %v", err)
	}
	return NewProductRepository(db)
}

func createTestProduct(t *testing.T, repo *GormProductRepository, slug string, categoryID uint, active, inStock bool) *models.Product {
	t.Helper()
	product := &models.Product{
		CategoryID: categoryID,
		Slug:       slug,
		Name:       slug,
		Price:      models.NewMoneyFromInt(500),
		IsActive:   active,
		InStock:    inStock,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product %s failed: %v", slug, err)
	}
	if !active || !inStock {
		product.IsActive = active
		product.InStock = inStock
		if err := repo.Update(product); err != nil {
			t.Fatalf("update product %s failed: %v", slug, err)
		}
	}
	return product
}

func TestProductListFilters(t *testing.T) {
	repo := setupProductRepositoryTest(t)

	createTestProduct(t, repo, "active-in-stock", 1, true, true)
	createTestProduct(t, repo, "active-out-of-stock", 1, true, false)
	createTestProduct(t, repo, "inactive", 1, false, true)
	createTestProduct(t, repo, "other-category", 2, true, true)

	products, total, err := repo.List(ProductListFilter{Page: 1, PageSize: 10, OnlyActive: true})
	if err != nil {
		t.Fatalf("list active failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("active total want 3 got %d", total)
	}
	for _, p := range products {
		if !p.IsActive {
			t.Fatalf("inactive product %s leaked into active list", p.Slug)
		}
	}

	inStock := true
	_, total, err = repo.List(ProductListFilter{Page: 1, PageSize: 10, OnlyActive: true, InStock: &inStock})
	if err != nil {
		t.Fatalf("list in-stock failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("in-stock total want 2 got %d", total)
	}

	_, total, err = repo.List(ProductListFilter{Page: 1, PageSize: 10, CategoryID: 2})
	if err != nil {
		t.Fatalf("list by category failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("category total want 1 got %d", total)
	}

	_, total, err = repo.List(ProductListFilter{Page: 1, PageSize: 10, Search: "out-of-stock"})
	if err != nil {
		t.Fatalf("list by search failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("search total want 1 got %d", total)
	}
}

func TestProductGetBySlugOnlyActive(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	createTestProduct(t, repo, "inactive-slug", 1, false, true)

	product, err := repo.GetBySlug("inactive-slug", true)
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if product != nil {
		t.Fatalf("expected nil for inactive product, got %+v", product)
	}

	product, err = repo.GetBySlug("inactive-slug", false)
	if err != nil {
		t.Fatalf("get by slug (admin) failed: %v", err)
	}
	if product == nil {
		t.Fatalf("expected product when onlyActive=false")
	}
}

func TestProductVariantsRoundTrip(t *testing.T) {
	repo := setupProductRepositoryTest(t)

	product := &models.Product{
		CategoryID:  1,
		Slug:        "variant-product",
		Name:        "Variant Product",
		Price:       models.NewMoneyFromInt(350),
		HasVariants: true,
		Variants: models.ProductVariants{
			{Name: "250g", Price: models.NewMoneyFromInt(350), InStock: true},
			{Name: "500g", Price: models.NewMoneyFromInt(600), InStock: false},
		},
		IsActive: true,
		InStock:  true,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := repo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got == nil {
		t.Fatalf("expected product")
	}
	if len(got.Variants) != 2 {
		t.Fatalf("variants want 2 got %d", len(got.Variants))
	}
	if got.Variants[1].Name != "500g" || got.Variants[1].InStock {
		t.Fatalf("second variant mismatch: %+v", got.Variants[1])
	}
	if got.Variants[0].Price.String() != "350.00" {
		t.Fatalf("variant price want 350.00 got %s", got.Variants[0].Price.String())
	}
}

func TestProductCountBySlugExcludesID(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	product := createTestProduct(t, repo, "unique-slug", 1, true, true)

	count, err := repo.CountBySlug("unique-slug", nil)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("count want 1 got %d", count)
	}

	count, err = repo.CountBySlug("unique-slug", &product.ID)
	if err != nil {
		t.Fatalf("count with exclude failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("count with exclude want 0 got %d", count)
	}
}

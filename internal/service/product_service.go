package service

import (
	"strings"

	"github.com/subhe-sadik/shop-api/internal/models"
	"github.com/subhe-sadik/shop-api/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductService catalog management.
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates the product service.
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// VariantInput one product size option.
type VariantInput struct {
	Name     string
	Price    decimal.Decimal
	OldPrice *decimal.Decimal
	InStock  bool
}

// ProductInput create/update input.
type ProductInput struct {
	CategoryID  uint
	Slug        string
	Name        string
	Description string
	Features    []string
	Images      []string
	Price       decimal.Decimal
	OldPrice    *decimal.Decimal
	Variants    []VariantInput
	InStock     *bool
	IsActive    *bool
	SortOrder   int
}

// ListPublic lists active products for the storefront.
func (s *ProductService) ListPublic(categoryID uint, search string, inStock *bool, page, pageSize int) ([]models.Product, int64, error) {
	filter := repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		CategoryID:   categoryID,
		Search:       search,
		InStock:      inStock,
		OnlyActive:   true,
		WithCategory: true,
	}
	return s.repo.List(filter)
}

// GetPublicBySlug fetches an active product by slug.
func (s *ProductService) GetPublicBySlug(slug string) (*models.Product, error) {
	product, err := s.repo.GetBySlug(slug, true)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// ListAdmin lists all products for the back office.
func (s *ProductService) ListAdmin(categoryID uint, search string, page, pageSize int) ([]models.Product, int64, error) {
	filter := repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		CategoryID:   categoryID,
		Search:       search,
		OnlyActive:   false,
		WithCategory: true,
	}
	return s.repo.List(filter)
}

// GetAdminByID fetches any product by ID.
func (s *ProductService) GetAdminByID(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create creates a product.
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	slug := strings.TrimSpace(input.Slug)
	name := strings.TrimSpace(input.Name)
	if slug == "" || name == "" || input.Price.IsNegative() {
		return nil, ErrProductUnavailable
	}

	count, err := s.repo.CountBySlug(slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugTaken
	}

	variants, err := buildVariants(input.Variants)
	if err != nil {
		return nil, err
	}

	product := models.Product{
		CategoryID:  input.CategoryID,
		Slug:        slug,
		Name:        name,
		Description: input.Description,
		Features:    models.StringArray(input.Features),
		Images:      models.StringArray(input.Images),
		Price:       models.NewMoneyFromDecimal(input.Price),
		OldPrice:    moneyPtr(input.OldPrice),
		HasVariants: len(variants) > 0,
		Variants:    variants,
		InStock:     true,
		IsActive:    true,
		SortOrder:   input.SortOrder,
	}
	if input.InStock != nil {
		product.InStock = *input.InStock
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := s.repo.Create(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update updates a product.
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	slug := strings.TrimSpace(input.Slug)
	name := strings.TrimSpace(input.Name)
	if slug == "" || name == "" || input.Price.IsNegative() {
		return nil, ErrProductUnavailable
	}

	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	count, err := s.repo.CountBySlug(slug, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugTaken
	}

	variants, err := buildVariants(input.Variants)
	if err != nil {
		return nil, err
	}

	product.CategoryID = input.CategoryID
	product.Slug = slug
	product.Name = name
	product.Description = input.Description
	product.Features = models.StringArray(input.Features)
	product.Images = models.StringArray(input.Images)
	product.Price = models.NewMoneyFromDecimal(input.Price)
	product.OldPrice = moneyPtr(input.OldPrice)
	product.HasVariants = len(variants) > 0
	product.Variants = variants
	product.SortOrder = input.SortOrder
	if input.InStock != nil {
		product.InStock = *input.InStock
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product.
func (s *ProductService) Delete(id uint) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.repo.Delete(id)
}

// FindVariant locates a variant on a product by name, nil when absent.
func FindVariant(product *models.Product, variantName string) *models.ProductVariant {
	if product == nil {
		return nil
	}
	name := strings.TrimSpace(variantName)
	if name == "" {
		return nil
	}
	for i := range product.Variants {
		if product.Variants[i].Name == name {
			return &product.Variants[i]
		}
	}
	return nil
}

func buildVariants(inputs []VariantInput) (models.ProductVariants, error) {
	if len(inputs) == 0 {
		return nil, nil
	}
	seen := make(map[string]bool, len(inputs))
	variants := make(models.ProductVariants, 0, len(inputs))
	for _, in := range inputs {
		name := strings.TrimSpace(in.Name)
		if name == "" || in.Price.IsNegative() || seen[name] {
			return nil, ErrInvalidVariant
		}
		seen[name] = true
		variants = append(variants, models.ProductVariant{
			Name:     name,
			Price:    models.NewMoneyFromDecimal(in.Price),
			OldPrice: moneyPtr(in.OldPrice),
			InStock:  in.InStock,
		})
	}
	return variants, nil
}

func moneyPtr(d *decimal.Decimal) *models.Money {
	if d == nil {
		return nil
	}
	m := models.NewMoneyFromDecimal(*d)
	return &m
}

package service

import (
	"strings"

	"github.com/subhe-sadik/shop-api/internal/models"
	"github.com/subhe-sadik/shop-api/internal/repository"
)

// CategoryService category management.
type CategoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService creates the category service.
func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// CategoryInput create/update input.
type CategoryInput struct {
	Slug      string
	Name      string
	Image     string
	IsActive  *bool
	SortOrder int
}

// ListPublic lists active categories for the storefront.
func (s *CategoryService) ListPublic() ([]models.Category, error) {
	return s.repo.List(true)
}

// ListAdmin lists all categories for the back office.
func (s *CategoryService) ListAdmin() ([]models.Category, error) {
	return s.repo.List(false)
}

// Create creates a category.
func (s *CategoryService) Create(input CategoryInput) (*models.Category, error) {
	slug := strings.TrimSpace(input.Slug)
	name := strings.TrimSpace(input.Name)
	if slug == "" || name == "" {
		return nil, ErrCategoryNotFound
	}

	count, err := s.repo.CountBySlug(slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugTaken
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	category := models.Category{
		Slug:      slug,
		Name:      name,
		Image:     input.Image,
		IsActive:  isActive,
		SortOrder: input.SortOrder,
	}
	if err := s.repo.Create(&category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Update updates a category.
func (s *CategoryService) Update(id uint, input CategoryInput) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	slug := strings.TrimSpace(input.Slug)
	count, err := s.repo.CountBySlug(slug, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugTaken
	}

	category.Slug = slug
	category.Name = strings.TrimSpace(input.Name)
	category.Image = input.Image
	category.SortOrder = input.SortOrder
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes an empty category.
func (s *CategoryService) Delete(id uint) error {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}

	count, err := s.repo.CountProducts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryNotEmpty
	}
	return s.repo.Delete(id)
}

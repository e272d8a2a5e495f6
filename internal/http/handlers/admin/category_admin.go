package admin

import (
	"errors"
	"strconv"

	"github.com/subhe-sadik/shop-api/internal/http/response"
	"github.com/subhe-sadik/shop-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryRequest create/update payload.
type CategoryRequest struct {
	Slug      string `json:"slug" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Image     string `json:"image"`
	IsActive  *bool  `json:"is_active"`
	SortOrder int    `json:"sort_order"`
}

func (r CategoryRequest) toInput() service.CategoryInput {
	return service.CategoryInput{
		Slug:      r.Slug,
		Name:      r.Name,
		Image:     r.Image,
		IsActive:  r.IsActive,
		SortOrder: r.SortOrder,
	}
}

// GetAdminCategories lists all categories, inactive ones included.
func (h *Handler) GetAdminCategories(c *gin.Context) {
	categories, err := h.CategoryService.ListAdmin()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load categories", err)
		return
	}
	response.Success(c, categories)
}

// CreateCategory adds a category.
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	category, err := h.CategoryService.Create(req.toInput())
	if err != nil {
		respondCategoryError(c, err)
		return
	}
	response.Success(c, category)
}

// UpdateCategory edits a category.
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid category id", nil)
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	category, err := h.CategoryService.Update(uint(id), req.toInput())
	if err != nil {
		respondCategoryError(c, err)
		return
	}
	response.Success(c, category)
}

// DeleteCategory removes an empty category.
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid category id", nil)
		return
	}

	if err := h.CategoryService.Delete(uint(id)); err != nil {
		respondCategoryError(c, err)
		return
	}
	response.SuccessWithMsg(c, "category deleted", nil)
}

func respondCategoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCategoryNotFound):
		respondError(c, response.CodeNotFound, "category not found", nil)
	case errors.Is(err, service.ErrSlugTaken):
		respondError(c, response.CodeBadRequest, "slug already in use", nil)
	case errors.Is(err, service.ErrCategoryNotEmpty):
		respondError(c, response.CodeBadRequest, "category still has products", nil)
	default:
		respondError(c, response.CodeInternal, "failed to save category", err)
	}
}

package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/subhe-sadik/shop-api/internal/http/response"
	"github.com/subhe-sadik/shop-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// VariantRequest one size/weight option in a product payload.
type VariantRequest struct {
	Name     string           `json:"name" binding:"required"`
	Price    decimal.Decimal  `json:"price"`
	OldPrice *decimal.Decimal `json:"old_price"`
	InStock  bool             `json:"in_stock"`
}

// ProductRequest create/update payload.
type ProductRequest struct {
	CategoryID  uint             `json:"category_id" binding:"required"`
	Slug        string           `json:"slug" binding:"required"`
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	Features    []string         `json:"features"`
	Images      []string         `json:"images"`
	Price       decimal.Decimal  `json:"price"`
	OldPrice    *decimal.Decimal `json:"old_price"`
	Variants    []VariantRequest `json:"variants"`
	InStock     *bool            `json:"in_stock"`
	IsActive    *bool            `json:"is_active"`
	SortOrder   int              `json:"sort_order"`
}

func (r ProductRequest) toInput() service.ProductInput {
	variants := make([]service.VariantInput, 0, len(r.Variants))
	for _, v := range r.Variants {
		variants = append(variants, service.VariantInput{
			Name:     v.Name,
			Price:    v.Price,
			OldPrice: v.OldPrice,
			InStock:  v.InStock,
		})
	}
	return service.ProductInput{
		CategoryID:  r.CategoryID,
		Slug:        r.Slug,
		Name:        r.Name,
		Description: r.Description,
		Features:    r.Features,
		Images:      r.Images,
		Price:       r.Price,
		OldPrice:    r.OldPrice,
		Variants:    variants,
		InStock:     r.InStock,
		IsActive:    r.IsActive,
		SortOrder:   r.SortOrder,
	}
}

// GetAdminProducts lists products for the back office.
func (h *Handler) GetAdminProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 64)
	search := strings.TrimSpace(c.Query("search"))

	products, total, err := h.ProductService.ListAdmin(uint(categoryID), search, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load products", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, products, pagination)
}

// GetAdminProduct returns one product, active or not.
func (h *Handler) GetAdminProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid product id", nil)
		return
	}

	product, err := h.ProductService.GetAdminByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to load product", err)
		return
	}
	response.Success(c, product)
}

// CreateProduct adds a product.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	product, err := h.ProductService.Create(req.toInput())
	if err != nil {
		respondProductError(c, err)
		return
	}
	response.Success(c, product)
}

// UpdateProduct edits a product.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid product id", nil)
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	product, err := h.ProductService.Update(uint(id), req.toInput())
	if err != nil {
		respondProductError(c, err)
		return
	}
	response.Success(c, product)
}

// DeleteProduct removes a product.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid product id", nil)
		return
	}

	if err := h.ProductService.Delete(uint(id)); err != nil {
		respondProductError(c, err)
		return
	}
	response.SuccessWithMsg(c, "product deleted", nil)
}

func respondProductError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		respondError(c, response.CodeNotFound, "product not found", nil)
	case errors.Is(err, service.ErrSlugTaken):
		respondError(c, response.CodeBadRequest, "slug already in use", nil)
	case errors.Is(err, service.ErrProductUnavailable):
		respondError(c, response.CodeBadRequest, "invalid product payload", nil)
	case errors.Is(err, service.ErrInvalidVariant):
		respondError(c, response.CodeBadRequest, "invalid product variant", nil)
	case errors.Is(err, service.ErrCategoryNotFound):
		respondError(c, response.CodeBadRequest, "category not found", nil)
	default:
		respondError(c, response.CodeInternal, "failed to save product", err)
	}
}

package public

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/subhe-sadik/shop-api/internal/cache"
	"github.com/subhe-sadik/shop-api/internal/http/response"
	"github.com/subhe-sadik/shop-api/internal/pricing"
	"github.com/subhe-sadik/shop-api/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	publicConfigCacheKey   = "public:config"
	publicConfigCacheTTL   = 5 * time.Minute
	publicCatalogCacheTTL  = 60 * time.Second
	publicCategoryCacheKey = "public:categories"
)

// GetConfig returns storefront settings: shop identity, shipping zones and
// their charges, and the checkout notice.
func (h *Handler) GetConfig(c *gin.Context) {
	var cached map[string]interface{}
	if hit, err := cache.GetJSON(c.Request.Context(), publicConfigCacheKey, &cached); err == nil && hit {
		response.Success(c, cached)
		return
	}

	zones := make(map[string]interface{}, len(pricing.ShippingZones))
	for zone, charge := range pricing.ShippingZones {
		zones[zone] = charge
	}
	data := map[string]interface{}{
		"shop_name":       h.Config.Shop.Name,
		"currency":        h.Config.Shop.Currency,
		"shipping_zones":  zones,
		"checkout_notice": h.Config.Shop.CheckoutNotice,
	}

	_ = cache.SetJSON(c.Request.Context(), publicConfigCacheKey, data, publicConfigCacheTTL)
	response.Success(c, data)
}

// GetCategories returns the active category list.
func (h *Handler) GetCategories(c *gin.Context) {
	var cached []interface{}
	if hit, err := cache.GetJSON(c.Request.Context(), publicCategoryCacheKey, &cached); err == nil && hit {
		response.Success(c, cached)
		return
	}

	categories, err := h.CategoryService.ListPublic()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load categories", err)
		return
	}

	_ = cache.SetJSON(c.Request.Context(), publicCategoryCacheKey, categories, publicCatalogCacheTTL)
	response.Success(c, categories)
}

// GetProducts returns the active product list with filtering and pagination.
func (h *Handler) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 64)
	search := strings.TrimSpace(c.Query("search"))

	var inStock *bool
	if raw := strings.TrimSpace(c.Query("in_stock")); raw != "" {
		value := raw == "true" || raw == "1"
		inStock = &value
	}

	products, total, err := h.ProductService.ListPublic(uint(categoryID), search, inStock, page, pageSize)
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

// GetProductBySlug returns one active product.
func (h *Handler) GetProductBySlug(c *gin.Context) {
	slug := c.Param("slug")

	product, err := h.ProductService.GetPublicBySlug(slug)
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

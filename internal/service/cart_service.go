package service

import (
	"github.com/subhe-sadik/shop-api/internal/cart"
	"github.com/subhe-sadik/shop-api/internal/models"
	"github.com/subhe-sadik/shop-api/internal/repository"
)

// CartView is the cart state returned to the storefront. Totals are derived
// from the line items on every read.
type CartView struct {
	Items      []models.LineItem `json:"items"`
	TotalItems int               `json:"total_items"`
	TotalPrice models.Money      `json:"total_price"`
	IsOpen     bool              `json:"is_open"`
}

// CartService bridges the catalog and the per-session cart store.
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates the cart service.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func (s *CartService) store(cartKey string) *cart.Store {
	return cart.NewStore(cartKey, s.cartRepo)
}

func (s *CartService) view(store *cart.Store) CartView {
	return CartView{
		Items:      store.Items(),
		TotalItems: store.TotalItems(),
		TotalPrice: store.TotalPrice(),
		IsOpen:     store.IsOpen(),
	}
}

// Get returns the current cart for a session key.
func (s *CartService) Get(cartKey string) CartView {
	return s.view(s.store(cartKey))
}

// AddItem resolves a product/variant from the catalog and merges it into the
// cart. The notice is empty in silent mode.
func (s *CartService) AddItem(cartKey string, productID uint, variantName string, quantity int, silent bool) (string, CartView, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return "", CartView{}, err
	}
	if product == nil || !product.IsActive {
		return "", CartView{}, ErrProductNotFound
	}
	if !product.InStock {
		return "", CartView{}, ErrProductUnavailable
	}

	var variant *models.ProductVariant
	if variantName != "" {
		variant = FindVariant(product, variantName)
		if variant == nil {
			return "", CartView{}, ErrVariantNotFound
		}
		if !variant.InStock {
			return "", CartView{}, ErrProductUnavailable
		}
	}

	store := s.store(cartKey)
	notice, err := store.AddItem(product, variant, quantity, silent)
	if err != nil {
		return "", CartView{}, err
	}
	return notice, s.view(store), nil
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (s *CartService) UpdateQuantity(cartKey, lineID string, quantity int) (CartView, error) {
	store := s.store(cartKey)
	if err := store.UpdateQuantity(lineID, quantity); err != nil {
		return CartView{}, err
	}
	return s.view(store), nil
}

// RemoveItem drops a line from the cart.
func (s *CartService) RemoveItem(cartKey, lineID string) (CartView, error) {
	store := s.store(cartKey)
	if err := store.RemoveItem(lineID); err != nil {
		return CartView{}, err
	}
	return s.view(store), nil
}

// Clear empties the cart, typically after checkout.
func (s *CartService) Clear(cartKey string) (CartView, error) {
	store := s.store(cartKey)
	if err := store.Clear(); err != nil {
		return CartView{}, err
	}
	return s.view(store), nil
}

// SetOpen toggles the cart drawer flag.
func (s *CartService) SetOpen(cartKey string, open bool) (CartView, error) {
	store := s.store(cartKey)
	var err error
	if open {
		err = store.Open()
	} else {
		err = store.Close()
	}
	if err != nil {
		return CartView{}, err
	}
	return s.view(store), nil
}

package cart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/subhe-sadik/shop-api/internal/logger"
	"github.com/subhe-sadik/shop-api/internal/models"
	"github.com/subhe-sadik/shop-api/internal/pricing"
)

// Repository is the slice of cart persistence the store needs.
type Repository interface {
	GetByKey(cartKey string) (*models.Cart, error)
	Save(cart *models.Cart) error
}

// Cart store errors.
var (
	ErrNilProduct      = errors.New("nil product")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrItemNotFound    = errors.New("cart item not found")
)

// Store is the per-session cart state machine. Every mutation persists
// through the repository before the in-memory state is committed, so a
// failed write leaves the cart unchanged. Totals are always derived from
// the line items, never stored.
type Store struct {
	key    string
	repo   Repository
	items  models.LineItems
	isOpen bool
}

// NewStore loads the persisted cart for a session key. Corrupt or unreadable
// state falls back to an empty cart rather than failing the session.
func NewStore(key string, repo Repository) *Store {
	store := &Store{key: key, repo: repo, items: models.LineItems{}}
	persisted, err := repo.GetByKey(key)
	if err != nil {
		logger.Warnw("cart_rehydrate_failed",
			"cart_key", key,
			"error", err,
			"fallback", "empty_cart",
		)
		return store
	}
	if persisted != nil {
		store.items = persisted.Items
		if store.items == nil {
			store.items = models.LineItems{}
		}
		store.isOpen = persisted.IsOpen
	}
	return store
}

// Items returns a copy of the current lines.
func (s *Store) Items() []models.LineItem {
	items := make([]models.LineItem, len(s.items))
	copy(items, s.items)
	return items
}

// IsOpen reports the cart drawer flag.
func (s *Store) IsOpen() bool {
	return s.isOpen
}

// TotalItems returns the derived quantity sum.
func (s *Store) TotalItems() int {
	count, _ := pricing.CartTotals(s.items)
	return count
}

// TotalPrice returns the derived price sum.
func (s *Store) TotalPrice() models.Money {
	_, total := pricing.CartTotals(s.items)
	return total
}

// AddItem merges a product/variant into the cart. Adding an existing line
// accumulates its quantity. The returned notice is empty in silent mode
// (buy-now flows that skip the confirmation).
func (s *Store) AddItem(product *models.Product, variant *models.ProductVariant, quantity int, silent bool) (string, error) {
	if product == nil {
		return "", ErrNilProduct
	}
	if quantity < 1 {
		return "", ErrInvalidQuantity
	}

	variantName := ""
	unitPrice := product.Price
	if variant != nil {
		variantName = variant.Name
		unitPrice = variant.Price
	}
	id := models.LineItemID(product.ID, variantName)

	image := ""
	if len(product.Images) > 0 {
		image = product.Images[0]
	}

	next := s.cloneItems()
	found := false
	for i := range next {
		if next[i].ID == id {
			next[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		next = append(next, models.LineItem{
			ID:          id,
			ProductID:   product.ID,
			Name:        product.Name,
			UnitPrice:   unitPrice,
			Image:       image,
			Quantity:    quantity,
			VariantName: variantName,
		})
	}

	open := s.isOpen || !silent
	if err := s.persist(next, open); err != nil {
		return "", err
	}

	if silent {
		return "", nil
	}
	label := product.Name
	if variantName != "" {
		label = fmt.Sprintf("%s (%s)", product.Name, variantName)
	}
	return fmt.Sprintf("%s added to cart", label), nil
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (s *Store) UpdateQuantity(id string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(id)
	}
	next := s.cloneItems()
	for i := range next {
		if next[i].ID == id {
			next[i].Quantity = quantity
			return s.persist(next, s.isOpen)
		}
	}
	return ErrItemNotFound
}

// RemoveItem drops a line from the cart.
func (s *Store) RemoveItem(id string) error {
	next := make(models.LineItems, 0, len(s.items))
	found := false
	for _, item := range s.items {
		if item.ID == id {
			found = true
			continue
		}
		next = append(next, item)
	}
	if !found {
		return ErrItemNotFound
	}
	return s.persist(next, s.isOpen)
}

// Clear empties the cart.
func (s *Store) Clear() error {
	return s.persist(models.LineItems{}, s.isOpen)
}

// Open marks the cart drawer open.
func (s *Store) Open() error {
	return s.persist(s.cloneItems(), true)
}

// Close marks the cart drawer closed.
func (s *Store) Close() error {
	return s.persist(s.cloneItems(), false)
}

func (s *Store) cloneItems() models.LineItems {
	next := make(models.LineItems, len(s.items))
	copy(next, s.items)
	return next
}

// persist writes the candidate state durably, then commits it in memory.
func (s *Store) persist(items models.LineItems, open bool) error {
	cart := &models.Cart{
		CartKey: s.key,
		Items:   items,
		IsOpen:  open,
	}
	if err := s.repo.Save(cart); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	s.items = items
	s.isOpen = open
	return nil
}

// FindLine returns the line with the given id, nil when absent.
func (s *Store) FindLine(id string) *models.LineItem {
	id = strings.TrimSpace(id)
	for i := range s.items {
		if s.items[i].ID == id {
			item := s.items[i]
			return &item
		}
	}
	return nil
}

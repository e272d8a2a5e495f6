package cart

import (
	"errors"
	"testing"

	"github.com/subhe-sadik/shop-api/internal/models"
)

type stubCartRepo struct {
	carts   map[string]*models.Cart
	getErr  error
	saveErr error
	saves   int
}

func newStubCartRepo() *stubCartRepo {
	return &stubCartRepo{carts: map[string]*models.Cart{}}
}

func (r *stubCartRepo) GetByKey(cartKey string) (*models.Cart, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	cart, ok := r.carts[cartKey]
	if !ok {
		return nil, nil
	}
	clone := *cart
	return &clone, nil
}

func (r *stubCartRepo) Save(cart *models.Cart) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	clone := *cart
	r.carts[cart.CartKey] = &clone
	return nil
}

func newTestStore(t *testing.T, key string, repo Repository) *Store {
	t.Helper()
	return NewStore(key, repo)
}

func honeyProduct() *models.Product {
	return &models.Product{
		ID:     1,
		Name:   "Sundarban Honey",
		Price:  models.NewMoneyFromInt(600),
		Images: models.StringArray{"/uploads/honey.jpg"},
	}
}

func honeyVariant() *models.ProductVariant {
	return &models.ProductVariant{Name: "500g", Price: models.NewMoneyFromInt(600), InStock: true}
}

func TestAddItemMergesDuplicateLines(t *testing.T) {
	repo := newStubCartRepo()
	store := newTestStore(t, "k1", repo)

	if _, err := store.AddItem(honeyProduct(), honeyVariant(), 1, false); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if _, err := store.AddItem(honeyProduct(), honeyVariant(), 2, false); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	items := store.Items()
	if len(items) != 1 {
		t.Fatalf("expected one merged line, got %d", len(items))
	}
	if items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", items[0].Quantity)
	}
	if items[0].ID != "1-500g" {
		t.Fatalf("unexpected line id: %s", items[0].ID)
	}
}

func TestAddItemDifferentVariantsStaySeparate(t *testing.T) {
	repo := newStubCartRepo()
	store := newTestStore(t, "k1", repo)

	if _, err := store.AddItem(honeyProduct(), honeyVariant(), 1, false); err != nil {
		t.Fatalf("add 500g failed: %v", err)
	}
	big := &models.ProductVariant{Name: "1kg", Price: models.NewMoneyFromInt(1100), InStock: true}
	if _, err := store.AddItem(honeyProduct(), big, 1, false); err != nil {
		t.Fatalf("add 1kg failed: %v", err)
	}

	if len(store.Items()) != 2 {
		t.Fatalf("expected two lines, got %d", len(store.Items()))
	}
	if store.TotalItems() != 2 {
		t.Fatalf("expected 2 total items, got %d", store.TotalItems())
	}
	if store.TotalPrice().String() != "1700.00" {
		t.Fatalf("unexpected total price: %s", store.TotalPrice())
	}
}

func TestAddItemNotice(t *testing.T) {
	repo := newStubCartRepo()
	store := newTestStore(t, "k1", repo)

	notice, err := store.AddItem(honeyProduct(), honeyVariant(), 1, false)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if notice != "Sundarban Honey (500g) added to cart" {
		t.Fatalf("unexpected notice: %q", notice)
	}
	if !store.IsOpen() {
		t.Fatalf("cart should open after a loud add")
	}

	notice, err = store.AddItem(honeyProduct(), honeyVariant(), 1, true)
	if err != nil {
		t.Fatalf("silent add failed: %v", err)
	}
	if notice != "" {
		t.Fatalf("silent add should not produce a notice, got %q", notice)
	}
}

func TestAddItemRejectsBadInput(t *testing.T) {
	repo := newStubCartRepo()
	store := newTestStore(t, "k1", repo)

	if _, err := store.AddItem(nil, nil, 1, false); !errors.Is(err, ErrNilProduct) {
		t.Fatalf("expected ErrNilProduct, got %v", err)
	}
	if _, err := store.AddItem(honeyProduct(), honeyVariant(), 0, false); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if len(store.Items()) != 0 {
		t.Fatalf("rejected input must not mutate the cart")
	}
}

func TestUpdateQuantityFloorRemovesLine(t *testing.T) {
	repo := newStubCartRepo()
	store := newTestStore(t, "k1", repo)
	if _, err := store.AddItem(honeyProduct(), honeyVariant(), 2, true); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := store.UpdateQuantity("1-500g", 0); err != nil {
		t.Fatalf("update to zero failed: %v", err)
	}
	if len(store.Items()) != 0 {
		t.Fatalf("zero quantity should remove the line")
	}

	if _, err := store.AddItem(honeyProduct(), honeyVariant(), 2, true); err != nil {
		t.Fatalf("re-add failed: %v", err)
	}
	if err := store.UpdateQuantity("1-500g", -3); err != nil {
		t.Fatalf("negative update failed: %v", err)
	}
	if len(store.Items()) != 0 {
		t.Fatalf("negative quantity should remove the line")
	}
}

func TestUpdateQuantityMissingLine(t *testing.T) {
	repo := newStubCartRepo()
	store := newTestStore(t, "k1", repo)
	if err := store.UpdateQuantity("9-1kg", 2); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	repo := newStubCartRepo()
	store := newTestStore(t, "k1", repo)
	if _, err := store.AddItem(honeyProduct(), honeyVariant(), 2, false); err != nil {
		t.Fatalf("add 500g failed: %v", err)
	}
	big := &models.ProductVariant{Name: "1kg", Price: models.NewMoneyFromInt(1100), InStock: true}
	if _, err := store.AddItem(honeyProduct(), big, 1, false); err != nil {
		t.Fatalf("add 1kg failed: %v", err)
	}
	dates := &models.Product{ID: 2, Name: "Ajwa Dates", Price: models.NewMoneyFromInt(1200)}
	if _, err := store.AddItem(dates, nil, 1, false); err != nil {
		t.Fatalf("add dates failed: %v", err)
	}

	// A fresh store over the same repository sees identical state and totals,
	// with the lines in their original insertion order.
	reloaded := newTestStore(t, "k1", repo)
	items := reloaded.Items()
	if len(items) != 3 {
		t.Fatalf("expected three persisted lines, got %d", len(items))
	}
	for i, want := range []string{"1-500g", "1-1kg", "2"} {
		if items[i].ID != want {
			t.Fatalf("line %d want id %s got %s", i, want, items[i].ID)
		}
	}
	if reloaded.TotalItems() != store.TotalItems() {
		t.Fatalf("total items diverged: %d vs %d", reloaded.TotalItems(), store.TotalItems())
	}
	if reloaded.TotalPrice().String() != store.TotalPrice().String() {
		t.Fatalf("total price diverged: %s vs %s", reloaded.TotalPrice(), store.TotalPrice())
	}
	if !reloaded.IsOpen() {
		t.Fatalf("open flag should persist")
	}
}

func TestCorruptStateFallsBackToEmpty(t *testing.T) {
	repo := newStubCartRepo()
	repo.getErr = errors.New("invalid character 'x' looking for beginning of value")

	store := newTestStore(t, "k1", repo)
	if len(store.Items()) != 0 {
		t.Fatalf("corrupt state should yield an empty cart")
	}
	if store.TotalItems() != 0 || store.TotalPrice().String() != "0.00" {
		t.Fatalf("empty cart totals expected, got %d / %s", store.TotalItems(), store.TotalPrice())
	}

	// The store stays usable after the fallback.
	repo.getErr = nil
	if _, err := store.AddItem(honeyProduct(), honeyVariant(), 1, true); err != nil {
		t.Fatalf("add after fallback failed: %v", err)
	}
}

func TestPersistFailureLeavesStateUnchanged(t *testing.T) {
	repo := newStubCartRepo()
	store := newTestStore(t, "k1", repo)
	if _, err := store.AddItem(honeyProduct(), honeyVariant(), 1, true); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	repo.saveErr = errors.New("disk full")
	if _, err := store.AddItem(honeyProduct(), honeyVariant(), 5, true); err == nil {
		t.Fatalf("expected persist error")
	}
	if store.Items()[0].Quantity != 1 {
		t.Fatalf("failed persist must not change in-memory state, got quantity %d", store.Items()[0].Quantity)
	}
}

func TestClear(t *testing.T) {
	repo := newStubCartRepo()
	store := newTestStore(t, "k1", repo)
	if _, err := store.AddItem(honeyProduct(), honeyVariant(), 2, true); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if len(store.Items()) != 0 || store.TotalItems() != 0 {
		t.Fatalf("clear should empty the cart")
	}
}

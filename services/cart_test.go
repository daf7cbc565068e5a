package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthware/store-api/models"
)

func price(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestCart_NoCartYet(t *testing.T) {
	svc := NewCartService(newMemRepo())

	cart, payable, err := svc.Cart(1)

	require.NoError(t, err)
	assert.Nil(t, cart)
	assert.True(t, payable.Equal(decimal.Zero))
}

func TestAddItems_CreatesCartAndLines(t *testing.T) {
	repo := newMemRepo()
	a := repo.addProduct(models.Product{Name: "Mop", Price: price("10.00")})
	b := repo.addProduct(models.Product{Name: "Broom", Price: price("5.50")})
	svc := NewCartService(repo)

	items, payable, err := svc.AddItems(1, []CartEntry{
		{ProductID: a.ID, Quantity: 2},
		{ProductID: b.ID, Quantity: 1},
	})

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "25.50", payable.StringFixed(2))
	assert.Equal(t, "20.00", items[0].Total.StringFixed(2))
	assert.Equal(t, "10.00", items[0].UnitPrice.StringFixed(2))
	assert.Equal(t, "5.50", items[1].Total.StringFixed(2))
}

func TestAddItems_RoundsEachLineBeforeSumming(t *testing.T) {
	repo := newMemRepo()
	a := repo.addProduct(models.Product{Name: "Sponge", Price: price("0.335")})
	b := repo.addProduct(models.Product{Name: "Cloth", Price: price("0.335")})
	svc := NewCartService(repo)

	_, payable, err := svc.AddItems(1, []CartEntry{
		{ProductID: a.ID, Quantity: 1},
		{ProductID: b.ID, Quantity: 1},
	})

	require.NoError(t, err)
	// Each line rounds 0.335 -> 0.34 first; summing raw values then rounding
	// would give 0.67 instead.
	assert.Equal(t, "0.68", payable.StringFixed(2))
}

func TestAddItems_OverwritesQuantity(t *testing.T) {
	repo := newMemRepo()
	p := repo.addProduct(models.Product{Name: "Mop", Price: price("10.00")})
	svc := NewCartService(repo)

	_, _, err := svc.AddItems(1, []CartEntry{{ProductID: p.ID, Quantity: 2}})
	require.NoError(t, err)
	items, payable, err := svc.AddItems(1, []CartEntry{{ProductID: p.ID, Quantity: 5}})
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, "50.00", payable.StringFixed(2))
}

func TestAddItems_Idempotent(t *testing.T) {
	repo := newMemRepo()
	p := repo.addProduct(models.Product{Name: "Mop", Price: price("12.00")})
	svc := NewCartService(repo)

	first, firstPayable, err := svc.AddItems(1, []CartEntry{{ProductID: p.ID, Quantity: 3}})
	require.NoError(t, err)
	second, secondPayable, err := svc.AddItems(1, []CartEntry{{ProductID: p.ID, Quantity: 3}})
	require.NoError(t, err)

	require.Len(t, second, len(first))
	assert.Equal(t, first[0].Quantity, second[0].Quantity)
	assert.Equal(t, firstPayable.StringFixed(2), secondPayable.StringFixed(2))
	assert.Equal(t, "36.00", secondPayable.StringFixed(2))
}

func TestAddItems_SnapshotsPriceAtUpsertTime(t *testing.T) {
	repo := newMemRepo()
	p := repo.addProduct(models.Product{Name: "Mop", Price: price("10.00")})
	svc := NewCartService(repo)

	_, _, err := svc.AddItems(1, []CartEntry{{ProductID: p.ID, Quantity: 1}})
	require.NoError(t, err)

	// Price change alone does not touch the existing line.
	repo.products[p.ID].Price = price("99.00")
	cart, payable, err := svc.Cart(1)
	require.NoError(t, err)
	assert.Equal(t, "10.00", cart.Items[0].UnitPrice.StringFixed(2))
	assert.Equal(t, "10.00", payable.StringFixed(2))

	// Re-upserting the same product re-reads the current price.
	items, payable, err := svc.AddItems(1, []CartEntry{{ProductID: p.ID, Quantity: 1}})
	require.NoError(t, err)
	assert.Equal(t, "99.00", items[0].UnitPrice.StringFixed(2))
	assert.Equal(t, "99.00", payable.StringFixed(2))
}

func TestAddItems_UnknownProduct(t *testing.T) {
	svc := NewCartService(newMemRepo())

	_, _, err := svc.AddItems(1, []CartEntry{{ProductID: 42, Quantity: 1}})

	assert.Equal(t, ErrNotFound, err)
}

func TestAddItems_MixedBatchWritesNothing(t *testing.T) {
	repo := newMemRepo()
	p := repo.addProduct(models.Product{Name: "Mop", Price: price("10.00")})
	svc := NewCartService(repo)

	_, _, err := svc.AddItems(1, []CartEntry{
		{ProductID: p.ID, Quantity: 2},
		{ProductID: 42, Quantity: 1},
	})
	assert.Equal(t, ErrNotFound, err)

	// The valid entry was not upserted and no cart was created.
	cart, payable, err := svc.Cart(1)
	require.NoError(t, err)
	assert.Nil(t, cart)
	assert.True(t, payable.Equal(decimal.Zero))
}

func TestRemoveItem_UnknownID(t *testing.T) {
	repo := newMemRepo()
	p := repo.addProduct(models.Product{Name: "Mop", Price: price("10.00")})
	svc := NewCartService(repo)

	_, _, err := svc.AddItems(1, []CartEntry{{ProductID: p.ID, Quantity: 1}})
	require.NoError(t, err)

	_, _, err = svc.RemoveItem(1, 9999)
	assert.Equal(t, ErrNotFound, err)

	// Existing cart is unchanged.
	cart, _, err := svc.Cart(1)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestRemoveItem_ScopedToOwnCart(t *testing.T) {
	repo := newMemRepo()
	p := repo.addProduct(models.Product{Name: "Mop", Price: price("10.00")})
	svc := NewCartService(repo)

	items, _, err := svc.AddItems(1, []CartEntry{{ProductID: p.ID, Quantity: 1}})
	require.NoError(t, err)
	_, _, err = svc.AddItems(2, []CartEntry{{ProductID: p.ID, Quantity: 1}})
	require.NoError(t, err)

	// User 2 cannot delete user 1's line through its id.
	_, _, err = svc.RemoveItem(2, items[0].ID)
	assert.Equal(t, ErrNotFound, err)

	cart, _, err := svc.Cart(1)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestRemoveItem_RecomputesPayable(t *testing.T) {
	repo := newMemRepo()
	a := repo.addProduct(models.Product{Name: "Mop", Price: price("10.00")})
	b := repo.addProduct(models.Product{Name: "Broom", Price: price("5.50")})
	svc := NewCartService(repo)

	items, _, err := svc.AddItems(1, []CartEntry{
		{ProductID: a.ID, Quantity: 2},
		{ProductID: b.ID, Quantity: 1},
	})
	require.NoError(t, err)

	cart, payable, err := svc.RemoveItem(1, items[0].ID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "5.50", payable.StringFixed(2))
}

func TestClear_NoCartIsNoop(t *testing.T) {
	svc := NewCartService(newMemRepo())

	assert.NoError(t, svc.Clear(1))
}

func TestClear_EmptiesCart(t *testing.T) {
	repo := newMemRepo()
	p := repo.addProduct(models.Product{Name: "Mop", Price: price("10.00")})
	svc := NewCartService(repo)

	_, _, err := svc.AddItems(1, []CartEntry{{ProductID: p.ID, Quantity: 2}})
	require.NoError(t, err)

	require.NoError(t, svc.Clear(1))

	cart, payable, err := svc.Cart(1)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 0)
	assert.True(t, payable.Equal(decimal.Zero))
}

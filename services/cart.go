package services

import (
	"github.com/shopspring/decimal"

	"github.com/hearthware/store-api/helpers"
	"github.com/hearthware/store-api/models"
)

type CartService struct {
	repo Repository
}

func NewCartService(repo Repository) *CartService {
	return &CartService{repo: repo}
}

// CartEntry is one validated (product, quantity) pair from a cart/add request.
type CartEntry struct {
	ProductID uint
	Quantity  int
}

// Cart returns the user's cart with its items and the payable amount. A user
// without a cart gets a nil cart and a zero amount, not an error.
func (s *CartService) Cart(userID uint) (*models.Cart, decimal.Decimal, error) {
	cart, err := s.repo.CartByUser(userID)
	if err == ErrNotFound {
		return nil, decimal.Zero, nil
	}
	if err != nil {
		return nil, decimal.Zero, err
	}
	return cart, payableAmount(cart.Items), nil
}

// AddItems upserts one cart line per entry: an existing (cart, product) line
// gets its quantity overwritten, a new line is created. Both paths re-snapshot
// the unit price from the product's current price. The cart is created lazily
// on first use.
func (s *CartService) AddItems(userID uint, entries []CartEntry) ([]models.CartItem, decimal.Decimal, error) {
	// Resolve every product before touching the cart: a batch with one bad id
	// must not leave earlier lines already upserted.
	products := make(map[uint]*models.Product, len(entries))
	for _, entry := range entries {
		product, err := s.repo.ProductByID(entry.ProductID)
		if err != nil {
			return nil, decimal.Zero, err
		}
		products[entry.ProductID] = product
	}

	cart, err := s.repo.FirstOrCreateCart(userID)
	if err != nil {
		return nil, decimal.Zero, err
	}

	for _, entry := range entries {
		product := products[entry.ProductID]

		item, err := s.repo.CartItemByProduct(cart.ID, product.ID)
		if err == ErrNotFound {
			item = &models.CartItem{CartID: cart.ID, ProductID: product.ID}
		} else if err != nil {
			return nil, decimal.Zero, err
		}

		item.Quantity = entry.Quantity
		item.UnitPrice = product.Price
		item.Total = helpers.LineTotal(product.Price, entry.Quantity)
		if err := s.repo.SaveCartItem(item); err != nil {
			return nil, decimal.Zero, err
		}
	}

	items, err := s.repo.CartItems(cart.ID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return items, payableAmount(items), nil
}

// RemoveItem deletes one line from the caller's cart. The lookup is scoped to
// the caller's own cart, so an id belonging to someone else's cart reads as
// not found.
func (s *CartService) RemoveItem(userID, itemID uint) (*models.Cart, decimal.Decimal, error) {
	cart, err := s.repo.CartByUser(userID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	if err := s.repo.DeleteCartItem(cart.ID, itemID); err != nil {
		return nil, decimal.Zero, err
	}

	cart, err = s.repo.CartByUser(userID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return cart, payableAmount(cart.Items), nil
}

// Clear empties the user's cart. Having no cart is not an error.
func (s *CartService) Clear(userID uint) error {
	cart, err := s.repo.CartByUser(userID)
	if err == ErrNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	return s.repo.ClearCart(cart.ID)
}

func payableAmount(items []models.CartItem) decimal.Decimal {
	totals := make([]decimal.Decimal, 0, len(items))
	for _, item := range items {
		totals = append(totals, item.Total)
	}
	return helpers.SumTotals(totals)
}

package services

import (
	"errors"

	"github.com/hearthware/store-api/models"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrCartEmpty     = errors.New("cart is empty")
	ErrEmailTaken    = errors.New("email already registered")
	ErrBadCredential = errors.New("invalid credentials")
)

// Repository is the persistence boundary for the ledgers. The gorm
// implementation lives in the repository package; tests substitute mocks.
type Repository interface {
	// users
	CreateUser(user *models.User) error
	UserByEmail(email string) (*models.User, error)
	UserByID(id uint) (*models.User, error)
	UpdateUser(id uint, updates map[string]interface{}) error

	// products
	ProductByID(id uint) (*models.Product, error)
	SearchProducts(search string, page, perPage int) ([]models.Product, int64, error)
	SaveProduct(product *models.Product) error
	AllProducts() ([]models.Product, error)

	// carts
	CartByUser(userID uint) (*models.Cart, error)
	FirstOrCreateCart(userID uint) (*models.Cart, error)
	CartItemByProduct(cartID, productID uint) (*models.CartItem, error)
	SaveCartItem(item *models.CartItem) error
	CartItems(cartID uint) ([]models.CartItem, error)
	DeleteCartItem(cartID, itemID uint) error
	ClearCart(cartID uint) error

	// orders
	OrdersByUser(userID uint) ([]models.Order, error)
	AllOrders() ([]models.Order, error)
	OrderByID(id uint) (*models.Order, error)
	OrderByUser(userID, orderID uint) (*models.Order, error)
	UpdateOrderStatus(orderID uint, status models.OrderStatus) error
	CreateOrderFromCart(order *models.Order, cartID uint) error
	DeleteOrder(orderID uint) error
}

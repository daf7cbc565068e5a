package services

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hearthware/store-api/helpers"
	"github.com/hearthware/store-api/models"
)

type OrderService struct {
	repo Repository
}

func NewOrderService(repo Repository) *OrderService {
	return &OrderService{repo: repo}
}

// List returns the user's own orders, newest first, with items preloaded.
func (s *OrderService) List(userID uint) ([]models.Order, error) {
	return s.repo.OrdersByUser(userID)
}

// Place converts the user's cart into an order. Order creation, order item
// inserts and the cart clear happen in one transaction inside the repository;
// a failure anywhere leaves the cart untouched.
func (s *OrderService) Place(userID uint) (*models.Order, error) {
	cart, err := s.repo.CartByUser(userID)
	if err == ErrNotFound {
		return nil, ErrCartEmpty
	}
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	items := make([]models.OrderItem, 0, len(cart.Items))
	lineTotals := make([]decimal.Decimal, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Price:     line.Total,
		})
		lineTotals = append(lineTotals, line.Total)
	}

	order := &models.Order{
		UserID:      userID,
		OrderNumber: generateOrderNumber(),
		Status:      models.OrderStatusPending,
		GrandTotal:  helpers.SumTotals(lineTotals),
		Items:       items,
	}

	if err := s.repo.CreateOrderFromCart(order, cart.ID); err != nil {
		return nil, err
	}
	return order, nil
}

// Cancel flips the order's status and nothing else; no restock, no refund.
// The lookup is scoped to the owner so foreign orders read as not found.
func (s *OrderService) Cancel(userID, orderID uint) error {
	order, err := s.repo.OrderByUser(userID, orderID)
	if err != nil {
		return err
	}
	return s.repo.UpdateOrderStatus(order.ID, models.OrderStatusCancelled)
}

// ListAll is the admin view over every order in the system.
func (s *OrderService) ListAll() ([]models.Order, error) {
	return s.repo.AllOrders()
}

// Get is the admin single-order view, unscoped by owner.
func (s *OrderService) Get(orderID uint) (*models.Order, error) {
	return s.repo.OrderByID(orderID)
}

// Delete hard-deletes an order and its items (super admin only).
func (s *OrderService) Delete(orderID uint) error {
	if _, err := s.repo.OrderByID(orderID); err != nil {
		return err
	}
	return s.repo.DeleteOrder(orderID)
}

// generateOrderNumber builds "ORD-" plus 20 uppercase hex chars drawn from a
// v4 UUID. The column's unique index catches the astronomically unlikely
// collision instead of a retry loop.
func generateOrderNumber() string {
	id := uuid.New()
	return "ORD-" + strings.ToUpper(hex.EncodeToString(id[:10]))
}

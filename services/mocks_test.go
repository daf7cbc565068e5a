package services

import (
	"sort"
	"strings"
	"time"

	"github.com/hearthware/store-api/models"
)

// memRepo implements Repository in memory for the service tests. It mirrors
// the transactional guarantee of the real repository: a failing
// CreateOrderFromCart leaves the cart untouched.
type memRepo struct {
	users     map[uint]*models.User
	products  map[uint]*models.Product
	carts     map[uint]*models.Cart // keyed by cart id
	cartItems map[uint]*models.CartItem
	orders    map[uint]*models.Order
	nextID    uint

	failPlaceOrder error
}

func newMemRepo() *memRepo {
	return &memRepo{
		users:     make(map[uint]*models.User),
		products:  make(map[uint]*models.Product),
		carts:     make(map[uint]*models.Cart),
		cartItems: make(map[uint]*models.CartItem),
		orders:    make(map[uint]*models.Order),
	}
}

func (m *memRepo) id() uint {
	m.nextID++
	return m.nextID
}

// ---------- users ----------

func (m *memRepo) CreateUser(user *models.User) error {
	user.ID = m.id()
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	m.users[user.ID] = user
	return nil
}

func (m *memRepo) UserByEmail(email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memRepo) UserByID(id uint) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

func (m *memRepo) UpdateUser(id uint, updates map[string]interface{}) error {
	u, ok := m.users[id]
	if !ok {
		return ErrNotFound
	}
	if v, ok := updates["password"]; ok {
		u.Password = v.(string)
	}
	if v, ok := updates["token_version"]; ok {
		u.TokenVersion = v.(uint)
	}
	return nil
}

// ---------- products ----------

func (m *memRepo) addProduct(p models.Product) *models.Product {
	if p.ID == 0 {
		p.ID = m.id()
	}
	stored := p
	m.products[stored.ID] = &stored
	return &stored
}

func (m *memRepo) ProductByID(id uint) (*models.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (m *memRepo) SearchProducts(search string, page, perPage int) ([]models.Product, int64, error) {
	var matched []models.Product
	for _, p := range m.products {
		if search != "" {
			needle := strings.ToLower(search)
			if !strings.Contains(strings.ToLower(p.Name), needle) &&
				!strings.Contains(strings.ToLower(p.Detail), needle) {
				continue
			}
		}
		matched = append(matched, *p)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	total := int64(len(matched))
	start := (page - 1) * perPage
	if start > len(matched) {
		start = len(matched)
	}
	end := start + perPage
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (m *memRepo) SaveProduct(product *models.Product) error {
	if product.ID == 0 {
		product.ID = m.id()
	}
	m.products[product.ID] = product
	return nil
}

func (m *memRepo) AllProducts() ([]models.Product, error) {
	all, _, err := m.SearchProducts("", 1, len(m.products)+1)
	return all, err
}

// ---------- carts ----------

func (m *memRepo) CartByUser(userID uint) (*models.Cart, error) {
	for _, c := range m.carts {
		if c.UserID == userID {
			cart := *c
			items, _ := m.CartItems(cart.ID)
			cart.Items = items
			return &cart, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memRepo) FirstOrCreateCart(userID uint) (*models.Cart, error) {
	for _, c := range m.carts {
		if c.UserID == userID {
			return c, nil
		}
	}
	cart := &models.Cart{ID: m.id(), UserID: userID}
	m.carts[cart.ID] = cart
	return cart, nil
}

func (m *memRepo) CartItemByProduct(cartID, productID uint) (*models.CartItem, error) {
	for _, item := range m.cartItems {
		if item.CartID == cartID && item.ProductID == productID {
			return item, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memRepo) SaveCartItem(item *models.CartItem) error {
	if item.ID == 0 {
		item.ID = m.id()
	}
	m.cartItems[item.ID] = item
	return nil
}

func (m *memRepo) CartItems(cartID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	for _, item := range m.cartItems {
		if item.CartID == cartID {
			copied := *item
			if p, ok := m.products[copied.ProductID]; ok {
				copied.Product = p
			}
			items = append(items, copied)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (m *memRepo) DeleteCartItem(cartID, itemID uint) error {
	item, ok := m.cartItems[itemID]
	if !ok || item.CartID != cartID {
		return ErrNotFound
	}
	delete(m.cartItems, itemID)
	return nil
}

func (m *memRepo) ClearCart(cartID uint) error {
	for id, item := range m.cartItems {
		if item.CartID == cartID {
			delete(m.cartItems, id)
		}
	}
	return nil
}

// ---------- orders ----------

func (m *memRepo) addOrder(o models.Order) *models.Order {
	if o.ID == 0 {
		o.ID = m.id()
	}
	stored := o
	m.orders[stored.ID] = &stored
	return &stored
}

func (m *memRepo) OrdersByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			orders = append(orders, *o)
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return orders[i].ID > orders[j].ID
	})
	return orders, nil
}

func (m *memRepo) AllOrders() ([]models.Order, error) {
	var orders []models.Order
	for _, o := range m.orders {
		orders = append(orders, *o)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID > orders[j].ID })
	return orders, nil
}

func (m *memRepo) OrderByID(id uint) (*models.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return o, nil
}

func (m *memRepo) OrderByUser(userID, orderID uint) (*models.Order, error) {
	o, ok := m.orders[orderID]
	if !ok || o.UserID != userID {
		return nil, ErrNotFound
	}
	return o, nil
}

func (m *memRepo) UpdateOrderStatus(orderID uint, status models.OrderStatus) error {
	o, ok := m.orders[orderID]
	if !ok {
		return ErrNotFound
	}
	o.Status = status
	return nil
}

func (m *memRepo) CreateOrderFromCart(order *models.Order, cartID uint) error {
	if m.failPlaceOrder != nil {
		return m.failPlaceOrder
	}
	order.ID = m.id()
	order.CreatedAt = time.Now()
	for i := range order.Items {
		order.Items[i].ID = m.id()
		order.Items[i].OrderID = order.ID
	}
	stored := *order
	m.orders[stored.ID] = &stored
	return m.ClearCart(cartID)
}

func (m *memRepo) DeleteOrder(orderID uint) error {
	if _, ok := m.orders[orderID]; !ok {
		return ErrNotFound
	}
	delete(m.orders, orderID)
	return nil
}

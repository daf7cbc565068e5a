package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hearthware/store-api/models"
	"github.com/hearthware/store-api/services"
)

// GormRepository implements services.Repository on PostgreSQL.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return services.ErrNotFound
	}
	return err
}

// ---------- users ----------

func (r *GormRepository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *GormRepository) UserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *GormRepository) UserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *GormRepository) UpdateUser(id uint, updates map[string]interface{}) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Updates(updates).Error
}

// ---------- products ----------

func (r *GormRepository) ProductByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (r *GormRepository) SearchProducts(search string, page, perPage int) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{})
	if search != "" {
		likePattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR detail ILIKE ?", likePattern, likePattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	if err := query.
		Order("id DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// SaveProduct upserts by primary key. A preset id that has no row yet inserts
// under that id; db.Save alone would issue an UPDATE that matches nothing.
func (r *GormRepository) SaveProduct(product *models.Product) error {
	if product.ID == 0 {
		return r.db.Create(product).Error
	}
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(product).Error
}

func (r *GormRepository) AllProducts() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("id DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ---------- carts ----------

func (r *GormRepository) CartByUser(userID uint) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.Preload("Items.Product").Preload("Items").
		Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return nil, translate(err)
	}
	return &cart, nil
}

func (r *GormRepository) FirstOrCreateCart(userID uint) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.Where(models.Cart{UserID: userID}).FirstOrCreate(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *GormRepository) CartItemByProduct(cartID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&item).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *GormRepository) SaveCartItem(item *models.CartItem) error {
	return r.db.Save(item).Error
}

func (r *GormRepository) CartItems(cartID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Preload("Product").Where("cart_id = ?", cartID).
		Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepository) DeleteCartItem(cartID, itemID uint) error {
	result := r.db.Where("cart_id = ? AND id = ?", cartID, itemID).Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return services.ErrNotFound
	}
	return nil
}

func (r *GormRepository) ClearCart(cartID uint) error {
	return r.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}

// ---------- orders ----------

func (r *GormRepository) OrdersByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Where("user_id = ?", userID).
		Preload("Items").Preload("Items.Product").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepository) AllOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.
		Preload("Items").Preload("Items.Product").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepository) OrderByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").Preload("Items.Product").
		First(&order, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (r *GormRepository) OrderByUser(userID, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").
		Where("user_id = ? AND id = ?", userID, orderID).
		First(&order).Error; err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (r *GormRepository) UpdateOrderStatus(orderID uint, status models.OrderStatus) error {
	return r.db.Model(&models.Order{}).Where("id = ?", orderID).
		Update("status", status).Error
}

// CreateOrderFromCart inserts the order with its items and clears the source
// cart in one transaction, so a failure cannot leave a half-placed order or a
// still-pending cart.
func (r *GormRepository) CreateOrderFromCart(order *models.Order, cartID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		if err := tx.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return nil
	})
}

func (r *GormRepository) DeleteOrder(orderID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", orderID).Delete(&models.Order{}).Error
	})
}

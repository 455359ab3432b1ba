package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/orderfoodonline/catalog/internal/models"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines data access for orders. The catalog core only
// reads order history; the write path exists for order placement.
type OrderRepository interface {
	FindAllByUserID(ctx context.Context, userID uint) ([]models.Order, error)
	FindAll(ctx context.Context) ([]models.Order, error)
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	CreateOrder(ctx context.Context, order *models.Order) error
	SaveOrder(ctx context.Context, order *models.Order) error
}

// GormOrderRepository implements OrderRepository on a gorm database.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository.
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindAllByUserID returns all orders placed by one user.
func (r *GormOrderRepository) FindAllByUserID(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Find(&orders).Error
	return orders, err
}

// FindAll returns every order with its line items.
func (r *GormOrderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Find(&orders).Error
	return orders, err
}

// FindByID returns an order by ID.
func (r *GormOrderRepository) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// CreateOrder persists a new order with its line items.
func (r *GormOrderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// SaveOrder updates an existing order.
func (r *GormOrderRepository) SaveOrder(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/orderfoodonline/catalog/internal/auth"
	"github.com/orderfoodonline/catalog/internal/models"
	"github.com/orderfoodonline/catalog/internal/repository"
)

var (
	ErrInvalidFood     = errors.New("invalid food")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrEmptyOrder      = errors.New("order must contain at least one item")
	ErrInvalidStatus   = errors.New("invalid order status")
)

var orderStatuses = map[string]bool{
	models.OrderStatusNew:        true,
	models.OrderStatusProcessing: true,
	models.OrderStatusDelivered:  true,
	models.OrderStatusCancelled:  true,
}

// OrderService handles order placement and status changes. Orders are the
// write side of the history the catalog's purchase stats are derived from.
type OrderService struct {
	orders  repository.OrderRepository
	catalog repository.CatalogRepository
}

// NewOrderService creates a new order service.
func NewOrderService(orders repository.OrderRepository, catalog repository.CatalogRepository) *OrderService {
	return &OrderService{
		orders:  orders,
		catalog: catalog,
	}
}

// CreateOrder places an order for the authenticated caller after validating
// every line item against the catalog.
func (s *OrderService) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	userID, err := auth.UserID(ctx)
	if err != nil {
		return nil, err
	}

	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	order := models.Order{
		Code:   uuid.New().String(),
		UserID: userID,
		Status: models.OrderStatusNew,
	}

	seen := make(map[uint]bool)
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}

		if !seen[item.FoodID] {
			if _, err := s.catalog.FindFoodByID(ctx, item.FoodID); err != nil {
				if errors.Is(err, repository.ErrFoodNotFound) {
					return nil, ErrInvalidFood
				}
				return nil, err
			}
			seen[item.FoodID] = true
		}

		order.Items = append(order.Items, models.CartItem{
			FoodID:     item.FoodID,
			FoodSizeID: item.FoodSizeID,
			Quantity:   item.Quantity,
		})
	}

	if err := s.orders.CreateOrder(ctx, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders returns the authenticated caller's orders.
func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	userID, err := auth.UserID(ctx)
	if err != nil {
		return nil, err
	}
	return s.orders.FindAllByUserID(ctx, userID)
}

// UpdateStatus moves an order to a new status, e.g. DELIVERED once fulfilled.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, status string) (*models.Order, error) {
	if !orderStatuses[status] {
		return nil, ErrInvalidStatus
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	order.Status = status
	if err := s.orders.SaveOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

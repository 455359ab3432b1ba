package service

import (
	"context"
	"log/slog"

	"github.com/orderfoodonline/catalog/internal/auth"
	"github.com/orderfoodonline/catalog/internal/models"
	"github.com/orderfoodonline/catalog/internal/repository"
)

// FoodService handles catalog business logic for foods.
type FoodService struct {
	repo       repository.CatalogRepository
	orders     repository.OrderRepository
	reconciler *Reconciler
	log        *slog.Logger
}

// NewFoodService creates a new food service.
func NewFoodService(repo repository.CatalogRepository, orders repository.OrderRepository, log *slog.Logger) *FoodService {
	return &FoodService{
		repo:       repo,
		orders:     orders,
		reconciler: NewReconciler(repo),
		log:        log,
	}
}

// CreateFood builds a new food aggregate from the request and persists it.
// There is nothing to reconcile against: tags, images and sizes are attached
// in a single pass. The category must already exist.
func (s *FoodService) CreateFood(ctx context.Context, req models.FoodRequest) (*models.FoodView, error) {
	food := models.Food{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	}

	for _, name := range req.Tags {
		food.Tags = append(food.Tags, models.Tag{Name: name})
	}
	for _, url := range req.Images {
		food.Images = append(food.Images, models.Image{URL: url})
	}

	if req.Category != nil {
		category, err := s.repo.FindCategoryByID(ctx, req.Category.ID)
		if err != nil {
			return nil, err
		}
		food.Category = category
		food.CategoryID = &category.ID
	}

	for _, size := range req.FoodSizes {
		food.FoodSizes = append(food.FoodSizes, models.FoodSize{
			Name:   size.Name,
			Price:  size.Price,
			Weight: size.Weight,
			Note:   size.Note,
		})
	}

	if err := s.repo.SaveFood(ctx, &food); err != nil {
		return nil, err
	}

	view := food.View()
	return &view, nil
}

// UpdateFood loads the aggregate, reconciles it against the request and
// persists the result. Nothing is written when reconciliation fails.
func (s *FoodService) UpdateFood(ctx context.Context, id uint, req models.FoodRequest) (*models.FoodView, error) {
	food, err := s.repo.FindFoodByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.reconciler.Reconcile(ctx, food, req); err != nil {
		return nil, err
	}

	if err := s.repo.SaveFood(ctx, food); err != nil {
		return nil, err
	}

	view := food.View()
	return &view, nil
}

// GetFood returns a single food decorated with the caller's purchase flag.
// Soft-deleted foods stay fetchable here. An unauthenticated caller is an
// error on this path.
func (s *FoodService) GetFood(ctx context.Context, id uint) (*models.FoodView, error) {
	userID, err := auth.UserID(ctx)
	if err != nil {
		return nil, err
	}

	food, err := s.repo.FindFoodByID(ctx, id)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.FindAllByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := food.View()
	view.Purchased = IsPurchased(food.ID, orders)
	return &view, nil
}

// DeleteFood marks a food deleted. The record stays in place so order
// history keeps resolving; owned collections are untouched.
func (s *FoodService) DeleteFood(ctx context.Context, id uint) error {
	food, err := s.repo.FindFoodByID(ctx, id)
	if err != nil {
		return err
	}

	food.IsDeleted = true
	return s.repo.SaveFood(ctx, food)
}

// ListFoods returns all active foods decorated with purchase stats. A
// missing caller identity is not an error on this path: the listing is
// served anonymously with the purchase flag false everywhere.
func (s *FoodService) ListFoods(ctx context.Context) ([]models.FoodView, error) {
	var userOrders []models.Order
	if userID, err := auth.UserID(ctx); err == nil {
		userOrders, err = s.orders.FindAllByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
	} else {
		s.log.Debug("serving anonymous food listing")
	}

	foods, err := s.repo.FindAllFoods(ctx)
	if err != nil {
		return nil, err
	}

	allOrders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]models.FoodView, 0, len(foods))
	for i := range foods {
		view := foods[i].View()
		view.Purchased = IsPurchased(foods[i].ID, userOrders)
		view.TotalSold = TotalSold(foods[i].ID, allOrders)
		views = append(views, view)
	}
	return views, nil
}

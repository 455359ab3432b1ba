package service

import (
	"context"

	"github.com/orderfoodonline/catalog/internal/models"
	"github.com/orderfoodonline/catalog/internal/repository"
)

// Reconciler computes the next state of a food aggregate from an update
// request. It mutates the aggregate in memory only; the caller persists it.
type Reconciler struct {
	repo repository.CatalogRepository
}

// NewReconciler creates a new reconciler.
func NewReconciler(repo repository.CatalogRepository) *Reconciler {
	return &Reconciler{repo: repo}
}

// Reconcile applies a food update request to the loaded aggregate.
//
// Scalars are overwritten. Tags and images are replaced wholesale, since
// nothing outside the aggregate references them. Food sizes go through
// versioning instead: historical order lines reference sizes by ID, so a
// size is never edited in place. The only error is a failed category lookup.
func (r *Reconciler) Reconcile(ctx context.Context, food *models.Food, req models.FoodRequest) error {
	food.Name = req.Name
	food.Description = req.Description
	food.Status = req.Status

	food.Images = make([]models.Image, 0, len(req.Images))
	for _, url := range req.Images {
		food.Images = append(food.Images, models.Image{FoodID: food.ID, URL: url})
	}

	food.Tags = make([]models.Tag, 0, len(req.Tags))
	for _, name := range req.Tags {
		food.Tags = append(food.Tags, models.Tag{FoodID: food.ID, Name: name})
	}

	if err := r.reconcileCategory(ctx, food, req.Category); err != nil {
		return err
	}

	reconcileSizes(food, req.FoodSizes)
	return nil
}

// reconcileCategory clears the reference when the request omits the
// category, resolves it when the ID changed, and leaves it alone otherwise.
func (r *Reconciler) reconcileCategory(ctx context.Context, food *models.Food, ref *models.CategoryRef) error {
	if ref == nil {
		food.CategoryID = nil
		food.Category = nil
		return nil
	}

	if food.CategoryID != nil && *food.CategoryID == ref.ID {
		return nil
	}

	category, err := r.repo.FindCategoryByID(ctx, ref.ID)
	if err != nil {
		return err
	}
	food.Category = category
	food.CategoryID = &category.ID
	return nil
}

// reconcileSizes diffs the incoming size list against the persisted ones.
//
//   - A persisted size missing from the request is marked deleted.
//   - A persisted size whose name, price, weight or note differs is marked
//     deleted and a replacement with a fresh identity is appended, keeping
//     every value combination ever sold as its own immutable record.
//   - A persisted size matching the request on all fields is left untouched.
//   - Incoming sizes with ID 0 are appended as new tiers.
//
// Sizes already marked deleted are skipped: they belong to history and are
// neither matched nor resurrected.
func reconcileSizes(food *models.Food, incoming []models.FoodSizeRequest) {
	persisted := len(food.FoodSizes)
	for i := 0; i < persisted; i++ {
		size := &food.FoodSizes[i]
		if size.Deleted {
			continue
		}

		req, ok := findSizeRequest(incoming, size.ID)
		if !ok {
			size.Deleted = true
			continue
		}

		if size.Name != req.Name || size.Price != req.Price ||
			size.Weight != req.Weight || size.Note != req.Note {
			size.Deleted = true
			food.FoodSizes = append(food.FoodSizes, models.FoodSize{
				FoodID: food.ID,
				Name:   req.Name,
				Price:  req.Price,
				Weight: req.Weight,
				Note:   req.Note,
			})
		}
	}

	for _, req := range incoming {
		if req.ID == 0 {
			food.FoodSizes = append(food.FoodSizes, models.FoodSize{
				FoodID: food.ID,
				Name:   req.Name,
				Price:  req.Price,
				Weight: req.Weight,
				Note:   req.Note,
			})
		}
	}
}

func findSizeRequest(sizes []models.FoodSizeRequest, id uint) (models.FoodSizeRequest, bool) {
	for _, s := range sizes {
		if s.ID == id {
			return s, true
		}
	}
	return models.FoodSizeRequest{}, false
}

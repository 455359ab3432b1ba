package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/orderfoodonline/catalog/internal/models"
)

func TestSaveFood_CreatesAggregate(t *testing.T) {
	repo := NewCatalogRepository(NewTestDB(t))
	ctx := context.Background()

	food := models.Food{
		Name:      "Margherita",
		Tags:      []models.Tag{{Name: "vegetarian"}},
		Images:    []models.Image{{URL: "m.jpg"}},
		FoodSizes: []models.FoodSize{{Name: "S", Price: 10}},
	}
	if err := repo.SaveFood(ctx, &food); err != nil {
		t.Fatalf("SaveFood: %v", err)
	}
	if food.ID == 0 {
		t.Fatal("expected an assigned ID")
	}

	stored, err := repo.FindFoodByID(ctx, food.ID)
	if err != nil {
		t.Fatalf("FindFoodByID: %v", err)
	}
	if len(stored.Tags) != 1 || len(stored.Images) != 1 || len(stored.FoodSizes) != 1 {
		t.Errorf("owned collections not persisted: %+v", stored)
	}
	if stored.FoodSizes[0].FoodID != food.ID {
		t.Error("size should be owned by the food")
	}
}

func TestSaveFood_ReplacesTagsAndImagesWholesale(t *testing.T) {
	repo := NewCatalogRepository(NewTestDB(t))
	ctx := context.Background()

	food := models.Food{
		Name:   "Pasta",
		Tags:   []models.Tag{{Name: "old-a"}, {Name: "old-b"}},
		Images: []models.Image{{URL: "old.jpg"}},
	}
	if err := repo.SaveFood(ctx, &food); err != nil {
		t.Fatalf("SaveFood: %v", err)
	}

	food.Tags = []models.Tag{{Name: "new"}}
	food.Images = nil
	if err := repo.SaveFood(ctx, &food); err != nil {
		t.Fatalf("SaveFood (update): %v", err)
	}

	stored, err := repo.FindFoodByID(ctx, food.ID)
	if err != nil {
		t.Fatalf("FindFoodByID: %v", err)
	}
	if len(stored.Tags) != 1 || stored.Tags[0].Name != "new" {
		t.Errorf("expected tags replaced with [new], got %+v", stored.Tags)
	}
	if len(stored.Images) != 0 {
		t.Errorf("expected images cleared, got %+v", stored.Images)
	}
}

func TestSaveFood_PersistsSizeDeletedFlag(t *testing.T) {
	repo := NewCatalogRepository(NewTestDB(t))
	ctx := context.Background()

	food := models.Food{
		Name:      "Soup",
		FoodSizes: []models.FoodSize{{Name: "S", Price: 10}},
	}
	if err := repo.SaveFood(ctx, &food); err != nil {
		t.Fatalf("SaveFood: %v", err)
	}

	food.FoodSizes[0].Deleted = true
	food.FoodSizes = append(food.FoodSizes, models.FoodSize{Name: "S", Price: 12})
	if err := repo.SaveFood(ctx, &food); err != nil {
		t.Fatalf("SaveFood (versioned): %v", err)
	}

	stored, err := repo.FindFoodByID(ctx, food.ID)
	if err != nil {
		t.Fatalf("FindFoodByID: %v", err)
	}
	if len(stored.FoodSizes) != 2 {
		t.Fatalf("expected both size versions stored, got %d", len(stored.FoodSizes))
	}
}

func TestFindAllFoods_ExcludesSoftDeleted(t *testing.T) {
	repo := NewCatalogRepository(NewTestDB(t))
	ctx := context.Background()

	visible := models.Food{Name: "Visible"}
	hidden := models.Food{Name: "Hidden", IsDeleted: true}
	if err := repo.SaveFood(ctx, &visible); err != nil {
		t.Fatalf("SaveFood: %v", err)
	}
	if err := repo.SaveFood(ctx, &hidden); err != nil {
		t.Fatalf("SaveFood: %v", err)
	}

	foods, err := repo.FindAllFoods(ctx)
	if err != nil {
		t.Fatalf("FindAllFoods: %v", err)
	}
	if len(foods) != 1 || foods[0].Name != "Visible" {
		t.Errorf("expected only the visible food, got %+v", foods)
	}

	// Soft-deleted records must still resolve by ID.
	if _, err := repo.FindFoodByID(ctx, hidden.ID); err != nil {
		t.Errorf("soft-deleted food should be fetchable by ID, got %v", err)
	}
}

func TestFindFoodByID_NotFound(t *testing.T) {
	repo := NewCatalogRepository(NewTestDB(t))

	_, err := repo.FindFoodByID(context.Background(), 77)
	if !errors.Is(err, ErrFoodNotFound) {
		t.Fatalf("expected ErrFoodNotFound, got %v", err)
	}
}

func TestCategoryExistsByName(t *testing.T) {
	repo := NewCatalogRepository(NewTestDB(t))
	ctx := context.Background()

	exists, err := repo.CategoryExistsByName(ctx, "Pizza")
	if err != nil {
		t.Fatalf("CategoryExistsByName: %v", err)
	}
	if exists {
		t.Error("expected no category yet")
	}

	if err := repo.SaveCategory(ctx, &models.Category{Name: "Pizza"}); err != nil {
		t.Fatalf("SaveCategory: %v", err)
	}

	exists, err = repo.CategoryExistsByName(ctx, "Pizza")
	if err != nil {
		t.Fatalf("CategoryExistsByName: %v", err)
	}
	if !exists {
		t.Error("expected category to exist")
	}
}

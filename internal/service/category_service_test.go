package service

import (
	"context"
	"errors"
	"testing"

	"github.com/orderfoodonline/catalog/internal/models"
	"github.com/orderfoodonline/catalog/internal/repository"
)

func newCategoryService(t *testing.T) *CategoryService {
	t.Helper()
	db := repository.NewTestDB(t)
	return NewCategoryService(repository.NewCatalogRepository(db))
}

func TestCategoryService_CreateAndGet(t *testing.T) {
	svc := newCategoryService(t)
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, models.CategoryRequest{Name: "Pizza", Image: "pizza.jpg"})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected a persisted ID")
	}

	got, err := svc.GetCategory(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetCategory: %v", err)
	}
	if got.Name != "Pizza" || got.Image != "pizza.jpg" {
		t.Errorf("unexpected category: %+v", got)
	}
}

func TestCategoryService_DuplicateNameConflicts(t *testing.T) {
	svc := newCategoryService(t)
	ctx := context.Background()

	if _, err := svc.CreateCategory(ctx, models.CategoryRequest{Name: "Pizza"}); err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	_, err := svc.CreateCategory(ctx, models.CategoryRequest{Name: "Pizza"})
	if !errors.Is(err, ErrCategoryExists) {
		t.Fatalf("expected ErrCategoryExists, got %v", err)
	}
}

func TestCategoryService_Update(t *testing.T) {
	svc := newCategoryService(t)
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, models.CategoryRequest{Name: "Pizza"})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	updated, err := svc.UpdateCategory(ctx, created.ID, models.CategoryRequest{Name: "Pizzas", Image: "new.jpg"})
	if err != nil {
		t.Fatalf("UpdateCategory: %v", err)
	}
	if updated.Name != "Pizzas" || updated.Image != "new.jpg" {
		t.Errorf("unexpected category after update: %+v", updated)
	}
}

func TestCategoryService_DeleteThenGetFails(t *testing.T) {
	svc := newCategoryService(t)
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, models.CategoryRequest{Name: "Pizza"})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	if err := svc.DeleteCategory(ctx, created.ID); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}

	if _, err := svc.GetCategory(ctx, created.ID); !errors.Is(err, repository.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCategoryService_GetNotFound(t *testing.T) {
	svc := newCategoryService(t)

	if _, err := svc.GetCategory(context.Background(), 42); !errors.Is(err, repository.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

package service

import (
	"context"
	"errors"

	"github.com/orderfoodonline/catalog/internal/models"
	"github.com/orderfoodonline/catalog/internal/repository"
)

var ErrCategoryExists = errors.New("category already exists")

// CategoryService handles category CRUD. Categories are shared references
// with their own lifecycle; foods point at them but never own them.
type CategoryService struct {
	repo repository.CatalogRepository
}

// NewCategoryService creates a new category service.
func NewCategoryService(repo repository.CatalogRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// ListCategories returns all categories.
func (s *CategoryService) ListCategories(ctx context.Context) ([]models.CategoryView, error) {
	categories, err := s.repo.FindAllCategories(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]models.CategoryView, 0, len(categories))
	for i := range categories {
		views = append(views, categories[i].View())
	}
	return views, nil
}

// GetCategory returns a category by ID.
func (s *CategoryService) GetCategory(ctx context.Context, id uint) (*models.CategoryView, error) {
	category, err := s.repo.FindCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := category.View()
	return &view, nil
}

// CreateCategory creates a category, rejecting duplicate names.
func (s *CategoryService) CreateCategory(ctx context.Context, req models.CategoryRequest) (*models.CategoryView, error) {
	exists, err := s.repo.CategoryExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCategoryExists
	}

	category := models.Category{
		Name:  req.Name,
		Image: req.Image,
	}
	if err := s.repo.SaveCategory(ctx, &category); err != nil {
		return nil, err
	}

	view := category.View()
	return &view, nil
}

// UpdateCategory overwrites a category's fields.
func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, req models.CategoryRequest) (*models.CategoryView, error) {
	category, err := s.repo.FindCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = req.Name
	category.Image = req.Image
	if err := s.repo.SaveCategory(ctx, category); err != nil {
		return nil, err
	}

	view := category.View()
	return &view, nil
}

// DeleteCategory removes a category.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	category, err := s.repo.FindCategoryByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.DeleteCategory(ctx, category)
}

package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/orderfoodonline/catalog/internal/models"
)

var (
	ErrFoodNotFound     = errors.New("food not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// CatalogRepository defines data access for foods and categories.
type CatalogRepository interface {
	FindFoodByID(ctx context.Context, id uint) (*models.Food, error)
	FindAllFoods(ctx context.Context) ([]models.Food, error)
	SaveFood(ctx context.Context, food *models.Food) error

	FindCategoryByID(ctx context.Context, id uint) (*models.Category, error)
	FindAllCategories(ctx context.Context) ([]models.Category, error)
	CategoryExistsByName(ctx context.Context, name string) (bool, error)
	SaveCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, category *models.Category) error
}

// GormCatalogRepository implements CatalogRepository on a gorm database.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository.
func NewCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// FindFoodByID loads a food aggregate with all owned collections and its
// category. No deleted filter: soft-deleted foods stay fetchable by ID and
// retired size versions stay resolvable for order history.
func (r *GormCatalogRepository) FindFoodByID(ctx context.Context, id uint) (*models.Food, error) {
	var food models.Food
	err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("Images").
		Preload("FoodSizes").
		Preload("Category").
		First(&food, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}
	return &food, nil
}

// FindAllFoods returns all foods not marked deleted.
func (r *GormCatalogRepository) FindAllFoods(ctx context.Context) ([]models.Food, error) {
	var foods []models.Food
	err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("Images").
		Preload("FoodSizes").
		Preload("Category").
		Where("is_deleted = ?", false).
		Find(&foods).Error
	return foods, err
}

// SaveFood persists the aggregate. Tags and images are replaced wholesale:
// the previous rows are dropped and the current in-memory set is written.
// Food sizes are upserted, which persists toggled deleted flags on existing
// versions and inserts appended ones.
func (r *GormCatalogRepository) SaveFood(ctx context.Context, food *models.Food) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if food.ID != 0 {
			if err := tx.Where("food_id = ?", food.ID).Delete(&models.Tag{}).Error; err != nil {
				return err
			}
			if err := tx.Where("food_id = ?", food.ID).Delete(&models.Image{}).Error; err != nil {
				return err
			}
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(food).Error
	})
}

// FindCategoryByID returns a category by ID.
func (r *GormCatalogRepository) FindCategoryByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindAllCategories returns all categories.
func (r *GormCatalogRepository) FindAllCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Find(&categories).Error
	return categories, err
}

// CategoryExistsByName reports whether a category with the given name exists.
func (r *GormCatalogRepository) CategoryExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}

// SaveCategory creates or updates a category.
func (r *GormCatalogRepository) SaveCategory(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// DeleteCategory removes a category. Categories are not referenced by order
// history, so this is a hard delete.
func (r *GormCatalogRepository) DeleteCategory(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Delete(category).Error
}

// internal/repository/category.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/crmaster/internal/domain"
	"github.com/dangerclosesec/crmaster/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepositoryIface interface {
	Create(ctx context.Context, category *model.Category) error
	Update(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindScoped(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Category, error)
	List(ctx context.Context, actor model.Actor) ([]*model.Category, error)
}

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *model.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("creating category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *model.Category) error {
	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		return fmt.Errorf("updating category: %w", err)
	}
	return nil
}

// Delete removes the category and leaves its leads uncategorised.
func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Lead{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return fmt.Errorf("clearing lead categories: %w", err)
		}

		result := tx.Delete(&model.Category{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("deleting category: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrCategoryNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *CategoryRepository) FindScoped(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Category, error) {
	var category model.Category
	err := r.db.WithContext(ctx).
		Scopes(CategoryScope(actor)).
		Where("categories.id = ?", id).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("finding category: %w", err)
	}
	return &category, nil
}

func (r *CategoryRepository) List(ctx context.Context, actor model.Actor) ([]*model.Category, error) {
	var categories []*model.Category
	err := r.db.WithContext(ctx).
		Scopes(CategoryScope(actor)).
		Order("categories.name").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	return categories, nil
}

package repository

import (
	"context"

	"github.com/Rohan-Kumar320/Export-Apparel-Admin/models"
)

// ICategoryRepository defines the interface for category data operations.
type ICategoryRepository interface {
	FindAll(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, id string) (*models.Category, error)
	Save(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id string) error
}

// CategoryRepository implements ICategoryRepository on a DocumentStore.
type CategoryRepository struct {
	docs collection[models.Category]
}

// NewCategoryRepository creates a new CategoryRepository instance.
func NewCategoryRepository(store DocumentStore) ICategoryRepository {
	return &CategoryRepository{docs: collection[models.Category]{store: store, name: models.CollectionCategories}}
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	return r.docs.all(ctx)
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*models.Category, error) {
	return r.docs.get(ctx, id)
}

// Save overwrites the document keyed by category.ID.
func (r *CategoryRepository) Save(ctx context.Context, category *models.Category) error {
	return r.docs.store.Set(ctx, r.docs.name, category.ID, category)
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	return r.docs.store.Delete(ctx, r.docs.name, id)
}

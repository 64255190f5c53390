package repository

import (
	"context"

	"github.com/Rohan-Kumar320/Export-Apparel-Admin/models"
)

// IProductRepository defines the interface for product data operations.
type IProductRepository interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Save(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
}

// ProductRepository implements IProductRepository on a DocumentStore.
type ProductRepository struct {
	docs collection[models.Product]
}

// NewProductRepository creates a new ProductRepository instance.
func NewProductRepository(store DocumentStore) IProductRepository {
	return &ProductRepository{docs: collection[models.Product]{store: store, name: models.CollectionProducts}}
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	return r.docs.all(ctx)
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	return r.docs.get(ctx, id)
}

// Save overwrites the document keyed by product.ID.
func (r *ProductRepository) Save(ctx context.Context, product *models.Product) error {
	return r.docs.store.Set(ctx, r.docs.name, product.ID, product)
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return r.docs.store.Delete(ctx, r.docs.name, id)
}

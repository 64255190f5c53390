package repository

import (
	"context"

	"github.com/Rohan-Kumar320/Export-Apparel-Admin/models"
)

// IOrderRepository defines the interface for order data operations.
// Orders are created by the storefront, so there is no Save here.
type IOrderRepository interface {
	FindAll(ctx context.Context) ([]models.Order, error)
	FindByID(ctx context.Context, id string) (*models.Order, error)
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error
}

// OrderRepository implements IOrderRepository on a DocumentStore.
type OrderRepository struct {
	docs collection[models.Order]
}

// NewOrderRepository creates a new OrderRepository instance.
func NewOrderRepository(store DocumentStore) IOrderRepository {
	return &OrderRepository{docs: collection[models.Order]{store: store, name: models.CollectionOrders}}
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	return r.docs.all(ctx)
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*models.Order, error) {
	return r.docs.get(ctx, id)
}

// UpdateStatus touches the status field only.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	return r.docs.store.Update(ctx, r.docs.name, id, map[string]any{"status": string(status)})
}

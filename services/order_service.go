package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Rohan-Kumar320/Export-Apparel-Admin/models"
	"github.com/Rohan-Kumar320/Export-Apparel-Admin/repository"
	"github.com/shopspring/decimal"
)

// ErrInvalidStatus is returned for a status outside models.OrderStatuses.
var ErrInvalidStatus = errors.New("invalid order status")

// OrderDetail is the read-only projection shown in the order overlay.
type OrderDetail struct {
	ID                string             `json:"id"`
	CustomerName      string             `json:"customerName"`
	Email             string             `json:"email"`
	Phone             string             `json:"phone"`
	Address           string             `json:"address"`
	AdditionalMessage string             `json:"additionalMessage,omitempty"`
	Status            models.OrderStatus `json:"status"`
	PlacedOn          *time.Time         `json:"placedOn,omitempty"`
	Items             []OrderDetailItem  `json:"items"`
	Total             decimal.Decimal    `json:"total"`
}

// OrderDetailItem is one line of the overlay with its computed total.
type OrderDetailItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	ImageURL  string          `json:"imageUrl"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// IOrderService defines the interface for order-related business logic.
type IOrderService interface {
	ListOrders(ctx context.Context, search string, status models.OrderStatus) ([]models.Order, error)
	GetOrderDetail(ctx context.Context, id string) (*OrderDetail, error)
	UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) error
}

// OrderService implements IOrderService.
type OrderService struct {
	repo        repository.IOrderRepository
	events      IEventPublisher
	placeholder string
}

// NewOrderService creates a new OrderService instance. placeholder stands in for missing item images.
func NewOrderService(repo repository.IOrderRepository, events IEventPublisher, placeholder string) IOrderService {
	return &OrderService{repo: repo, events: events, placeholder: placeholder}
}

func (s *OrderService) ListOrders(ctx context.Context, search string, status models.OrderStatus) ([]models.Order, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterOrders(all, search, status), nil
}

// FilterOrders keeps orders whose id or customer name contains search (ignoring case)
// and, when status is set, whose stored status equals it.
func FilterOrders(orders []models.Order, search string, status models.OrderStatus) []models.Order {
	filtered := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if !containsFold(o.ID, search) && (o.CustomerName == "" || !containsFold(o.CustomerName, search)) {
			continue
		}
		if status != "" && o.Status != status {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered
}

func (s *OrderService) GetOrderDetail(ctx context.Context, id string) (*OrderDetail, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewOrderDetail(order, s.placeholder), nil
}

// NewOrderDetail fills in the overlay's defaults for missing fields.
func NewOrderDetail(o *models.Order, placeholder string) *OrderDetail {
	detail := &OrderDetail{
		ID:                o.ID,
		CustomerName:      orDefault(o.CustomerName, "N/A"),
		Email:             orDefault(o.Email, "Not provided"),
		Phone:             orDefault(o.Phone, "N/A"),
		Address:           orDefault(o.Address, "N/A"),
		AdditionalMessage: o.AdditionalMessage,
		Status:            o.Status,
		Items:             make([]OrderDetailItem, 0, len(o.Items)),
		Total:             o.Total,
	}
	if detail.Status == "" {
		detail.Status = models.StatusPending
	}
	if !o.CreatedAt.IsZero() {
		placed := o.CreatedAt
		detail.PlacedOn = &placed
	}
	for _, item := range o.Items {
		detail.Items = append(detail.Items, OrderDetailItem{
			ID:        item.ID,
			Name:      orDefault(item.Name, "N/A"),
			ImageURL:  orDefault(item.ImageURL, placeholder),
			Quantity:  item.Quantity,
			Price:     item.Price,
			LineTotal: item.LineTotal(),
		})
	}
	return detail
}

// UpdateOrderStatus sets only the status field. Any status may follow any other.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	s.events.Publish(ctx, ChangeEvent{
		Type:       EventStatusChanged,
		Collection: models.CollectionOrders,
		ID:         id,
		Data:       map[string]string{"status": string(status)},
	})
	return nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

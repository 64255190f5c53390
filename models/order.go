package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCancelled  OrderStatus = "Cancelled"
)

// OrderStatuses lists every status in display order.
var OrderStatuses = []OrderStatus{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	for _, status := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Order is placed by the customer-facing storefront; the console only changes its status.
type Order struct {
	ID                string          `json:"id" bson:"_id" gorm:"primaryKey;size:64"`
	CustomerName      string          `json:"customerName" bson:"customerName"`
	Email             string          `json:"email" bson:"email"`
	Phone             string          `json:"phone" bson:"phone"`
	Address           string          `json:"address" bson:"address"`
	AdditionalMessage string          `json:"additionalMessage" bson:"additionalMessage"`
	Status            OrderStatus     `json:"status" bson:"status" gorm:"size:32;default:Pending"`
	Total             decimal.Decimal `json:"total" bson:"total" gorm:"type:decimal(10,2)"`
	Items             []OrderItem     `json:"items" bson:"items" gorm:"serializer:json"`
	CreatedAt         time.Time       `json:"createdAt" bson:"createdAt"`
}

// OrderItem is one line of an order, embedded in the order document.
type OrderItem struct {
	ID       string          `json:"id" bson:"id"`
	Name     string          `json:"name" bson:"name"`
	ImageURL string          `json:"imageUrl" bson:"imageUrl"`
	Quantity int             `json:"quantity" bson:"quantity"`
	Price    decimal.Decimal `json:"price" bson:"price"`
}

// LineTotal is quantity times unit price.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

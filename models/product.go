package models

import "github.com/shopspring/decimal"

// Product is a clothing listing shown in the storefront.
type Product struct {
	ID          string          `json:"id" bson:"_id" gorm:"primaryKey;size:64"`
	Name        string          `json:"name" bson:"name" gorm:"not null"`
	Description string          `json:"description" bson:"description"`
	Price       decimal.Decimal `json:"price" bson:"price" gorm:"type:decimal(10,2);not null"`
	Category    string          `json:"category" bson:"category" gorm:"index"`
	ImageURLs   []string        `json:"imageUrls" bson:"imageUrls" gorm:"serializer:json"`
	// ImageURL is the single-image field of older documents. It is only read.
	ImageURL string `json:"imageUrl,omitempty" bson:"imageUrl,omitempty" gorm:"-"`
}

// Images returns the product's image list, falling back to the legacy single image.
func (p Product) Images() []string {
	if len(p.ImageURLs) > 0 {
		return p.ImageURLs
	}
	if p.ImageURL != "" {
		return []string{p.ImageURL}
	}
	return nil
}

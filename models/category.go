package models

// Category groups products in the storefront. Products refer to it by name only.
type Category struct {
	ID   string `json:"id" bson:"_id" gorm:"primaryKey;size:64"`
	Name string `json:"name" bson:"name" gorm:"not null"`
}

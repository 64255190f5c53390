// Package models holds the documents the console reads and writes.
package models

import "github.com/shopspring/decimal"

func init() {
	// Prices and totals go out as JSON numbers, the way the storefront stores them.
	decimal.MarshalJSONWithoutQuotes = true
}

// Collection names in the document store.
const (
	CollectionCategories = "categories"
	CollectionProducts   = "products"
	CollectionOrders     = "orders"
	CollectionUsers      = "users"
	CollectionSessions   = "sessions"
)

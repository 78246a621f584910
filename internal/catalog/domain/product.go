package domain

import (
	"context"
	"time"
)

// Product status values
const (
	StatusAvailable = "available"
	StatusPipeline  = "pipeline"
)

// Product represents a catalog product, identified by its sku
type Product struct {
	SKU        string              `json:"sku" bson:"sku"`
	Name       string              `json:"name" bson:"name"`
	CategoryID int                 `json:"categoryID" bson:"categoryID"`
	QTags      []string            `json:"qTags" bson:"qTags"`
	Attributes map[string][]string `json:"attributes,omitempty" bson:"attributes,omitempty"`
	Price      float64             `json:"price" bson:"price"`
	ImageURLs  []string            `json:"imageURLs" bson:"imageURLs"`
	ProviderID int                 `json:"providerID" bson:"providerID"`
	LaunchDate *time.Time          `json:"launchDate,omitempty" bson:"launchDate,omitempty"`
	Stock      int                 `json:"stock" bson:"stock"`
	Status     string              `json:"status" bson:"status"`
}

// HasTags reports whether the product carries at least one tag
func (p *Product) HasTags() bool {
	return len(p.QTags) > 0
}

// ProductFilter holds the validated search parameters a product listing can
// be narrowed by. Zero values mean "no constraint" for the string fields;
// the pointer fields distinguish absent from zero.
type ProductFilter struct {
	Name       string
	Status     string
	Tags       []string
	Attributes map[string][]string
	CategoryID *int
	ProviderID *int
	ExcludeSKU string
}

// Page is a skip/limit pagination pair
type Page struct {
	Offset int
	Limit  int
}

// DefaultPage returns the pagination applied when the caller supplies nothing
func DefaultPage() Page {
	return Page{Offset: 0, Limit: 10}
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	FindBySKU(ctx context.Context, sku string) (*Product, error)
	Find(ctx context.Context, filter ProductFilter, page Page) ([]Product, error)
	UpdateBySKU(ctx context.Context, sku string, fields map[string]interface{}) (*Product, error)
	DeleteBySKU(ctx context.Context, sku string) (*Product, error)
}

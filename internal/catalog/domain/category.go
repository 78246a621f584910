package domain

import "context"

// NoParentCategory is the sentinel parentCategoryID for root categories
const NoParentCategory = -1

// Category represents a product category, identified by its categoryID.
// Categories form a hierarchy through ParentCategoryID.
type Category struct {
	CategoryID       int    `json:"categoryID" bson:"categoryID"`
	Name             string `json:"name" bson:"name"`
	ParentCategoryID int    `json:"parentCategoryID" bson:"parentCategoryID"`
}

// CategoryFilter holds the validated search parameters for category listings
type CategoryFilter struct {
	Name string
}

// CategoryRepository defines the contract for category data access
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	FindByID(ctx context.Context, categoryID int) (*Category, error)
	Find(ctx context.Context, filter CategoryFilter, page Page) ([]Category, error)
	FindChildren(ctx context.Context, parentCategoryID int) ([]Category, error)
	UpdateByID(ctx context.Context, categoryID int, fields map[string]interface{}) (*Category, error)
	DeleteByID(ctx context.Context, categoryID int) (*Category, error)
}

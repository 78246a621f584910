package query

import (
	"context"

	"github.com/pmslab/catalog-service/internal/catalog/domain"
)

// GetCategoryProductsQuery lists the products belonging to a category
type GetCategoryProductsQuery struct {
	CategoryID int
	Page       domain.Page
}

// GetCategoryProductsHandler handles category-to-products lookups
type GetCategoryProductsHandler struct {
	categories domain.CategoryRepository
	products   domain.ProductRepository
}

func NewGetCategoryProductsHandler(categories domain.CategoryRepository, products domain.ProductRepository) *GetCategoryProductsHandler {
	return &GetCategoryProductsHandler{categories: categories, products: products}
}

// Handle resolves the category first; only then is the product collection
// queried
func (h *GetCategoryProductsHandler) Handle(ctx context.Context, q GetCategoryProductsQuery) ([]domain.Product, error) {
	category, err := h.categories.FindByID(ctx, q.CategoryID)
	if err != nil {
		return nil, err
	}

	products, err := h.products.Find(ctx, domain.ProductFilter{CategoryID: &category.CategoryID}, q.Page)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, domain.NewNoMatches("Products")
	}
	return products, nil
}

package query

import (
	"context"

	"github.com/pmslab/catalog-service/internal/catalog/domain"
)

// GetProductQuery represents the query to get a product by sku
type GetProductQuery struct {
	SKU string
}

// GetProductHandler handles single-product lookups
type GetProductHandler struct {
	repo domain.ProductRepository
}

func NewGetProductHandler(repo domain.ProductRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

func (h *GetProductHandler) Handle(ctx context.Context, q GetProductQuery) (*domain.Product, error) {
	return h.repo.FindBySKU(ctx, q.SKU)
}

package query

import (
	"context"

	"github.com/pmslab/catalog-service/internal/catalog/domain"
)

// SimilarProductsQuery finds products sharing at least one tag with the seed
type SimilarProductsQuery struct {
	SKU  string
	Page domain.Page
}

// SimilarProductsHandler handles tag-overlap similarity lookups
type SimilarProductsHandler struct {
	repo domain.ProductRepository
}

func NewSimilarProductsHandler(repo domain.ProductRepository) *SimilarProductsHandler {
	return &SimilarProductsHandler{repo: repo}
}

// Handle looks up the seed product first; a missing seed is reported as the
// product lookup failure, never as a similarity miss. The seed itself is
// excluded from the results.
func (h *SimilarProductsHandler) Handle(ctx context.Context, q SimilarProductsQuery) ([]domain.Product, error) {
	seed, err := h.repo.FindBySKU(ctx, q.SKU)
	if err != nil {
		return nil, err
	}
	if !seed.HasTags() {
		return nil, domain.NewNoMatches("Similar Products")
	}

	similar, err := h.repo.Find(ctx, domain.ProductFilter{
		Tags:       seed.QTags,
		ExcludeSKU: seed.SKU,
	}, q.Page)
	if err != nil {
		return nil, err
	}
	if len(similar) == 0 {
		return nil, domain.NewNoMatches("Similar Products")
	}
	return similar, nil
}

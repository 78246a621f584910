package query

import (
	"context"

	"github.com/pmslab/catalog-service/internal/catalog/domain"
)

// FilterCategoriesQuery represents a filtered category listing
type FilterCategoriesQuery struct {
	Name string
	Page domain.Page
}

// FilterCategoriesHandler handles category listings
type FilterCategoriesHandler struct {
	repo domain.CategoryRepository
}

func NewFilterCategoriesHandler(repo domain.CategoryRepository) *FilterCategoriesHandler {
	return &FilterCategoriesHandler{repo: repo}
}

func (h *FilterCategoriesHandler) Handle(ctx context.Context, q FilterCategoriesQuery) ([]domain.Category, error) {
	categories, err := h.repo.Find(ctx, domain.CategoryFilter{Name: q.Name}, q.Page)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, domain.NewNoMatches("Categories")
	}
	return categories, nil
}

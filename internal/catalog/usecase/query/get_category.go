package query

import (
	"context"

	"github.com/pmslab/catalog-service/internal/catalog/domain"
)

// GetCategoryQuery represents the query to get a category by categoryID
type GetCategoryQuery struct {
	CategoryID int
}

// GetCategoryHandler handles single-category lookups
type GetCategoryHandler struct {
	repo domain.CategoryRepository
}

func NewGetCategoryHandler(repo domain.CategoryRepository) *GetCategoryHandler {
	return &GetCategoryHandler{repo: repo}
}

func (h *GetCategoryHandler) Handle(ctx context.Context, q GetCategoryQuery) (*domain.Category, error) {
	return h.repo.FindByID(ctx, q.CategoryID)
}

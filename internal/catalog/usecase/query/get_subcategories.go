package query

import (
	"context"

	"github.com/pmslab/catalog-service/internal/catalog/domain"
)

// GetSubCategoriesQuery lists the direct children of a category
type GetSubCategoriesQuery struct {
	CategoryID int
}

// GetSubCategoriesHandler handles subcategory lookups
type GetSubCategoriesHandler struct {
	repo domain.CategoryRepository
}

func NewGetSubCategoriesHandler(repo domain.CategoryRepository) *GetSubCategoriesHandler {
	return &GetSubCategoriesHandler{repo: repo}
}

// Handle resolves the parent category first; only then are its children
// queried
func (h *GetSubCategoriesHandler) Handle(ctx context.Context, q GetSubCategoriesQuery) ([]domain.Category, error) {
	parent, err := h.repo.FindByID(ctx, q.CategoryID)
	if err != nil {
		return nil, err
	}

	children, err := h.repo.FindChildren(ctx, parent.CategoryID)
	if err != nil {
		return nil, err
	}
	if len(children) == 0 {
		return nil, domain.NewNoMatches("SubCategories")
	}
	return children, nil
}

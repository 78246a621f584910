package command

import (
	"context"

	"github.com/pmslab/catalog-service/internal/catalog/domain"
)

// DeleteCategoryCommand represents the command to delete a category by its
// categoryID. Products referencing the category keep their reference; there
// is no cascading delete.
type DeleteCategoryCommand struct {
	CategoryID int
}

// DeleteCategoryHandler handles category deletion
type DeleteCategoryHandler struct {
	repo domain.CategoryRepository
}

func NewDeleteCategoryHandler(repo domain.CategoryRepository) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{repo: repo}
}

func (h *DeleteCategoryHandler) Handle(ctx context.Context, cmd DeleteCategoryCommand) (*domain.Category, error) {
	return h.repo.DeleteByID(ctx, cmd.CategoryID)
}

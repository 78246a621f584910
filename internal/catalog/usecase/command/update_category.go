package command

import (
	"context"

	"github.com/pmslab/catalog-service/internal/catalog/domain"
)

// UpdateCategoryCommand carries the partial update for a category
type UpdateCategoryCommand struct {
	CategoryID int
	Fields     map[string]interface{}
}

// UpdateCategoryHandler handles partial category updates
type UpdateCategoryHandler struct {
	repo domain.CategoryRepository
}

func NewUpdateCategoryHandler(repo domain.CategoryRepository) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{repo: repo}
}

func (h *UpdateCategoryHandler) Handle(ctx context.Context, cmd UpdateCategoryCommand) (*domain.Category, error) {
	if len(cmd.Fields) == 0 {
		return nil, &domain.BadRequestError{Message: "Request Body cannot be empty"}
	}
	return h.repo.UpdateByID(ctx, cmd.CategoryID, cmd.Fields)
}

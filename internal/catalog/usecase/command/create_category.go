package command

import (
	"context"

	"github.com/pmslab/catalog-service/internal/catalog/domain"
)

// CreateCategoryCommand represents the command to create a new category.
// ParentCategoryID of -1 marks a root category; parent existence is not
// checked, matching the open hierarchy the data model allows.
type CreateCategoryCommand struct {
	CategoryID       int
	Name             string
	ParentCategoryID int
}

// CreateCategoryHandler handles category creation
type CreateCategoryHandler struct {
	repo domain.CategoryRepository
}

func NewCreateCategoryHandler(repo domain.CategoryRepository) *CreateCategoryHandler {
	return &CreateCategoryHandler{repo: repo}
}

func (h *CreateCategoryHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) (*domain.Category, error) {
	category := &domain.Category{
		CategoryID:       cmd.CategoryID,
		Name:             cmd.Name,
		ParentCategoryID: cmd.ParentCategoryID,
	}
	if err := h.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

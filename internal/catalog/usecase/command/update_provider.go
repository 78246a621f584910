package command

import (
	"context"

	"github.com/pmslab/catalog-service/internal/catalog/domain"
)

// UpdateProviderCommand carries the partial update for a provider
type UpdateProviderCommand struct {
	ProviderID int
	Fields     map[string]interface{}
}

// UpdateProviderHandler handles partial provider updates
type UpdateProviderHandler struct {
	repo domain.ProviderRepository
}

func NewUpdateProviderHandler(repo domain.ProviderRepository) *UpdateProviderHandler {
	return &UpdateProviderHandler{repo: repo}
}

func (h *UpdateProviderHandler) Handle(ctx context.Context, cmd UpdateProviderCommand) (*domain.Provider, error) {
	if len(cmd.Fields) == 0 {
		return nil, &domain.BadRequestError{Message: "Request Body cannot be empty"}
	}
	return h.repo.UpdateByID(ctx, cmd.ProviderID, cmd.Fields)
}

package command

import (
	"context"

	"github.com/pmslab/catalog-service/internal/catalog/domain"
)

// DeleteProviderCommand represents the command to delete a provider by its
// providerID
type DeleteProviderCommand struct {
	ProviderID int
}

// DeleteProviderHandler handles provider deletion
type DeleteProviderHandler struct {
	repo domain.ProviderRepository
}

func NewDeleteProviderHandler(repo domain.ProviderRepository) *DeleteProviderHandler {
	return &DeleteProviderHandler{repo: repo}
}

func (h *DeleteProviderHandler) Handle(ctx context.Context, cmd DeleteProviderCommand) (*domain.Provider, error) {
	return h.repo.DeleteByID(ctx, cmd.ProviderID)
}

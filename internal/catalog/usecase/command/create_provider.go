package command

import (
	"context"

	"github.com/pmslab/catalog-service/internal/catalog/domain"
)

// CreateProviderCommand represents the command to create a new provider
type CreateProviderCommand struct {
	ProviderID int
	Name       string
	Website    string
	Email      string
}

// CreateProviderHandler handles provider creation
type CreateProviderHandler struct {
	repo domain.ProviderRepository
}

func NewCreateProviderHandler(repo domain.ProviderRepository) *CreateProviderHandler {
	return &CreateProviderHandler{repo: repo}
}

func (h *CreateProviderHandler) Handle(ctx context.Context, cmd CreateProviderCommand) (*domain.Provider, error) {
	provider := &domain.Provider{
		ProviderID: cmd.ProviderID,
		Name:       cmd.Name,
		Website:    cmd.Website,
		Email:      cmd.Email,
	}
	if err := h.repo.Create(ctx, provider); err != nil {
		return nil, err
	}
	return provider, nil
}

package query

import (
	"context"

	"github.com/pmslab/catalog-service/internal/catalog/domain"
)

// GetProviderQuery represents the query to get a provider by providerID
type GetProviderQuery struct {
	ProviderID int
}

// GetProviderHandler handles single-provider lookups
type GetProviderHandler struct {
	repo domain.ProviderRepository
}

func NewGetProviderHandler(repo domain.ProviderRepository) *GetProviderHandler {
	return &GetProviderHandler{repo: repo}
}

func (h *GetProviderHandler) Handle(ctx context.Context, q GetProviderQuery) (*domain.Provider, error) {
	return h.repo.FindByID(ctx, q.ProviderID)
}

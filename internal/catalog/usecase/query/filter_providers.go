package query

import (
	"context"

	"github.com/pmslab/catalog-service/internal/catalog/domain"
)

// FilterProvidersQuery represents a filtered provider listing
type FilterProvidersQuery struct {
	Name  string
	Email string
	Page  domain.Page
}

// FilterProvidersHandler handles provider listings
type FilterProvidersHandler struct {
	repo domain.ProviderRepository
}

func NewFilterProvidersHandler(repo domain.ProviderRepository) *FilterProvidersHandler {
	return &FilterProvidersHandler{repo: repo}
}

func (h *FilterProvidersHandler) Handle(ctx context.Context, q FilterProvidersQuery) ([]domain.Provider, error) {
	providers, err := h.repo.Find(ctx, domain.ProviderFilter{Name: q.Name, Email: q.Email}, q.Page)
	if err != nil {
		return nil, err
	}
	if len(providers) == 0 {
		return nil, domain.NewNoMatches("Providers")
	}
	return providers, nil
}

package query

import (
	"context"

	"github.com/pmslab/catalog-service/internal/catalog/domain"
)

// FilterProductsQuery represents a filtered product search. Zero values mean
// "no constraint"; ProviderName filters by the provider's name rather than
// its ID and requires a lookup before the product search.
type FilterProductsQuery struct {
	Name         string
	Status       string
	Tags         []string
	Attributes   map[string][]string
	ProviderName string
	Page         domain.Page
}

// FilterProductsHandler handles filtered product searches
type FilterProductsHandler struct {
	products  domain.ProductRepository
	providers domain.ProviderRepository
}

func NewFilterProductsHandler(products domain.ProductRepository, providers domain.ProviderRepository) *FilterProductsHandler {
	return &FilterProductsHandler{products: products, providers: providers}
}

// Handle executes the search. The provider-name lookup is a strict first
// step: an unknown provider fails the whole request before the product
// collection is queried.
func (h *FilterProductsHandler) Handle(ctx context.Context, q FilterProductsQuery) ([]domain.Product, error) {
	filter := domain.ProductFilter{
		Name:       q.Name,
		Status:     q.Status,
		Tags:       q.Tags,
		Attributes: q.Attributes,
	}

	if q.ProviderName != "" {
		provider, err := h.providers.FindByName(ctx, q.ProviderName)
		if err != nil {
			return nil, err
		}
		filter.ProviderID = &provider.ProviderID
	}

	products, err := h.products.Find(ctx, filter, q.Page)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, domain.NewNoMatches("Products")
	}
	return products, nil
}

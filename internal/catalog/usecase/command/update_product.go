package command

import (
	"context"

	"github.com/pmslab/catalog-service/internal/catalog/domain"
	"github.com/pmslab/catalog-service/kafka"
	"github.com/pmslab/catalog-service/pkg/logger"
)

// UpdateProductCommand carries the partial update for a product: only the
// fields present in Fields change, everything else keeps its stored value
type UpdateProductCommand struct {
	SKU    string
	Fields map[string]interface{}
}

// UpdateProductHandler handles partial product updates
type UpdateProductHandler struct {
	repo   domain.ProductRepository
	events *kafka.Publisher
}

func NewUpdateProductHandler(repo domain.ProductRepository, events *kafka.Publisher) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo, events: events}
}

// Handle executes the update and returns the new document
func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	if len(cmd.Fields) == 0 {
		return nil, &domain.BadRequestError{Message: "Request Body cannot be empty"}
	}

	product, err := h.repo.UpdateBySKU(ctx, cmd.SKU, cmd.Fields)
	if err != nil {
		return nil, err
	}

	if err := h.events.Publish(ctx, kafka.CatalogEvent{
		EventType: kafka.EventTypeProductUpdated,
		Resource:  "product",
		Key:       product.SKU,
	}); err != nil {
		logger.WithContext(ctx).Warn().Err(err).Str("sku", product.SKU).Msg("Failed to publish update event")
	}

	return product, nil
}

package command

import (
	"context"

	"github.com/pmslab/catalog-service/internal/catalog/domain"
	"github.com/pmslab/catalog-service/kafka"
	"github.com/pmslab/catalog-service/pkg/logger"
)

// DeleteProductCommand represents the command to delete a product by sku
type DeleteProductCommand struct {
	SKU string
}

// DeleteProductHandler handles product deletion
type DeleteProductHandler struct {
	repo   domain.ProductRepository
	events *kafka.Publisher
}

func NewDeleteProductHandler(repo domain.ProductRepository, events *kafka.Publisher) *DeleteProductHandler {
	return &DeleteProductHandler{repo: repo, events: events}
}

// Handle executes the delete and returns the removed document
func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProductCommand) (*domain.Product, error) {
	product, err := h.repo.DeleteBySKU(ctx, cmd.SKU)
	if err != nil {
		return nil, err
	}

	if err := h.events.Publish(ctx, kafka.CatalogEvent{
		EventType: kafka.EventTypeProductDeleted,
		Resource:  "product",
		Key:       product.SKU,
	}); err != nil {
		logger.WithContext(ctx).Warn().Err(err).Str("sku", product.SKU).Msg("Failed to publish delete event")
	}

	return product, nil
}

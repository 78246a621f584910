package command

import (
	"context"
	"time"

	"github.com/pmslab/catalog-service/internal/catalog/domain"
	"github.com/pmslab/catalog-service/kafka"
	"github.com/pmslab/catalog-service/pkg/logger"
)

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
	SKU        string
	Name       string
	CategoryID int
	QTags      []string
	Attributes map[string][]string
	Price      float64
	ImageURLs  []string
	ProviderID int
	LaunchDate *time.Time
	Stock      int
	Status     string
}

// CreateProductHandler handles product creation
type CreateProductHandler struct {
	repo   domain.ProductRepository
	events *kafka.Publisher
}

func NewCreateProductHandler(repo domain.ProductRepository, events *kafka.Publisher) *CreateProductHandler {
	return &CreateProductHandler{repo: repo, events: events}
}

// Handle executes the create product command. The sku uniqueness invariant is
// enforced by the collection's unique index, not a read-then-write check.
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	product := &domain.Product{
		SKU:        cmd.SKU,
		Name:       cmd.Name,
		CategoryID: cmd.CategoryID,
		QTags:      cmd.QTags,
		Attributes: cmd.Attributes,
		Price:      cmd.Price,
		ImageURLs:  cmd.ImageURLs,
		ProviderID: cmd.ProviderID,
		LaunchDate: cmd.LaunchDate,
		Stock:      cmd.Stock,
		Status:     cmd.Status,
	}
	if product.QTags == nil {
		product.QTags = []string{}
	}
	if product.ImageURLs == nil {
		product.ImageURLs = []string{}
	}
	if product.Status == "" {
		product.Status = domain.StatusAvailable
	}

	if err := h.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	// Best effort: a dropped event never fails the request
	if err := h.events.Publish(ctx, kafka.CatalogEvent{
		EventType: kafka.EventTypeProductCreated,
		Resource:  "product",
		Key:       product.SKU,
	}); err != nil {
		logger.WithContext(ctx).Warn().Err(err).Str("sku", product.SKU).Msg("Failed to publish create event")
	}

	return product, nil
}

package kafka

import "time"

// CatalogEvent announces a catalog mutation to downstream consumers
type CatalogEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Resource  string    `json:"resource"`
	Key       string    `json:"key"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeProductCreated = "catalog.product.created"
	EventTypeProductUpdated = "catalog.product.updated"
	EventTypeProductDeleted = "catalog.product.deleted"
)

// Kafka topics
const (
	TopicCatalogEvents = "catalog-events"
)

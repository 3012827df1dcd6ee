package event

import (
	"context"
	"log/slog"

	"github.com/digitalbuddiesspune/stylegenz/internal/domain"
	"github.com/digitalbuddiesspune/stylegenz/pkg/kafka"
	"github.com/digitalbuddiesspune/stylegenz/pkg/logger"
)

// Topic and event type names for catalog analytics.
const (
	TopicCatalogEvents = "storefront.catalog.events"

	TypeCatalogSearched  = "storefront.catalog.searched"
	TypeWishlistModified = "storefront.wishlist.modified"
)

const source = "catalog-service"

// SearchedPayload records one catalog listing query for analytics.
type SearchedPayload struct {
	Category   string `json:"category,omitempty"`
	SearchTerm string `json:"search_term,omitempty"`
	Filters    int    `json:"filters"`
	Page       int    `json:"page"`
	TotalItems int    `json:"total_items"`
}

// WishlistPayload records one wishlist mutation.
type WishlistPayload struct {
	UserID  string            `json:"user_id"`
	ItemID  string            `json:"item_id"`
	Variant domain.VariantTag `json:"variant,omitempty"`
	Action  string            `json:"action"`
}

// Publisher emits catalog analytics events. Publishing is best effort: a
// broker outage must never fail the request that triggered the event.
type Publisher interface {
	CatalogSearched(ctx context.Context, payload SearchedPayload)
	WishlistModified(ctx context.Context, payload WishlistPayload)
}

// KafkaPublisher publishes analytics events through the shared producer.
type KafkaPublisher struct {
	producer *kafka.Producer
	logger   *slog.Logger
}

// NewKafkaPublisher creates a publisher on top of an existing producer.
func NewKafkaPublisher(producer *kafka.Producer, log *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, logger: log}
}

// CatalogSearched emits a search analytics event. Failures are logged and
// swallowed.
func (p *KafkaPublisher) CatalogSearched(ctx context.Context, payload SearchedPayload) {
	aggregateID := payload.Category
	if aggregateID == "" {
		aggregateID = "all"
	}
	p.publish(ctx, TypeCatalogSearched, aggregateID, "catalog_query", payload)
}

// WishlistModified emits a wishlist mutation event. Failures are logged and
// swallowed.
func (p *KafkaPublisher) WishlistModified(ctx context.Context, payload WishlistPayload) {
	p.publish(ctx, TypeWishlistModified, payload.UserID, "wishlist", payload)
}

func (p *KafkaPublisher) publish(ctx context.Context, eventType, aggregateID, aggregateType string, payload any) {
	evt, err := kafka.NewEvent(eventType, aggregateID, aggregateType, source, payload)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to build event",
			slog.String("event_type", eventType),
			slog.String("error", err.Error()),
		)
		return
	}

	if correlationID := logger.CorrelationIDFromContext(ctx); correlationID != "" {
		evt.WithCorrelationID(correlationID)
	}

	if err := p.producer.Publish(ctx, TopicCatalogEvents, evt); err != nil {
		p.logger.WarnContext(ctx, "event publish failed",
			slog.String("event_type", eventType),
			slog.String("error", err.Error()),
		)
	}
}

// NoopPublisher discards events; used when Kafka is disabled.
type NoopPublisher struct{}

func (NoopPublisher) CatalogSearched(context.Context, SearchedPayload)   {}
func (NoopPublisher) WishlistModified(context.Context, WishlistPayload) {}

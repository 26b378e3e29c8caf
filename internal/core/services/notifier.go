package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
	"github.com/srgjo27/hotel_inventory/internal/core/ports"
)

// notifier runs the post-commit side effects. Failures are logged, never returned:
// the inventory change is already durable by the time it runs.
type notifier struct {
	cache     ports.AvailabilityCache
	publisher ports.EventPublisher
	log       *zap.Logger
}

func newNotifier(cache ports.AvailabilityCache, publisher ports.EventPublisher, log *zap.Logger) *notifier {
	return &notifier{cache: cache, publisher: publisher, log: log}
}

func (n *notifier) invalidate(ctx context.Context, roomTypeID uuid.UUID) {
	if n.cache == nil {
		return
	}

	if err := n.cache.Invalidate(ctx, roomTypeID); err != nil {
		n.log.Warn("failed to invalidate availability cache",
			zap.String("room_type_id", roomTypeID.String()),
			zap.Error(err))
	}
}

func (n *notifier) publish(ctx context.Context, event domain.Event) {
	if n.publisher == nil {
		return
	}

	if err := n.publisher.Publish(ctx, event); err != nil {
		n.log.Warn("failed to publish event",
			zap.String("type", string(event.Type)),
			zap.String("event_id", event.ID.String()),
			zap.Error(err))
	}
}

func (n *notifier) committed(ctx context.Context, roomTypeID uuid.UUID, event domain.Event) {
	n.invalidate(ctx, roomTypeID)
	n.publish(ctx, event)
}

func orNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}

	return log
}

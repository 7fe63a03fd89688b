package service

import (
	"context"
	"encoding/json"
	"time"

	"food-tracker/catalog-svc/internal/domain"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// MessageReader is the part of *kafka.Reader the consumer needs.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// DefaultReadBackoff is the pause after a failed read before retrying.
const DefaultReadBackoff = time.Second

// ChangeConsumer follows the replica change feed and drops cached aggregates
// whenever another instance commits a change.
type ChangeConsumer struct {
	Reader  MessageReader
	Cache   CacheInvalidator
	Logger  *zap.SugaredLogger
	Backoff time.Duration
}

func NewChangeConsumer(reader MessageReader, cache CacheInvalidator, logger *zap.SugaredLogger) *ChangeConsumer {
	return &ChangeConsumer{
		Reader:  reader,
		Cache:   cache,
		Logger:  logger,
		Backoff: DefaultReadBackoff,
	}
}

// Start blocks until ctx is cancelled.
func (c *ChangeConsumer) Start(ctx context.Context) {
	c.Logger.Info("starting change feed consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.Logger.Warnw("error reading change message", "error", err, "retry_in", c.Backoff)
			select {
			case <-ctx.Done():
				return
			case <-time.After(c.Backoff):
			}
			continue
		}

		var change domain.ChangeEvent
		if err := json.Unmarshal(message.Value, &change); err != nil {
			c.Logger.Warnw("error unmarshaling change message", "error", err)
			continue
		}
		c.ProcessChange(ctx, change)
	}
}

func (c *ChangeConsumer) ProcessChange(ctx context.Context, change domain.ChangeEvent) {
	switch change.Type {
	case domain.ChangeRestaurantCreated, domain.ChangeRestaurantUpdated, domain.ChangeRestaurantDeleted,
		domain.ChangeReviewCreated, domain.ChangeReviewUpdated, domain.ChangeUserCreated, domain.ChangeUserDeleted:
	default:
		c.Logger.Debugw("ignoring change", "type", change.Type)
		return
	}

	if err := c.Cache.Invalidate(ctx); err != nil {
		c.Logger.Errorw("error invalidating cache", "change", change.Type, "error", err)
		return
	}
	c.Logger.Debugw("cache invalidated", "change", change.Type, "restaurant_id", change.RestaurantID)
}

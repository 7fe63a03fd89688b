package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"food-tracker/catalog-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

// KafkaReplicator flushes committed changes to the remote replica feed. The
// writer is expected to require acks so Sync returns only once the broker
// has the event.
type KafkaReplicator struct {
	Writer *kafka.Writer
}

func NewKafkaReplicator(writer *kafka.Writer) *KafkaReplicator {
	return &KafkaReplicator{Writer: writer}
}

func (p *KafkaReplicator) Sync(ctx context.Context, change domain.ChangeEvent) error {
	payload, err := json.Marshal(change)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(change.RestaurantID, 10)),
		Value: payload,
	})
}

// LocalReplicator is used when there is no remote replica: the database
// commit is already the durable state.
type LocalReplicator struct{}

func (LocalReplicator) Sync(context.Context, domain.ChangeEvent) error { return nil }

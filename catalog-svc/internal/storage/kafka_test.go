package storage

import (
	"context"
	"testing"
	"time"

	"food-tracker/catalog-svc/internal/domain"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestLocalReplicator(t *testing.T) {
	err := LocalReplicator{}.Sync(context.Background(), domain.ChangeEvent{Type: domain.ChangeRestaurantCreated, RestaurantID: 1})
	assert.NoError(t, err)
}

func TestKafkaReplicator_UnreachableBroker(t *testing.T) {
	writer := &kafka.Writer{
		Addr:         kafka.TCP("localhost:1"),
		Topic:        "catalog-changes",
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  1,
	}
	defer writer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := NewKafkaReplicator(writer).Sync(ctx, domain.ChangeEvent{Type: domain.ChangeRestaurantDeleted, RestaurantID: 3})
	assert.Error(t, err)
}

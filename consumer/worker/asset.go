package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/amazing-thailand/photo-service/infra"
	"github.com/amazing-thailand/photo-service/infra/produce"
)

// objectStore is the slice of the MinIO client the consumer needs.
type objectStore interface {
	Destroy(ctx context.Context, storedID string) error
}

// AssetConsumer drains the retire queue, retrying remote deletes that the
// request path could only attempt best-effort.
type AssetConsumer struct {
	channel *amqp.Channel
	infra   *infra.Infra
	store   objectStore
	backoff time.Duration
}

func NewAssetConsumer(channel *amqp.Channel, infra *infra.Infra) *AssetConsumer {
	return &AssetConsumer{
		channel: channel,
		infra:   infra,
		store:   infra.Minio,
		backoff: 2 * time.Second,
	}
}

func (c *AssetConsumer) Start(ctx context.Context) error {
	msgs, err := c.channel.Consume(
		produce.AssetRetireQueue,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register asset retire consumer: %w", err)
	}

	c.infra.Logger.InfoWithContextf(ctx, "[Asset Consumer] Started listening for retire jobs on queue: %s", produce.AssetRetireQueue)

	go func() {
		for {
			select {
			case <-ctx.Done():
				c.infra.Logger.InfoWithContextf(ctx, "[Asset Consumer] Shutting down...")
				return
			case msg, ok := <-msgs:
				if !ok {
					c.infra.Logger.WarningWithContextf(ctx, "[Asset Consumer] Channel closed")
					return
				}
				c.handleRetireAsset(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *AssetConsumer) handleRetireAsset(ctx context.Context, msg amqp.Delivery) {
	c.infra.Logger.InfoWithContextf(ctx, "[Asset Consumer] Received message: %s", string(msg.Body))

	var payload produce.RetireAssetMessage
	if err := json.Unmarshal(msg.Body, &payload); err != nil {
		c.infra.Logger.ErrorWithContextf(ctx, err, "[Asset Consumer] Failed to unmarshal message: %v", err)
		_ = msg.Nack(false, false)
		return
	}

	maxRetries := 3
	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		lastErr = c.store.Destroy(ctx, payload.StoredID)
		if lastErr == nil {
			c.infra.Logger.InfoWithContextf(ctx, "[Asset Consumer] Successfully retired asset '%s'", payload.StoredID)
			_ = msg.Ack(false)
			return
		}

		c.infra.Logger.ErrorWithContextf(ctx, lastErr, "[Asset Consumer] Attempt %d/%d failed: %v", attempt, maxRetries, lastErr)

		if attempt < maxRetries {
			time.Sleep(time.Duration(attempt) * c.backoff)
		}
	}

	// Attempts are bounded: a destroy the store rejects every time would
	// otherwise redeliver forever, so the message is dropped, not requeued.
	c.infra.Logger.ErrorWithContextf(ctx, lastErr, "[Asset Consumer] Failed after %d attempts, dropping message for '%s'", maxRetries, payload.StoredID)
	_ = msg.Nack(false, false)
}

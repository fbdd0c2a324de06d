package produce

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	AssetExchange         = "asset.exchange"
	AssetRetireQueue      = "asset.retire"
	AssetRetireRoutingKey = "asset.retire"
)

// AssetService publishes retire jobs for remote objects whose best-effort
// delete failed, so the reaper can retry them out of band.
type AssetService struct {
	channel *amqp.Channel
}

type RetireAssetMessage struct {
	StoredID  string `json:"stored_id"`
	Timestamp int64  `json:"timestamp"`
}

func InitAssetService(channel *amqp.Channel) *AssetService {
	service := &AssetService{
		channel: channel,
	}

	// Declare exchange
	err := channel.ExchangeDeclare(
		AssetExchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		panic("Failed to declare Asset exchange: " + err.Error())
	}

	// Declare retire queue
	_, err = channel.QueueDeclare(
		AssetRetireQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		panic("Failed to declare Asset retire queue: " + err.Error())
	}

	// Bind retire queue to exchange
	err = channel.QueueBind(
		AssetRetireQueue,
		AssetRetireRoutingKey,
		AssetExchange,
		false,
		nil,
	)
	if err != nil {
		panic("Failed to bind Asset retire queue: " + err.Error())
	}

	return service
}

func (s *AssetService) PublishRetireAsset(ctx context.Context, storedID string) error {
	message := RetireAssetMessage{
		StoredID:  storedID,
		Timestamp: time.Now().Unix(),
	}

	body, err := json.Marshal(message)
	if err != nil {
		return err
	}

	return s.channel.PublishWithContext(ctx,
		AssetExchange,
		AssetRetireRoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// watermillPublisher adapts a watermill message.Publisher to EventPublisher.
type watermillPublisher struct {
	publisher message.Publisher
	logger    *slog.Logger
}

func newWatermillPublisher(publisher message.Publisher, logger *slog.Logger) EventPublisher {
	return &watermillPublisher{
		publisher: publisher,
		logger:    logger,
	}
}

func (p *watermillPublisher) PublishNotification(_ context.Context, event NotificationEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("kind", string(event.Kind))
	msg.Metadata.Set("owner_id", event.OwnerID)

	if err := p.publisher.Publish(NotificationTopic, msg); err != nil {
		return fmt.Errorf("failed to publish notification event: %w", err)
	}

	p.logger.Debug("Published notification event",
		"record_key", event.RecordKey,
		"due_date", event.DueDate)
	return nil
}

func (p *watermillPublisher) Close() error {
	return p.publisher.Close()
}

// GoChannelPubSub is the in-process pub/sub used by the companion notifier:
// the watcher publishes, the local delivery collaborator subscribes.
type GoChannelPubSub struct {
	EventPublisher
	pubSub *gochannel.GoChannel
}

func NewGoChannelPubSub(logger *slog.Logger) *GoChannelPubSub {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewSlogLogger(logger))
	return &GoChannelPubSub{
		EventPublisher: newWatermillPublisher(pubSub, logger),
		pubSub:         pubSub,
	}
}

// Subscribe returns the stream of notification events for local delivery.
func (g *GoChannelPubSub) Subscribe(ctx context.Context) (<-chan *message.Message, error) {
	return g.pubSub.Subscribe(ctx, NotificationTopic)
}

// NewKafkaPublisher builds the broker-backed publisher used when the server
// itself emits notification events instead of the desktop companion.
func NewKafkaPublisher(brokers []string, logger *slog.Logger) (EventPublisher, error) {
	publisher, err := kafka.NewPublisher(
		kafka.PublisherConfig{
			Brokers:   brokers,
			Marshaler: kafka.DefaultMarshaler{},
		},
		watermill.NewSlogLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka publisher: %w", err)
	}
	return newWatermillPublisher(publisher, logger), nil
}

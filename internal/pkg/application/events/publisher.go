package events

import (
	"context"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/logging"
	"github.com/diwise/telematics-device-ops/pkg/types"
)

//go:generate moq -rm -out topicpublisher_mock.go . TopicPublisher

// TopicPublisher is the part of the message bus used to announce lifecycle changes.
type TopicPublisher interface {
	PublishOnTopic(ctx context.Context, message messaging.TopicMessage) error
}

//go:generate moq -rm -out publisher_mock.go . Publisher

// Publisher announces completed lifecycle operations. Delivery failures are
// logged and never fail the operation that triggered them.
type Publisher interface {
	Publish(ctx context.Context, message types.TopicMessage)
}

type publisher struct {
	bus      TopicPublisher
	notifier Notifier
}

// NewPublisher publishes on bus and notifies cloudevent subscribers. Either may be nil.
func NewPublisher(bus TopicPublisher, notifier Notifier) Publisher {
	return &publisher{bus: bus, notifier: notifier}
}

func (p *publisher) Publish(ctx context.Context, message types.TopicMessage) {
	logger := logging.GetFromContext(ctx).With().Str("topic", message.TopicName()).Logger()

	if p.bus != nil {
		err := p.bus.PublishOnTopic(ctx, message)
		if err != nil {
			logger.Error().Err(err).Msg("failed to publish message on topic")
		}
	}

	if p.notifier != nil {
		err := p.notifier.Notify(ctx, message)
		if err != nil {
			logger.Error().Err(err).Msg("failed to notify subscribers")
		}
	}
}

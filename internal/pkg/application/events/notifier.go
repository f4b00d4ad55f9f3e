package events

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/logging"
	"github.com/diwise/telematics-device-ops/pkg/types"
	"github.com/google/uuid"
	"golang.org/x/sys/unix"
	yaml "gopkg.in/yaml.v2"
)

const (
	eventSource     string = "github.com/diwise/telematics-device-ops"
	eventTypePrefix string = "telematics."
)

//go:generate moq -rm -out notifier_mock.go . Notifier

// Notifier delivers lifecycle messages as cloudevents to the subscribers
// configured for their event type.
type Notifier interface {
	Notify(ctx context.Context, message types.TopicMessage) error
}

type notifier struct {
	subscribers map[string][]SubscriberConfig
	now         func() time.Time
}

func NewNotifier(cfg *Config) Notifier {
	n := &notifier{
		subscribers: make(map[string][]SubscriberConfig),
		now:         time.Now,
	}

	if cfg != nil {
		for _, s := range cfg.Notifications {
			n.subscribers[s.Type] = append(n.subscribers[s.Type], s.Subscribers...)
		}
	}

	return n
}

func EventType(message types.TopicMessage) string {
	return eventTypePrefix + message.TopicName()
}

func (n *notifier) Notify(ctx context.Context, message types.TopicMessage) error {
	eventType := EventType(message)

	subscribers, ok := n.subscribers[eventType]
	if !ok || len(subscribers) == 0 {
		return nil
	}

	c, err := cloudevents.NewClientHTTP()
	if err != nil {
		return err
	}

	event := cloudevents.NewEvent()
	event.SetID(uuid.New().String())
	event.SetTime(n.now().UTC())
	event.SetSource(eventSource)
	event.SetType(eventType)

	err = event.SetData(cloudevents.ApplicationJSON, message)
	if err != nil {
		return err
	}

	logger := logging.GetFromContext(ctx)

	for _, s := range subscribers {
		ctxWithTarget := cloudevents.ContextWithTarget(ctx, s.Endpoint)

		result := c.Send(ctxWithTarget, event)
		if cloudevents.IsUndelivered(result) || errors.Is(result, unix.ECONNREFUSED) {
			logger.Error().Err(result).Msgf("failed to send %s event to %s", eventType, s.Endpoint)
			err = fmt.Errorf("%w", result)
		}
	}

	return err
}

type SubscriberConfig struct {
	Endpoint string `yaml:"endpoint"`
}

type Notification struct {
	ID          string             `yaml:"id"`
	Name        string             `yaml:"name"`
	Type        string             `yaml:"type"`
	Subscribers []SubscriberConfig `yaml:"subscribers"`
}

type Config struct {
	Notifications []Notification `yaml:"notifications"`
}

func LoadConfiguration(data io.Reader) (*Config, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := Config{}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

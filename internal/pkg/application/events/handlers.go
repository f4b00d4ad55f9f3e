package events

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/logging"
	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/telematics-device-ops/pkg/types"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// NewDeviceReturnedHandler records when a returned device physically arrives.
// Subscribers are notified, the message is not published on the bus again.
func NewDeviceReturnedHandler(ledger database.DeviceReturnRepository, notifier Notifier) messaging.TopicMessageHandler {
	return func(ctx context.Context, msg amqp.Delivery, logger zerolog.Logger) {
		returned := types.DeviceReturned{}

		err := json.Unmarshal(msg.Body, &returned)
		if err != nil {
			logger.Error().Err(err).Msgf("failed to unmarshal message from %s", msg.RoutingKey)
			return
		}

		logger = logger.With().
			Str("serialNumber", returned.SerialNumber).
			Int("deviceSeqID", returned.DeviceSeqID).
			Int("participantSeqID", returned.ParticipantSeqID).
			Logger()
		ctx = logging.NewContextWithLogger(ctx, logger)

		if returned.ReceivedAt.IsZero() {
			returned.ReceivedAt = time.Now().UTC()
		}

		err = ledger.MarkDeviceReceived(ctx, returned.DeviceSeqID, returned.ParticipantSeqID, returned.ReceivedAt)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				logger.Warn().Msg("received a device that has no recorded return")
				return
			}
			logger.Error().Err(err).Msg("could not record received device")
			return
		}

		logger.Info().Msg("device received")

		if notifier != nil {
			err = notifier.Notify(ctx, &returned)
			if err != nil {
				logger.Error().Err(err).Msg("failed to notify subscribers")
			}
		}
	}
}

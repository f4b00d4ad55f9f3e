package enrollment

import (
	"context"
	"fmt"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/diwise/telematics-device-ops/internal/pkg/application/events"
	"github.com/diwise/telematics-device-ops/internal/pkg/application/recovery"
	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/logging"
	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/remote/devicedirectory"
	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/telematics-device-ops/pkg/types"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("telematics-device-ops/enrollment")

//go:generate moq -rm -out enrollment_mock.go . ParticipantEnrollment

type ParticipantEnrollment interface {
	OptOut(ctx context.Context, user string, req types.OptOutParticipantRequest) (*types.Resource, error)
}

type enrollment struct {
	participants database.ParticipantRepository
	orders       database.OrderRepository
	devices      devicedirectory.DeviceDirectory
	inventory    database.InventoryRepository
	reconciler   recovery.Reconciler
	publisher    events.Publisher
	now          func() time.Time
}

func New(participants database.ParticipantRepository, orders database.OrderRepository, devices devicedirectory.DeviceDirectory, inventory database.InventoryRepository, reconciler recovery.Reconciler, publisher events.Publisher) ParticipantEnrollment {
	return &enrollment{
		participants: participants,
		orders:       orders,
		devices:      devices,
		inventory:    inventory,
		reconciler:   reconciler,
		publisher:    publisher,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// OptOut ends a participant's enrollment. Pending device orders are cancelled and a
// plug-in device is expected back as a customer return.
func (e *enrollment) OptOut(ctx context.Context, user string, req types.OptOutParticipantRequest) (*types.Resource, error) {
	var err error
	ctx, span := tracer.Start(ctx, "opt-out")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	ctx, logger := logging.WithOperation(ctx, "opt-out", user)
	logger = logger.With().Int("participantSeqID", req.ParticipantSequenceID).Logger()
	ctx = logging.NewContextWithLogger(ctx, logger)

	participant, err := e.participants.GetParticipant(ctx, req.ParticipantSequenceID)
	if err != nil {
		return nil, err
	}

	if participant == nil {
		err = fmt.Errorf("participant %d: %w", req.ParticipantSequenceID, types.ErrParticipantNotFound)
		return nil, err
	}

	result := types.NewResource()

	if participant.IsOptedOut() {
		logger.Info().Msg("participant already opted out")
		result.SetHandledStatus(types.StatusParticipantAlreadyOptedOut)
		return result, nil
	}

	err = e.participants.UpdateParticipantStatus(ctx, user, participant.ParticipantSeqID, types.ParticipantStatusOptOut)
	if err != nil {
		return nil, err
	}

	cancelled, err := e.orders.CancelPendingOrders(ctx, user, participant.ParticipantSeqID)
	if err != nil {
		return nil, err
	}

	logger.Debug().Int("cancelledOrders", cancelled).Msg("pending orders cancelled")

	serialNumber := req.DeviceSerialNumber
	if serialNumber == "" {
		serialNumber = participant.DeviceSerialNumber
	}

	if participant.DeviceExperience == types.DeviceExperiencePlugIn && serialNumber != "" {
		var device *types.Device
		device, err = e.findDevice(ctx, user, serialNumber)
		if err != nil {
			return nil, err
		}

		if device == nil {
			err = types.DeviceNotFoundError{SerialNumber: serialNumber}
			return nil, err
		}

		device.Status = types.DeviceStatusCustomerReturn
		device.Location = types.DeviceLocationUnknown

		var recovered types.RecoveryResult
		recovered, err = e.reconciler.RecoverDevice(ctx, user, *device, *participant, result, types.Reason(types.ReturnReasonOptOut))
		if err != nil {
			return nil, err
		}

		if !recovered.Success {
			logger.Error().Str("errorCode", result.String(types.ErrorCode)).Msg("device could not be recovered")
			return result, nil
		}

		e.syncInventory(ctx, *device)
	}

	result.SetStatus(types.StatusParticipantOptedOut)

	if e.publisher != nil {
		e.publisher.Publish(ctx, &types.ParticipantOptedOut{
			ParticipantSeqID: participant.ParticipantSeqID,
			SerialNumber:     serialNumber,
			User:             user,
			Timestamp:        e.now(),
		})
	}

	logger.Info().Msg("participant opted out")

	return result, nil
}

// findDevice looks a device up in the device directory only. It returns nil, nil
// if the directory does not know the serial number.
func (e *enrollment) findDevice(ctx context.Context, user, serialNumber string) (*types.Device, error) {
	return e.devices.GetDeviceBySerialNumber(ctx, user, serialNumber)
}

// syncInventory writes a reconciled status and location back to the inventory
// row of the device, if there is one.
func (e *enrollment) syncInventory(ctx context.Context, device types.Device) {
	logger := logging.GetFromContext(ctx)

	stored, err := e.inventory.GetDeviceBySerialNumber(ctx, device.SerialNumber)
	if err != nil || stored == nil {
		if err != nil {
			logger.Error().Err(err).Str("serialNumber", device.SerialNumber).Msg("inventory lookup failed")
		}
		return
	}

	stored.Status = device.Status
	stored.Location = device.Location

	if err = e.inventory.Save(ctx, *stored); err != nil {
		logger.Error().Err(err).Str("serialNumber", device.SerialNumber).Msg("failed to update inventory")
	}
}

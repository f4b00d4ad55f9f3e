package lifecycle

import (
	"context"
	"errors"
	"fmt"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/diwise/telematics-device-ops/internal/pkg/application/orders"
	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/logging"
	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/telematics-device-ops/pkg/types"
	"golang.org/x/sync/errgroup"
)

func (l *lifecycle) MarkAbandoned(ctx context.Context, user string, req types.MarkAbandonedRequest) (*types.Resource, error) {
	var err error
	ctx, span := tracer.Start(ctx, "mark-abandoned")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	ctx, _ = logging.WithOperation(ctx, "mark-abandoned", user)

	result, err := l.retireDevice(ctx, user, req.ParticipantSequenceID, req.DeviceSerialNumber, types.DeviceStatusAbandoned)
	return result, err
}

func (l *lifecycle) MarkDefective(ctx context.Context, user string, req types.MarkDefectiveRequest) (*types.Resource, error) {
	var err error
	ctx, span := tracer.Start(ctx, "mark-defective")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	ctx, _ = logging.WithOperation(ctx, "mark-defective", user)

	result, err := l.retireDevice(ctx, user, req.ParticipantSequenceID, req.DeviceSerialNumber, types.DeviceStatusDefective)
	return result, err
}

// retireDevice takes a device out of service as Abandoned or Defective.
func (l *lifecycle) retireDevice(ctx context.Context, user string, participantSeqID int, serialNumber string, target types.DeviceStatus) (*types.Resource, error) {
	logger := logging.GetFromContext(ctx).With().Int("participantSeqID", participantSeqID).Logger()
	ctx = logging.NewContextWithLogger(ctx, logger)

	result := types.NewResource()

	participant, err := l.Participants.GetParticipant(ctx, participantSeqID)
	if err != nil {
		return nil, err
	}

	if participant == nil {
		logger.Info().Msg("participant not found")
		result.AddHandledError(types.CodeParticipantNotFound, fmt.Sprintf("Participant %d not found", participantSeqID))
		return result, nil
	}

	if serialNumber == "" {
		serialNumber = participant.DeviceSerialNumber
	}

	if serialNumber == "" {
		result.AddHandledError(types.CodeParticipantHasNoDevice, fmt.Sprintf("Participant %d has no device", participantSeqID))
		return result, nil
	}

	logger = logger.With().Str("serialNumber", serialNumber).Logger()
	ctx = logging.NewContextWithLogger(ctx, logger)

	device, err := l.findDevice(ctx, user, serialNumber)
	if err != nil {
		return nil, err
	}

	if device == nil {
		return nil, types.DeviceNotFoundError{SerialNumber: serialNumber}
	}

	switch device.Status {
	case types.DeviceStatusAbandoned:
		result.AddHandledError(types.CodeDeviceAlreadyAbandoned, fmt.Sprintf("Device %s is already abandoned", serialNumber))
		return result, nil
	case types.DeviceStatusDefective:
		result.AddHandledError(types.CodeDeviceAlreadyDefective, fmt.Sprintf("Device %s is already defective", serialNumber))
		return result, nil
	}

	device.Status = target

	if target == types.DeviceStatusAbandoned || !device.Location.IsKnown() {
		device.Location = types.DeviceLocationUnknown
	} else {
		device.Location = l.cfg.DefectiveReturnLocation
	}

	recovered, err := l.Reconciler.RecoverDevice(ctx, user, *device, *participant, result, nil)
	if err != nil {
		return nil, err
	}

	if !recovered.Success {
		logger.Error().Str("errorCode", result.String(types.ErrorCode)).Msg("device could not be recovered")
		return result, nil
	}

	result.Data = device

	l.syncInventory(ctx, *device)

	if target == types.DeviceStatusAbandoned {
		result.SetStatus(types.StatusDeviceMarkedAbandoned)
		l.publish(ctx, &types.DeviceAbandoned{
			DeviceSeqID:      device.DeviceSeqID,
			SerialNumber:     device.SerialNumber,
			ParticipantSeqID: participantSeqID,
			User:             user,
			Timestamp:        l.now(),
		})
	} else {
		result.SetStatus(types.StatusDeviceMarkedDefective)
		l.publish(ctx, &types.DeviceDefective{
			DeviceSeqID:      device.DeviceSeqID,
			SerialNumber:     device.SerialNumber,
			ParticipantSeqID: participantSeqID,
			User:             user,
			Timestamp:        l.now(),
		})
	}

	logger.Info().Str("status", string(device.Status)).Msg("device retired")

	return result, nil
}

func (l *lifecycle) ReplaceDevice(ctx context.Context, user string, req types.ReplaceDeviceRequest) (*types.Resource, error) {
	var err error
	ctx, span := tracer.Start(ctx, "replace-device")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	ctx, logger := logging.WithOperation(ctx, "replace-device", user)
	logger = logger.With().Int("participantSeqID", req.ParticipantSequenceID).Logger()
	ctx = logging.NewContextWithLogger(ctx, logger)

	participant, err := l.Participants.GetParticipant(ctx, req.ParticipantSequenceID)
	if err != nil {
		return nil, err
	}

	if participant == nil {
		err = fmt.Errorf("participant %d: %w", req.ParticipantSequenceID, types.ErrParticipantNotFound)
		return nil, err
	}

	if !participant.HasDevice() || participant.DeviceSerialNumber == "" {
		err = fmt.Errorf("participant %d has no assigned device: %w", req.ParticipantSequenceID, types.ErrDeviceNotFound)
		return nil, err
	}

	if !participant.HasVehicle() {
		err = fmt.Errorf("participant %d: %w", req.ParticipantSequenceID, types.ErrVehicleNotFound)
		return nil, err
	}

	device, err := l.findDevice(ctx, user, participant.DeviceSerialNumber)
	if err != nil {
		return nil, err
	}

	if device == nil {
		err = types.DeviceNotFoundError{SerialNumber: participant.DeviceSerialNumber}
		return nil, err
	}

	order, err := orders.NewReplacementOrder(user, *participant)
	if err != nil {
		return nil, err
	}

	created, err := l.Orders.CreateReplacementOrder(ctx, order.ReplacementOrder())
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("orderNumber", created.OrderNumber).Str("kind", string(created.Kind)).Msg("replacement order created")

	device.Status = types.DeviceStatusAssigned
	if !device.Location.IsKnown() {
		device.Location = types.DeviceLocationInVehicle
	}

	result := types.NewResource()

	recovered, err := l.Reconciler.RecoverDevice(ctx, user, *device, *participant, result, types.Reason(types.ReturnReasonDeviceReplaced))
	if err != nil {
		return nil, err
	}

	if !recovered.Success {
		logger.Error().Str("errorCode", result.String(types.ErrorCode)).Msg("device could not be recovered")
		return result, nil
	}

	result.SetStatus(types.StatusDeviceReplacementInitiated)
	result.Data = created

	l.syncInventory(ctx, *device)

	l.publish(ctx, &types.DeviceReplaced{
		DeviceSeqID:      device.DeviceSeqID,
		SerialNumber:     device.SerialNumber,
		ParticipantSeqID: participant.ParticipantSeqID,
		OrderNumber:      created.OrderNumber,
		User:             user,
		Timestamp:        l.now(),
	})

	logger.Info().Str("orderNumber", created.OrderNumber).Msg("device replacement initiated")

	return result, nil
}

func (l *lifecycle) SwapDevice(ctx context.Context, user string, req types.SwapDeviceRequest) (*types.Resource, error) {
	var err error
	ctx, span := tracer.Start(ctx, "swap-device")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	ctx, logger := logging.WithOperation(ctx, "swap-device", user)
	logger = logger.With().
		Int("sourceParticipantSeqID", req.SourceParticipantSequenceID).
		Int("destinationParticipantSeqID", req.DestinationParticipantSequenceID).
		Logger()
	ctx = logging.NewContextWithLogger(ctx, logger)

	result := types.NewResource()

	if req.SourceParticipantSequenceID == req.DestinationParticipantSequenceID {
		result.AddHandledError(types.CodeSwapDeviceParticipantsMustDiffer, "Source and destination participants must be different")
		return result, nil
	}

	var source, destination *types.Participant

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		source, err = l.Participants.GetParticipant(gctx, req.SourceParticipantSequenceID)
		return err
	})
	g.Go(func() error {
		var err error
		destination, err = l.Participants.GetParticipant(gctx, req.DestinationParticipantSequenceID)
		return err
	})

	err = g.Wait()
	if err != nil {
		return nil, err
	}

	if source == nil || destination == nil {
		missing := req.SourceParticipantSequenceID
		if source != nil {
			missing = req.DestinationParticipantSequenceID
		}
		result.AddHandledError(types.CodeParticipantNotFound, fmt.Sprintf("Participant %d not found", missing))
		return result, nil
	}

	if !source.HasDevice() || !destination.HasDevice() {
		result.AddHandledError(types.CodeSwapDeviceRequiresAssignedDevices, "Both participants must have an assigned device")
		return result, nil
	}

	err = l.Participants.SwapDeviceAssignments(ctx, user, source.ParticipantSeqID, destination.ParticipantSeqID)
	if err != nil {
		if errors.Is(err, database.ErrSwapNotAllowed) {
			logger.Info().Err(err).Msg("swap rejected")
			result.AddHandledError(types.CodeSwapDeviceNotAllowed, err.Error())
			err = nil
			return result, nil
		}
		return nil, err
	}

	result.SetStatus(types.StatusDevicesSwapped)

	l.publish(ctx, &types.DevicesSwapped{
		SourceParticipantSeqID:      source.ParticipantSeqID,
		DestinationParticipantSeqID: destination.ParticipantSeqID,
		User:                        user,
		Timestamp:                   l.now(),
	})

	logger.Info().Msg("devices swapped")

	return result, nil
}

func (l *lifecycle) ResetDevice(ctx context.Context, user string, req types.ResetDeviceRequest) (*types.Resource, error) {
	var err error
	ctx, span := tracer.Start(ctx, "reset-device")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	ctx, logger := logging.WithOperation(ctx, "reset-device", user)
	logger = logger.With().Int("participantSeqID", req.ParticipantSequenceID).Logger()
	ctx = logging.NewContextWithLogger(ctx, logger)

	participant, err := l.Participants.GetParticipant(ctx, req.ParticipantSequenceID)
	if err != nil {
		return nil, err
	}

	if participant == nil {
		err = fmt.Errorf("participant %d: %w", req.ParticipantSequenceID, types.ErrParticipantNotFound)
		return nil, err
	}

	if participant.DeviceSerialNumber == "" {
		err = fmt.Errorf("participant %d has no assigned device: %w", req.ParticipantSequenceID, types.ErrDeviceNotFound)
		return nil, err
	}

	result := types.NewResource()

	reset, err := l.Devices.ResetDevice(ctx, user, participant.DeviceSerialNumber)
	if err != nil || !reset.Success {
		details := reset.Failure()
		if err != nil {
			details = err.Error()
		}

		logger.Error().Str("details", details).Msg("failed to reset device")
		result.AddError(types.CodeFailedToResetDevice, details)

		err = nil
		return result, nil
	}

	result.SetStatus(types.StatusDeviceResetInitiated)

	logger.Info().Str("serialNumber", participant.DeviceSerialNumber).Msg("device reset initiated")

	return result, nil
}

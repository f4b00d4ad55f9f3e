package lifecycle

import (
	"context"
	"fmt"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/logging"
	"github.com/diwise/telematics-device-ops/pkg/types"
)

const (
	activityAudioEnabled       string = "AudioEnabled"
	activityAudioDisabled      string = "AudioDisabled"
	activityAudioVolumeChanged string = "AudioVolumeChanged"
	activitySimActivated       string = "SimActivated"
)

func (l *lifecycle) GetAudio(ctx context.Context, user, serialNumber string) (*types.Resource, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-audio")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	ctx, logger := logging.WithOperation(ctx, "get-audio", user)

	result := types.NewResource()

	device, err := l.resolveDevice(ctx, user, serialNumber)
	if err != nil {
		result.AddError(types.CodeFailedToGetAudio, err.Error())
		err = nil
		return result, nil
	}

	if device == nil {
		result.AddError(types.CodeDeviceNotFound, types.DeviceNotFoundError{SerialNumber: serialNumber}.Error())
		return result, nil
	}

	audio, err := l.Devices.GetAudio(ctx, user, device.SerialNumber)
	if err != nil || !audio.Success || audio.Audio == nil {
		details := audio.Failure()
		if err != nil {
			details = err.Error()
		}

		logger.Error().Str("serialNumber", serialNumber).Str("details", details).Msg("failed to get audio")
		result.AddError(types.CodeFailedToGetAudio, details)

		err = nil
		return result, nil
	}

	result.Data = audio.Audio

	return result, nil
}

func (l *lifecycle) SetAudio(ctx context.Context, user string, req types.SetAudioRequest) (*types.Resource, error) {
	var err error
	ctx, span := tracer.Start(ctx, "set-audio")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	ctx, _ = logging.WithOperation(ctx, "set-audio", user)

	activity := activityAudioDisabled
	if req.Enabled {
		activity = activityAudioEnabled
	}

	result := l.changeAudio(ctx, user, req.SerialNumber, activity, "", func(serialNumber string) (types.RemoteResult, error) {
		return l.Devices.SetAudioEnabled(ctx, user, serialNumber, req.Enabled)
	})

	return result, nil
}

func (l *lifecycle) UpdateAudio(ctx context.Context, user string, req types.UpdateAudioRequest) (*types.Resource, error) {
	var err error
	ctx, span := tracer.Start(ctx, "update-audio")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	ctx, _ = logging.WithOperation(ctx, "update-audio", user)

	details := fmt.Sprintf("volume=%d", req.Volume)

	result := l.changeAudio(ctx, user, req.SerialNumber, activityAudioVolumeChanged, details, func(serialNumber string) (types.RemoteResult, error) {
		return l.Devices.SetAudioVolume(ctx, user, serialNumber, req.Volume)
	})

	return result, nil
}

// changeAudio keeps device lookup, remote update and activity logging failures
// apart as three different error codes.
func (l *lifecycle) changeAudio(ctx context.Context, user, serialNumber, activity, details string, change func(string) (types.RemoteResult, error)) *types.Resource {
	logger := logging.GetFromContext(ctx).With().Str("serialNumber", serialNumber).Logger()

	result := types.NewResource()

	device, err := l.resolveDevice(ctx, user, serialNumber)
	if err != nil {
		result.AddError(types.CodeFailedToUpdateAudio, err.Error())
		return result
	}

	if device == nil {
		result.AddError(types.CodeDeviceNotFound, types.DeviceNotFoundError{SerialNumber: serialNumber}.Error())
		return result
	}

	changed, err := change(device.SerialNumber)
	if err != nil || !changed.Success {
		failure := changed.Failure()
		if err != nil {
			failure = err.Error()
		}

		logger.Error().Str("details", failure).Msg("failed to update audio")
		result.AddError(types.CodeFailedToUpdateAudio, failure)
		return result
	}

	err = l.Activities.AddActivity(ctx, types.DeviceActivity{
		SerialNumber: device.SerialNumber,
		Activity:     activity,
		UserName:     user,
		Details:      details,
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to log audio activity")
		result.AddError(types.CodeFailedToLogAudioActivity, err.Error())
		return result
	}

	result.SetStatus(types.StatusAudioUpdated)

	return result
}

func (l *lifecycle) ActivateSim(ctx context.Context, user string, req types.ActivateSimRequest) (*types.Resource, error) {
	var err error
	ctx, span := tracer.Start(ctx, "activate-sim")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	ctx, logger := logging.WithOperation(ctx, "activate-sim", user)
	logger = logger.With().Str("serialNumber", req.SerialNumber).Logger()

	result := types.NewResource()

	device, err := l.resolveDevice(ctx, user, req.SerialNumber)
	if err != nil {
		result.AddError(types.CodeFailedToActivateSim, err.Error())
		err = nil
		return result, nil
	}

	if device == nil {
		result.AddError(types.CodeDeviceNotFound, types.DeviceNotFoundError{SerialNumber: req.SerialNumber}.Error())
		return result, nil
	}

	if device.SIM == "" {
		result.AddHandledError(types.CodeDeviceHasNoSim, fmt.Sprintf("Device %s has no SIM", device.SerialNumber))
		return result, nil
	}

	activated, err := l.Sims.ActivateSIM(ctx, user, device.SIM, device.SerialNumber)
	if err != nil || !activated.Success {
		details := activated.Failure()
		if err != nil {
			details = err.Error()
		}

		logger.Error().Str("sim", device.SIM).Str("details", details).Msg("failed to activate sim")
		result.AddError(types.CodeFailedToActivateSim, details)

		err = nil
		return result, nil
	}

	if l.Activities != nil {
		if err := l.Activities.AddActivity(ctx, types.DeviceActivity{
			SerialNumber: device.SerialNumber,
			Activity:     activitySimActivated,
			UserName:     user,
			Details:      device.SIM,
		}); err != nil {
			logger.Warn().Err(err).Msg("failed to log sim activation")
		}
	}

	result.SetStatus(types.StatusSimActivated)

	logger.Info().Str("sim", device.SIM).Msg("sim activated")

	return result, nil
}

// resolveDevice is findDevice for read paths where a failing directory should not
// hide a device known to the inventory. The directory error is returned when the
// inventory does not know the device either.
func (l *lifecycle) resolveDevice(ctx context.Context, user, serialNumber string) (*types.Device, error) {
	logger := logging.GetFromContext(ctx)

	device, directoryErr := l.Devices.GetDeviceBySerialNumber(ctx, user, serialNumber)
	if directoryErr != nil {
		logger.Warn().Err(directoryErr).Str("serialNumber", serialNumber).Msg("device directory lookup failed, trying inventory")
	} else if device != nil {
		return device, nil
	}

	device, err := l.Inventory.GetDeviceBySerialNumber(ctx, serialNumber)
	if err != nil {
		logger.Error().Err(err).Str("serialNumber", serialNumber).Msg("inventory lookup failed")
		if directoryErr != nil {
			return nil, directoryErr
		}
		return nil, err
	}

	if device == nil && directoryErr != nil {
		return nil, fmt.Errorf("device directory unavailable: %w", directoryErr)
	}

	return device, nil
}

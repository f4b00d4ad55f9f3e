package recovery

import (
	"context"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/logging"
	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/remote/devicedirectory"
	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/remote/simmanagement"
	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/telematics-device-ops/pkg/types"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("telematics-device-ops/recovery")

//go:generate moq -rm -out reconciler_mock.go . Reconciler

// Reconciler moves a device to the status and location already set on it by the
// caller, deactivates its SIM and records the transition in the return ledger.
type Reconciler interface {
	RecoverDevice(ctx context.Context, user string, device types.Device, participant types.Participant, result *types.Resource, reasonCode *types.ReturnReasonCode) (types.RecoveryResult, error)
}

type Config struct {
	// SurfaceSimFailures adds FailedToDeactivateSim to the result when the SIM
	// could not be deactivated. The failure is always logged.
	SurfaceSimFailures bool `yaml:"surfaceSimFailures"`
}

type reconciler struct {
	devices devicedirectory.DeviceDirectory
	sims    simmanagement.SimManagement
	ledger  database.DeviceReturnRepository
	cfg     Config
	locks   *deviceLocks
	now     func() time.Time
}

func New(devices devicedirectory.DeviceDirectory, sims simmanagement.SimManagement, ledger database.DeviceReturnRepository, cfg Config) Reconciler {
	return &reconciler{
		devices: devices,
		sims:    sims,
		ledger:  ledger,
		cfg:     cfg,
		locks:   newDeviceLocks(),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (r *reconciler) RecoverDevice(ctx context.Context, user string, device types.Device, participant types.Participant, result *types.Resource, reasonCode *types.ReturnReasonCode) (types.RecoveryResult, error) {
	var err error
	ctx, span := tracer.Start(ctx, "recover-device")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	logger := logging.GetFromContext(ctx).With().
		Int("deviceSeqID", device.DeviceSeqID).
		Str("serialNumber", device.SerialNumber).
		Int("participantSeqID", participant.ParticipantSeqID).
		Str("status", string(device.Status)).
		Str("location", string(device.Location)).
		Logger()
	ctx = logging.NewContextWithLogger(ctx, logger)

	unlock := r.locks.lock(device.DeviceSeqID)
	defer unlock()

	updated, err := r.devices.UpdateDevice(ctx, user, device)
	if err != nil || !updated.Success {
		details := updated.Failure()
		if err != nil {
			details = err.Error()
		}

		logger.Error().Str("details", details).Msg("failed to update device")
		result.AddError(types.CodeFailedToUpdateDevice, details)

		err = nil
		return types.RecoveryResult{Success: false}, nil
	}

	r.deactivateSIM(ctx, user, device, result)

	err = r.recordReturn(ctx, device, participant, reasonCode)
	if err != nil {
		logger.Error().Err(err).Msg("failed to record device return")
		return types.RecoveryResult{Success: false}, err
	}

	logger.Info().Msg("device recovered")

	return types.RecoveryResult{Success: true}, nil
}

func (r *reconciler) deactivateSIM(ctx context.Context, user string, device types.Device, result *types.Resource) {
	logger := logging.GetFromContext(ctx)

	if device.SIM == "" {
		logger.Debug().Msg("device has no sim, skipping deactivation")
		return
	}

	deactivated, err := r.sims.DeactivateSIM(ctx, user, device.SIM, device.SerialNumber)
	if err == nil && deactivated.Success {
		return
	}

	details := deactivated.Failure()
	if err != nil {
		details = err.Error()
	}

	logger.Warn().Str("sim", device.SIM).Str("details", details).Msg("failed to deactivate sim")

	if r.cfg.SurfaceSimFailures {
		result.AddError(types.CodeFailedToDeactivateSim, details)
	}
}

// recordReturn keeps a single ledger row per device and participant. The abandoned
// timestamp is only stamped when no explicit reason is given.
func (r *reconciler) recordReturn(ctx context.Context, device types.Device, participant types.Participant, reasonCode *types.ReturnReasonCode) error {
	reason := types.ReturnReasonAbandoned
	if reasonCode != nil {
		reason = *reasonCode
	}

	existing, err := r.ledger.GetDeviceReturn(ctx, device.DeviceSeqID, participant.ParticipantSeqID)
	if err != nil {
		return err
	}

	if existing == nil {
		dr := types.DeviceReturn{
			DeviceSeqID:            device.DeviceSeqID,
			ParticipantSeqID:       participant.ParticipantSeqID,
			VehicleSeqID:           participant.VehicleSeqID,
			DeviceReturnReasonCode: reason,
		}

		if reasonCode == nil {
			now := r.now()
			dr.DeviceAbandonedDateTime = &now
		}

		_, err = r.ledger.InsertDeviceReturn(ctx, dr)
		return err
	}

	existing.DeviceReturnReasonCode = reason
	if participant.VehicleSeqID != nil {
		existing.VehicleSeqID = participant.VehicleSeqID
	}

	if reasonCode == nil {
		now := r.now()
		existing.DeviceAbandonedDateTime = &now
	}

	return r.ledger.UpdateDeviceReturn(ctx, *existing)
}

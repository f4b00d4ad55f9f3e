package lifecycle

import (
	"context"
	"fmt"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/diwise/telematics-device-ops/internal/pkg/application/events"
	"github.com/diwise/telematics-device-ops/internal/pkg/application/recovery"
	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/logging"
	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/remote/devicedirectory"
	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/remote/simmanagement"
	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/telematics-device-ops/pkg/types"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("telematics-device-ops/lifecycle")

//go:generate moq -rm -out lifecycle_mock.go . DeviceLifecycle

// DeviceLifecycle runs the operator actions that move a participant's device
// between states. Expected outcomes are reported in the returned Resource, an
// error is only returned when data the operation depends on is missing or a
// store could not be read or written.
type DeviceLifecycle interface {
	GetParticipant(ctx context.Context, user string, participantSeqID int) (types.Enrollment, error)

	MarkAbandoned(ctx context.Context, user string, req types.MarkAbandonedRequest) (*types.Resource, error)
	MarkDefective(ctx context.Context, user string, req types.MarkDefectiveRequest) (*types.Resource, error)
	ReplaceDevice(ctx context.Context, user string, req types.ReplaceDeviceRequest) (*types.Resource, error)
	SwapDevice(ctx context.Context, user string, req types.SwapDeviceRequest) (*types.Resource, error)
	ResetDevice(ctx context.Context, user string, req types.ResetDeviceRequest) (*types.Resource, error)

	GetAudio(ctx context.Context, user, serialNumber string) (*types.Resource, error)
	SetAudio(ctx context.Context, user string, req types.SetAudioRequest) (*types.Resource, error)
	UpdateAudio(ctx context.Context, user string, req types.UpdateAudioRequest) (*types.Resource, error)
	ActivateSim(ctx context.Context, user string, req types.ActivateSimRequest) (*types.Resource, error)
}

type Dependencies struct {
	Participants database.ParticipantRepository
	Inventory    database.InventoryRepository
	Orders       database.OrderRepository
	Returns      database.DeviceReturnRepository
	Activities   database.ActivityRepository
	Devices      devicedirectory.DeviceDirectory
	Sims         simmanagement.SimManagement
	Reconciler   recovery.Reconciler
	Publisher    events.Publisher
}

type Config struct {
	// DefectiveReturnLocation is where a defective device with a known location is sent.
	DefectiveReturnLocation types.DeviceLocation `yaml:"defectiveReturnLocation"`
}

type lifecycle struct {
	Dependencies
	cfg Config
	now func() time.Time
}

func New(deps Dependencies, cfg Config) DeviceLifecycle {
	if cfg.DefectiveReturnLocation == "" {
		cfg.DefectiveReturnLocation = types.DeviceLocationProgressive
	}

	return &lifecycle{
		Dependencies: deps,
		cfg:          cfg,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (l *lifecycle) GetParticipant(ctx context.Context, user string, participantSeqID int) (types.Enrollment, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-participant")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	ctx, _ = logging.WithOperation(ctx, "get-participant", user)

	participant, err := l.Participants.GetParticipant(ctx, participantSeqID)
	if err != nil {
		return types.Enrollment{}, err
	}

	if participant == nil {
		err = fmt.Errorf("participant %d: %w", participantSeqID, types.ErrParticipantNotFound)
		return types.Enrollment{}, err
	}

	enrollment := types.Enrollment{
		Participant: *participant,
		Returns:     []types.DeviceReturn{},
		Orders:      []types.ReplacementOrder{},
		Activities:  []types.DeviceActivity{},
	}

	g, gctx := errgroup.WithContext(ctx)

	if participant.DeviceSerialNumber != "" {
		g.Go(func() error {
			device, err := l.resolveDevice(gctx, user, participant.DeviceSerialNumber)
			enrollment.Device = device
			return err
		})

		g.Go(func() error {
			activities, err := l.Activities.GetActivities(gctx, participant.DeviceSerialNumber)
			if activities != nil {
				enrollment.Activities = activities
			}
			return err
		})
	}

	g.Go(func() error {
		returns, err := l.Returns.GetDeviceReturns(gctx, participantSeqID)
		if returns != nil {
			enrollment.Returns = returns
		}
		return err
	})

	g.Go(func() error {
		orders, err := l.Orders.GetOrders(gctx, participantSeqID)
		if orders != nil {
			enrollment.Orders = orders
		}
		return err
	})

	err = g.Wait()
	if err != nil {
		return types.Enrollment{}, err
	}

	return enrollment, nil
}

// findDevice looks a device up in the device directory only. It returns nil, nil
// if the directory does not know the serial number.
func (l *lifecycle) findDevice(ctx context.Context, user, serialNumber string) (*types.Device, error) {
	return l.Devices.GetDeviceBySerialNumber(ctx, user, serialNumber)
}

// syncInventory writes a reconciled status and location back to the inventory
// row of the device, if there is one.
func (l *lifecycle) syncInventory(ctx context.Context, device types.Device) {
	logger := logging.GetFromContext(ctx)

	stored, err := l.Inventory.GetDeviceBySerialNumber(ctx, device.SerialNumber)
	if err != nil {
		logger.Error().Err(err).Str("serialNumber", device.SerialNumber).Msg("inventory lookup failed")
		return
	}

	if stored == nil {
		return
	}

	stored.Status = device.Status
	stored.Location = device.Location

	err = l.Inventory.Save(ctx, *stored)
	if err != nil {
		logger.Error().Err(err).Str("serialNumber", device.SerialNumber).Msg("failed to update inventory")
	}
}

func (l *lifecycle) publish(ctx context.Context, message types.TopicMessage) {
	if l.Publisher != nil {
		l.Publisher.Publish(ctx, message)
	}
}

package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/diwise/telematics-device-ops/internal/pkg/application/events"
	"github.com/diwise/telematics-device-ops/internal/pkg/application/recovery"
	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/remote/devicedirectory"
	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/remote/simmanagement"
	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/telematics-device-ops/pkg/types"
	"github.com/matryer/is"
)

func TestMarkAbandonedForUnknownParticipantDoesNotLookUpDevice(t *testing.T) {
	is, m := testSetup(t)
	m.participants.GetParticipantFunc = func(ctx context.Context, participantSeqID int) (*types.Participant, error) {
		return nil, nil
	}

	result, err := m.lifecycle().MarkAbandoned(context.Background(), "operator", types.MarkAbandonedRequest{ParticipantSequenceID: 707})
	is.NoErr(err)
	is.True(result.IsHandled())
	is.Equal(result.String(types.ErrorCode), types.CodeParticipantNotFound)
	is.Equal(len(m.devices.GetDeviceBySerialNumberCalls()), 0)
	is.Equal(len(m.reconciler.RecoverDeviceCalls()), 0)
}

func TestMarkAbandonedFailsWhenDeviceCannotBeFound(t *testing.T) {
	is, m := testSetup(t)
	m.withParticipant(participant(1111, 4444, "SER404"))
	m.withDevice(nil)

	_, err := m.lifecycle().MarkAbandoned(context.Background(), "operator", types.MarkAbandonedRequest{ParticipantSequenceID: 1111})
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "Device not found for serial number SER404"))
	is.True(errors.Is(err, types.ErrDeviceNotFound))
	is.Equal(len(m.reconciler.RecoverDeviceCalls()), 0)
}

func TestMarkAbandonedIgnoresDevicesOnlyKnownToInventory(t *testing.T) {
	is, m := testSetup(t)
	m.withParticipant(participant(1111, 4444, "SER123"))
	m.withDevice(nil)
	m.withInventoryDevice(device(4444, "SER123", types.DeviceStatusAssigned, types.DeviceLocationInVehicle))

	_, err := m.lifecycle().MarkAbandoned(context.Background(), "operator", types.MarkAbandonedRequest{ParticipantSequenceID: 1111})
	is.True(errors.Is(err, types.ErrDeviceNotFound))
	is.Equal(len(m.reconciler.RecoverDeviceCalls()), 0)
	is.Equal(len(m.inventory.SaveCalls()), 0)
}

func TestMarkAbandonedWritesReconciledStatusToInventory(t *testing.T) {
	is, m := testSetup(t)
	m.withParticipant(participant(1111, 4444, "SER123"))
	m.withDevice(device(4444, "SER123", types.DeviceStatusAssigned, types.DeviceLocationInVehicle))
	m.withInventoryDevice(device(4444, "SER123", types.DeviceStatusAssigned, types.DeviceLocationInVehicle))

	_, err := m.lifecycle().MarkAbandoned(context.Background(), "operator", types.MarkAbandonedRequest{ParticipantSequenceID: 1111})
	is.NoErr(err)

	saved := m.inventory.SaveCalls()
	is.Equal(len(saved), 1)
	is.Equal(saved[0].Device.Status, types.DeviceStatusAbandoned)
	is.Equal(saved[0].Device.Location, types.DeviceLocationUnknown)
	is.Equal(saved[0].Device.SIM, "89011")
}

func TestMarkAbandonedDoesNotTouchInventoryWhenRecoveryFails(t *testing.T) {
	is, m := testSetup(t)
	m.withParticipant(participant(1111, 4444, "SER123"))
	m.withDevice(device(4444, "SER123", types.DeviceStatusAssigned, types.DeviceLocationInVehicle))
	m.withInventoryDevice(device(4444, "SER123", types.DeviceStatusAssigned, types.DeviceLocationInVehicle))
	m.reconciler.RecoverDeviceFunc = failingRecovery(types.CodeFailedToDeactivateSim)

	_, err := m.lifecycle().MarkAbandoned(context.Background(), "operator", types.MarkAbandonedRequest{ParticipantSequenceID: 1111})
	is.NoErr(err)
	is.Equal(len(m.inventory.SaveCalls()), 0)
}

func TestMarkAbandonedRecoversDeviceAsAbandonedWithUnknownLocation(t *testing.T) {
	is, m := testSetup(t)
	m.withParticipant(participant(1111, 4444, "SER123"))
	m.withDevice(device(4444, "SER123", types.DeviceStatusAssigned, types.DeviceLocationInVehicle))

	result, err := m.lifecycle().MarkAbandoned(context.Background(), "operator", types.MarkAbandonedRequest{ParticipantSequenceID: 1111})
	is.NoErr(err)
	is.Equal(result.String(types.StatusDescription), types.StatusDeviceMarkedAbandoned)

	calls := m.reconciler.RecoverDeviceCalls()
	is.Equal(len(calls), 1)
	is.Equal(calls[0].User, "operator")
	is.Equal(calls[0].Device.Status, types.DeviceStatusAbandoned)
	is.Equal(calls[0].Device.Location, types.DeviceLocationUnknown)
	is.True(calls[0].ReasonCode == nil)

	is.Equal(len(m.publisher.PublishCalls()), 1)
	is.Equal(m.publisher.PublishCalls()[0].Message.TopicName(), "device.abandoned")
}

func TestMarkAbandonedUsesSerialNumberFromRequest(t *testing.T) {
	is, m := testSetup(t)
	m.withParticipant(participant(1111, 4444, "SER123"))
	m.withDevice(device(5555, "SER555", types.DeviceStatusAssigned, types.DeviceLocationInVehicle))

	_, err := m.lifecycle().MarkAbandoned(context.Background(), "operator", types.MarkAbandonedRequest{ParticipantSequenceID: 1111, DeviceSerialNumber: "SER555"})
	is.NoErr(err)
	is.Equal(m.devices.GetDeviceBySerialNumberCalls()[0].SerialNumber, "SER555")
}

func TestMarkAbandonedOnAbandonedDeviceIsHandled(t *testing.T) {
	is, m := testSetup(t)
	m.withParticipant(participant(1111, 4444, "SER123"))
	m.withDevice(device(4444, "SER123", types.DeviceStatusAbandoned, types.DeviceLocationUnknown))

	result, err := m.lifecycle().MarkAbandoned(context.Background(), "operator", types.MarkAbandonedRequest{ParticipantSequenceID: 1111})
	is.NoErr(err)
	is.True(result.IsHandled())
	is.Equal(result.String(types.ErrorCode), types.CodeDeviceAlreadyAbandoned)
	is.Equal(len(m.reconciler.RecoverDeviceCalls()), 0)
}

func TestMarkAbandonedWithoutDeviceIsHandled(t *testing.T) {
	is, m := testSetup(t)
	m.withParticipant(types.Participant{ParticipantSeqID: 1111})

	result, err := m.lifecycle().MarkAbandoned(context.Background(), "operator", types.MarkAbandonedRequest{ParticipantSequenceID: 1111})
	is.NoErr(err)
	is.Equal(result.String(types.ErrorCode), types.CodeParticipantHasNoDevice)
}

func TestMarkAbandonedReportsReconcilerFailure(t *testing.T) {
	is, m := testSetup(t)
	m.withParticipant(participant(1111, 4444, "SER123"))
	m.withDevice(device(4444, "SER123", types.DeviceStatusAssigned, types.DeviceLocationInVehicle))
	m.reconciler.RecoverDeviceFunc = failingRecovery(types.CodeFailedToUpdateDevice)

	result, err := m.lifecycle().MarkAbandoned(context.Background(), "operator", types.MarkAbandonedRequest{ParticipantSequenceID: 1111})
	is.NoErr(err)
	is.Equal(result.String(types.ErrorCode), types.CodeFailedToUpdateDevice)
	is.True(!result.Has(types.StatusDescription))
	is.Equal(len(m.publisher.PublishCalls()), 0)
}

func TestMarkDefectiveSendsKnownLocationToReturnLocation(t *testing.T) {
	is, m := testSetup(t)
	m.withParticipant(participant(1111, 4444, "SER123"))
	m.withDevice(device(4444, "SER123", types.DeviceStatusAssigned, types.DeviceLocationInVehicle))

	result, err := m.lifecycle().MarkDefective(context.Background(), "operator", types.MarkDefectiveRequest{ParticipantSequenceID: 1111})
	is.NoErr(err)
	is.Equal(result.String(types.StatusDescription), types.StatusDeviceMarkedDefective)

	call := m.reconciler.RecoverDeviceCalls()[0]
	is.Equal(call.Device.Status, types.DeviceStatusDefective)
	is.Equal(call.Device.Location, types.DeviceLocationProgressive)
	is.True(call.ReasonCode == nil)
}

func TestMarkDefectiveKeepsUnknownLocation(t *testing.T) {
	is, m := testSetup(t)
	m.withParticipant(participant(1111, 4444, "SER123"))
	m.withDevice(device(4444, "SER123", types.DeviceStatusAssigned, types.DeviceLocationUnknown))

	_, err := m.lifecycle().MarkDefective(context.Background(), "operator", types.MarkDefectiveRequest{ParticipantSequenceID: 1111})
	is.NoErr(err)
	is.Equal(m.reconciler.RecoverDeviceCalls()[0].Device.Location, types.DeviceLocationUnknown)
}

func TestMarkDefectiveOnDefectiveDeviceIsHandled(t *testing.T) {
	is, m := testSetup(t)
	m.withParticipant(participant(1111, 4444, "SER123"))
	m.withDevice(device(4444, "SER123", types.DeviceStatusDefective, types.DeviceLocationProgressive))

	result, err := m.lifecycle().MarkDefective(context.Background(), "operator", types.MarkDefectiveRequest{ParticipantSequenceID: 1111})
	is.NoErr(err)
	is.Equal(result.String(types.ErrorCode), types.CodeDeviceAlreadyDefective)
	is.True(result.IsHandled())
}

func TestReplaceDeviceCreatesOrderAndRecoversDevice(t *testing.T) {
	is, m := testSetup(t)
	m.withParticipant(participant(1111, 4444, "SER123"))
	m.withDevice(device(4444, "SER123", types.DeviceStatusAssigned, types.DeviceLocationUnknown))

	result, err := m.lifecycle().ReplaceDevice(context.Background(), "operator", types.ReplaceDeviceRequest{ParticipantSequenceID: 1111})
	is.NoErr(err)
	is.Equal(result.String(types.StatusDescription), types.StatusDeviceReplacementInitiated)

	orderCalls := m.orders.CreateReplacementOrderCalls()
	is.Equal(len(orderCalls), 1)
	is.Equal(orderCalls[0].Order.Make, "Honda")
	is.Equal(orderCalls[0].Order.Model, "Civic")
	is.Equal(orderCalls[0].Order.Year, 2021)
	is.Equal(orderCalls[0].Order.CreatedBy, "operator")

	recoverCalls := m.reconciler.RecoverDeviceCalls()
	is.Equal(len(recoverCalls), 1)
	is.Equal(*recoverCalls[0].ReasonCode, types.ReturnReasonDeviceReplaced)
	is.Equal(recoverCalls[0].Device.Status, types.DeviceStatusAssigned)
	is.True(recoverCalls[0].Device.Location != types.DeviceLocationUnknown)

	is.Equal(m.publisher.PublishCalls()[0].Message.TopicName(), "device.replaced")
}

func TestReplaceDeviceIgnoresDevicesOnlyKnownToInventory(t *testing.T) {
	is, m := testSetup(t)
	m.withParticipant(participant(1111, 4444, "SER123"))
	m.withDevice(nil)
	m.withInventoryDevice(device(4444, "SER123", types.DeviceStatusAssigned, types.DeviceLocationInVehicle))

	_, err := m.lifecycle().ReplaceDevice(context.Background(), "operator", types.ReplaceDeviceRequest{ParticipantSequenceID: 1111})
	is.True(errors.Is(err, types.ErrDeviceNotFound))
	is.Equal(len(m.orders.CreateReplacementOrderCalls()), 0)
	is.Equal(len(m.reconciler.RecoverDeviceCalls()), 0)
}

func TestReplaceDeviceWritesReconciledStatusToInventory(t *testing.T) {
	is, m := testSetup(t)
	m.withParticipant(participant(1111, 4444, "SER123"))
	m.withDevice(device(4444, "SER123", types.DeviceStatusAssigned, types.DeviceLocationUnknown))
	m.withInventoryDevice(device(4444, "SER123", types.DeviceStatusAbandoned, types.DeviceLocationUnknown))

	_, err := m.lifecycle().ReplaceDevice(context.Background(), "operator", types.ReplaceDeviceRequest{ParticipantSequenceID: 1111})
	is.NoErr(err)

	saved := m.inventory.SaveCalls()
	is.Equal(len(saved), 1)
	is.Equal(saved[0].Device.Status, types.DeviceStatusAssigned)
	is.Equal(saved[0].Device.Location, types.DeviceLocationInVehicle)
}

func TestReplaceDeviceExposesReconcilerErrors(t *testing.T) {
	is, m := testSetup(t)
	m.withParticipant(participant(1111, 4444, "SER123"))
	m.withDevice(device(4444, "SER123", types.DeviceStatusAssigned, types.DeviceLocationInVehicle))
	m.reconciler.RecoverDeviceFunc = failingRecovery(types.CodeFailedToDeactivateSim)

	result, err := m.lifecycle().ReplaceDevice(context.Background(), "operator", types.ReplaceDeviceRequest{ParticipantSequenceID: 1111})
	is.NoErr(err)
	is.Equal(result.String(types.ErrorCode), types.CodeFailedToDeactivateSim)
	is.True(!result.Has(types.StatusDescription))
	is.Equal(len(m.orders.CreateReplacementOrderCalls()), 1)
}

func TestReplaceDeviceForUnknownParticipantFails(t *testing.T) {
	is, m := testSetup(t)
	m.participants.GetParticipantFunc = func(ctx context.Context, participantSeqID int) (*types.Participant, error) {
		return nil, nil
	}

	_, err := m.lifecycle().ReplaceDevice(context.Background(), "operator", types.ReplaceDeviceRequest{ParticipantSequenceID: 707})
	is.True(errors.Is(err, types.ErrParticipantNotFound))
	is.Equal(len(m.orders.CreateReplacementOrderCalls()), 0)
}

func TestReplaceDeviceWithoutVehicleFails(t *testing.T) {
	is, m := testSetup(t)
	p := participant(1111, 4444, "SER123")
	p.Vehicle = nil
	m.withParticipant(p)

	_, err := m.lifecycle().ReplaceDevice(context.Background(), "operator", types.ReplaceDeviceRequest{ParticipantSequenceID: 1111})
	is.True(errors.Is(err, types.ErrVehicleNotFound))
}

func TestSwapDeviceWithSameParticipantsWritesNothing(t *testing.T) {
	is, m := testSetup(t)

	result, err := m.lifecycle().SwapDevice(context.Background(), "operator", types.SwapDeviceRequest{SourceParticipantSequenceID: 1, DestinationParticipantSequenceID: 1})
	is.NoErr(err)
	is.True(result.IsHandled())
	is.Equal(result.String(types.ErrorCode), types.CodeSwapDeviceParticipantsMustDiffer)
	is.Equal(len(m.participants.GetParticipantCalls()), 0)
	is.Equal(len(m.participants.SwapDeviceAssignmentsCalls()), 0)
}

func TestSwapDevice(t *testing.T) {
	is, m := testSetup(t)
	m.participants.GetParticipantFunc = func(ctx context.Context, participantSeqID int) (*types.Participant, error) {
		p := participant(participantSeqID, participantSeqID*10, fmt.Sprintf("SER%d", participantSeqID))
		return &p, nil
	}
	m.participants.SwapDeviceAssignmentsFunc = func(ctx context.Context, user string, sourceSeqID, destinationSeqID int) error {
		return nil
	}

	result, err := m.lifecycle().SwapDevice(context.Background(), "operator", types.SwapDeviceRequest{SourceParticipantSequenceID: 1, DestinationParticipantSequenceID: 2})
	is.NoErr(err)
	is.Equal(result.String(types.StatusDescription), types.StatusDevicesSwapped)

	calls := m.participants.SwapDeviceAssignmentsCalls()
	is.Equal(len(calls), 1)
	is.Equal(calls[0].SourceSeqID, 1)
	is.Equal(calls[0].DestinationSeqID, 2)
}

func TestSwapDeviceAcrossGroupsIsHandled(t *testing.T) {
	is, m := testSetup(t)
	m.participants.GetParticipantFunc = func(ctx context.Context, participantSeqID int) (*types.Participant, error) {
		p := participant(participantSeqID, participantSeqID*10, fmt.Sprintf("SER%d", participantSeqID))
		return &p, nil
	}
	m.participants.SwapDeviceAssignmentsFunc = func(ctx context.Context, user string, sourceSeqID, destinationSeqID int) error {
		return fmt.Errorf("different groups: %w", database.ErrSwapNotAllowed)
	}

	result, err := m.lifecycle().SwapDevice(context.Background(), "operator", types.SwapDeviceRequest{SourceParticipantSequenceID: 1, DestinationParticipantSequenceID: 2})
	is.NoErr(err)
	is.True(result.IsHandled())
	is.Equal(result.String(types.ErrorCode), types.CodeSwapDeviceNotAllowed)
	is.Equal(len(m.publisher.PublishCalls()), 0)
}

func TestSwapDeviceRequiresAssignedDevices(t *testing.T) {
	is, m := testSetup(t)
	m.participants.GetParticipantFunc = func(ctx context.Context, participantSeqID int) (*types.Participant, error) {
		if participantSeqID == 2 {
			return &types.Participant{ParticipantSeqID: 2}, nil
		}
		p := participant(participantSeqID, 10, "SER1")
		return &p, nil
	}

	result, err := m.lifecycle().SwapDevice(context.Background(), "operator", types.SwapDeviceRequest{SourceParticipantSequenceID: 1, DestinationParticipantSequenceID: 2})
	is.NoErr(err)
	is.Equal(result.String(types.ErrorCode), types.CodeSwapDeviceRequiresAssignedDevices)
	is.Equal(len(m.participants.SwapDeviceAssignmentsCalls()), 0)
}

func TestSwapDeviceWithUnknownParticipantIsHandled(t *testing.T) {
	is, m := testSetup(t)
	m.participants.GetParticipantFunc = func(ctx context.Context, participantSeqID int) (*types.Participant, error) {
		if participantSeqID == 2 {
			return nil, nil
		}
		p := participant(participantSeqID, 10, "SER1")
		return &p, nil
	}

	result, err := m.lifecycle().SwapDevice(context.Background(), "operator", types.SwapDeviceRequest{SourceParticipantSequenceID: 1, DestinationParticipantSequenceID: 2})
	is.NoErr(err)
	is.Equal(result.String(types.ErrorCode), types.CodeParticipantNotFound)
}

func TestResetDevice(t *testing.T) {
	is, m := testSetup(t)
	m.withParticipant(participant(1111, 4444, "SER123"))
	m.devices.ResetDeviceFunc = func(ctx context.Context, user, serialNumber string) (types.RemoteResult, error) {
		return types.RemoteResult{Success: true}, nil
	}

	result, err := m.lifecycle().ResetDevice(context.Background(), "operator", types.ResetDeviceRequest{ParticipantSequenceID: 1111})
	is.NoErr(err)
	is.Equal(result.String(types.StatusDescription), types.StatusDeviceResetInitiated)
	is.Equal(m.devices.ResetDeviceCalls()[0].SerialNumber, "SER123")
}

func TestResetDeviceFailureIsReported(t *testing.T) {
	is, m := testSetup(t)
	m.withParticipant(participant(1111, 4444, "SER123"))
	m.devices.ResetDeviceFunc = func(ctx context.Context, user, serialNumber string) (types.RemoteResult, error) {
		return types.RemoteResult{}, errors.New("timeout")
	}

	result, err := m.lifecycle().ResetDevice(context.Background(), "operator", types.ResetDeviceRequest{ParticipantSequenceID: 1111})
	is.NoErr(err)
	is.Equal(result.String(types.ErrorCode), types.CodeFailedToResetDevice)
	is.Equal(result.String(types.ErrorDetails), "timeout")
}

func TestResetDeviceForUnknownParticipantFails(t *testing.T) {
	is, m := testSetup(t)
	m.participants.GetParticipantFunc = func(ctx context.Context, participantSeqID int) (*types.Participant, error) {
		return nil, nil
	}

	_, err := m.lifecycle().ResetDevice(context.Background(), "operator", types.ResetDeviceRequest{ParticipantSequenceID: 1})
	is.True(errors.Is(err, types.ErrParticipantNotFound))
}

func TestAudioForUnknownDeviceReportsDeviceNotFound(t *testing.T) {
	is, m := testSetup(t)
	m.withDevice(nil)

	result, err := m.lifecycle().SetAudio(context.Background(), "operator", types.SetAudioRequest{SerialNumber: "SER404", Enabled: true})
	is.NoErr(err)
	is.Equal(result.String(types.ErrorCode), types.CodeDeviceNotFound)
	is.Equal(len(m.devices.SetAudioEnabledCalls()), 0)
}

func TestAudioFallsBackToInventory(t *testing.T) {
	is, m := testSetup(t)
	m.devices.GetDeviceBySerialNumberFunc = func(ctx context.Context, user, serialNumber string) (*types.Device, error) {
		return nil, errors.New("directory unavailable")
	}
	m.inventory.GetDeviceBySerialNumberFunc = func(ctx context.Context, serialNumber string) (*types.Device, error) {
		return device(4444, serialNumber, types.DeviceStatusAssigned, types.DeviceLocationInVehicle), nil
	}
	m.devices.GetAudioFunc = func(ctx context.Context, user, serialNumber string) (types.RemoteResult, error) {
		return types.RemoteResult{Success: true, Audio: &types.AudioStatus{SerialNumber: serialNumber, Enabled: true, Volume: 5}}, nil
	}

	result, err := m.lifecycle().GetAudio(context.Background(), "operator", "SER123")
	is.NoErr(err)
	is.True(!result.HasErrors())
	is.Equal(result.Data.(*types.AudioStatus).Volume, 5)
}

func TestGetAudioReportsDirectoryOutage(t *testing.T) {
	is, m := testSetup(t)
	m.devices.GetDeviceBySerialNumberFunc = func(ctx context.Context, user, serialNumber string) (*types.Device, error) {
		return nil, errors.New("directory unavailable")
	}

	result, err := m.lifecycle().GetAudio(context.Background(), "operator", "SER123")
	is.NoErr(err)
	is.Equal(result.String(types.ErrorCode), types.CodeFailedToGetAudio)
	is.Equal(len(m.devices.GetAudioCalls()), 0)
}

func TestSetAudioReportsDirectoryOutage(t *testing.T) {
	is, m := testSetup(t)
	m.devices.GetDeviceBySerialNumberFunc = func(ctx context.Context, user, serialNumber string) (*types.Device, error) {
		return nil, errors.New("directory unavailable")
	}

	result, err := m.lifecycle().SetAudio(context.Background(), "operator", types.SetAudioRequest{SerialNumber: "SER123", Enabled: true})
	is.NoErr(err)
	is.Equal(result.String(types.ErrorCode), types.CodeFailedToUpdateAudio)
	is.Equal(len(m.devices.SetAudioEnabledCalls()), 0)
}

func TestActivateSimReportsDirectoryOutage(t *testing.T) {
	is, m := testSetup(t)
	m.devices.GetDeviceBySerialNumberFunc = func(ctx context.Context, user, serialNumber string) (*types.Device, error) {
		return nil, errors.New("directory unavailable")
	}

	result, err := m.lifecycle().ActivateSim(context.Background(), "operator", types.ActivateSimRequest{SerialNumber: "SER123"})
	is.NoErr(err)
	is.Equal(result.String(types.ErrorCode), types.CodeFailedToActivateSim)
	is.Equal(len(m.sims.ActivateSIMCalls()), 0)
}

func TestUpdateAudioRemoteFailure(t *testing.T) {
	is, m := testSetup(t)
	m.withDevice(device(4444, "SER123", types.DeviceStatusAssigned, types.DeviceLocationInVehicle))
	m.devices.SetAudioVolumeFunc = func(ctx context.Context, user, serialNumber string, volume int) (types.RemoteResult, error) {
		return types.RemoteResult{Success: false, Errors: []string{"device offline"}}, nil
	}

	result, err := m.lifecycle().UpdateAudio(context.Background(), "operator", types.UpdateAudioRequest{SerialNumber: "SER123", Volume: 3})
	is.NoErr(err)
	is.Equal(result.String(types.ErrorCode), types.CodeFailedToUpdateAudio)
	is.Equal(len(m.activities.AddActivityCalls()), 0)
}

func TestUpdateAudioActivityLogFailure(t *testing.T) {
	is, m := testSetup(t)
	m.withDevice(device(4444, "SER123", types.DeviceStatusAssigned, types.DeviceLocationInVehicle))
	m.devices.SetAudioVolumeFunc = func(ctx context.Context, user, serialNumber string, volume int) (types.RemoteResult, error) {
		return types.RemoteResult{Success: true}, nil
	}
	m.activities.AddActivityFunc = func(ctx context.Context, activity types.DeviceActivity) error {
		return errors.New("disk full")
	}

	result, err := m.lifecycle().UpdateAudio(context.Background(), "operator", types.UpdateAudioRequest{SerialNumber: "SER123", Volume: 3})
	is.NoErr(err)
	is.Equal(result.String(types.ErrorCode), types.CodeFailedToLogAudioActivity)
}

func TestSetAudio(t *testing.T) {
	is, m := testSetup(t)
	m.withDevice(device(4444, "SER123", types.DeviceStatusAssigned, types.DeviceLocationInVehicle))
	m.devices.SetAudioEnabledFunc = func(ctx context.Context, user, serialNumber string, enabled bool) (types.RemoteResult, error) {
		return types.RemoteResult{Success: true}, nil
	}

	result, err := m.lifecycle().SetAudio(context.Background(), "operator", types.SetAudioRequest{SerialNumber: "SER123", Enabled: false})
	is.NoErr(err)
	is.Equal(result.String(types.StatusDescription), types.StatusAudioUpdated)

	activity := m.activities.AddActivityCalls()[0].Activity
	is.Equal(activity.Activity, activityAudioDisabled)
	is.Equal(activity.UserName, "operator")
}

func TestActivateSimWithoutSimIsHandled(t *testing.T) {
	is, m := testSetup(t)
	d := device(4444, "SER123", types.DeviceStatusAssigned, types.DeviceLocationInVehicle)
	d.SIM = ""
	m.withDevice(d)

	result, err := m.lifecycle().ActivateSim(context.Background(), "operator", types.ActivateSimRequest{SerialNumber: "SER123"})
	is.NoErr(err)
	is.True(result.IsHandled())
	is.Equal(result.String(types.ErrorCode), types.CodeDeviceHasNoSim)
}

func TestActivateSimFailure(t *testing.T) {
	is, m := testSetup(t)
	m.withDevice(device(4444, "SER123", types.DeviceStatusAssigned, types.DeviceLocationInVehicle))
	m.sims.ActivateSIMFunc = func(ctx context.Context, user, sim, serialNumber string) (types.RemoteResult, error) {
		return types.RemoteResult{}, errors.New("carrier rejected")
	}

	result, err := m.lifecycle().ActivateSim(context.Background(), "operator", types.ActivateSimRequest{SerialNumber: "SER123"})
	is.NoErr(err)
	is.Equal(result.String(types.ErrorCode), types.CodeFailedToActivateSim)
}

func TestActivateSim(t *testing.T) {
	is, m := testSetup(t)
	m.withDevice(device(4444, "SER123", types.DeviceStatusAssigned, types.DeviceLocationInVehicle))
	m.sims.ActivateSIMFunc = func(ctx context.Context, user, sim, serialNumber string) (types.RemoteResult, error) {
		return types.RemoteResult{Success: true}, nil
	}

	result, err := m.lifecycle().ActivateSim(context.Background(), "operator", types.ActivateSimRequest{SerialNumber: "SER123"})
	is.NoErr(err)
	is.Equal(result.String(types.StatusDescription), types.StatusSimActivated)
	is.Equal(m.sims.ActivateSIMCalls()[0].Sim, "89011")
}

func TestGetParticipant(t *testing.T) {
	is, m := testSetup(t)
	m.withParticipant(participant(1111, 4444, "SER123"))
	m.withDevice(device(4444, "SER123", types.DeviceStatusAssigned, types.DeviceLocationInVehicle))
	m.returns.GetDeviceReturnsFunc = func(ctx context.Context, participantSeqID int) ([]types.DeviceReturn, error) {
		return []types.DeviceReturn{{DeviceSeqID: 3333, ParticipantSeqID: participantSeqID, DeviceReturnReasonCode: types.ReturnReasonDeviceReplaced}}, nil
	}

	enrollment, err := m.lifecycle().GetParticipant(context.Background(), "operator", 1111)
	is.NoErr(err)
	is.Equal(enrollment.Participant.ParticipantSeqID, 1111)
	is.Equal(enrollment.Device.SerialNumber, "SER123")
	is.Equal(len(enrollment.Returns), 1)
	is.Equal(len(enrollment.Orders), 0)
	is.Equal(len(enrollment.Activities), 0)
}

func TestGetParticipantIncludesOrdersAndActivities(t *testing.T) {
	is, m := testSetup(t)
	m.withParticipant(participant(1111, 4444, "SER123"))
	m.withDevice(device(4444, "SER123", types.DeviceStatusAssigned, types.DeviceLocationInVehicle))
	m.returns.GetDeviceReturnsFunc = func(ctx context.Context, participantSeqID int) ([]types.DeviceReturn, error) {
		return nil, nil
	}
	m.orders.GetOrdersFunc = func(ctx context.Context, participantSeqID int) ([]types.ReplacementOrder, error) {
		return []types.ReplacementOrder{{OrderSeqID: 1, OrderNumber: "R-1111-1", ParticipantSeqID: participantSeqID}}, nil
	}
	m.activities.GetActivitiesFunc = func(ctx context.Context, serialNumber string) ([]types.DeviceActivity, error) {
		return []types.DeviceActivity{{SerialNumber: serialNumber, Activity: activitySimActivated, UserName: "operator"}}, nil
	}

	enrollment, err := m.lifecycle().GetParticipant(context.Background(), "operator", 1111)
	is.NoErr(err)
	is.Equal(enrollment.Orders[0].OrderNumber, "R-1111-1")
	is.Equal(enrollment.Activities[0].Activity, activitySimActivated)
	is.Equal(m.orders.GetOrdersCalls()[0].ParticipantSeqID, 1111)
	is.Equal(m.activities.GetActivitiesCalls()[0].SerialNumber, "SER123")
}

func TestGetUnknownParticipant(t *testing.T) {
	is, m := testSetup(t)
	m.participants.GetParticipantFunc = func(ctx context.Context, participantSeqID int) (*types.Participant, error) {
		return nil, nil
	}

	_, err := m.lifecycle().GetParticipant(context.Background(), "operator", 707)
	is.True(errors.Is(err, types.ErrParticipantNotFound))
}

type mocks struct {
	participants *database.ParticipantRepositoryMock
	inventory    *database.InventoryRepositoryMock
	orders       *database.OrderRepositoryMock
	returns      *database.DeviceReturnRepositoryMock
	activities   *database.ActivityRepositoryMock
	devices      *devicedirectory.DeviceDirectoryMock
	sims         *simmanagement.SimManagementMock
	reconciler   *recovery.ReconcilerMock
	publisher    *events.PublisherMock
}

func testSetup(t *testing.T) (*is.I, *mocks) {
	is := is.New(t)

	m := &mocks{
		participants: &database.ParticipantRepositoryMock{},
		inventory: &database.InventoryRepositoryMock{
			GetDeviceBySerialNumberFunc: func(ctx context.Context, serialNumber string) (*types.Device, error) {
				return nil, nil
			},
			SaveFunc: func(ctx context.Context, device types.Device) error { return nil },
			SeedFunc: func(ctx context.Context, devices io.Reader) error { return nil },
		},
		orders: &database.OrderRepositoryMock{
			CreateReplacementOrderFunc: func(ctx context.Context, order types.ReplacementOrder) (types.ReplacementOrder, error) {
				order.OrderSeqID = 1
				return order, nil
			},
			GetOrdersFunc: func(ctx context.Context, participantSeqID int) ([]types.ReplacementOrder, error) {
				return nil, nil
			},
		},
		returns: &database.DeviceReturnRepositoryMock{},
		activities: &database.ActivityRepositoryMock{
			AddActivityFunc: func(ctx context.Context, activity types.DeviceActivity) error { return nil },
			GetActivitiesFunc: func(ctx context.Context, serialNumber string) ([]types.DeviceActivity, error) {
				return nil, nil
			},
		},
		devices: &devicedirectory.DeviceDirectoryMock{},
		sims:    &simmanagement.SimManagementMock{},
		reconciler: &recovery.ReconcilerMock{
			RecoverDeviceFunc: func(ctx context.Context, user string, device types.Device, participant types.Participant, result *types.Resource, reasonCode *types.ReturnReasonCode) (types.RecoveryResult, error) {
				return types.RecoveryResult{Success: true}, nil
			},
		},
		publisher: &events.PublisherMock{
			PublishFunc: func(ctx context.Context, message types.TopicMessage) {},
		},
	}

	return is, m
}

func (m *mocks) lifecycle() DeviceLifecycle {
	return New(Dependencies{
		Participants: m.participants,
		Inventory:    m.inventory,
		Orders:       m.orders,
		Returns:      m.returns,
		Activities:   m.activities,
		Devices:      m.devices,
		Sims:         m.sims,
		Reconciler:   m.reconciler,
		Publisher:    m.publisher,
	}, Config{})
}

func (m *mocks) withParticipant(p types.Participant) {
	m.participants.GetParticipantFunc = func(ctx context.Context, participantSeqID int) (*types.Participant, error) {
		return &p, nil
	}
}

func (m *mocks) withDevice(d *types.Device) {
	m.devices.GetDeviceBySerialNumberFunc = func(ctx context.Context, user, serialNumber string) (*types.Device, error) {
		if d == nil {
			return nil, nil
		}
		device := *d
		return &device, nil
	}
}

func (m *mocks) withInventoryDevice(d *types.Device) {
	m.inventory.GetDeviceBySerialNumberFunc = func(ctx context.Context, serialNumber string) (*types.Device, error) {
		if d == nil || d.SerialNumber != serialNumber {
			return nil, nil
		}
		device := *d
		return &device, nil
	}
}

func failingRecovery(code string) func(context.Context, string, types.Device, types.Participant, *types.Resource, *types.ReturnReasonCode) (types.RecoveryResult, error) {
	return func(ctx context.Context, user string, device types.Device, participant types.Participant, result *types.Resource, reasonCode *types.ReturnReasonCode) (types.RecoveryResult, error) {
		result.AddError(code, "remote failure")
		return types.RecoveryResult{Success: false}, nil
	}
}

func participant(participantSeqID, deviceSeqID int, serialNumber string) types.Participant {
	vehicleSeqID := 77
	return types.Participant{
		ParticipantSeqID:      participantSeqID,
		ParticipantGroupSeqID: 12,
		Status:                types.ParticipantStatusActive,
		DeviceExperience:      types.DeviceExperiencePlugIn,
		Program:               types.ProgramDiscount,
		DeviceSeqID:           &deviceSeqID,
		DeviceSerialNumber:    serialNumber,
		VehicleSeqID:          &vehicleSeqID,
		Vehicle:               &types.Vehicle{VehicleSeqID: vehicleSeqID, VIN: "2HGFC2F59MH000001", Year: 2021, Make: "Honda", Model: "Civic"},
	}
}

func device(deviceSeqID int, serialNumber string, status types.DeviceStatus, location types.DeviceLocation) *types.Device {
	return &types.Device{
		DeviceSeqID:  deviceSeqID,
		SerialNumber: serialNumber,
		SIM:          "89011",
		Status:       status,
		Location:     location,
	}
}

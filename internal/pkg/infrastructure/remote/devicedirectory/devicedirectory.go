package devicedirectory

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/logging"
	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/remote"
	"github.com/diwise/telematics-device-ops/pkg/types"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("telematics-device-ops/device-directory")

//go:generate moq -rm -out devicedirectory_mock.go . DeviceDirectory

// DeviceDirectory is the remote system of record for devices.
type DeviceDirectory interface {
	GetDeviceBySerialNumber(ctx context.Context, user, serialNumber string) (*types.Device, error)
	UpdateDevice(ctx context.Context, user string, device types.Device) (types.RemoteResult, error)
	ResetDevice(ctx context.Context, user, serialNumber string) (types.RemoteResult, error)
	GetAudio(ctx context.Context, user, serialNumber string) (types.RemoteResult, error)
	SetAudioEnabled(ctx context.Context, user, serialNumber string, enabled bool) (types.RemoteResult, error)
	SetAudioVolume(ctx context.Context, user, serialNumber string, volume int) (types.RemoteResult, error)
}

type client struct {
	remote *remote.Client
}

func New(c *remote.Client) DeviceDirectory {
	return &client{remote: c}
}

// GetDeviceBySerialNumber returns nil, nil if the directory does not know the serial number.
func (c *client) GetDeviceBySerialNumber(ctx context.Context, user, serialNumber string) (*types.Device, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-device-by-serial-number")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	devices := []types.Device{}

	err = c.remote.Do(ctx, http.MethodGet, "/devices?serialNumber="+url.QueryEscape(serialNumber), user, nil, &devices)
	if err != nil {
		if errors.Is(err, remote.ErrNotFound) {
			err = nil
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up device %s: %w", serialNumber, err)
	}

	if len(devices) == 0 {
		return nil, nil
	}

	return &devices[0], nil
}

func (c *client) UpdateDevice(ctx context.Context, user string, device types.Device) (types.RemoteResult, error) {
	var err error
	ctx, span := tracer.Start(ctx, "update-device")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	logger := logging.GetFromContext(ctx)
	logger.Debug().
		Str("serial_number", device.SerialNumber).
		Str("status", string(device.Status)).
		Str("location", string(device.Location)).
		Msg("updating device in directory")

	body := struct {
		Status   types.DeviceStatus   `json:"status"`
		Location types.DeviceLocation `json:"location"`
	}{device.Status, device.Location}

	result := types.RemoteResult{}
	err = c.remote.Do(ctx, http.MethodPut, fmt.Sprintf("/devices/%d/status", device.DeviceSeqID), user, body, &result)

	return result, err
}

func (c *client) ResetDevice(ctx context.Context, user, serialNumber string) (types.RemoteResult, error) {
	var err error
	ctx, span := tracer.Start(ctx, "reset-device")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	result := types.RemoteResult{}
	err = c.remote.Do(ctx, http.MethodPost, "/devices/"+url.PathEscape(serialNumber)+"/reset", user, nil, &result)

	return result, err
}

func (c *client) GetAudio(ctx context.Context, user, serialNumber string) (types.RemoteResult, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-audio")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	audio := types.AudioStatus{}
	err = c.remote.Do(ctx, http.MethodGet, "/devices/"+url.PathEscape(serialNumber)+"/audio", user, nil, &audio)
	if err != nil {
		return types.RemoteResult{}, err
	}

	return types.RemoteResult{Success: true, Audio: &audio}, nil
}

func (c *client) SetAudioEnabled(ctx context.Context, user, serialNumber string, enabled bool) (types.RemoteResult, error) {
	var err error
	ctx, span := tracer.Start(ctx, "set-audio-enabled")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body := struct {
		Enabled bool `json:"enabled"`
	}{enabled}

	result := types.RemoteResult{}
	err = c.remote.Do(ctx, http.MethodPut, "/devices/"+url.PathEscape(serialNumber)+"/audio/enabled", user, body, &result)

	return result, err
}

func (c *client) SetAudioVolume(ctx context.Context, user, serialNumber string, volume int) (types.RemoteResult, error) {
	var err error
	ctx, span := tracer.Start(ctx, "set-audio-volume")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body := struct {
		Volume int `json:"volume"`
	}{volume}

	result := types.RemoteResult{}
	err = c.remote.Do(ctx, http.MethodPut, "/devices/"+url.PathEscape(serialNumber)+"/audio/volume", user, body, &result)

	return result, err
}

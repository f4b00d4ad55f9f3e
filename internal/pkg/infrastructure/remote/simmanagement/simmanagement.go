package simmanagement

import (
	"context"
	"net/http"
	"net/url"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/remote"
	"github.com/diwise/telematics-device-ops/pkg/types"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("telematics-device-ops/sim-management")

//go:generate moq -rm -out simmanagement_mock.go . SimManagement

// SimManagement controls the cellular subscriptions of devices.
type SimManagement interface {
	ActivateSIM(ctx context.Context, user, sim, serialNumber string) (types.RemoteResult, error)
	DeactivateSIM(ctx context.Context, user, sim, serialNumber string) (types.RemoteResult, error)
}

type client struct {
	remote *remote.Client
}

func New(c *remote.Client) SimManagement {
	return &client{remote: c}
}

func (c *client) ActivateSIM(ctx context.Context, user, sim, serialNumber string) (types.RemoteResult, error) {
	var err error
	ctx, span := tracer.Start(ctx, "activate-sim")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	result := types.RemoteResult{}
	err = c.remote.Do(ctx, http.MethodPost, "/sims/"+url.PathEscape(sim)+"/activate", user, simRequest{serialNumber}, &result)

	return result, err
}

func (c *client) DeactivateSIM(ctx context.Context, user, sim, serialNumber string) (types.RemoteResult, error) {
	var err error
	ctx, span := tracer.Start(ctx, "deactivate-sim")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	result := types.RemoteResult{}
	err = c.remote.Do(ctx, http.MethodPost, "/sims/"+url.PathEscape(sim)+"/deactivate", user, simRequest{serialNumber}, &result)

	return result, err
}

type simRequest struct {
	SerialNumber string `json:"serialNumber"`
}

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/diwise/telematics-device-ops/pkg/types"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

var tracer = otel.Tracer("telematics-device-ops-client")

var (
	ErrNotFound     = errors.New("not found")
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
)

// OperationsClient calls the device operations api on behalf of an operator tool.
type OperationsClient interface {
	GetParticipant(ctx context.Context, participantSeqID int) (*types.Enrollment, error)
	OptOut(ctx context.Context, req types.OptOutParticipantRequest) (*types.Resource, error)

	MarkAbandoned(ctx context.Context, req types.MarkAbandonedRequest) (*types.Resource, error)
	MarkDefective(ctx context.Context, req types.MarkDefectiveRequest) (*types.Resource, error)
	ReplaceDevice(ctx context.Context, req types.ReplaceDeviceRequest) (*types.Resource, error)
	SwapDevice(ctx context.Context, req types.SwapDeviceRequest) (*types.Resource, error)
	ResetDevice(ctx context.Context, req types.ResetDeviceRequest) (*types.Resource, error)

	GetAudio(ctx context.Context, serialNumber string) (*types.Resource, error)
	SetAudio(ctx context.Context, req types.SetAudioRequest) (*types.Resource, error)
	UpdateAudio(ctx context.Context, req types.UpdateAudioRequest) (*types.Resource, error)
	ActivateSim(ctx context.Context, req types.ActivateSimRequest) (*types.Resource, error)
}

type opsClient struct {
	url        string
	httpClient http.Client
}

// New returns a client for the api at opsURL. Requests are authorized with tokens
// fetched from oauthTokenURL using the client credentials flow.
func New(ctx context.Context, opsURL, oauthTokenURL, oauthClientID, oauthClientSecret string) (OperationsClient, error) {
	oauthConfig := &clientcredentials.Config{
		ClientID:     oauthClientID,
		ClientSecret: oauthClientSecret,
		TokenURL:     oauthTokenURL,
	}

	httpTransport := http.DefaultTransport.(*http.Transport).Clone()
	httpClient := &http.Client{Transport: otelhttp.NewTransport(httpTransport)}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)

	token, err := oauthConfig.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get client credentials from %s: %w", oauthConfig.TokenURL, err)
	}

	if !token.Valid() {
		return nil, fmt.Errorf("an invalid token was returned from %s", oauthTokenURL)
	}

	return &opsClient{
		url:        strings.TrimSuffix(opsURL, "/"),
		httpClient: *oauthConfig.Client(ctx),
	}, nil
}

func (c *opsClient) GetParticipant(ctx context.Context, participantSeqID int) (*types.Enrollment, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-participant")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	enrollment := &types.Enrollment{}
	err = c.do(ctx, http.MethodGet, "/participants/"+strconv.Itoa(participantSeqID), nil, enrollment)
	if err != nil {
		return nil, err
	}

	return enrollment, nil
}

func (c *opsClient) OptOut(ctx context.Context, req types.OptOutParticipantRequest) (*types.Resource, error) {
	return c.resource(ctx, "opt-out", http.MethodPost, "/participants/optout", req)
}

func (c *opsClient) MarkAbandoned(ctx context.Context, req types.MarkAbandonedRequest) (*types.Resource, error) {
	return c.resource(ctx, "mark-abandoned", http.MethodPost, "/devices/abandon", req)
}

func (c *opsClient) MarkDefective(ctx context.Context, req types.MarkDefectiveRequest) (*types.Resource, error) {
	return c.resource(ctx, "mark-defective", http.MethodPost, "/devices/defective", req)
}

func (c *opsClient) ReplaceDevice(ctx context.Context, req types.ReplaceDeviceRequest) (*types.Resource, error) {
	return c.resource(ctx, "replace-device", http.MethodPost, "/devices/replace", req)
}

func (c *opsClient) SwapDevice(ctx context.Context, req types.SwapDeviceRequest) (*types.Resource, error) {
	return c.resource(ctx, "swap-device", http.MethodPost, "/devices/swap", req)
}

func (c *opsClient) ResetDevice(ctx context.Context, req types.ResetDeviceRequest) (*types.Resource, error) {
	return c.resource(ctx, "reset-device", http.MethodPost, "/devices/reset", req)
}

func (c *opsClient) GetAudio(ctx context.Context, serialNumber string) (*types.Resource, error) {
	return c.resource(ctx, "get-audio", http.MethodGet, devicePath(serialNumber, "/audio"), nil)
}

func (c *opsClient) SetAudio(ctx context.Context, req types.SetAudioRequest) (*types.Resource, error) {
	return c.resource(ctx, "set-audio", http.MethodPut, devicePath(req.SerialNumber, "/audio"), req)
}

func (c *opsClient) UpdateAudio(ctx context.Context, req types.UpdateAudioRequest) (*types.Resource, error) {
	return c.resource(ctx, "update-audio", http.MethodPatch, devicePath(req.SerialNumber, "/audio"), req)
}

func (c *opsClient) ActivateSim(ctx context.Context, req types.ActivateSimRequest) (*types.Resource, error) {
	return c.resource(ctx, "activate-sim", http.MethodPost, devicePath(req.SerialNumber, "/sim/activate"), req)
}

func devicePath(serialNumber, suffix string) string {
	return "/devices/" + url.PathEscape(serialNumber) + suffix
}

func (c *opsClient) resource(ctx context.Context, name, method, path string, body any) (*types.Resource, error) {
	var err error
	ctx, span := tracer.Start(ctx, name)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	result := types.NewResource()
	err = c.do(ctx, method, path, body, result)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (c *opsClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader

	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url+"/api/v0"+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create http request: %w", err)
	}

	req.Header.Add("Accept", "application/json")
	if body != nil {
		req.Header.Add("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	case resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%s: %w", path, ErrBadRequest)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s: %w", path, ErrUnauthorized)
	case resp.StatusCode >= http.StatusBadRequest:
		return fmt.Errorf("request failed with status code %d", resp.StatusCode)
	}

	err = json.Unmarshal(respBody, out)
	if err != nil {
		return fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	return nil
}

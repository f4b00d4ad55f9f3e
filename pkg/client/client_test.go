package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diwise/telematics-device-ops/pkg/types"
	"github.com/matryer/is"
)

func TestMarkAbandonedSendsRequestWithBearerToken(t *testing.T) {
	is := is.New(t)

	var body []byte
	var authorization string

	ops := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.Method, http.MethodPost)
		is.Equal(r.URL.Path, "/api/v0/devices/abandon")
		is.Equal(r.Header.Get("Content-Type"), "application/json")

		authorization = r.Header.Get("Authorization")
		body, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"messages":{"StatusDescription":"Device marked as abandoned"}}`))
	}))
	defer ops.Close()

	oauth := newMockOAuth(t)
	defer oauth.Close()

	c, err := New(context.Background(), ops.URL, oauth.URL+"/token", "", "")
	is.NoErr(err)

	result, err := c.MarkAbandoned(context.Background(), types.MarkAbandonedRequest{ParticipantSequenceID: 707, DeviceSerialNumber: "SER707"})
	is.NoErr(err)

	is.Equal(authorization, "Bearer "+accessToken)
	is.True(strings.Contains(string(body), `"participantSequenceId":707`))
	is.Equal(result.String(types.StatusDescription), types.StatusDeviceMarkedAbandoned)
}

func TestAudioRequestsUseSerialNumberInPath(t *testing.T) {
	is := is.New(t)

	paths := []string{}

	ops := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		w.Write([]byte(`{"messages":{}}`))
	}))
	defer ops.Close()

	oauth := newMockOAuth(t)
	defer oauth.Close()

	c, err := New(context.Background(), ops.URL, oauth.URL+"/token", "", "")
	is.NoErr(err)

	_, err = c.GetAudio(context.Background(), "SER123")
	is.NoErr(err)
	_, err = c.UpdateAudio(context.Background(), types.UpdateAudioRequest{SerialNumber: "SER123", Volume: 3})
	is.NoErr(err)
	_, err = c.ActivateSim(context.Background(), types.ActivateSimRequest{SerialNumber: "SER123"})
	is.NoErr(err)

	is.Equal(paths, []string{
		"GET /api/v0/devices/SER123/audio",
		"PATCH /api/v0/devices/SER123/audio",
		"POST /api/v0/devices/SER123/sim/activate",
	})
}

func TestGetParticipant(t *testing.T) {
	is := is.New(t)

	ops := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v0/participants/42" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		e := types.Enrollment{Participant: types.Participant{ParticipantSeqID: 42, Status: types.ParticipantStatusActive}}
		b, _ := json.Marshal(e)
		w.Write(b)
	}))
	defer ops.Close()

	oauth := newMockOAuth(t)
	defer oauth.Close()

	c, err := New(context.Background(), ops.URL, oauth.URL+"/token", "", "")
	is.NoErr(err)

	e, err := c.GetParticipant(context.Background(), 42)
	is.NoErr(err)
	is.Equal(e.Participant.Status, types.ParticipantStatusActive)

	_, err = c.GetParticipant(context.Background(), 43)
	is.True(errors.Is(err, ErrNotFound))
}

func TestFailureStatusCodesAreMappedToErrors(t *testing.T) {
	is := is.New(t)

	ops := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v0/devices/replace":
			w.WriteHeader(http.StatusBadRequest)
		case "/api/v0/devices/reset":
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer ops.Close()

	oauth := newMockOAuth(t)
	defer oauth.Close()

	c, err := New(context.Background(), ops.URL, oauth.URL+"/token", "", "")
	is.NoErr(err)

	_, err = c.ReplaceDevice(context.Background(), types.ReplaceDeviceRequest{})
	is.True(errors.Is(err, ErrBadRequest))

	_, err = c.ResetDevice(context.Background(), types.ResetDeviceRequest{ParticipantSequenceID: 1})
	is.True(errors.Is(err, ErrUnauthorized))

	_, err = c.SwapDevice(context.Background(), types.SwapDeviceRequest{SourceParticipantSequenceID: 1, DestinationParticipantSequenceID: 2})
	is.True(err != nil)
}

func TestNewFailsWhenTokenCannotBeFetched(t *testing.T) {
	is := is.New(t)

	oauth := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer oauth.Close()

	_, err := New(context.Background(), "http://localhost", oauth.URL+"/token", "id", "secret")
	is.True(err != nil)
}

func newMockOAuth(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/token" {
			t.Errorf("unexpected token path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(tokenResponse))
	}))
}

const accessToken string = "eyJhbGciOiJSUzI1NiJ9.test.token"

const tokenResponse string = `{"access_token":"` + accessToken + `","expires_in":300,"refresh_expires_in":0,"token_type":"Bearer","not-before-policy":0,"scope":"profile email"}`

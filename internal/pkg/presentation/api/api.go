package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/diwise/telematics-device-ops/internal/pkg/application/enrollment"
	"github.com/diwise/telematics-device-ops/internal/pkg/application/lifecycle"
	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/logging"
	"github.com/diwise/telematics-device-ops/internal/pkg/presentation/api/auth"
	"github.com/diwise/telematics-device-ops/pkg/types"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("telematics-device-ops/api")

var validate = validator.New()

func RegisterHandlers(ctx context.Context, router *chi.Mux, tokenAuth *jwtauth.JWTAuth, policies io.Reader, lc lifecycle.DeviceLifecycle, enr enrollment.ParticipantEnrollment) (*chi.Mux, error) {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	log := logging.GetFromContext(ctx)

	authenticator, err := auth.NewAuthenticator(ctx, tokenAuth, policies)
	if err != nil {
		return nil, fmt.Errorf("failed to create api authenticator: %w", err)
	}

	router.Route("/api/v0", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authenticator)

			r.Route("/participants", func(r chi.Router) {
				r.Get("/{participantSeqID}", getParticipantHandler(log, lc))
				r.Post("/optout", resourceHandler(log, "opt-out", enr.OptOut))
			})

			r.Route("/devices", func(r chi.Router) {
				r.Post("/abandon", resourceHandler(log, "mark-abandoned", lc.MarkAbandoned))
				r.Post("/defective", resourceHandler(log, "mark-defective", lc.MarkDefective))
				r.Post("/replace", resourceHandler(log, "replace-device", lc.ReplaceDevice))
				r.Post("/swap", resourceHandler(log, "swap-device", lc.SwapDevice))
				r.Post("/reset", resourceHandler(log, "reset-device", lc.ResetDevice))

				r.Route("/{serialNumber}", func(r chi.Router) {
					r.Get("/audio", getAudioHandler(log, lc))
					r.Put("/audio", resourceHandler(log, "set-audio", lc.SetAudio, withSerialNumber))
					r.Patch("/audio", resourceHandler(log, "update-audio", lc.UpdateAudio, withSerialNumber))
					r.Post("/sim/activate", resourceHandler(log, "activate-sim", lc.ActivateSim, withSerialNumber))
				})
			})
		})
	})

	return router, nil
}

type requestOption func(r *http.Request) *http.Request

// resourceHandler decodes and validates a request of type T, runs op on behalf of
// the authenticated user and writes the resulting Resource.
func resourceHandler[T any](log zerolog.Logger, name string, op func(ctx context.Context, user string, req T) (*types.Resource, error), opts ...requestOption) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		for _, opt := range opts {
			r = opt(r)
		}

		ctx, span := tracer.Start(r.Context(), name)
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		ctx, requestLogger := addTraceIDToLoggerAndStoreInContext(span, log, ctx)

		var req T

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to read body")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if len(body) > 0 {
			err = json.Unmarshal(body, &req)
			if err != nil {
				requestLogger.Error().Err(err).Msg("unable to unmarshal body")
				writeError(w, http.StatusBadRequest, err)
				return
			}
		}

		err = validateRequest(ctx, &req)
		if err != nil {
			requestLogger.Info().Err(err).Msg("invalid request")
			writeError(w, http.StatusBadRequest, err)
			return
		}

		result, err := op(ctx, auth.UserFromContext(ctx), req)
		if err != nil {
			requestLogger.Error().Err(err).Msgf("%s failed", name)
			writeError(w, statusFromError(err), err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func getParticipantHandler(log zerolog.Logger, lc lifecycle.DeviceLifecycle) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-participant")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		ctx, requestLogger := addTraceIDToLoggerAndStoreInContext(span, log, ctx)

		id := chi.URLParam(r, "participantSeqID")

		participantSeqID, err := strconv.Atoi(id)
		if err != nil || participantSeqID <= 0 {
			requestLogger.Info().Str("participantSeqID", id).Msg("invalid participant id")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		participant, err := lc.GetParticipant(ctx, auth.UserFromContext(ctx), participantSeqID)
		if err != nil {
			requestLogger.Error().Err(err).Msg("could not fetch participant")
			writeError(w, statusFromError(err), err)
			return
		}

		writeJSON(w, http.StatusOK, participant)
	}
}

func getAudioHandler(log zerolog.Logger, lc lifecycle.DeviceLifecycle) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-audio")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		ctx, requestLogger := addTraceIDToLoggerAndStoreInContext(span, log, ctx)

		serialNumber := chi.URLParam(r, "serialNumber")

		result, err := lc.GetAudio(ctx, auth.UserFromContext(ctx), serialNumber)
		if err != nil {
			requestLogger.Error().Err(err).Msg("could not fetch audio")
			writeError(w, statusFromError(err), err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

type serialNumberContextKey struct{ name string }

var serialNumberCtxKey = &serialNumberContextKey{"serialNumber"}

func withSerialNumber(r *http.Request) *http.Request {
	ctx := context.WithValue(r.Context(), serialNumberCtxKey, chi.URLParam(r, "serialNumber"))
	return r.WithContext(ctx)
}

func serialNumberFromContext(ctx context.Context) string {
	sn, _ := ctx.Value(serialNumberCtxKey).(string)
	return sn
}

// validateRequest copies a serial number taken from the path into requests that
// address a single device before validating them.
func validateRequest(ctx context.Context, req any) error {
	if sn := serialNumberFromContext(ctx); sn != "" {
		switch r := req.(type) {
		case *types.SetAudioRequest:
			r.SerialNumber = sn
		case *types.UpdateAudioRequest:
			r.SerialNumber = sn
		case *types.ActivateSimRequest:
			r.SerialNumber = sn
		}
	}

	return validate.StructCtx(ctx, req)
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, types.ErrParticipantNotFound),
		errors.Is(err, types.ErrDeviceNotFound),
		errors.Is(err, types.ErrVehicleNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}

func addTraceIDToLoggerAndStoreInContext(span trace.Span, log zerolog.Logger, ctx context.Context) (context.Context, zerolog.Logger) {
	traceID := span.SpanContext().TraceID()
	if traceID.IsValid() {
		log = log.With().Str("traceID", traceID.String()).Logger()
	}

	return logging.NewContextWithLogger(ctx, log), log
}

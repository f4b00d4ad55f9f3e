package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/logging"
	"github.com/go-chi/jwtauth/v5"
	"github.com/open-policy-agent/opa/rego"
	"go.opentelemetry.io/otel"
)

type userContextKey struct{ name string }

var userCtxKey = &userContextKey{"user"}

var tracer = otel.Tracer("telematics-device-ops/authz")

// NewAuthenticator returns a middleware that verifies the bearer token and asks the
// rego policy whether the roles in the token allow the request.
func NewAuthenticator(ctx context.Context, tokenAuth *jwtauth.JWTAuth, policies io.Reader) (func(http.Handler) http.Handler, error) {
	module, err := io.ReadAll(policies)
	if err != nil {
		return nil, fmt.Errorf("unable to read authz policies: %s", err.Error())
	}

	query, err := rego.New(
		rego.Query("x = data.telematics.authz.allow"),
		rego.Module("telematics.rego", string(module)),
	).PrepareForEval(ctx)

	if err != nil {
		return nil, err
	}

	authorize := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var err error

			ctx, span := tracer.Start(r.Context(), "check-auth")
			defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

			logger := logging.GetFromContext(ctx)

			_, claims, err := jwtauth.FromContext(ctx)
			if err != nil {
				logger.Info().Err(err).Msg("no valid token in request")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			user := userFromClaims(claims)
			if user == "" {
				err = errors.New("token does not identify a user")
				logger.Info().Err(err).Msg("authorization failed")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			input := map[string]any{
				"method": r.Method,
				"path":   r.URL.Path,
				"user":   user,
				"roles":  rolesFromClaims(claims),
			}

			results, err := query.Eval(ctx, rego.EvalInput(input))
			if err != nil {
				logger.Error().Err(err).Msg("opa eval failed")
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			if len(results) == 0 {
				err = errors.New("opa query could not be satisfied")
				logger.Error().Err(err).Msg("auth failed")
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			allowed, ok := results[0].Bindings["x"].(bool)
			if !ok || !allowed {
				err = errors.New("authorization failed")
				logger.Warn().Str("user", user).Str("path", r.URL.Path).Msg(err.Error())
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}

	return func(next http.Handler) http.Handler {
		return jwtauth.Verifier(tokenAuth)(authorize(next))
	}, nil
}

// UserFromContext returns the name of the authenticated user, or "" if there is none.
func UserFromContext(ctx context.Context) string {
	user, _ := ctx.Value(userCtxKey).(string)
	return user
}

func WithUser(ctx context.Context, user string) context.Context {
	return context.WithValue(ctx, userCtxKey, user)
}

func userFromClaims(claims map[string]any) string {
	for _, key := range []string{"preferred_username", "sub"} {
		if user, ok := claims[key].(string); ok && user != "" {
			return user
		}
	}
	return ""
}

func rolesFromClaims(claims map[string]any) []string {
	roles := []string{}

	switch r := claims["roles"].(type) {
	case []any:
		for _, role := range r {
			if s, ok := role.(string); ok {
				roles = append(roles, s)
			}
		}
	case []string:
		roles = append(roles, r...)
	case string:
		roles = append(roles, r)
	}

	return roles
}

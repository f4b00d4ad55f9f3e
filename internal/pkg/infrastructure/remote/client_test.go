package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matryer/is"
)

func TestDoSendsOnBehalfOfHeaderAndDecodesResponse(t *testing.T) {
	is := is.New(t)

	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.Header.Get(OnBehalfOfHeader), "operator")
		is.Equal(r.Header.Get("Content-Type"), "application/json")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"value":"ok"}`))
	}))
	defer s.Close()

	out := struct {
		Value string `json:"value"`
	}{}

	c := New(context.Background(), Config{BaseURL: s.URL + "/"})
	err := c.Do(context.Background(), http.MethodPost, "/things", "operator", map[string]string{"a": "b"}, &out)
	is.NoErr(err)
	is.Equal(out.Value, "ok")
}

func TestDoReturnsErrNotFoundOn404(t *testing.T) {
	is := is.New(t)

	s := httptest.NewServer(http.NotFoundHandler())
	defer s.Close()

	err := New(context.Background(), Config{BaseURL: s.URL}).Do(context.Background(), http.MethodGet, "/things/1", "", nil, nil)
	is.True(errors.Is(err, ErrNotFound))
}

func TestDoReturnsStatusErrorOnServerFailure(t *testing.T) {
	is := is.New(t)

	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer s.Close()

	err := New(context.Background(), Config{BaseURL: s.URL}).Do(context.Background(), http.MethodGet, "/things", "", nil, nil)

	var statusErr *StatusError
	is.True(errors.As(err, &statusErr))
	is.Equal(statusErr.StatusCode, http.StatusBadGateway)
}

func TestClientCredentialsTokenIsSent(t *testing.T) {
	is := is.New(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"abc123","token_type":"bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/things", func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.Header.Get("Authorization"), "Bearer abc123")
		w.WriteHeader(http.StatusNoContent)
	})

	s := httptest.NewServer(mux)
	defer s.Close()

	c := New(context.Background(), Config{
		BaseURL:      s.URL,
		TokenURL:     s.URL + "/token",
		ClientID:     "client",
		ClientSecret: "secret",
	})

	is.NoErr(c.Do(context.Background(), http.MethodGet, "/things", "", nil, nil))
}

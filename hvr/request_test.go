package hvr

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		expectJSON bool
		want       any
	}{
		{
			name:       "json object",
			status:     http.StatusOK,
			body:       `{"hub":"hvrhub","description":"Test hub"}`,
			expectJSON: true,
			want:       map[string]any{"hub": "hvrhub", "description": "Test hub"},
		},
		{
			name:       "json array",
			status:     http.StatusOK,
			body:       `["ch1","ch2"]`,
			expectJSON: true,
			want:       []any{"ch1", "ch2"},
		},
		{
			name:       "empty body",
			status:     http.StatusOK,
			body:       "",
			expectJSON: true,
			want:       nil,
		},
		{
			name:       "no content",
			status:     http.StatusNoContent,
			body:       "",
			expectJSON: true,
			want:       nil,
		},
		{
			name:       "text",
			status:     http.StatusOK,
			body:       "2024-05-01 12:00:00 hvr: started\n",
			expectJSON: false,
			want:       "2024-05-01 12:00:00 hvr: started\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hub := newFakeHub(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			client := newTestClient(t, hub)

			got, err := client.Do(t.Context(), &Request{
				Method:     http.MethodGet,
				Path:       "/api/" + APIVersion + "/hubs/hvrhub",
				ExpectJSON: tt.expectJSON,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDoRequest(t *testing.T) {
	var got *http.Request
	var gotBody []byte
	hub := newFakeHub(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(r.Context())
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{}`))
	})
	client := newTestClient(t, hub)

	query := url.Values{}
	query.Set("fetch_repos_events", "true")
	header := http.Header{}
	header.Set("X-Hvr-Classified-Access", "secret-key")
	header.Set("Content-Type", "text/plain")

	_, err := client.Do(t.Context(), &Request{
		Method: http.MethodPost,
		Path:   "/api/" + APIVersion + "/hubs/hvrhub/events",
		Query:  query,
		Header: header,
		Body:   map[string]any{"type": "Test"},
	})
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/api/"+APIVersion+"/hubs/hvrhub/events", got.URL.Path)
	assert.Equal(t, "true", got.URL.Query().Get("fetch_repos_events"))
	assert.Equal(t, "bearer token-1", got.Header.Get("Authorization"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
	assert.Equal(t, "secret-key", got.Header.Get("X-Hvr-Classified-Access"))
	assert.JSONEq(t, `{"type":"Test"}`, string(gotBody))
}

func TestDoWithoutBody(t *testing.T) {
	var length int64 = -1
	hub := newFakeHub(t, func(w http.ResponseWriter, r *http.Request) {
		length = r.ContentLength
	})
	client := newTestClient(t, hub)

	_, err := client.Do(t.Context(), &Request{Method: http.MethodDelete, Path: "/api/" + APIVersion + "/hubs/hvrhub"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), length)
}

func TestDoErrorResponse(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantCode    string
		wantMessage string
		notFound    bool
	}{
		{
			name:        "diagnostic",
			status:      http.StatusNotFound,
			body:        "F_JX0A01: Hub hvrhub does not exist",
			wantCode:    "F_JX0A01",
			wantMessage: "Hub hvrhub does not exist",
			notFound:    true,
		},
		{
			name:        "plain text",
			status:      http.StatusInternalServerError,
			body:        "internal error",
			wantMessage: "internal error",
		},
		{
			name:        "not modified is not success",
			status:      http.StatusNotModified,
			body:        "",
			wantMessage: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hub := newFakeHub(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			client := newTestClient(t, hub)

			_, err := client.GetHubsHub(t.Context(), "hvrhub")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrREST)
			assert.NotErrorIs(t, err, ErrLogin)

			e, ok := AsError(err)
			require.True(t, ok)
			assert.Equal(t, KindREST, e.Kind)
			assert.Equal(t, tt.status, e.StatusCode)
			assert.Equal(t, tt.body, e.Body)
			assert.Equal(t, tt.wantCode, e.Code)
			assert.Equal(t, tt.wantMessage, e.Message)
			assert.Equal(t, tt.notFound, e.IsNotFound())
		})
	}
}

func TestDoInvalidJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "truncated", body: `{"hub":`},
		{name: "trailing data", body: `{"hub":"hvrhub"}junk`},
		{name: "two values", body: `{"hub":"a"}{"hub":"b"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hub := newFakeHub(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})
			client := newTestClient(t, hub)

			_, err := client.GetHubs(t.Context())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to parse response")
		})
	}
}

func TestDoConnectionFailure(t *testing.T) {
	hub := newFakeHub(t, nil)
	client := newTestClient(t, hub)
	require.NoError(t, client.Login(t.Context()))
	hub.Close()

	_, err := client.GetHubs(t.Context())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConnection)
	assert.Contains(t, err.Error(), "Request failed: ")
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestRetry(t *testing.T) {
	hub := newFakeHub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	var attempts atomic.Int32
	flaky := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		if attempts.Add(1) <= 2 {
			return nil, errors.New("connection reset by peer")
		}
		return http.DefaultTransport.RoundTrip(r)
	})}

	t.Run("recovers within budget", func(t *testing.T) {
		attempts.Store(0)
		client := newTestClient(t, hub, WithHTTPClient(flaky), WithRetry(3, time.Millisecond))
		_, err := client.GetHubs(t.Context())
		require.NoError(t, err)
		assert.Equal(t, int32(4), attempts.Load())
	})

	t.Run("disabled by default", func(t *testing.T) {
		attempts.Store(0)
		client := newTestClient(t, hub, WithHTTPClient(flaky))
		err := client.Login(t.Context())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConnection)
		assert.Equal(t, int32(1), attempts.Load())
	})
}

type failingBody struct{}

func (failingBody) Read([]byte) (int, error) { return 0, errors.New("connection reset by peer") }
func (failingBody) Close() error             { return nil }

func TestRetrySkipsBodyReadErrors(t *testing.T) {
	hub := newFakeHub(t, nil)

	var calls atomic.Int32
	truncating := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		if strings.HasPrefix(r.URL.Path, "/auth/") {
			return http.DefaultTransport.RoundTrip(r)
		}
		calls.Add(1)
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{},
			Body:       failingBody{},
			Request:    r,
		}, nil
	})}
	client := newTestClient(t, hub, WithHTTPClient(truncating), WithRetry(5, time.Millisecond))

	_, err := client.GetHubs(t.Context())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConnection)
	assert.Contains(t, err.Error(), "failed to read response body")
	assert.Equal(t, int32(1), calls.Load())
}

func TestRetrySkipsHTTPErrors(t *testing.T) {
	var calls atomic.Int32
	hub := newFakeHub(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	client := newTestClient(t, hub, WithRetry(5, time.Millisecond))

	_, err := client.GetHubs(t.Context())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrREST)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRetryStopsOnCancel(t *testing.T) {
	failing := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})}
	client, err := NewClient("http://hub.invalid", "admin", "secret",
		WithLogger(zerolog.Nop()),
		WithHTTPClient(failing),
		WithRetry(100, time.Hour),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	err = client.Login(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConnection)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestDoUnreachableServer(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client, err := NewClient(server.URL, "admin", "secret", WithLogger(zerolog.Nop()))
	require.NoError(t, err)

	_, err = client.Do(t.Context(), &Request{Method: http.MethodGet, Path: "/api/" + APIVersion + "/hubs"})
	assert.ErrorIs(t, err, ErrConnection)
}

package hvr

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHub serves the authentication endpoints and hands every other
// request to api.
type fakeHub struct {
	*httptest.Server
	logins    atomic.Int32
	expiresIn float64

	mu        sync.Mutex
	loginPath string
	loginBody []byte
}

func (h *fakeHub) lastLogin() (string, []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.loginPath, h.loginBody
}

func newFakeHub(t *testing.T, api http.HandlerFunc) *fakeHub {
	t.Helper()
	h := &fakeHub{expiresIn: 3600}
	h.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/auth/v1/") {
			n := h.logins.Add(1)
			body, _ := io.ReadAll(r.Body)
			h.mu.Lock()
			h.loginPath = r.URL.Path
			h.loginBody = body
			h.mu.Unlock()
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"access_token": fmt.Sprintf("token-%d", n),
				"token_type":   "bearer",
				"expires_in":   h.expiresIn,
			})
			return
		}
		if api == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		api(w, r)
	}))
	t.Cleanup(h.Close)
	return h
}

func newTestClient(t *testing.T, hub *fakeHub, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithLogger(zerolog.Nop())}, opts...)
	client, err := NewClient(hub.URL, "admin", "secret", opts...)
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		username string
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "valid config",
			baseURL:  "http://localhost:4340",
			username: "admin",
		},
		{
			name:     "missing URL",
			baseURL:  "",
			username: "admin",
			wantErr:  true,
			errMsg:   "hub URL is required",
		},
		{
			name:     "missing username",
			baseURL:  "http://localhost:4340",
			username: "",
			wantErr:  true,
			errMsg:   "username is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.baseURL, tt.username, "secret")
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.baseURL, client.BaseURL())
			assert.False(t, client.SetupMode())
		})
	}
}

func TestNewSetupClient(t *testing.T) {
	client, err := NewSetupClient("http://localhost:4340/")
	require.NoError(t, err)
	assert.True(t, client.SetupMode())
	assert.Equal(t, "http://localhost:4340", client.BaseURL())

	_, err = NewSetupClient("")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewClientMakesNoRequest(t *testing.T) {
	hub := newFakeHub(t, nil)
	_ = newTestClient(t, hub)
	assert.Equal(t, int32(0), hub.logins.Load())
}

func TestClientOptions(t *testing.T) {
	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient("http://localhost:4340", "admin", "secret", WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("default timeout", func(t *testing.T) {
		client, err := NewClient("http://localhost:4340", "admin", "secret", WithTimeout(0))
		require.NoError(t, err)
		assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient("http://localhost:4340", "admin", "secret", WithHTTPClient(customClient))
		require.NoError(t, err)
		assert.Equal(t, customClient, client.httpClient)
	})

	t.Run("with insecure skip verify", func(t *testing.T) {
		client, err := NewClient("http://localhost:4340", "admin", "secret", WithInsecureSkipVerify())
		require.NoError(t, err)
		transport, ok := client.httpClient.Transport.(*http.Transport)
		require.True(t, ok)
		assert.True(t, transport.TLSClientConfig.InsecureSkipVerify)
	})

	t.Run("with retry", func(t *testing.T) {
		client, err := NewClient("http://localhost:4340", "admin", "secret", WithRetry(3, time.Second))
		require.NoError(t, err)
		assert.Equal(t, uint64(3), client.maxRetries)
		assert.Equal(t, time.Second, client.retryInterval)
	})

	t.Run("with user agent", func(t *testing.T) {
		var got string
		hub := newFakeHub(t, func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Get("User-Agent")
		})
		client := newTestClient(t, hub, WithUserAgent("hvrctl-test"))
		_, err := client.GetHubs(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "hvrctl-test", got)
	})
}

func TestMetrics(t *testing.T) {
	hub := newFakeHub(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/"+APIVersion+"/hubs/missing" {
			http.Error(w, "F_JX0A01: Hub missing not found", http.StatusNotFound)
			return
		}
		w.Write([]byte(`[]`))
	})

	reg := prometheus.NewRegistry()
	client := newTestClient(t, hub, WithMetrics(reg))

	_, err := client.GetHubs(t.Context())
	require.NoError(t, err)
	_, err = client.GetHubsHub(t.Context(), "missing")
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(client.metrics.requests.WithLabelValues("POST", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(client.metrics.requests.WithLabelValues("GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(client.metrics.requests.WithLabelValues("GET", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(client.metrics.logins.WithLabelValues("success")))
	assert.Equal(t, 3, testutil.CollectAndCount(client.metrics.requests))
}

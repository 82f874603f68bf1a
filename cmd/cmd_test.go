package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/hvrctl/config"
	"github.com/s0up4200/hvrctl/hvr"
)

// hubServer serves a login endpoint and a fixed set of API responses
func hubServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/v1/password", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"token-1","token_type":"Bearer","expires_in":3600}`)
	})
	for pattern, body := range routes {
		mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "bearer token-1" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			io.WriteString(w, body)
		})
	}
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func execute(t *testing.T, serverURL string, args ...string) (string, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf(`
hub:
  url: %s
  username: admin
  password: secret
logging:
  level: error
filter:
  presets:
    production: istartsWith(name, "prod")
`, serverURL)), 0o600))

	filterExpr, preset = "", ""
	callQuery, callHeader, callData, callText = nil, nil, "", false

	// cobra keeps the context of the previous run on subcommands
	resetContexts(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"--config", path}, args...))
	err := rootCmd.ExecuteContext(t.Context())
	return out.String(), err
}

func resetContexts(c *cobra.Command) {
	c.SetContext(nil)
	for _, sub := range c.Commands() {
		resetContexts(sub)
	}
}

func TestHubsList(t *testing.T) {
	server := hubServer(t, map[string]string{
		"GET /api/v6.1.0.3/hubs": `{"prod_hub":{"description":"Production"},"test_hub":{"description":"Test"}}`,
	})

	tests := []struct {
		name string
		args []string
		want map[string]any
	}{
		{
			name: "all hubs",
			args: []string{"hubs", "list"},
			want: map[string]any{
				"prod_hub": map[string]any{"description": "Production"},
				"test_hub": map[string]any{"description": "Test"},
			},
		},
		{
			name: "filter expression",
			args: []string{"hubs", "list", "--filter", `description == "Test"`},
			want: map[string]any{
				"test_hub": map[string]any{"description": "Test"},
			},
		},
		{
			name: "preset",
			args: []string{"hubs", "list", "--preset", "production"},
			want: map[string]any{
				"prod_hub": map[string]any{"description": "Production"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, server.URL, tt.args...)
			require.NoError(t, err)

			var got map[string]any
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown preset", func(t *testing.T) {
		_, err := execute(t, server.URL, "hubs", "list", "--preset", "missing")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestCall(t *testing.T) {
	server := hubServer(t, map[string]string{
		"GET /api/v6.1.0.3/hubs/hub1/events": `[{"job":"ch1-cap-src","state":"DONE"},{"job":"ch1-integ-tgt","state":"FAILED"}]`,
	})

	out, err := execute(t, server.URL, "call", "get", "/hubs/hub1/events", "--filter", `state == "FAILED"`)
	require.NoError(t, err)

	var got []any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []any{map[string]any{"job": "ch1-integ-tgt", "state": "FAILED"}}, got)

	_, err = execute(t, server.URL, "call", "GET", "/hubs/missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, hvr.ErrREST)
}

func TestBuildRequest(t *testing.T) {
	t.Cleanup(func() {
		callQuery, callHeader, callData, callText = nil, nil, "", false
	})

	callQuery = []string{"channel=ch1", "channel=ch2", "fetch_results=true"}
	callHeader = []string{"X-Hvr-Classified-Access=yes"}
	callData = `{"jobs":["ch1-cap-src"]}`

	req, err := buildRequest("post", "hubs/hub1/jobs/start")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/v6.1.0.3/hubs/hub1/jobs/start", req.Path)
	assert.Equal(t, []string{"ch1", "ch2"}, req.Query["channel"])
	assert.Equal(t, "true", req.Query.Get("fetch_results"))
	assert.Equal(t, "yes", req.Header.Get("X-Hvr-Classified-Access"))
	assert.Equal(t, map[string]any{"jobs": []any{"ch1-cap-src"}}, req.Body)
	assert.True(t, req.ExpectJSON)

	bodyFile := filepath.Join(t.TempDir(), "body.json")
	require.NoError(t, os.WriteFile(bodyFile, []byte(`{"description":"from file"}`), 0o600))
	callQuery, callHeader, callData, callText = nil, nil, "@"+bodyFile, true

	req, err = buildRequest("PATCH", "/hubserver/props")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"description": "from file"}, req.Body)
	assert.False(t, req.ExpectJSON)
	assert.Nil(t, req.Query)

	_, err = buildRequest("HEAD", "/hubs")
	assert.Error(t, err)

	callData = "@"
	_, err = buildRequest("POST", "/hubs")
	assert.Error(t, err)

	callData = `{not json`
	_, err = buildRequest("POST", "/hubs")
	assert.ErrorContains(t, err, "invalid --data")

	callData = ""
	callQuery = []string{"novalue"}
	_, err = buildRequest("GET", "/hubs")
	assert.ErrorContains(t, err, "expected key=value")
}

func TestAPIPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/hubs", "/api/v6.1.0.3/hubs"},
		{"hubs/hub1", "/api/v6.1.0.3/hubs/hub1"},
		{"/api", "/api"},
		{"/api/v6.1.0.3/licenses", "/api/v6.1.0.3/licenses"},
		{"/auth/v1/setup", "/auth/v1/setup"},
		{"/apiary", "/api/v6.1.0.3/apiary"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, apiPath(tt.path))
		})
	}
}

func TestPrintResult(t *testing.T) {
	tests := []struct {
		name   string
		result any
		want   string
	}{
		{"nil", nil, ""},
		{"text", "line 1\nline 2\n", "line 1\nline 2\n"},
		{"json", map[string]any{"hub": "hvrhub"}, "{\n  \"hub\": \"hvrhub\"\n}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, printResult(&buf, tt.result))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, names(map[string]any{"b": 1.0, "a": 2.0}))
	assert.Equal(t, []string{"0", "1"}, names([]any{"x", "y"}))
	assert.Nil(t, names("text"))
}

func TestNewClient(t *testing.T) {
	cfg := &config.Config{
		Hub: config.HubConfig{
			URL:       "http://localhost:4340",
			SetupMode: true,
			Timeout:   5 * time.Second,
		},
		Retry: config.RetryConfig{MaxRetries: 2, InitialInterval: time.Millisecond},
	}

	c, err := newClient(cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.True(t, c.SetupMode())
	assert.Equal(t, "http://localhost:4340", c.BaseURL())

	cfg.Hub.SetupMode = false
	cfg.Hub.Username = "admin"
	c, err = newClient(cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.False(t, c.SetupMode())

	cfg.Hub.Username = ""
	_, err = newClient(cfg, zerolog.Nop())
	assert.ErrorIs(t, err, hvr.ErrInvalidConfig)
}

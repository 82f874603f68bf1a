package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
hub:
  url: https://hub.example.com:4341
  username: admin
  password: secret
  timeout: 10s
retry:
  max_retries: 3
  initial_interval: 250ms
logging:
  level: debug
  format: json
filter:
  presets:
    running: state == "RUNNING"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://hub.example.com:4341", cfg.Hub.URL)
	assert.Equal(t, "admin", cfg.Hub.Username)
	assert.Equal(t, "secret", cfg.Hub.Password)
	assert.Equal(t, 10*time.Second, cfg.Hub.Timeout)
	assert.False(t, cfg.Hub.SetupMode)
	assert.Equal(t, uint64(3), cfg.Retry.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.Retry.InitialInterval)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Logging.Color)
	assert.Equal(t, map[string]string{"running": `state == "RUNNING"`}, cfg.Filter.Presets)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
hub:
  setup_mode: true
`))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:4340", cfg.Hub.URL)
	assert.True(t, cfg.Hub.SetupMode)
	assert.Equal(t, 30*time.Second, cfg.Hub.Timeout)
	assert.Zero(t, cfg.Retry.MaxRetries)
	assert.Equal(t, 500*time.Millisecond, cfg.Retry.InitialInterval)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("HVRCTL_HUB_USERNAME", "envuser")
	t.Setenv("HVRCTL_HUB_PASSWORD", "envpass")
	t.Setenv("HVRCTL_LOGGING_LEVEL", "warn")

	cfg, err := Load(writeConfig(t, `
hub:
  url: http://hub:4340
  username: fileuser
`))
	require.NoError(t, err)

	assert.Equal(t, "http://hub:4340", cfg.Hub.URL)
	assert.Equal(t, "envuser", cfg.Hub.Username)
	assert.Equal(t, "envpass", cfg.Hub.Password)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Hub: HubConfig{
				URL:      "http://localhost:4340",
				Username: "admin",
				Password: "secret",
				Timeout:  30 * time.Second,
			},
			Logging: LoggingConfig{Level: "info", Format: "console"},
		}
	}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr []string
	}{
		{
			name:   "valid",
			modify: func(*Config) {},
		},
		{
			name: "setup mode without credentials",
			modify: func(c *Config) {
				c.Hub.SetupMode = true
				c.Hub.Username = ""
				c.Hub.Password = ""
			},
		},
		{
			name:    "missing url",
			modify:  func(c *Config) { c.Hub.URL = "" },
			wantErr: []string{"hub.url is required"},
		},
		{
			name:    "relative url",
			modify:  func(c *Config) { c.Hub.URL = "localhost" },
			wantErr: []string{"hub.url must be an absolute URL"},
		},
		{
			name:    "missing password",
			modify:  func(c *Config) { c.Hub.Password = "" },
			wantErr: []string{"hub.password are required"},
		},
		{
			name: "retry without interval",
			modify: func(c *Config) {
				c.Retry.MaxRetries = 2
			},
			wantErr: []string{"retry.initial_interval"},
		},
		{
			name: "empty preset",
			modify: func(c *Config) {
				c.Filter.Presets = map[string]string{"broken": " "}
			},
			wantErr: []string{"filter preset 'broken'"},
		},
		{
			name: "reports every problem",
			modify: func(c *Config) {
				c.Logging.Level = "trace"
				c.Logging.Format = "xml"
			},
			wantErr: []string{"invalid logging level: trace", "invalid logging format: xml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(cfg)

			err := validate(cfg)
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. HVRCTL_HUB_PASSWORD
const EnvPrefix = "HVRCTL"

// Load loads the configuration from file and the environment. A missing
// config file is only an error when configPath names one explicitly.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".hvrctl"))
		}

		// Check /etc
		v.AddConfigPath("/etc/hvrctl/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values. Every key gets a default
// so AutomaticEnv can override keys absent from the file.
func setDefaults(v *viper.Viper) {
	// Hub defaults
	v.SetDefault("hub.url", "http://localhost:4340")
	v.SetDefault("hub.username", "")
	v.SetDefault("hub.password", "")
	v.SetDefault("hub.setup_mode", false)
	v.SetDefault("hub.timeout", "30s")
	v.SetDefault("hub.insecure_skip_verify", false)

	// Retry defaults
	v.SetDefault("retry.max_retries", 0)
	v.SetDefault("retry.initial_interval", "500ms")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid and reports every problem
func validate(cfg *Config) error {
	var result *multierror.Error

	if cfg.Hub.URL == "" {
		result = multierror.Append(result, fmt.Errorf("hub.url is required"))
	} else if u, err := url.Parse(cfg.Hub.URL); err != nil || u.Scheme == "" || u.Host == "" {
		result = multierror.Append(result, fmt.Errorf("hub.url must be an absolute URL: %s", cfg.Hub.URL))
	}

	if !cfg.Hub.SetupMode && (cfg.Hub.Username == "" || cfg.Hub.Password == "") {
		result = multierror.Append(result, fmt.Errorf("hub.username and hub.password are required unless hub.setup_mode is set"))
	}

	if cfg.Hub.Timeout < 0 {
		result = multierror.Append(result, fmt.Errorf("hub.timeout must not be negative"))
	}

	if cfg.Retry.MaxRetries > 0 && cfg.Retry.InitialInterval <= 0 {
		result = multierror.Append(result, fmt.Errorf("retry.initial_interval must be positive when retries are enabled"))
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		result = multierror.Append(result, fmt.Errorf("invalid logging level: %s", cfg.Logging.Level))
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		result = multierror.Append(result, fmt.Errorf("invalid logging format: %s", cfg.Logging.Format))
	}

	for name, expression := range cfg.Filter.Presets {
		if strings.TrimSpace(expression) == "" {
			result = multierror.Append(result, fmt.Errorf("filter preset '%s' has an empty expression", name))
		}
	}

	return result.ErrorOrNil()
}

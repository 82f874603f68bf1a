package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/hvrctl/config"
	"github.com/s0up4200/hvrctl/filter"
	"github.com/s0up4200/hvrctl/hvr"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *hvr.Client
	filters *filter.Manager

	// Command flags
	filterExpr string
	preset     string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "hvrctl",
	Short: "A command line client for the HVR hub server REST API",
	Long: `hvrctl talks to an HVR hub server over its REST API. It logs in with
the configured credentials (or through setup mode), calls any endpoint,
filters JSON results with expressions, and regenerates the Go client
bindings from the server's OpenAPI document.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// initializeApp initializes the configuration, logger, client and filters
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	client, err = newClient(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create hub server client: %w", err)
	}

	filters = filter.NewManager()
	if err := filters.RegisterPresets(cfg.Filter.Presets); err != nil {
		return err
	}

	logger.Debug().
		Str("url", client.BaseURL()).
		Bool("setup_mode", client.SetupMode()).
		Int("presets", len(cfg.Filter.Presets)).
		Msg("Initialized")

	return nil
}

// initializeLogger sets up logging only, for commands that need no hub server
func initializeLogger(cmd *cobra.Command, args []string) error {
	logger = setupLogger(config.LoggingConfig{Level: "info", Format: "console", Color: true})
	return nil
}

// newClient builds a hub server client from the configuration
func newClient(cfg *config.Config, logger zerolog.Logger) (*hvr.Client, error) {
	opts := []hvr.Option{
		hvr.WithLogger(logger),
		hvr.WithTimeout(cfg.Hub.Timeout),
		hvr.WithUserAgent("hvrctl/" + appVersion),
	}
	if cfg.Hub.InsecureSkipVerify {
		opts = append(opts, hvr.WithInsecureSkipVerify())
	}
	if cfg.Retry.MaxRetries > 0 {
		opts = append(opts, hvr.WithRetry(cfg.Retry.MaxRetries, cfg.Retry.InitialInterval))
	}

	if cfg.Hub.SetupMode {
		return hvr.NewSetupClient(cfg.Hub.URL, opts...)
	}
	return hvr.NewClient(cfg.Hub.URL, cfg.Hub.Username, cfg.Hub.Password, opts...)
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// resolveFilter compiles the --filter expression or looks up the --preset
func resolveFilter() (filter.Filter, error) {
	f, err := filters.Resolve(filterExpr, preset)
	if err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}
	if f != nil {
		logger.Debug().Str("filter", f.Expression()).Msg("Filtering result")
	}
	return f, nil
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to each result item")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

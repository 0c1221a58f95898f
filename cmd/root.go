// ABOUTME: Root command for workload-estimator CLI
// ABOUTME: Handles global flags, configuration, and logger setup

package cmd

import (
	"fmt"

	"github.com/katyalpiyush/workload-estimator-poc/internal/config"
	"github.com/katyalpiyush/workload-estimator-poc/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	apiURL     string
	jsonOutput bool
	logLevel   string
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "workload-estimator",
	Short: "Recommend a cluster configuration for a dataset and workload",
	Long: `workload-estimator collects a description of your dataset and how it
is used, sends it to the estimation service, and shows the recommended
service groups with their node, RAM, CPU, and disk figures.

Running without a subcommand opens the interactive form.

Environment Variables:
  WORKLOAD_ESTIMATOR_API_URL     Estimation service URL (default: http://localhost:8080)
  WORKLOAD_ESTIMATOR_LOG_LEVEL   debug, info, warn, error (default: info)
  WORKLOAD_ESTIMATOR_LOG_FORMAT  console, json (default: console)
  WORKLOAD_ESTIMATOR_CONFIG_DIR  Directory for debug.log (default: ~/.workload-estimator)`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runForm()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Estimation service URL (overrides "+config.EnvAPIURL+")")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (overrides "+config.EnvLogLevel+")")
}

// loadConfig reads configuration and applies flag overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	cfg.APIURL = config.NormalizeAPIURL(GetAPIURL(cfg))
	if err := config.ValidateAPIURL(cfg.APIURL); err != nil {
		return nil, fmt.Errorf("invalid --api-url: %w", err)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}

// GetAPIURL returns the API URL from flag, config, or default (in priority order)
func GetAPIURL(cfg *config.Config) string {
	if apiURL != "" {
		return apiURL
	}
	if cfg != nil && cfg.APIURL != "" {
		return cfg.APIURL
	}
	return config.DefaultAPIURL
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// newLogger builds the command logger. When toFile is set, output goes to
// the debug log in the config directory so it does not corrupt the TUI.
func newLogger(cfg *config.Config, toFile bool) (*zap.Logger, func(), error) {
	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.Format = cfg.LogFormat
	if toFile {
		logCfg = logging.FileConfig(logCfg, cfg.ConfigDir)
	}
	return logging.New(logCfg)
}

// ABOUTME: Configuration loader for the workload estimator CLI
// ABOUTME: Loads settings from .env and environment variables with defaults

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvAPIURL    = "WORKLOAD_ESTIMATOR_API_URL"
	EnvLogLevel  = "WORKLOAD_ESTIMATOR_LOG_LEVEL"
	EnvLogFormat = "WORKLOAD_ESTIMATOR_LOG_FORMAT"
	EnvConfigDir = "WORKLOAD_ESTIMATOR_CONFIG_DIR"
)

// DefaultAPIURL is used when no service URL is configured
const DefaultAPIURL = "http://localhost:8080"

// Config holds the CLI settings resolved from .env and the environment
type Config struct {
	APIURL    string // estimation service base URL
	LogLevel  string // debug, info, warn, error (default: info)
	LogFormat string // console, json (default: console)
	ConfigDir string // holds debug.log for the TUI (empty = no file logging)
}

// Load reads .env files (missing files are ignored) and then the environment.
// Values already present in the environment win over .env entries.
func Load(envFiles ...string) (*Config, error) {
	if err := loadDotEnv(envFiles...); err != nil {
		return nil, err
	}

	cfg := &Config{
		APIURL:    NormalizeAPIURL(getEnv(EnvAPIURL, DefaultAPIURL)),
		LogLevel:  getEnv(EnvLogLevel, "info"),
		LogFormat: getEnv(EnvLogFormat, "console"),
		ConfigDir: getEnv(EnvConfigDir, defaultConfigDir()),
	}

	if err := ValidateAPIURL(cfg.APIURL); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NormalizeAPIURL trims u and adds https:// when it has no scheme
func NormalizeAPIURL(u string) string {
	return ensureScheme(strings.TrimSpace(u))
}

// ValidateAPIURL checks that u is an absolute http(s) URL
func ValidateAPIURL(u string) error {
	parsed, err := url.Parse(u)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", EnvAPIURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s must use http or https, got %q", EnvAPIURL, u)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%s must include a host, got %q", EnvAPIURL, u)
	}
	return nil
}

func loadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func defaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".workload-estimator")
}

// ensureScheme adds https:// prefix if the URL has no scheme
func ensureScheme(url string) string {
	if url == "" {
		return url
	}
	if !strings.Contains(url, "://") {
		return "https://" + url
	}
	return url
}

// ABOUTME: Tests for the root command and global flag handling
// ABOUTME: Verifies environment variable and flag configuration

package cmd

import (
	"testing"

	"github.com/katyalpiyush/workload-estimator-poc/internal/config"
)

// withCleanFlags resets global flag state for one test
func withCleanFlags(t *testing.T) {
	t.Helper()
	apiURL, jsonOutput, logLevel = "", false, ""
	t.Cleanup(func() { apiURL, jsonOutput, logLevel = "", false, "" })
	t.Setenv(config.EnvAPIURL, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvConfigDir, t.TempDir())
}

func TestGetAPIURL_Default(t *testing.T) {
	withCleanFlags(t)

	if url := GetAPIURL(nil); url != "http://localhost:8080" {
		t.Errorf("expected default URL http://localhost:8080, got %s", url)
	}
}

func TestGetAPIURL_FromConfig(t *testing.T) {
	withCleanFlags(t)
	t.Setenv(config.EnvAPIURL, "http://backend.example.com")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIURL != "http://backend.example.com" {
		t.Errorf("expected http://backend.example.com, got %s", cfg.APIURL)
	}
}

func TestGetAPIURL_FlagOverridesEnv(t *testing.T) {
	withCleanFlags(t)
	t.Setenv(config.EnvAPIURL, "http://backend.example.com")
	apiURL = "http://flag-override.example.com"

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIURL != "http://flag-override.example.com" {
		t.Errorf("expected flag to override env, got %s", cfg.APIURL)
	}
}

func TestLoadConfig_RejectsBadFlagURL(t *testing.T) {
	withCleanFlags(t)
	apiURL = "ftp://example.com"

	if _, err := loadConfig(); err == nil {
		t.Error("expected error for non-http --api-url")
	}
}

func TestLoadConfig_FlagURLGetsScheme(t *testing.T) {
	withCleanFlags(t)
	apiURL = "estimator.example.com:8080"

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIURL != "https://estimator.example.com:8080" {
		t.Errorf("expected flag URL to get https scheme like the env value, got %s", cfg.APIURL)
	}
}

func TestLoadConfig_LogLevelFlag(t *testing.T) {
	withCleanFlags(t)
	t.Setenv(config.EnvLogLevel, "warn")
	logLevel = "debug"

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected --log-level to override env, got %s", cfg.LogLevel)
	}
}

func TestJSONOutput(t *testing.T) {
	withCleanFlags(t)
	jsonOutput = true

	if !IsJSONOutput() {
		t.Error("expected IsJSONOutput to return true")
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	for _, name := range []string{"form", "estimate"} {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
			}
		}
		if !found {
			t.Errorf("expected %s subcommand", name)
		}
	}
}

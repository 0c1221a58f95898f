// ABOUTME: Structured logging setup using zap
// ABOUTME: Writes to stderr for commands or to a debug log file while the TUI owns the terminal

package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DebugLogFile is the file name used inside the config directory
const DebugLogFile = "debug.log"

// Config contains logging configuration
type Config struct {
	// Level is the minimum log level: debug, info, warn, error
	Level string
	// Format is the output format: console or json
	Format string
	// Output is stdout, stderr, or a file path
	Output string
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
		Output: "stderr",
	}
}

// FileConfig returns cfg redirected to the debug log inside configDir.
// If configDir is empty, logging is disabled.
func FileConfig(cfg Config, configDir string) Config {
	if configDir == "" {
		cfg.Output = ""
		return cfg
	}
	cfg.Output = filepath.Join(configDir, DebugLogFile)
	return cfg
}

// New builds a logger from cfg. An empty Output yields a no-op logger.
// The returned close func flushes and releases any opened file.
func New(cfg Config) (*zap.Logger, func(), error) {
	if cfg.Output == "" {
		return zap.NewNop(), func() {}, nil
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if strings.ToLower(cfg.Format) == "json" {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	var sink zapcore.WriteSyncer
	closeFn := func() {}
	switch cfg.Output {
	case "stdout":
		sink = zapcore.AddSync(os.Stdout)
	case "stderr":
		sink = zapcore.AddSync(os.Stderr)
	default:
		if err := os.MkdirAll(filepath.Dir(cfg.Output), 0700); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		sink = zapcore.AddSync(f)
		closeFn = func() { f.Close() }
	}

	logger := zap.New(zapcore.NewCore(encoder, sink, ParseLevel(cfg.Level)))
	return logger, func() {
		_ = logger.Sync()
		closeFn()
	}, nil
}

// ParseLevel converts a string log level, defaulting to info
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

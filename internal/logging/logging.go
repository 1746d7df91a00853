// Package logging builds the zap logger of the ratrecon command
package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/predrag3141/ratrecon/internal/config"
)

const EnvLogLevel = "RATRECON_LOG_LEVEL"

// New returns a logger for cfg. RATRECON_LOG_LEVEL, when set to a known
// level, overrides cfg.Level, and verbose overrides both with debug.
func New(cfg config.LogConfig, verbose bool) (*zap.Logger, error) {
	level, ok := parseLevel(cfg.Level)
	if !ok {
		return nil, fmt.Errorf("logging.New: unknown level %q", cfg.Level)
	}
	if raw := os.Getenv(EnvLogLevel); raw != "" {
		if envLevel, ok := parseLevel(raw); ok {
			level = envLevel
		}
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging.New: %w", err)
	}
	return logger, nil
}

// parseLevel accepts the zap level names plus a few aliases. The empty
// string means info.
func parseLevel(raw string) (zapcore.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "info":
		return zapcore.InfoLevel, true
	case "debug", "trace":
		return zapcore.DebugLevel, true
	case "warn", "warning":
		return zapcore.WarnLevel, true
	case "error":
		return zapcore.ErrorLevel, true
	default:
		return zapcore.InfoLevel, false
	}
}

// Package util provides shared utilities for the cycleops CLI.
//
//nolint:revive // util is a common package name for shared utilities
package util

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"cycleops/internal/config"
)

// NewLogger configures zap logging based on debug mode and config settings.
// All log output goes to stderr so it never mixes with rendered responses.
func NewLogger(cfg *config.Config) *zap.Logger {
	var zapConfig zap.Config
	if cfg.Debug || cfg.Logging.Level == "DEBUG" {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	level := parseLogLevel(cfg.Logging.Level)
	if cfg.Debug {
		level = zapcore.DebugLevel
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.OutputPaths = []string{"stderr"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}

	if cfg.Logging.Format == "text" {
		zapConfig.Encoding = "console"
		if term.IsTerminal(int(os.Stderr.Fd())) {
			zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
	} else {
		zapConfig.Encoding = "json"
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// parseLogLevel safely converts a config level string to a zap log level
func parseLogLevel(levelStr string) zapcore.Level {
	switch strings.ToUpper(levelStr) {
	case "WARNING":
		return zapcore.WarnLevel
	case "CRITICAL":
		return zapcore.FatalLevel
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(levelStr))); err != nil {
		return zapcore.WarnLevel
	}
	return level
}

package util

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"cycleops/internal/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"DEBUG", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"WARNING", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"ERROR", zapcore.ErrorLevel},
		{"CRITICAL", zapcore.FatalLevel},
		{"bogus", zapcore.WarnLevel},
	}
	for _, tc := range tests {
		if got := parseLogLevel(tc.in); got != tc.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNewLoggerRespectsDebug(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Debug = true

	logger := NewLogger(cfg)
	defer func() { _ = logger.Sync() }()

	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug mode should enable debug-level logging")
	}
}

func TestNewLoggerDefaultsToWarn(t *testing.T) {
	logger := NewLogger(config.DefaultConfig())
	defer func() { _ = logger.Sync() }()

	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("default level should suppress info logs")
	}
	if !logger.Core().Enabled(zapcore.WarnLevel) {
		t.Error("default level should allow warnings")
	}
}

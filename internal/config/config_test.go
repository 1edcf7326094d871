package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.API.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.API.BaseURL, DefaultBaseURL)
	}
	if cfg.API.Key != "" {
		t.Errorf("Key should default to empty, got %q", cfg.API.Key)
	}
	if cfg.API.Timeout != 30 {
		t.Errorf("Timeout = %d, want 30", cfg.API.Timeout)
	}
	if cfg.Deploy.PollInterval != 5.0 {
		t.Errorf("PollInterval = %v, want 5.0", cfg.Deploy.PollInterval)
	}
	if cfg.Deploy.WaitTimeout != 1800 {
		t.Errorf("WaitTimeout = %d, want 1800", cfg.Deploy.WaitTimeout)
	}
	if cfg.Output.Format != "table" {
		t.Errorf("Output format = %q, want table", cfg.Output.Format)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadConfigFromTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
debug = true

[api]
base_url = "https://staging.cycleops.io/stack-manager"
key = "file-key"

[deploy]
poll_interval = 2.5

[output]
format = "json"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !cfg.Debug {
		t.Error("Debug should be true")
	}
	if cfg.API.BaseURL != "https://staging.cycleops.io/stack-manager" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.Key != "file-key" {
		t.Errorf("Key = %q, want file-key", cfg.API.Key)
	}
	if cfg.API.Timeout != 30 {
		t.Errorf("Timeout should keep its default, got %d", cfg.API.Timeout)
	}
	if cfg.Deploy.PollInterval != 2.5 {
		t.Errorf("PollInterval = %v, want 2.5", cfg.Deploy.PollInterval)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output format = %q, want json", cfg.Output.Format)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[api]\nkey = \"file-key\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CYCLEOPS_API_KEY", "env-key")
	t.Setenv("CYCLEOPS_OUTPUT", "json")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.API.Key != "env-key" {
		t.Errorf("Key = %q, env should win over file", cfg.API.Key)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output format = %q, want json", cfg.Output.Format)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("expected an error for an explicitly named missing file")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty base url", func(c *Config) { c.API.BaseURL = "" }},
		{"zero timeout", func(c *Config) { c.API.Timeout = 0 }},
		{"zero poll interval", func(c *Config) { c.Deploy.PollInterval = 0 }},
		{"negative wait timeout", func(c *Config) { c.Deploy.WaitTimeout = -1 }},
		{"unknown output format", func(c *Config) { c.Output.Format = "yaml" }},
		{"unknown log level", func(c *Config) { c.Logging.Level = "TRACE" }},
		{"unknown log format", func(c *Config) { c.Logging.Format = "xml" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidateNormalizesCase(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Format = "JSON"
	cfg.Logging.Level = "debug"
	cfg.API.BaseURL = "https://example.com/api/"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output format = %q, want json", cfg.Output.Format)
	}
	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("Log level = %q, want DEBUG", cfg.Logging.Level)
	}
	if cfg.API.BaseURL != "https://example.com/api" {
		t.Errorf("BaseURL = %q, trailing slash should be trimmed", cfg.API.BaseURL)
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	cfg.API.Key = "saved-key"
	cfg.Deploy.WaitTimeout = 600

	if err := cfg.SaveConfig(path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.API.Key != "saved-key" {
		t.Errorf("Key = %q, want saved-key", loaded.API.Key)
	}
	if loaded.Deploy.WaitTimeout != 600 {
		t.Errorf("WaitTimeout = %d, want 600", loaded.Deploy.WaitTimeout)
	}
}

// Package config provides layered configuration for the cycleops CLI.
//
// Values are resolved in order: built-in defaults, an optional TOML config
// file, a .env file, environment variables, and finally command-line flags
// applied by the cli package.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultBaseURL is the production stack-manager endpoint.
const DefaultBaseURL = "https://cloud.cycleops.io/stack-manager"

// Config is the main configuration object.
type Config struct {
	Debug bool `toml:"debug" env:"CYCLEOPS_DEBUG"`

	API     APIConfig     `toml:"api"`
	Deploy  DeployConfig  `toml:"deploy"`
	Output  OutputConfig  `toml:"output"`
	Logging LoggingConfig `toml:"logging"`
}

// APIConfig contains endpoint and credential settings.
type APIConfig struct {
	BaseURL string `toml:"base_url" env:"CYCLEOPS_BASE_URL"`
	Key     string `toml:"key" env:"CYCLEOPS_API_KEY"`
	Timeout int    `toml:"timeout" env:"CYCLEOPS_API_TIMEOUT"`
}

// DeployConfig contains deployment wait-loop settings.
type DeployConfig struct {
	// PollInterval is the fixed delay between job status checks, in seconds.
	PollInterval float64 `toml:"poll_interval" env:"CYCLEOPS_POLL_INTERVAL"`
	// WaitTimeout bounds the wait loop, in seconds. 0 waits forever.
	WaitTimeout int `toml:"wait_timeout" env:"CYCLEOPS_WAIT_TIMEOUT"`
}

// OutputConfig selects how responses are rendered.
type OutputConfig struct {
	Format string `toml:"format" env:"CYCLEOPS_OUTPUT"`
}

// LoggingConfig defines log levels and formats.
type LoggingConfig struct {
	Level  string `toml:"level" env:"CYCLEOPS_LOG_LEVEL"`
	Format string `toml:"format" env:"CYCLEOPS_LOG_FORMAT"`
}

// DefaultConfig returns a configuration with production-ready defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug: false,
		API: APIConfig{
			BaseURL: DefaultBaseURL,
			Key:     "",
			Timeout: 30,
		},
		Deploy: DeployConfig{
			PollInterval: 5.0,
			WaitTimeout:  1800,
		},
		Output: OutputConfig{
			Format: "table",
		},
		Logging: LoggingConfig{
			Level:  "WARNING",
			Format: "text",
		},
	}
}

// LoadConfig loads configuration from a file, the environment and defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if configPath == "" {
		configPath = findDefaultConfig()
	}
	if configPath != "" {
		if _, err := toml.DecodeFile(configPath, config); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// A .env file is optional; a missing one is not an error.
	_ = godotenv.Load()
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// SaveConfig writes the configuration to a TOML file.
func (c *Config) SaveConfig(configPath string) error {
	file, err := os.Create(configPath) //nolint:gosec // config path is user-controlled
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		_ = file.Close() // Close errors are non-critical after successful encoding
	}()

	return toml.NewEncoder(file).Encode(c)
}

// Validate ensures settings are within supported bounds.
func (c *Config) Validate() error {
	if err := c.validateAPI(); err != nil {
		return err
	}
	if err := c.validateDeploy(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func findDefaultConfig() string {
	candidates := []string{"cycleops.toml"}

	if cfgDir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(cfgDir, "cycleops", "config.toml"))
	}
	candidates = append(candidates, "/etc/cycleops/config.toml")

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func (c *Config) validateAPI() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api base_url must not be empty")
	}
	c.API.BaseURL = strings.TrimSuffix(c.API.BaseURL, "/")
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api timeout must be positive, got %d", c.API.Timeout)
	}
	return nil
}

func (c *Config) validateDeploy() error {
	if c.Deploy.PollInterval <= 0 {
		return fmt.Errorf("deploy poll_interval must be positive, got %v", c.Deploy.PollInterval)
	}
	if c.Deploy.WaitTimeout < 0 {
		return fmt.Errorf("deploy wait_timeout must not be negative, got %d", c.Deploy.WaitTimeout)
	}
	return nil
}

func (c *Config) validateOutput() error {
	validFormats := []string{"table", "json"}
	format := strings.ToLower(c.Output.Format)
	if !slices.Contains(validFormats, format) {
		return fmt.Errorf("invalid output format: %s. Must be one of %v", c.Output.Format, validFormats)
	}
	c.Output.Format = format
	return nil
}

func (c *Config) validateLogging() error {
	validLevels := []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}
	level := strings.ToUpper(c.Logging.Level)
	if !slices.Contains(validLevels, level) {
		return fmt.Errorf("invalid log level: %s. Must be one of %v", c.Logging.Level, validLevels)
	}
	c.Logging.Level = level

	validFormats := []string{"json", "text"}
	format := strings.ToLower(c.Logging.Format)
	if !slices.Contains(validFormats, format) {
		return fmt.Errorf("invalid log format: %s. Must be one of %v", c.Logging.Format, validFormats)
	}
	c.Logging.Format = format
	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"cycleops/internal/config"
)

var (
	cfgFile string
	apiKey  string
	baseURL string
	output  string
	debug   bool

	// Version is set by ldflags during build
	Version = "dev"
)

// AppKey is the context key for the AppContainer
type AppKey struct{}

// rootCmd defines the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cycleops",
	Short: "Command-line client for the Cycleops deployment platform",
	Long: `Cycleops is a CLI client for the Cycleops deployment-management API.

It manages hosts, hostgroups, services, stacks and setups, and triggers
deployments, optionally waiting for them to finish.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initApp,
	PersistentPostRun: func(cmd *cobra.Command, _ []string) {
		if a, ok := cmd.Context().Value(AppKey{}).(*AppContainer); ok {
			a.Close()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "API key for the Cycleops API (overrides CYCLEOPS_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "base URL for the Cycleops API")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output format: table or json")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug mode")
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("cycleops v{{.Version}}\n")
	rootCmd.Run = func(cmd *cobra.Command, _ []string) { _ = cmd.Help() }
}

// initApp handles configuration loading and dependency injection for all commands
func initApp(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flags override file and environment values.
	if apiKey != "" {
		cfg.API.Key = apiKey
	}
	if baseURL != "" {
		cfg.API.BaseURL = baseURL
	}
	if output != "" {
		cfg.Output.Format = output
	}
	if debug {
		cfg.Debug = true
		cfg.Logging.Level = "DEBUG"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	application := NewApp(cfg)
	// Inject the application container into the command context to avoid global state "lock-in"
	ctx := context.WithValue(cmd.Context(), AppKey{}, application)
	cmd.SetContext(ctx)
	return nil
}

// App extracts the AppContainer from the command context
func App(cmd *cobra.Command) *AppContainer {
	if a, ok := cmd.Context().Value(AppKey{}).(*AppContainer); ok {
		return a
	}
	return nil
}

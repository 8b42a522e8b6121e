// Package cmd implements the websearch CLI using cobra.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crystaldolphin/websearch/internal/config"
	"github.com/crystaldolphin/websearch/internal/dependency"
	"github.com/crystaldolphin/websearch/internal/logging"
)

const version = "0.1.0"
const logo = "🐬"

var (
	configPath string
	showLogs   bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "websearch",
	Short: logo + " websearch — web search tool for crystaldolphin agents",
	Long: logo + " websearch — query Brave Search or xAI Grok the way the agent's web_search tool does.\n\n" +
		"Credentials come from the config file or from BRAVE_API_KEY / XAI_API_KEY\n" +
		"(a .env file in the working directory or the data directory is loaded first).",
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return config.LoadEnvFiles(config.DefaultEnvFiles()...)
	},
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.crystaldolphin/config.json)")
	rootCmd.PersistentFlags().BoolVar(&showLogs, "logs", false, "Show runtime logs")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(onboardCmd)
}

func resolvedConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.ConfigPath()
}

// newContainer loads the config, applies command-line overrides and wires the tools.
func newContainer(overrides ...func(*config.Config)) (*dependency.Container, error) {
	cfg, err := config.Load(resolvedConfigPath())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	for _, o := range overrides {
		o(cfg)
	}

	var opts []dependency.Option
	if !showLogs {
		opts = append(opts, dependency.WithLogger(logging.Discard()))
	}
	return dependency.New(cfg, opts...)
}

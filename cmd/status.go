package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crystaldolphin/websearch/internal/config"
	"github.com/crystaldolphin/websearch/internal/tools"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show websearch configuration and credential status",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, _ []string) error {
	cfgPath := resolvedConfigPath()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s websearch Status\n\n", logo)

	_, statErr := os.Stat(cfgPath)
	cfgMark := "✗"
	if statErr == nil {
		cfgMark = "✓"
	}
	fmt.Fprintf(out, "Config:    %s %s\n", cfgPath, cfgMark)

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(out, "  (could not load config: %v)\n", err)
		return nil
	}

	printStatus(out, cfg, os.LookupEnv)
	return nil
}

func printStatus(out io.Writer, cfg *config.Config, lookupEnv tools.EnvLookup) {
	search := cfg.Tools.Web.Search
	provider := search.Provider
	if provider == "" {
		provider = tools.ProviderBrave
	}
	mark := ""
	if tools.FindSearchProvider(provider) == nil {
		mark = " ✗ (unsupported)"
	}
	fmt.Fprintf(out, "Provider:  %s%s\n", provider, mark)
	fmt.Fprintf(out, "Results:   %d per query, timeout %s\n\n", search.MaxResults, search.Timeout())

	fmt.Fprintln(out, "Credentials:")
	for _, spec := range tools.SearchProviders() {
		fmt.Fprintf(out, "  %-14s %s\n", spec.Label(), credentialSource(cfg.SearchAPIKey(spec.Name), spec.EnvKey, lookupEnv))
	}
	if search.Grok.BaseURL != "" {
		fmt.Fprintf(out, "  %-14s endpoint %s\n", "", search.Grok.BaseURL)
	}
}

// credentialSource describes where a provider key would be resolved from.
func credentialSource(explicit, envVar string, lookupEnv tools.EnvLookup) string {
	if strings.TrimSpace(explicit) != "" {
		return "✓ (config)"
	}
	if v, ok := lookupEnv(envVar); ok && strings.TrimSpace(v) != "" {
		return "✓ (" + envVar + ")"
	}
	return "(not set: " + envVar + ")"
}

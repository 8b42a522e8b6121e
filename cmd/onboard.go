package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crystaldolphin/websearch/internal/config"
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Create or refresh the configuration file",
	RunE:  runOnboard,
}

func runOnboard(cmd *cobra.Command, _ []string) error {
	cfgPath := resolvedConfigPath()
	out := cmd.OutOrStdout()

	// Existing values are kept and newly added defaults filled in. A file that
	// does not parse is left untouched.
	cfg, err := config.LoadStrict(cfgPath)
	if errors.Is(err, config.ErrInvalidConfig) {
		return fmt.Errorf("%w; fix or remove the file before running onboard", err)
	}
	if err != nil {
		return err
	}
	if err := config.Save(cfg, cfgPath); err != nil {
		return err
	}
	fmt.Fprintf(out, "✓ Config written to %s\n", cfgPath)

	fmt.Fprintf(out, "\n%s websearch is ready!\n\n", logo)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Export BRAVE_API_KEY (https://brave.com/search/api/)")
	fmt.Fprintln(out, "     or XAI_API_KEY and set tools.web.search.provider to \"grok\"")
	fmt.Fprintf(out, "  2. Search: websearch search \"crystal dolphins\"\n")
	return nil
}

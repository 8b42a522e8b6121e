package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/crystaldolphin/websearch/internal/shared/cmdutils"
)

var (
	fetchMode     string
	fetchMaxChars int
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <url>",
	Short: "Fetch a URL and extract readable content",
	Args:  cobra.ExactArgs(1),
	RunE:  runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&fetchMode, "mode", "markdown", "Extraction mode: markdown or text")
	fetchCmd.Flags().IntVar(&fetchMaxChars, "max-chars", 0, "Maximum characters of extracted text (default from config)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	c, err := newContainer()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	params := map[string]any{"url": args[0], "extractMode": fetchMode}
	if fetchMaxChars > 0 {
		params["maxChars"] = fetchMaxChars
	}
	out, err := c.WebFetch().Execute(ctx, params)
	if err != nil {
		return err
	}
	cmdutils.PrintResult(cmd.OutOrStdout(), "web_fetch: "+args[0], out)
	return nil
}

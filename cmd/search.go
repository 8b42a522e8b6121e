package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/crystaldolphin/websearch/internal/config"
	"github.com/crystaldolphin/websearch/internal/schema"
	"github.com/crystaldolphin/websearch/internal/shared/cmdutils"
)

var (
	searchCount    int
	searchProvider string
	searchParallel int
)

var searchCmd = &cobra.Command{
	Use:   "search <query> [query...]",
	Short: "Search the web (quote multi-word queries)",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchCount, "count", "n", 0, "Results per query, 1-10 (default from config)")
	searchCmd.Flags().StringVarP(&searchProvider, "provider", "p", "", "Search provider: brave or grok (default from config)")
	searchCmd.Flags().IntVar(&searchParallel, "parallel", 4, "Maximum queries in flight")
}

func runSearch(cmd *cobra.Command, args []string) error {
	c, err := newContainer(func(cfg *config.Config) {
		if searchProvider != "" {
			cfg.Tools.Web.Search.Provider = searchProvider
		}
	})
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	results, err := runQueries(ctx, c.WebSearch(), args, searchCount, searchParallel)
	if err != nil {
		return err
	}
	for i, out := range results {
		cmdutils.PrintResult(cmd.OutOrStdout(), "web_search: "+args[i], out)
	}
	return nil
}

// runQueries executes one tool call per query, at most parallel at a time,
// and returns the outputs in query order. count <= 0 leaves the tool default.
func runQueries(ctx context.Context, tool schema.Tool, queries []string, count, parallel int) ([]string, error) {
	if parallel < 1 {
		parallel = 1
	}

	results := make([]string, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, q := range queries {
		g.Go(func() error {
			params := map[string]any{"query": q}
			if count > 0 {
				params["count"] = count
			}
			out, err := tool.Execute(gctx, params)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

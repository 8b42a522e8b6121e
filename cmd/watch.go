package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	robfigcron "github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/crystaldolphin/websearch/internal/config"
	"github.com/crystaldolphin/websearch/internal/schema"
	"github.com/crystaldolphin/websearch/internal/shared/cmdutils"
)

var (
	watchEvery    string
	watchCount    int
	watchProvider string
)

var watchCmd = &cobra.Command{
	Use:   "watch <query>",
	Short: "Re-run a search on a schedule and print it whenever the results change",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchEvery, "every", "@every 1h", "Cron spec or descriptor (e.g. \"*/15 * * * *\", \"@every 30m\")")
	watchCmd.Flags().IntVarP(&watchCount, "count", "n", 0, "Results per run, 1-10 (default from config)")
	watchCmd.Flags().StringVarP(&watchProvider, "provider", "p", "", "Search provider: brave or grok (default from config)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	schedule, err := robfigcron.ParseStandard(watchEvery)
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", watchEvery, err)
	}

	c, err := newContainer(func(cfg *config.Config) {
		if watchProvider != "" {
			cfg.Tools.Web.Search.Provider = watchProvider
		}
	})
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	w := newWatcher(c.WebSearch(), args[0], watchCount, cmd.OutOrStdout(), c.Logger())
	w.run(ctx)

	sched := robfigcron.New()
	sched.Schedule(schedule, robfigcron.FuncJob(func() { w.run(ctx) }))
	sched.Start()
	c.Logger().Info("watch: scheduled", "query", args[0], "every", watchEvery, "next", schedule.Next(time.Now()))

	<-ctx.Done()
	<-sched.Stop().Done()
	return nil
}

// watcher runs one query repeatedly and prints the output when it differs
// from the previous run.
type watcher struct {
	tool   schema.Tool
	query  string
	count  int
	out    io.Writer
	logger *slog.Logger

	mu   sync.Mutex
	last string
	runs int
}

func newWatcher(tool schema.Tool, query string, count int, out io.Writer, logger *slog.Logger) *watcher {
	return &watcher{tool: tool, query: query, count: count, out: out, logger: logger}
}

// run performs one search. It reports whether the output was printed.
func (w *watcher) run(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}

	params := map[string]any{"query": w.query}
	if w.count > 0 {
		params["count"] = w.count
	}
	res, err := w.tool.Execute(ctx, params)
	if err != nil {
		w.logger.Error("watch: search failed", "query", w.query, "err", err)
		return false
	}
	// Interrupted mid-request: the result is a cancellation message, not news.
	if ctx.Err() != nil {
		return false
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.runs++
	if res == w.last {
		w.logger.Debug("watch: unchanged", "query", w.query, "run", w.runs)
		return false
	}
	w.last = res
	cmdutils.PrintResult(w.out, fmt.Sprintf("web_search: %s (%s)", w.query, time.Now().Format(time.Kitchen)), res)
	return true
}

// Package dependency wires websearch services using go.uber.org/dig.
package dependency

import (
	"log/slog"
	"os"
	"time"

	"go.uber.org/dig"

	"github.com/crystaldolphin/websearch/internal/config"
	"github.com/crystaldolphin/websearch/internal/logging"
	"github.com/crystaldolphin/websearch/internal/tools"
)

// Container holds the resolved service singletons.
// Callers use the typed getter methods; they never need to import dig directly.
type Container struct {
	cfg      *config.Config
	logger   *slog.Logger
	search   *tools.WebSearchTool
	fetch    *tools.WebFetchTool
	registry *tools.Registry
}

func (c *Container) Config() *config.Config          { return c.cfg }
func (c *Container) Logger() *slog.Logger            { return c.logger }
func (c *Container) WebSearch() *tools.WebSearchTool { return c.search }
func (c *Container) WebFetch() *tools.WebFetchTool   { return c.fetch }
func (c *Container) Registry() *tools.Registry       { return c.registry }

// Option adjusts a Container before its services are built.
type Option func(*options)

type options struct {
	logger    *slog.Logger
	lookupEnv tools.EnvLookup
}

// WithLogger replaces the logger derived from cfg.Log.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithLookupEnv replaces os.LookupEnv as the credential fallback source.
func WithLookupEnv(fn tools.EnvLookup) Option {
	return func(o *options) { o.lookupEnv = fn }
}

// New builds and wires all services from cfg. An unsupported search
// provider in cfg is reported here.
func New(cfg *config.Config, opts ...Option) (*Container, error) {
	o := options{lookupEnv: os.LookupEnv}
	for _, opt := range opts {
		opt(&o)
	}

	d := dig.New()

	if err := d.Provide(func() *config.Config { return cfg }); err != nil {
		return nil, err
	}
	if err := d.Provide(func(cfg *config.Config) *slog.Logger {
		if o.logger != nil {
			return o.logger
		}
		return logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	}); err != nil {
		return nil, err
	}
	if err := d.Provide(func(cfg *config.Config, l *slog.Logger) (*tools.WebSearchTool, error) {
		return newWebSearchTool(cfg, l, o.lookupEnv)
	}); err != nil {
		return nil, err
	}
	if err := d.Provide(newWebFetchTool); err != nil {
		return nil, err
	}
	if err := d.Provide(newRegistry); err != nil {
		return nil, err
	}

	var result *Container
	err := d.Invoke(func(
		logger *slog.Logger,
		search *tools.WebSearchTool,
		fetch *tools.WebFetchTool,
		registry *tools.Registry,
	) {
		result = &Container{
			cfg:      cfg,
			logger:   logger,
			search:   search,
			fetch:    fetch,
			registry: registry,
		}
	})
	if err != nil {
		return nil, dig.RootCause(err)
	}
	return result, nil
}

func newWebSearchTool(cfg *config.Config, logger *slog.Logger, lookupEnv tools.EnvLookup) (*tools.WebSearchTool, error) {
	s := cfg.Tools.Web.Search
	return tools.NewWebSearchTool(tools.WebSearchOptions{
		Provider:     s.Provider,
		APIKey:       s.APIKey,
		BraveBaseURL: s.BaseURL,
		GrokAPIKey:   s.Grok.APIKey,
		GrokBaseURL:  s.Grok.BaseURL,
		GrokModel:    s.Grok.Model,
		MaxResults:   s.MaxResults,
		Timeout:      s.Timeout(),
		LookupEnv:    lookupEnv,
		Logger:       logger,
	})
}

func newWebFetchTool(cfg *config.Config, logger *slog.Logger) *tools.WebFetchTool {
	f := cfg.Tools.Web.Fetch
	return tools.NewWebFetchTool(tools.WebFetchOptions{
		MaxChars: f.MaxChars,
		Timeout:  time.Duration(f.TimeoutSeconds) * time.Second,
		Logger:   logger,
	})
}

func newRegistry(search *tools.WebSearchTool, fetch *tools.WebFetchTool) *tools.Registry {
	return tools.NewRegistryBuilder().
		WithTool(search).
		WithTool(fetch).
		Build()
}

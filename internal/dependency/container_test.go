package dependency

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crystaldolphin/websearch/internal/config"
	"github.com/crystaldolphin/websearch/internal/logging"
	"github.com/crystaldolphin/websearch/internal/tools"
)

func TestNew_Defaults(t *testing.T) {
	cfg := config.DefaultConfig()
	c, err := New(&cfg, WithLogger(logging.Discard()))
	require.NoError(t, err)

	assert.Same(t, &cfg, c.Config())
	assert.Equal(t, tools.ProviderBrave, c.WebSearch().Provider())
	assert.Same(t, c.WebSearch(), c.Registry().GetTool(tools.ToolWebSearch))
	assert.Same(t, c.WebFetch(), c.Registry().GetTool(tools.ToolWebFetch))
	assert.Equal(t, []string{"web_fetch", "web_search"}, c.Registry().AllTools().Names())
}

func TestNew_GrokProvider(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Tools.Web.Search.Provider = "grok"

	c, err := New(&cfg,
		WithLogger(logging.Discard()),
		WithLookupEnv(func(string) (string, bool) { return "", false }),
	)
	require.NoError(t, err)
	assert.Equal(t, tools.ProviderGrok, c.WebSearch().Provider())

	out, err := c.WebSearch().Execute(context.Background(), map[string]any{"query": "nanobot"})
	require.NoError(t, err)
	assert.Contains(t, out, "XAI_API_KEY")
}

func TestNew_UnsupportedProvider(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Tools.Web.Search.Provider = "bing"

	_, err := New(&cfg, WithLogger(logging.Discard()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported web search provider")
}

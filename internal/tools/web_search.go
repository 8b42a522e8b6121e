package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/crystaldolphin/websearch/internal/shared/stringutils"
)

const (
	defaultMaxResults    = 5
	maxSearchResults     = 10
	defaultSearchTimeout = 30 * time.Second
	maxResponseBytes     = 2 << 20
	errorBodyChars       = 200
)

// Provider names accepted by NewWebSearchTool.
const (
	ProviderBrave = "brave"
	ProviderGrok  = "grok"
)

// searchProvider is one backend strategy of the web_search tool.
type searchProvider interface {
	name() string
	// credentialEnv is the environment variable consulted when no explicit key is set.
	credentialEnv() string
	missingCredential() string
	defaultURL() string
	newRequest(ctx context.Context, endpoint, apiKey, query string, count int) (*http.Request, error)
	render(query string, count int, body []byte) (string, error)
}

// WebSearchOptions configures a WebSearchTool.
type WebSearchOptions struct {
	// Provider is "brave" or "grok". Empty selects brave.
	Provider string
	// APIKey is the Brave credential. If empty, BRAVE_API_KEY is consulted at call time.
	APIKey string
	// GrokAPIKey is the xAI credential. If empty, XAI_API_KEY is consulted at call time.
	GrokAPIKey   string
	GrokBaseURL  string
	GrokModel    string
	BraveBaseURL string
	MaxResults   int
	Timeout      time.Duration

	LookupEnv EnvLookup
	// Transport backs the per-call HTTP client. Nil gives every call its own
	// clone of http.DefaultTransport.
	Transport http.RoundTripper
	Logger    *slog.Logger
}

// WebSearchTool searches the web through Brave Search or xAI Grok.
type WebSearchTool struct {
	provider   searchProvider
	apiKey     string
	endpoint   string
	maxResults int
	timeout    time.Duration
	lookupEnv  EnvLookup
	transport  http.RoundTripper
	logger     *slog.Logger
}

// NewWebSearchTool creates a WebSearchTool for the configured provider.
// Credentials are resolved on every Execute, not here; only an unknown
// provider is rejected.
func NewWebSearchTool(opts WebSearchOptions) (*WebSearchTool, error) {
	t := &WebSearchTool{
		maxResults: opts.MaxResults,
		timeout:    opts.Timeout,
		lookupEnv:  opts.LookupEnv,
		transport:  opts.Transport,
		logger:     opts.Logger,
	}

	switch strings.ToLower(strings.TrimSpace(opts.Provider)) {
	case "", ProviderBrave:
		t.provider = braveProvider{}
		t.apiKey = opts.APIKey
		t.endpoint = opts.BraveBaseURL
	case ProviderGrok:
		t.provider = newGrokProvider(opts.GrokModel)
		t.apiKey = opts.GrokAPIKey
		t.endpoint = opts.GrokBaseURL
	default:
		return nil, fmt.Errorf("unsupported web search provider %q (want %q or %q)",
			opts.Provider, ProviderBrave, ProviderGrok)
	}

	if t.endpoint == "" {
		t.endpoint = t.provider.defaultURL()
	}
	if t.maxResults <= 0 {
		t.maxResults = defaultMaxResults
	}
	t.maxResults = clamp(t.maxResults, 1, maxSearchResults)
	if t.timeout <= 0 {
		t.timeout = defaultSearchTimeout
	}
	if t.logger == nil {
		t.logger = slog.Default()
	}
	return t, nil
}

// Provider reports the selected provider name.
func (t *WebSearchTool) Provider() string { return t.provider.name() }

func (t *WebSearchTool) Name() string { return string(ToolWebSearch) }
func (t *WebSearchTool) Description() string {
	if t.provider.name() == ProviderGrok {
		return "Search the web. Returns a synthesized answer with source URLs."
	}
	return "Search the web. Returns titles, URLs, and snippets."
}
func (t *WebSearchTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"query": {
				"type": "string",
				"description": "Search query"
			},
			"count": {
				"type": "integer",
				"description": "Results (1-10)",
				"minimum": 1,
				"maximum": 10
			}
		},
		"required": ["query"]
	}`)
}

func (t *WebSearchTool) Execute(ctx context.Context, params map[string]any) (string, error) {
	query, _ := params["query"].(string)
	query = strings.TrimSpace(query)
	if query == "" {
		return "Error: query is required", nil
	}

	n := t.maxResults
	if v, ok := intParam(params, "count"); ok {
		n = v
	}
	n = clamp(n, 1, maxSearchResults)

	apiKey, ok := resolveCredential(t.apiKey, t.provider.credentialEnv(), t.lookupEnv)
	if !ok {
		return t.provider.missingCredential(), nil
	}

	t.logger.Debug("web search", "provider", t.provider.name(), "query", query, "count", n)

	out, err := t.search(ctx, apiKey, query, n)
	if err != nil {
		t.logger.Warn("web search failed", "provider", t.provider.name(), "err", err)
		return "Error: " + err.Error(), nil
	}
	return out, nil
}

// search performs the single outbound call. Every failure comes back as an
// error for Execute to render.
func (t *WebSearchTool) search(ctx context.Context, apiKey, query string, n int) (string, error) {
	name := t.provider.name()

	req, err := t.provider.newRequest(ctx, t.endpoint, apiKey, query, n)
	if err != nil {
		return "", fmt.Errorf("build %s request: %w", name, err)
	}

	client := t.newClient()
	defer client.CloseIdleConnections()

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s search request failed: %w", name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read %s response: %w", name, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%s search returned HTTP %d: %s",
			name, resp.StatusCode, stringutils.Truncate(strings.TrimSpace(string(body)), errorBodyChars))
	}

	return t.provider.render(query, n, body)
}

// newClient builds the client scoped to one call.
func (t *WebSearchTool) newClient() *http.Client {
	transport := t.transport
	if transport == nil {
		if dt, ok := http.DefaultTransport.(*http.Transport); ok {
			transport = dt.Clone()
		}
	}
	return &http.Client{Timeout: t.timeout, Transport: transport}
}

// decodeLenient unmarshals body into v. Values of an unexpected type are left
// zero instead of failing the decode; only unreadable JSON is an error.
func decodeLenient(body []byte, v any) error {
	err := json.Unmarshal(body, v)
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return nil
	}
	return err
}

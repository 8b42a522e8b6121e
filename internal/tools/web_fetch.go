package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/go-shiori/go-readability"
)

const (
	webUserAgent        = "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_7_2) AppleWebKit/537.36"
	maxRedirects        = 5
	defaultFetchChars   = 50000
	defaultFetchTimeout = 30 * time.Second
	maxFetchBytes       = 10 << 20
)

// WebFetchOptions configures a WebFetchTool.
type WebFetchOptions struct {
	MaxChars  int
	Timeout   time.Duration
	Transport http.RoundTripper
	Logger    *slog.Logger
}

// WebFetchTool fetches a URL and extracts readable content.
type WebFetchTool struct {
	maxChars  int
	timeout   time.Duration
	transport http.RoundTripper
	logger    *slog.Logger
}

// NewWebFetchTool creates a WebFetchTool. MaxChars defaults to 50000.
func NewWebFetchTool(opts WebFetchOptions) *WebFetchTool {
	t := &WebFetchTool{
		maxChars:  opts.MaxChars,
		timeout:   opts.Timeout,
		transport: opts.Transport,
		logger:    opts.Logger,
	}
	if t.maxChars <= 0 {
		t.maxChars = defaultFetchChars
	}
	if t.timeout <= 0 {
		t.timeout = defaultFetchTimeout
	}
	if t.logger == nil {
		t.logger = slog.Default()
	}
	return t
}

func (t *WebFetchTool) Name() string { return string(ToolWebFetch) }
func (t *WebFetchTool) Description() string {
	return "Fetch URL and extract readable content (HTML → markdown/text)."
}
func (t *WebFetchTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"url": {
				"type": "string",
				"description": "URL to fetch"
			},
			"extractMode": {
				"type": "string",
				"enum": ["markdown", "text"],
				"default": "markdown"
			},
			"maxChars": {
				"type": "integer",
				"minimum": 100
			}
		},
		"required": ["url"]
	}`)
}

// fetchResult is the JSON document returned to the model.
type fetchResult struct {
	URL       string `json:"url"`
	FinalURL  string `json:"finalUrl,omitempty"`
	Status    int    `json:"status,omitempty"`
	Extractor string `json:"extractor,omitempty"`
	Truncated bool   `json:"truncated"`
	Length    int    `json:"length"`
	Text      string `json:"text,omitempty"`
	Error     string `json:"error,omitempty"`
}

func (r fetchResult) String() string {
	out, _ := json.Marshal(r)
	return string(out)
}

func (t *WebFetchTool) Execute(ctx context.Context, params map[string]any) (string, error) {
	rawURL, _ := params["url"].(string)
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "Error: url is required", nil
	}

	if err := validateURL(rawURL); err != nil {
		return fetchResult{URL: rawURL, Error: fmt.Sprintf("URL validation failed: %v", err)}.String(), nil
	}

	extractMode := "markdown"
	if m, ok := params["extractMode"].(string); ok && m != "" {
		extractMode = m
	}
	maxChars := t.maxChars
	if v, ok := intParam(params, "maxChars"); ok && v > 0 {
		maxChars = v
	}

	res, err := t.fetch(ctx, rawURL, extractMode, maxChars)
	if err != nil {
		t.logger.Warn("web fetch failed", "url", rawURL, "err", err)
		return fetchResult{URL: rawURL, Error: err.Error()}.String(), nil
	}
	return res.String(), nil
}

func (t *WebFetchTool) fetch(ctx context.Context, rawURL, extractMode string, maxChars int) (fetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fetchResult{}, err
	}
	req.Header.Set("User-Agent", webUserAgent)

	client := t.newClient()
	defer client.CloseIdleConnections()

	resp, err := client.Do(req)
	if err != nil {
		return fetchResult{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes))
	if err != nil {
		return fetchResult{}, err
	}

	text, extractor := extractText(rawURL, resp.Header.Get("Content-Type"), body, extractMode)

	runes := []rune(text)
	truncated := len(runes) > maxChars
	if truncated {
		text = string(runes[:maxChars])
	}

	return fetchResult{
		URL:       rawURL,
		FinalURL:  resp.Request.URL.String(),
		Status:    resp.StatusCode,
		Extractor: extractor,
		Truncated: truncated,
		Length:    len([]rune(text)),
		Text:      text,
	}, nil
}

func (t *WebFetchTool) newClient() *http.Client {
	transport := t.transport
	if transport == nil {
		if dt, ok := http.DefaultTransport.(*http.Transport); ok {
			transport = dt.Clone()
		}
	}
	return &http.Client{
		Timeout:   t.timeout,
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}
}

// extractText picks an extractor by content type and returns the text and the
// extractor name.
func extractText(rawURL, ctype string, body []byte, extractMode string) (string, string) {
	switch {
	case strings.Contains(ctype, "application/json"):
		var v any
		if err := json.Unmarshal(body, &v); err == nil {
			formatted, _ := json.MarshalIndent(v, "", "  ")
			return string(formatted), "json"
		}
		return string(body), "json"

	case strings.Contains(ctype, "text/html") || isHTMLPrefix(body):
		parsedURL, _ := url.Parse(rawURL)
		article, err := readability.FromReader(bytes.NewReader(body), parsedURL)
		if err != nil {
			if md, convErr := htmlToMarkdown(string(body)); convErr == nil {
				return md, "markdown"
			}
			return string(body), "raw"
		}

		var text string
		if extractMode == "markdown" {
			md, convErr := htmlToMarkdown(article.Content)
			if convErr != nil {
				md = article.TextContent
			}
			text = md
		} else {
			text = article.TextContent
		}
		text = normalizeBlankLines(text)
		if article.Title != "" {
			text = "# " + article.Title + "\n\n" + text
		}
		return text, "readability"
	}
	return string(body), "raw"
}

// validateURL checks that url is http(s) with a host.
func validateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("only http/https allowed, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing domain in URL")
	}
	return nil
}

// isHTMLPrefix reports whether the body starts with an HTML declaration.
func isHTMLPrefix(b []byte) bool {
	prefix := strings.ToLower(strings.TrimSpace(string(b[:min(256, len(b))])))
	return strings.HasPrefix(prefix, "<!doctype") || strings.HasPrefix(prefix, "<html")
}

// htmlToMarkdown converts HTML to CommonMark. Entities are decoded.
func htmlToMarkdown(htmlText string) (string, error) {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return conv.ConvertString(htmlText)
}

// normalizeBlankLines trims the text and collapses runs of blank lines.
func normalizeBlankLines(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	out := make([]string, 0, len(lines))
	blank := 0
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			blank++
			if blank > 1 {
				continue
			}
		} else {
			blank = 0
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

package tools

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleHTML = `<!DOCTYPE html>
<html><head><title>Dolphins</title></head>
<body>
<article>
<h1>Crystal dolphins</h1>
<p>Dolphins are highly intelligent marine mammals that live in oceans all over the world.
They communicate with clicks and whistles and hunt cooperatively in pods.</p>
<p>Read more on <a href="https://example.com/dolphins">the dolphin page</a> for details about
their behaviour, their diet and the ways researchers study them in the wild.</p>
</article>
</body></html>`

func serve(t *testing.T, ctype, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", ctype)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func decodeFetch(t *testing.T, out string) fetchResult {
	t.Helper()
	var res fetchResult
	require.NoError(t, json.Unmarshal([]byte(out), &res), out)
	return res
}

func TestWebFetch_HTML(t *testing.T) {
	srv := serve(t, "text/html; charset=utf-8", articleHTML)
	tool := NewWebFetchTool(WebFetchOptions{})

	out, err := tool.Execute(context.Background(), map[string]any{"url": srv.URL})
	require.NoError(t, err)

	res := decodeFetch(t, out)
	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "readability", res.Extractor)
	assert.Contains(t, res.Text, "intelligent marine mammals")
	assert.False(t, res.Truncated)
}

func TestWebFetch_JSONAndTruncation(t *testing.T) {
	srv := serve(t, "application/json", `{"b":1,"a":"long value"}`)
	tool := NewWebFetchTool(WebFetchOptions{})

	out, err := tool.Execute(context.Background(), map[string]any{"url": srv.URL, "maxChars": float64(5)})
	require.NoError(t, err)

	res := decodeFetch(t, out)
	assert.Equal(t, "json", res.Extractor)
	assert.True(t, res.Truncated)
	assert.Equal(t, 5, res.Length)
}

func TestWebFetch_InvalidURL(t *testing.T) {
	tool := NewWebFetchTool(WebFetchOptions{Transport: &countingTransport{}})

	out, err := tool.Execute(context.Background(), map[string]any{"url": "ftp://example.com/file"})
	require.NoError(t, err)
	assert.Contains(t, decodeFetch(t, out).Error, "only http/https allowed")

	out, err = tool.Execute(context.Background(), map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "Error: url is required", out)
}

func TestWebFetch_TransportFailure(t *testing.T) {
	transport := &countingTransport{}
	tool := NewWebFetchTool(WebFetchOptions{Transport: transport})

	out, err := tool.Execute(context.Background(), map[string]any{"url": "https://example.com"})
	require.NoError(t, err)
	assert.Contains(t, decodeFetch(t, out).Error, "network unreachable")
	assert.EqualValues(t, 1, transport.n.Load())
}

const entityArticleHTML = `<!DOCTYPE html>
<html><head><title>Chippies</title></head>
<body>
<article>
<p>Fish &amp; chips is a hot dish of British origin consisting of fried fish in batter, served with chips.
It is a common take-away food and an early example of culinary fusion.</p>
<p>The &quot;best&quot; shops fry in beef dripping &#8212; locals will argue about it for hours on end,
and the debate shows no sign of ending any time soon in any seaside town.</p>
</article>
</body></html>`

func TestWebFetch_DecodesEntities(t *testing.T) {
	srv := serve(t, "text/html", entityArticleHTML)
	tool := NewWebFetchTool(WebFetchOptions{})

	for _, mode := range []string{"markdown", "text"} {
		t.Run(mode, func(t *testing.T) {
			out, err := tool.Execute(context.Background(), map[string]any{"url": srv.URL, "extractMode": mode})
			require.NoError(t, err)

			res := decodeFetch(t, out)
			assert.Contains(t, res.Text, "Fish & chips")
			assert.Contains(t, res.Text, `"best" shops`)
			assert.NotContains(t, res.Text, "&amp;")
			assert.NotContains(t, res.Text, "&quot;")
			assert.NotContains(t, res.Text, "&#34;")
		})
	}
}

func TestHTMLToMarkdown(t *testing.T) {
	md, err := htmlToMarkdown(`<h2>Title</h2><p>See <a href="https://x.example">x</a> &amp; more</p><ul><li>one</li><li>two</li></ul>`)
	require.NoError(t, err)
	assert.Contains(t, md, "## Title")
	assert.Contains(t, md, "[x](https://x.example)")
	assert.Contains(t, md, "- one")
	assert.False(t, strings.Contains(md, "<"), md)
}

func TestNormalizeBlankLines(t *testing.T) {
	assert.Equal(t, "a\n\nb\nc", normalizeBlankLines("\n  a  \n\n\n\nb\t\nc\n\n"))
}

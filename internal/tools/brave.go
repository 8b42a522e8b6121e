package tools

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

const braveSearchEndpoint = "https://api.search.brave.com/res/v1/web/search"

// braveProvider queries the Brave Search web endpoint.
type braveProvider struct{}

func (braveProvider) name() string          { return ProviderBrave }
func (braveProvider) credentialEnv() string { return "BRAVE_API_KEY" }
func (braveProvider) defaultURL() string    { return braveSearchEndpoint }

func (braveProvider) missingCredential() string {
	return "Error: BRAVE_API_KEY not configured. Export BRAVE_API_KEY or set tools.web.search.apiKey in the config file."
}

func (braveProvider) newRequest(ctx context.Context, endpoint, apiKey, query string, count int) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("q", query)
	q.Set("count", strconv.Itoa(count))
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", apiKey)
	return req, nil
}

type braveResult struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

type braveResponse struct {
	Web struct {
		Results []braveResult `json:"results"`
	} `json:"web"`
}

func (braveProvider) render(query string, count int, body []byte) (string, error) {
	var data braveResponse
	if err := decodeLenient(body, &data); err != nil {
		return "", fmt.Errorf("parse brave response: %w", err)
	}
	return formatBraveResults(query, count, data.Web.Results), nil
}

// formatBraveResults renders at most count results in provider order.
func formatBraveResults(query string, count int, results []braveResult) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Results for: %s\n\n", query))
	if len(results) == 0 {
		sb.WriteString("No results found.")
		return sb.String()
	}
	for i, item := range results {
		if i >= count {
			break
		}
		title := strings.TrimSpace(item.Title)
		if title == "" {
			title = "(no title)"
		}
		sb.WriteString(fmt.Sprintf("%d. %s\n   %s", i+1, title, strings.TrimSpace(item.URL)))
		if desc := strings.TrimSpace(item.Description); desc != "" {
			sb.WriteString("\n   " + desc)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

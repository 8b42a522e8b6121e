package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const (
	grokResponsesEndpoint = "https://api.x.ai/v1/responses"
	defaultGrokModel      = "grok-4-fast"
)

// grokProvider asks an xAI model to search the web and answer through the
// Responses API.
type grokProvider struct {
	model string
}

func newGrokProvider(model string) grokProvider {
	if model = strings.TrimSpace(model); model == "" {
		model = defaultGrokModel
	}
	return grokProvider{model: model}
}

func (grokProvider) name() string          { return ProviderGrok }
func (grokProvider) credentialEnv() string { return "XAI_API_KEY" }
func (grokProvider) defaultURL() string    { return grokResponsesEndpoint }

func (grokProvider) missingCredential() string {
	return "Error: XAI_API_KEY not configured. Export XAI_API_KEY or set tools.web.search.grok.apiKey in the config file."
}

type grokInput struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type grokTool struct {
	Type string `json:"type"`
}

type grokRequest struct {
	Model string      `json:"model"`
	Input []grokInput `json:"input"`
	Tools []grokTool  `json:"tools"`
}

func (p grokProvider) newRequest(ctx context.Context, endpoint, apiKey, query string, count int) (*http.Request, error) {
	payload, err := json.Marshal(grokRequest{
		Model: p.model,
		Input: []grokInput{
			{
				Role: "system",
				Content: fmt.Sprintf("Search the web to answer the user's query. "+
					"Be concise and cite up to %d sources.", count),
			},
			{Role: "user", Content: query},
		},
		Tools: []grokTool{{Type: "web_search"}},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)
	return req, nil
}

type grokAnnotation struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type grokContent struct {
	Type        string           `json:"type"`
	Text        string           `json:"text"`
	Annotations []grokAnnotation `json:"annotations"`
}

type grokOutputItem struct {
	Type    string        `json:"type"`
	Content []grokContent `json:"content"`
}

// grokResponse accepts both the flattened shape (output_text, citations) and
// the itemized Responses API output.
type grokResponse struct {
	OutputText string           `json:"output_text"`
	Citations  []string         `json:"citations"`
	Output     []grokOutputItem `json:"output"`
}

func (r grokResponse) answer() string {
	if r.OutputText != "" {
		return r.OutputText
	}
	var parts []string
	for _, item := range r.Output {
		for _, c := range item.Content {
			if c.Type == "output_text" && c.Text != "" {
				parts = append(parts, c.Text)
			}
		}
	}
	return strings.Join(parts, "\n\n")
}

func (r grokResponse) sources() []string {
	if r.Citations != nil {
		return r.Citations
	}
	var urls []string
	seen := make(map[string]bool)
	for _, item := range r.Output {
		for _, c := range item.Content {
			for _, a := range c.Annotations {
				if a.Type != "url_citation" || a.URL == "" || seen[a.URL] {
					continue
				}
				seen[a.URL] = true
				urls = append(urls, a.URL)
			}
		}
	}
	return urls
}

func (grokProvider) render(query string, _ int, body []byte) (string, error) {
	var data grokResponse
	if err := decodeLenient(body, &data); err != nil {
		return "", fmt.Errorf("parse grok response: %w", err)
	}
	return formatGrokAnswer(query, data.answer(), data.sources()), nil
}

// formatGrokAnswer renders the answer verbatim followed by a Sources list. The
// list is left out when there are no citations.
func formatGrokAnswer(query, answer string, citations []string) string {
	if strings.TrimSpace(answer) == "" {
		answer = fmt.Sprintf("No answer for: %s", query)
	}

	var sb strings.Builder
	sb.WriteString(answer)

	first := true
	for _, c := range citations {
		if c = strings.TrimSpace(c); c == "" {
			continue
		}
		if first {
			sb.WriteString("\n\nSources:")
			first = false
		}
		sb.WriteString("\n- " + c)
	}
	return sb.String()
}

package tool

import "time"

// GrokSearchConfig configures the xAI Grok search provider.
type GrokSearchConfig struct {
	APIKey  string `json:"apiKey"`
	BaseURL string `json:"baseUrl,omitempty"`
	Model   string `json:"model"`
}

func DefaultGrokSearchConfig() GrokSearchConfig {
	return GrokSearchConfig{Model: "grok-4-fast"}
}

// WebSearchConfig configures the web_search tool.
// Empty API keys fall back to BRAVE_API_KEY / XAI_API_KEY at call time.
type WebSearchConfig struct {
	Provider       string           `json:"provider"` // "brave" or "grok"
	APIKey         string           `json:"apiKey"`
	BaseURL        string           `json:"baseUrl,omitempty"`
	MaxResults     int              `json:"maxResults"`
	TimeoutSeconds int              `json:"timeoutSeconds"`
	Grok           GrokSearchConfig `json:"grok"`
}

func DefaultWebSearchConfig() WebSearchConfig {
	return WebSearchConfig{
		Provider:       "brave",
		MaxResults:     5,
		TimeoutSeconds: 30,
		Grok:           DefaultGrokSearchConfig(),
	}
}

// Timeout returns the per-request timeout.
func (c WebSearchConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// WebFetchConfig configures the web_fetch tool.
type WebFetchConfig struct {
	MaxChars       int `json:"maxChars"`
	TimeoutSeconds int `json:"timeoutSeconds"`
}

func DefaultWebFetchConfig() WebFetchConfig {
	return WebFetchConfig{MaxChars: 50000, TimeoutSeconds: 30}
}

// WebToolsConfig groups web-related tool settings.
type WebToolsConfig struct {
	Search WebSearchConfig `json:"search"`
	Fetch  WebFetchConfig  `json:"fetch"`
}

func DefaultWebToolsConfig() WebToolsConfig {
	return WebToolsConfig{
		Search: DefaultWebSearchConfig(),
		Fetch:  DefaultWebFetchConfig(),
	}
}

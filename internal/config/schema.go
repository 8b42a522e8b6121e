// Package config defines the configuration schema for websearch.
//
// JSON keys use camelCase to stay compatible with the agent's
// ~/.crystaldolphin/config.json layout; only the sections the web tools
// read are modelled here.
package config

import (
	"github.com/crystaldolphin/websearch/internal/config/tool"
)

// LogConfig selects the log level and handler.
type LogConfig struct {
	Level  string `json:"level"`  // debug, info, warn, error
	Format string `json:"format"` // "text" (colored) or "json"
}

func defaultLogConfig() LogConfig {
	return LogConfig{Level: "info", Format: "text"}
}

// Config is the root configuration object, loaded from ~/.crystaldolphin/config.json.
type Config struct {
	Tools tool.ToolsConfig `json:"tools"`
	Log   LogConfig        `json:"log"`
}

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() Config {
	return Config{
		Tools: tool.DefaultToolConfigs(),
		Log:   defaultLogConfig(),
	}
}

// SearchAPIKey returns the configured key for the named search provider
// (e.g. "brave", "grok"). Unknown names give "".
func (c *Config) SearchAPIKey(provider string) string {
	switch provider {
	case "brave":
		return c.Tools.Web.Search.APIKey
	case "grok":
		return c.Tools.Web.Search.Grok.APIKey
	}
	return ""
}

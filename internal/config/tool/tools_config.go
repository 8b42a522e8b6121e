// Package tool holds the tool-level sections of the configuration file.
package tool

// ToolsConfig groups all tool-level settings.
type ToolsConfig struct {
	Web WebToolsConfig `json:"web"`
}

func DefaultToolConfigs() ToolsConfig {
	return ToolsConfig{Web: DefaultWebToolsConfig()}
}

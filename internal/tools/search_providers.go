package tools

import "strings"

// SearchProviderSpec is the metadata record for one web search backend.
type SearchProviderSpec struct {
	Name        string // config value, e.g. "grok"
	DisplayName string // shown in `websearch status`
	EnvKey      string // fallback credential variable
	DefaultURL  string
}

// Label returns the display name, defaulting to Title-cased Name.
func (s SearchProviderSpec) Label() string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	if s.Name == "" {
		return ""
	}
	return strings.ToUpper(s.Name[:1]) + s.Name[1:]
}

// SearchProviders lists the supported backends in display order.
func SearchProviders() []SearchProviderSpec {
	return []SearchProviderSpec{
		specOf(braveProvider{}, "Brave Search"),
		specOf(newGrokProvider(""), "xAI Grok"),
	}
}

// FindSearchProvider returns the SearchProviderSpec for name, or nil if unsupported.
func FindSearchProvider(name string) *SearchProviderSpec {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range SearchProviders() {
		if s.Name == name {
			return &s
		}
	}
	return nil
}

func specOf(p searchProvider, displayName string) SearchProviderSpec {
	return SearchProviderSpec{
		Name:        p.name(),
		DisplayName: displayName,
		EnvKey:      p.credentialEnv(),
		DefaultURL:  p.defaultURL(),
	}
}

package tools

import (
	"os"
	"strings"
)

// EnvLookup reads a variable from the process environment (or a stand-in).
type EnvLookup func(key string) (string, bool)

// resolveCredential returns the explicit value when set, otherwise the value
// of envVar. Blank values count as missing.
func resolveCredential(explicit, envVar string, lookup EnvLookup) (string, bool) {
	if v := strings.TrimSpace(explicit); v != "" {
		return v, true
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(envVar); ok {
		if v = strings.TrimSpace(v); v != "" {
			return v, true
		}
	}
	return "", false
}

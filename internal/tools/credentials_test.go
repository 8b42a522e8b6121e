package tools

import "testing"

func TestResolveCredential(t *testing.T) {
	env := envOf(map[string]string{"SET": "env-value", "BLANK": " "})

	tests := []struct {
		name     string
		explicit string
		envVar   string
		want     string
		wantOK   bool
	}{
		{"explicit wins", "explicit", "SET", "explicit", true},
		{"env fallback", "", "SET", "env-value", true},
		{"whitespace explicit falls back", "   ", "SET", "env-value", true},
		{"blank env is missing", "", "BLANK", "", false},
		{"unset env is missing", "", "UNSET", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolveCredential(tt.explicit, tt.envVar, env)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("resolveCredential(%q, %q) = (%q, %v), want (%q, %v)",
					tt.explicit, tt.envVar, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestResolveCredential_ProcessEnv(t *testing.T) {
	t.Setenv("WEBSEARCH_TEST_KEY", "from-process")
	got, ok := resolveCredential("", "WEBSEARCH_TEST_KEY", nil)
	if !ok || got != "from-process" {
		t.Errorf("got (%q, %v), want (%q, true)", got, ok, "from-process")
	}
}

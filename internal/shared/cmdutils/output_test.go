package cmdutils

import (
	"bytes"
	"testing"
)

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	PrintResult(&buf, "web_search: nanobot", "Results for: nanobot\n\n")

	want := "\n🐬 web_search: nanobot\nResults for: nanobot\n\n"
	if got := buf.String(); got != want {
		t.Errorf("PrintResult = %q, want %q", got, want)
	}
}

func TestPrintResult_Empty(t *testing.T) {
	var buf bytes.Buffer
	PrintResult(&buf, "label", "")
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

// Package cmdutils holds output helpers shared by the CLI commands.
package cmdutils

import (
	"fmt"
	"io"
	"strings"
)

const logo = "🐬"

// PrintResult writes one tool result under a header naming what produced it.
// Empty text is skipped.
func PrintResult(w io.Writer, label, text string) {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return
	}

	fmt.Fprintf(w, "\n%s %s\n%s\n\n", logo, label, text)
}

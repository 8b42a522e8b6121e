// Package schema holds the contracts an agent runtime uses to drive websearch tools.
package schema

import (
	"context"
	"encoding/json"
)

// Tool is the interface all LLM-callable tools must satisfy.
//
// Execute reports runtime failures (missing credentials, unreachable backends,
// bad responses) as result text with a nil error, so the text can be handed
// straight back to the model. A non-nil error means the caller misused the tool.
type Tool interface {
	Name() string
	Description() string
	// Parameters returns the JSON Schema (as raw JSON bytes) for this tool's parameters.
	Parameters() json.RawMessage
	Execute(ctx context.Context, params map[string]any) (string, error)
}

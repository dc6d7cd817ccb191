package llm

import (
	"context"
	"encoding/json"
	"errors"

	genai "google.golang.org/genai"
)

// ErrEmptyResponse means the model returned no usable candidate text.
var ErrEmptyResponse = errors.New("llm: empty response from model")

// Client is the single logical operation the portal needs from a
// text-generation backend: generate content from a prompt, optionally
// constrained to a JSON schema, given a configured model and credential.
type Client interface {
	Name() string
	// GenerateJSON issues one request for application/json output. A non-nil
	// schema is forwarded for response validation.
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (json.RawMessage, error)
	// GenerateText issues one plain-text completion request.
	GenerateText(ctx context.Context, prompt string) (string, error)
	Close() error
}

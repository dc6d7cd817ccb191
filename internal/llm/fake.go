package llm

import (
	"context"
	"encoding/json"

	genai "google.golang.org/genai"
)

// FakeClient returns canned payloads for offline runs and tests.
type FakeClient struct {
	JSON    json.RawMessage
	JSONErr error
	Text    string
	TextErr error

	JSONCalls int
	TextCalls int
	// LastPrompt keeps the most recent prompt for assertions.
	LastPrompt string
	// LastSchema keeps the most recent schema for assertions.
	LastSchema *genai.Schema
}

func (f *FakeClient) Name() string { return "FakeLLM" }
func (f *FakeClient) Close() error { return nil }

func (f *FakeClient) GenerateJSON(_ context.Context, prompt string, schema *genai.Schema) (json.RawMessage, error) {
	f.JSONCalls++
	f.LastPrompt = prompt
	f.LastSchema = schema
	if f.JSONErr != nil {
		return nil, f.JSONErr
	}
	return f.JSON, nil
}

func (f *FakeClient) GenerateText(_ context.Context, prompt string) (string, error) {
	f.TextCalls++
	f.LastPrompt = prompt
	if f.TextErr != nil {
		return "", f.TextErr
	}
	return f.Text, nil
}

var _ Client = (*FakeClient)(nil)

package generator

import "context"

// LLMClient abstracts the language model client so providers can be swapped
// or mocked.
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// LLMSettings carries the model name, credential and optional endpoint a
// concrete client is built from.
type LLMSettings struct {
	Model   string
	APIKey  string
	BaseURL string
}

package generator

import (
	"context"
	"strings"
)

// MockLLM is a deterministic offline implementation for tests and local dry
// runs. It never calls an external model.
type MockLLM struct{}

func (m MockLLM) Complete(_ context.Context, _ Prompt) (string, error) {
	// Shaped like a plausible model reply: short lines, an emoji, no
	// hashtags and no day marker, so the formatting stage has work to do.
	var sb strings.Builder
	sb.WriteString("Kept at it today and something finally clicked.\n")
	sb.WriteString("\n")
	sb.WriteString("Slow progress is still progress. 🚀\n")
	return sb.String(), nil
}

package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"auto_x_tweet_publisher/note"
)

// UpstreamError reports a failed or unusable language model call.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("language model call failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Agent turns raw notes into draft posts through the configured LLM.
type Agent struct {
	llm LLMClient
}

func NewAgent(llm LLMClient) (*Agent, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	return &Agent{llm: llm}, nil
}

// GenerateTweet paraphrases the note into tweet-shaped draft text.
func (a *Agent) GenerateTweet(ctx context.Context, n note.RawNote) (Draft, error) {
	return a.generate(ctx, n, BuildTweetPrompt(n))
}

// GenerateLinkedIn produces the long-form companion draft for manual posting.
func (a *Agent) GenerateLinkedIn(ctx context.Context, n note.RawNote) (Draft, error) {
	return a.generate(ctx, n, BuildLinkedInPrompt(n))
}

func (a *Agent) generate(ctx context.Context, n note.RawNote, prompt Prompt) (Draft, error) {
	raw, err := a.llm.Complete(ctx, prompt)
	if err != nil {
		return Draft{}, &UpstreamError{Err: err}
	}
	body := strings.TrimSpace(raw)
	if body == "" {
		return Draft{}, &UpstreamError{Err: errors.New("model returned an empty completion")}
	}
	return Draft{Body: body, Source: n}, nil
}

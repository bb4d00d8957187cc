package generator

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrEmptyCompletion marks a provider reply with no usable text.
var ErrEmptyCompletion = errors.New("model returned empty content")

// ErrNoProvider is the failure reason when no LLM client is configured.
var ErrNoProvider = errors.New("no llm provider configured")

// Completion is the outcome of one provider call: either Content (success)
// or Err (failure reason). Content is trimmed and non-empty on success.
type Completion struct {
	Content  string
	Err      error
	Duration time.Duration
}

// OK reports whether the call produced usable content.
func (c Completion) OK() bool {
	return c.Err == nil
}

// complete performs a single bounded provider call and folds every failure
// mode into the returned Completion.
func complete(ctx context.Context, llm LLMClient, prompt Prompt, timeout time.Duration) Completion {
	if llm == nil {
		return Completion{Err: ErrNoProvider}
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	raw, err := llm.Complete(ctx, prompt)
	elapsed := time.Since(start)
	if err != nil {
		return Completion{Err: err, Duration: elapsed}
	}
	content := strings.TrimSpace(raw)
	if content == "" {
		return Completion{Err: ErrEmptyCompletion, Duration: elapsed}
	}
	return Completion{Content: content, Duration: elapsed}
}

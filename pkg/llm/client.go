package llm

import (
	"context"
	"errors"
)

var ErrNoChoices = errors.New("llm returned no content")

type Completion struct {
	Text      string
	ModelUsed string
}

// LLMClient sends a single user prompt and returns the model's raw text reply.
type LLMClient interface {
	Complete(ctx context.Context, prompt string) (*Completion, error)
}

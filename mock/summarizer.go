package mock

import (
	"context"

	"github.com/awalczak/govnotice"
)

var _ govnotice.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of govnotice.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, title, content string) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, title, content string) (string, error) {
	return s.SummarizeFn(ctx, title, content)
}

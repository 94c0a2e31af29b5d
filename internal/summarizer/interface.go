package summarizer

import "context"

// Summarizer produces a natural-language summary for one bounded text block.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

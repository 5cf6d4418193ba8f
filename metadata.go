package govnotice

import "strings"

// Importance is the coarse content-length-derived significance tier.
type Importance string

// Importance tiers.
const (
	ImportanceLow    Importance = "low"
	ImportanceMedium Importance = "medium"
	ImportanceHigh   Importance = "high"
)

// Metadata holds values derived from a notification's content.
type Metadata struct {
	WordCount   int        `json:"wordCount"`
	ReadingTime int        `json:"readingTime"` // minutes
	Importance  Importance `json:"importance"`
}

// wordsPerMinute is the assumed reading speed for the reading time estimate.
const wordsPerMinute = 200

// Importance thresholds on word count.
const (
	highImportanceWords   = 500
	mediumImportanceWords = 200
)

// ComputeMetadata derives word count, estimated reading time, and an
// importance tier from content.
//
// The word count is a naive split on single spaces: consecutive spaces
// produce empty tokens and an empty string counts as one token, matching the
// split semantics the extraction contract was defined against. A consequence
// is that the word count is always at least 1, so the reading time is always
// at least one minute.
func ComputeMetadata(content string) Metadata {
	wordCount := len(strings.Split(content, " "))

	readingTime := (wordCount + wordsPerMinute - 1) / wordsPerMinute

	importance := ImportanceLow
	switch {
	case wordCount > highImportanceWords:
		importance = ImportanceHigh
	case wordCount > mediumImportanceWords:
		importance = ImportanceMedium
	}

	return Metadata{
		WordCount:   wordCount,
		ReadingTime: readingTime,
		Importance:  importance,
	}
}

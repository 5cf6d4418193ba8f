package govnotice

import "time"

// PageMeta holds page-level metadata recovered from rendered HTML.
type PageMeta struct {
	// Title is the page title from metadata (title tag, OpenGraph, JSON+LD).
	Title string

	// PublishedAt is the publication date the page declares, if any.
	PublishedAt *time.Time
}

// PageMetaExtractor recovers page-level metadata from rendered HTML.
// A page that declares a publication date gives every notice extracted from
// it a more precise PublishedDate than the scrape timestamp.
type PageMetaExtractor interface {
	ExtractMeta(html string) (*PageMeta, error)
}

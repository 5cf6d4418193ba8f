package govnotice

import (
	"context"
	"time"
)

// DefaultScrapeURL is the placeholder target used when the caller does not
// supply one.
const DefaultScrapeURL = "https://webscraper.io/test-sites/e-commerce/allinone/computers"

// ScrapeResult is the terminal output of one scrape run.
type ScrapeResult struct {
	// Notifications are the newly created records, in page traversal order.
	Notifications []*Notification `json:"notifications"`

	// Candidates is the number of raw items the extractor produced.
	Candidates int `json:"candidates"`

	// Created is the number of notifications persisted this run.
	Created int `json:"created"`

	// Skipped is the number of candidates dropped as duplicates or after a
	// per-item failure. Candidates == Created + Skipped.
	Skipped int `json:"skipped"`
}

// Scraper runs the extraction-and-enrichment pipeline against a single URL.
//
// A run either fails fatally with no records (render or parse failure) or
// succeeds with a result whose Created count may legitimately be zero.
// Per-item failures never abort a run.
type Scraper interface {
	Scrape(ctx context.Context, url string) (*ScrapeResult, error)
}

// ScrapeMetrics records scrape observability counters. Implementations must
// be safe for concurrent use.
type ScrapeMetrics interface {
	RecordScrape(d time.Duration)
	RecordCandidates(n int)
	RecordCreated(n int)
	RecordItemSkipped(reason string)
	RecordSummaryFallback()
}

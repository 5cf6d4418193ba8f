package mock

import (
	"context"

	"github.com/awalczak/govnotice"
)

var _ govnotice.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of govnotice.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, url string) (*govnotice.ScrapeResult, error)
}

func (s *Scraper) Scrape(ctx context.Context, url string) (*govnotice.ScrapeResult, error) {
	return s.ScrapeFn(ctx, url)
}

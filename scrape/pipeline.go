// Package scrape orchestrates the extraction-and-enrichment pipeline: render
// a page, harvest candidates, then deduplicate, classify, enrich, summarize,
// and persist each one.
package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/awalczak/govnotice"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Ensure Pipeline implements govnotice.Scraper at compile time.
var _ govnotice.Scraper = (*Pipeline)(nil)

// identity is the in-run deduplication key.
type identity struct {
	title     string
	sourceURL string
}

// Pipeline runs one scrape at a time: URL in, ordered new notifications out.
//
// Render and extract failures are fatal to the run. Every per-item failure
// (store lookup, source URL parse, persist) is absorbed: the item is skipped,
// logged, and the run continues. Summarization failures are not even a skip;
// the item carries a deterministic fallback summary instead.
type Pipeline struct {
	Renderer      govnotice.Renderer
	Extractor     govnotice.Extractor
	Notifications govnotice.NotificationService

	// Summarizer may be nil, in which case every notification gets the
	// deterministic fallback summary.
	Summarizer govnotice.Summarizer

	// PageMeta, when set, supplies a page-level publication date that
	// overrides the scrape timestamp as PublishedDate.
	PageMeta govnotice.PageMetaExtractor

	// Limiter, when set, paces calls to the external summarization service.
	Limiter *rate.Limiter

	// Metrics, when set, receives scrape observability counters.
	Metrics govnotice.ScrapeMetrics

	// Logger receives per-item skip reasons. Nil discards them.
	Logger *slog.Logger

	// Concurrency bounds the per-item worker pool. Values below 1 mean
	// strictly sequential processing, which also makes the order of store
	// writes match page order.
	Concurrency int

	// Now is the clock; nil means time.Now. Exists for tests.
	Now func() time.Time
}

// Scrape renders the URL, extracts candidates, and processes each one.
// An empty URL scrapes govnotice.DefaultScrapeURL.
func (p *Pipeline) Scrape(ctx context.Context, targetURL string) (*govnotice.ScrapeResult, error) {
	if targetURL == "" {
		targetURL = govnotice.DefaultScrapeURL
	}
	logger := p.logger()
	begin := p.now()

	html, err := p.Renderer.Render(ctx, targetURL)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", targetURL, err)
	}

	items, err := p.Extractor.Extract(targetURL, html)
	if err != nil {
		return nil, fmt.Errorf("extracting candidates from %s: %w", targetURL, err)
	}

	scrapedAt := p.now().UTC()
	publishedDate := p.publishedDate(html, scrapedAt)

	// Results indexed by candidate position so output order matches page
	// traversal order regardless of worker completion order.
	created := make([]*govnotice.Notification, len(items))

	var mu sync.Mutex
	seen := make(map[identity]bool, len(items))

	var g errgroup.Group
	g.SetLimit(p.concurrency())

	for i, item := range items {
		g.Go(func() error {
			// The in-run identity set is claimed before the store lookup so
			// two overlapping candidates can never both pass the duplicate
			// check: at most one insert per identity key per run.
			key := identity{title: item.Title, sourceURL: item.SourceURL}
			mu.Lock()
			claimed := seen[key]
			seen[key] = true
			mu.Unlock()
			if claimed {
				p.skip(logger, item, "duplicate in run", nil)
				return nil
			}

			n, reason, err := p.processItem(ctx, item, scrapedAt, publishedDate)
			if n == nil {
				p.skip(logger, item, reason, err)
				return nil
			}
			created[i] = n
			return nil
		})
	}
	_ = g.Wait() // workers absorb their own failures

	result := &govnotice.ScrapeResult{Candidates: len(items)}
	for _, n := range created {
		if n != nil {
			result.Notifications = append(result.Notifications, n)
		}
	}
	result.Created = len(result.Notifications)
	result.Skipped = result.Candidates - result.Created

	if p.Metrics != nil {
		p.Metrics.RecordScrape(p.now().Sub(begin))
		p.Metrics.RecordCandidates(result.Candidates)
		p.Metrics.RecordCreated(result.Created)
	}

	logger.Info("scrape complete",
		"url", targetURL,
		"candidates", result.Candidates,
		"created", result.Created,
		"skipped", result.Skipped,
	)
	return result, nil
}

// processItem takes one candidate through dedup, classification, metadata,
// summarization, and persistence. A nil notification means the item was
// skipped for the returned reason.
func (p *Pipeline) processItem(ctx context.Context, item govnotice.RawItem, scrapedAt, publishedDate time.Time) (*govnotice.Notification, string, error) {
	exists, err := p.Notifications.NotificationExists(ctx, item.Title, item.SourceURL)
	if err != nil {
		return nil, "duplicate lookup failed", err
	}
	if exists {
		return nil, "already stored", nil
	}

	sourceURL, err := url.Parse(item.SourceURL)
	if err != nil {
		return nil, "invalid source URL", err
	}

	n := &govnotice.Notification{
		Title:         item.Title,
		Content:       item.Content,
		Summary:       p.summarize(ctx, item),
		SourceURL:     item.SourceURL,
		SourceDomain:  sourceURL.Hostname(),
		Category:      govnotice.Categorize(item.Title, item.Content),
		Metadata:      govnotice.ComputeMetadata(item.Content),
		IsActive:      true,
		PublishedDate: publishedDate,
		ScrapedAt:     scrapedAt,
	}

	if err := p.Notifications.CreateNotification(ctx, n); err != nil {
		return nil, "persist failed", err
	}
	return n, "", nil
}

// summarize calls the external summarizer and degrades to the deterministic
// fallback on any failure, including rate-limit waits cut short by the
// context deadline. Summarization never fails outward.
func (p *Pipeline) summarize(ctx context.Context, item govnotice.RawItem) string {
	if p.Summarizer == nil {
		return govnotice.FallbackSummary(item.Content)
	}

	if p.Limiter != nil {
		if err := p.Limiter.Wait(ctx); err != nil {
			p.fallback(item, err)
			return govnotice.FallbackSummary(item.Content)
		}
	}

	summary, err := p.Summarizer.Summarize(ctx, item.Title, item.Content)
	if err != nil {
		p.fallback(item, err)
		return govnotice.FallbackSummary(item.Content)
	}
	return summary
}

// publishedDate returns the page-declared publication date when the page
// metadata extractor finds one, and the scrape timestamp otherwise.
func (p *Pipeline) publishedDate(html string, scrapedAt time.Time) time.Time {
	if p.PageMeta == nil {
		return scrapedAt
	}
	meta, err := p.PageMeta.ExtractMeta(html)
	if err != nil || meta == nil || meta.PublishedAt == nil {
		return scrapedAt
	}
	return *meta.PublishedAt
}

func (p *Pipeline) fallback(item govnotice.RawItem, err error) {
	if p.Metrics != nil {
		p.Metrics.RecordSummaryFallback()
	}
	p.logger().Warn("summarization failed, using fallback",
		"title", govnotice.Truncate(item.Title, 80),
		"err", err,
	)
}

func (p *Pipeline) skip(logger *slog.Logger, item govnotice.RawItem, reason string, err error) {
	if p.Metrics != nil {
		p.Metrics.RecordItemSkipped(reason)
	}
	logger.Warn("candidate skipped",
		"title", govnotice.Truncate(item.Title, 80),
		"reason", reason,
		"err", err,
	)
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (p *Pipeline) concurrency() int {
	if p.Concurrency < 1 {
		return 1
	}
	return p.Concurrency
}

func (p *Pipeline) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

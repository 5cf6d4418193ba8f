// Package goquery harvests candidate notices from rendered HTML using CSS
// selectors.
package goquery

import (
	"fmt"
	"net/url"
	"strings"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/awalczak/govnotice"
)

// Ensure Extractor implements govnotice.Extractor at compile time.
var _ govnotice.Extractor = (*Extractor)(nil)

// DefaultMaxItems caps how many candidates the structural strategy emits per
// selector. The all-elements strategy is uncapped unless configured.
const DefaultMaxItems = 10

// structuralSelectors are tried in order; the first selector that matches
// anything wins and the remaining selectors are skipped. The list covers
// common government site markup for notice and news listings.
var structuralSelectors = []string{
	"article",
	".news-item",
	".notification",
	".update-item",
	".content-item",
	`li a[href*="notification"]`,
	`li a[href*="news"]`,
	".list-group-item",
}

// Sub-selectors used by the structural strategy within each container.
const (
	titleSelector   = "h1, h2, h3, h4, h5, h6, .title, .heading"
	contentSelector = "p, .content, .description"
)

// Extractor harvests candidate notices from rendered HTML using the
// configured strategy.
type Extractor struct {
	strategy govnotice.ExtractionStrategy
	maxItems int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMaxItems caps the number of candidates emitted. Zero means uncapped
// for the all-elements strategy; the structural strategy falls back to
// DefaultMaxItems when unset.
func WithMaxItems(n int) Option {
	return func(e *Extractor) {
		e.maxItems = n
	}
}

// NewExtractor creates an Extractor for the given strategy.
func NewExtractor(strategy govnotice.ExtractionStrategy, opts ...Option) (*Extractor, error) {
	if !govnotice.ValidStrategy(strategy) {
		return nil, govnotice.Errorf(govnotice.EINVALID, "unknown extraction strategy %q", strategy)
	}

	e := &Extractor{strategy: strategy}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Extract walks the document and returns candidates in traversal order.
// An empty result is a valid outcome, not an error.
func (e *Extractor) Extract(pageURL, html string) ([]govnotice.RawItem, error) {
	doc, err := gq.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	if e.strategy == govnotice.StrategyStructural {
		return e.extractStructural(doc, pageURL), nil
	}
	return e.extractAllElements(doc, pageURL), nil
}

// extractAllElements emits one candidate per element whose trimmed text
// exceeds the minimum length. Ancestors and descendants share text, so the
// output overlaps heavily; deduplication happens downstream.
func (e *Extractor) extractAllElements(doc *gq.Document, pageURL string) []govnotice.RawItem {
	var items []govnotice.RawItem
	doc.Find("*").EachWithBreak(func(_ int, sel *gq.Selection) bool {
		if e.maxItems > 0 && len(items) >= e.maxItems {
			return false
		}

		text := strings.TrimSpace(sel.Text())
		if len(text) <= govnotice.MinItemTextLength {
			return true
		}

		items = append(items, govnotice.RawItem{
			Title:     govnotice.Truncate(text, govnotice.MaxTitleLength),
			Content:   govnotice.Truncate(text, govnotice.MaxContentLength),
			SourceURL: pageURL,
		})
		return true
	})
	return items
}

// extractStructural walks the selector list in priority order and emits at
// most one candidate per matched container, with title, link, and body
// picked out of the container when present.
func (e *Extractor) extractStructural(doc *gq.Document, pageURL string) []govnotice.RawItem {
	maxItems := e.maxItems
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		base = nil
	}

	for _, selector := range structuralSelectors {
		matches := doc.Find(selector)
		if matches.Length() == 0 {
			continue
		}

		var items []govnotice.RawItem
		matches.EachWithBreak(func(_ int, sel *gq.Selection) bool {
			if len(items) >= maxItems {
				return false
			}

			title := firstText(sel, titleSelector)
			if title == "" {
				title = strings.TrimSpace(sel.Text())
			}
			if len(title) <= govnotice.MinItemTextLength {
				return true
			}

			content := firstText(sel, contentSelector)
			if content == "" {
				content = title
			}

			items = append(items, govnotice.RawItem{
				Title:     govnotice.Truncate(title, govnotice.MaxTitleLength),
				Content:   govnotice.Truncate(content, govnotice.MaxContentLength),
				SourceURL: itemURL(sel, base, pageURL),
			})
			return true
		})
		return items
	}
	return nil
}

// firstText returns the trimmed text of the first element matching the
// sub-selector, or "" when nothing matches.
func firstText(sel *gq.Selection, subSelector string) string {
	found := sel.Find(subSelector).First()
	if found.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(found.Text())
}

// itemURL resolves the container's first link against the page URL, falling
// back to the page URL itself when the container carries no usable link.
func itemURL(sel *gq.Selection, base *url.URL, pageURL string) string {
	link := sel.Find("a").First()
	if link.Length() == 0 {
		if sel.Is("a") {
			link = sel
		} else {
			return pageURL
		}
	}

	href, ok := link.Attr("href")
	if !ok || href == "" {
		return pageURL
	}

	if base == nil {
		return href
	}
	resolved, err := base.Parse(href)
	if err != nil {
		return pageURL
	}
	return resolved.String()
}

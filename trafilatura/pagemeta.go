// Package trafilatura recovers page-level metadata from rendered HTML.
package trafilatura

import (
	"errors"
	"strings"

	"github.com/awalczak/govnotice"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements govnotice.PageMetaExtractor at compile time.
var _ govnotice.PageMetaExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to read page metadata (title, publication
// date) out of rendered HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractMeta parses the page and returns whatever metadata it declares.
// A page without a publication date is normal; PublishedAt stays nil.
func (e *Extractor) ExtractMeta(html string) (*govnotice.PageMeta, error) {
	if html == "" {
		return nil, errors.New("empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(html), opts)
	if err != nil {
		return nil, err
	}

	meta := &govnotice.PageMeta{Title: result.Metadata.Title}
	if !result.Metadata.Date.IsZero() {
		date := result.Metadata.Date
		meta.PublishedAt = &date
	}
	return meta, nil
}

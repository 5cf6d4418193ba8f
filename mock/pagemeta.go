package mock

import "github.com/awalczak/govnotice"

var _ govnotice.PageMetaExtractor = (*PageMetaExtractor)(nil)

// PageMetaExtractor is a mock implementation of govnotice.PageMetaExtractor.
type PageMetaExtractor struct {
	ExtractMetaFn func(html string) (*govnotice.PageMeta, error)
}

func (e *PageMetaExtractor) ExtractMeta(html string) (*govnotice.PageMeta, error) {
	return e.ExtractMetaFn(html)
}

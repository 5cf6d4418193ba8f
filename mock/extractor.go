package mock

import "github.com/awalczak/govnotice"

var _ govnotice.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of govnotice.Extractor.
type Extractor struct {
	ExtractFn func(pageURL, html string) ([]govnotice.RawItem, error)
}

func (e *Extractor) Extract(pageURL, html string) ([]govnotice.RawItem, error) {
	return e.ExtractFn(pageURL, html)
}

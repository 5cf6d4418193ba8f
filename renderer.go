package govnotice

import "context"

// Renderer retrieves fully rendered HTML from URLs.
//
// Implementations use browser automation so JavaScript-driven notice lists
// are visible to the extractor. Each Render call runs in a fresh, isolated
// browser context; no session state survives across calls.
type Renderer interface {
	// Render navigates to the URL, waits for network activity to go quiet,
	// and returns the rendered HTML. The context bounds navigation; an
	// exceeded deadline surfaces as an ETIMEOUT error.
	Render(ctx context.Context, url string) (html string, err error)

	// Close releases browser resources.
	// Must be called when the Renderer is no longer needed.
	Close() error
}

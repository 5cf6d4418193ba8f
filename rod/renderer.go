// Package rod renders pages in a headless Chrome browser using go-rod.
package rod

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/awalczak/govnotice"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Renderer implements govnotice.Renderer at compile time.
var _ govnotice.Renderer = (*Renderer)(nil)

// Default timing for page rendering.
const (
	// DefaultNavigationTimeout bounds one whole Render call.
	DefaultNavigationTimeout = 30 * time.Second

	// DefaultQuiescenceWindow is how long the network must stay idle before
	// the page counts as fully loaded.
	DefaultQuiescenceWindow = 2 * time.Second
)

// Renderer retrieves rendered HTML from URLs using Chrome browser automation.
// Every Render call runs in a fresh incognito browser context which is
// disposed before the call returns, so no cookies, storage, or cache leak
// between scrape runs.
//
// Renderer is safe for concurrent use by multiple goroutines.
type Renderer struct {
	manager           *BrowserManager
	navigationTimeout time.Duration
	quiescenceWindow  time.Duration
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithNavigationTimeout sets the overall per-render deadline.
func WithNavigationTimeout(d time.Duration) Option {
	return func(r *Renderer) {
		r.navigationTimeout = d
	}
}

// WithQuiescenceWindow sets the network-idle window used to decide the page
// has finished loading.
func WithQuiescenceWindow(d time.Duration) Option {
	return func(r *Renderer) {
		r.quiescenceWindow = d
	}
}

// WithMaxPages sets the number of rendered pages after which the underlying
// browser process is recycled.
func WithMaxPages(n int64) Option {
	return func(r *Renderer) {
		r.manager.maxPages = n
	}
}

// NewRenderer creates a Renderer backed by a freshly launched headless
// Chrome. Close must be called when the Renderer is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewRenderer(opts ...Option) (*Renderer, error) {
	manager, err := NewBrowserManager()
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		manager:           manager,
		navigationTimeout: DefaultNavigationTimeout,
		quiescenceWindow:  DefaultQuiescenceWindow,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Render navigates to the URL in a fresh incognito context, waits for
// network quiescence, and returns the rendered HTML.
func (r *Renderer) Render(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", renderError(url, err)
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.navigationTimeout)
		defer cancel()
	}

	browser := r.manager.Browser()

	// Fresh incognito context per call; disposed on every exit path.
	incognito, err := browser.Incognito()
	if err != nil {
		return "", fmt.Errorf("creating browser context: %w", err)
	}
	defer func() {
		_ = proto.TargetDisposeBrowserContext{
			BrowserContextID: incognito.BrowserContextID,
		}.Call(browser)
	}()

	page, err := incognito.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", fmt.Errorf("creating page: %w", err)
	}
	defer page.Close()

	// Bind the page to the caller's deadline for all subsequent operations.
	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", renderError(url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", renderError(url, err)
	}

	// Wait until no request has been in flight for the quiescence window.
	wait := page.WaitRequestIdle(r.quiescenceWindow, nil, nil, nil)
	wait()
	if err := ctx.Err(); err != nil {
		return "", renderError(url, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", renderError(url, err)
	}

	r.manager.IncrementPageCount()
	return html, nil
}

// Close releases browser resources.
func (r *Renderer) Close() error {
	return r.manager.Close()
}

// renderError maps browser failures onto the application error taxonomy so
// the pipeline can distinguish timeouts from unreachable targets.
func renderError(url string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return govnotice.Errorf(govnotice.ETIMEOUT, "timed out rendering %s", url)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return govnotice.Errorf(govnotice.EUNAVAILABLE, "rendering %s: %v", url, err)
}

// Package mock provides function-field mock implementations of the govnotice
// interfaces for testing.
package mock

import (
	"context"

	"github.com/awalczak/govnotice"
)

var _ govnotice.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of govnotice.Renderer.
type Renderer struct {
	RenderFn func(ctx context.Context, url string) (string, error)
	CloseFn  func() error
}

func (r *Renderer) Render(ctx context.Context, url string) (string, error) {
	return r.RenderFn(ctx, url)
}

func (r *Renderer) Close() error {
	return r.CloseFn()
}

// Package hooks binds the synchronized stores to a view. Each Use* value is
// a thin façade: it reads the store's state, forwards the store's actions
// and guards the initial list fetch so it runs once per store.
package hooks

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Loader is anything that can bring its resource into a loaded state.
type Loader interface {
	EnsureLoaded(ctx context.Context) error
}

// Preload ensures every loader concurrently and returns the first error.
// A failing loader does not cancel the others; each store keeps its own
// error state.
func Preload(ctx context.Context, loaders ...Loader) error {
	var g errgroup.Group
	for _, loader := range loaders {
		if loader == nil {
			continue
		}
		loader := loader
		g.Go(func() error {
			return loader.EnsureLoaded(ctx)
		})
	}
	return g.Wait()
}

package catalog

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Load fetches the catalog and the display-name table concurrently. It
// succeeds only when both documents arrive and decode; otherwise it returns
// the first error and an empty Catalog.
func Load(ctx context.Context, f Fetcher) (Catalog, error) {
	if f == nil {
		return Catalog{}, fmt.Errorf("fetcher is nil")
	}

	g, gctx := errgroup.WithContext(ctx)

	var hacks []Hack
	var names Names
	g.Go(func() error {
		got, err := f.FetchHacks(gctx)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		hacks = got
		return nil
	})
	g.Go(func() error {
		got, err := f.FetchNames(gctx)
		if err != nil {
			return fmt.Errorf("load display names: %w", err)
		}
		names = got
		return nil
	})

	if err := g.Wait(); err != nil {
		return Catalog{}, err
	}
	if hacks == nil {
		hacks = []Hack{}
	}
	return Catalog{Hacks: hacks, Names: names}, nil
}

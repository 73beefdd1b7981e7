package worker

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Warm runs fn for every season concurrently, at most limit at a time, and
// returns the first error. Used at startup to pre-render default views.
func Warm(ctx context.Context, seasons []string, limit int, fn func(ctx context.Context, season string) error) error {
	if limit <= 0 {
		limit = 4
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for _, season := range seasons {
		g.Go(func() error {
			if err := fn(ctx, season); err != nil {
				return fmt.Errorf("warm %s: %w", season, err)
			}
			return nil
		})
	}

	return g.Wait()
}

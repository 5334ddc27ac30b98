package session

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"ferro/internal/logging"
	"ferro/internal/ports"
)

// SeedPreviousWeights looks up each exercise's most recent completed
// session and records its first set's weight as the placeholder shown in
// empty weight fields. Lookups run concurrently; failures are logged and
// leave the slot without a placeholder.
func SeedPreviousWeights(ctx context.Context, store *Store, history ports.HistoryStore) {
	specs := store.Specs()

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)

	for slot, spec := range specs {
		g.Go(func() error {
			sets, err := history.LastCompletedSets(ctx, spec.Name)
			if err != nil {
				logging.Logger.Debug("No previous session for placeholder",
					"exercise", spec.Name,
					"error", err)
				return nil
			}
			if len(sets) == 0 || sets[0].Weight == "" {
				return nil
			}
			mu.Lock()
			store.SetPreviousWeight(slot, sets[0].Weight)
			mu.Unlock()
			return nil
		})
	}

	// Lookups never return errors; Wait just joins them
	_ = g.Wait()
}

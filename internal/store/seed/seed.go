package seed

import (
	"context"
	"fmt"

	"github.com/davidbz/pricewise/internal/domain"
	"github.com/davidbz/pricewise/internal/observability"
)

// Apply inserts every catalog entry whose model name is not already stored.
// Existing rows are left untouched so operator edits survive restarts.
func Apply(ctx context.Context, store domain.PriceStore) (int, error) {
	existing, err := store.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list existing prices: %w", err)
	}

	known := make(map[string]struct{}, len(existing))
	for _, record := range existing {
		known[record.ModelName] = struct{}{}
	}

	inserted := 0
	for _, record := range Catalog() {
		if _, ok := known[record.ModelName]; ok {
			continue
		}

		if _, err := store.Upsert(ctx, record); err != nil {
			return inserted, fmt.Errorf("failed to seed model %s: %w", record.ModelName, err)
		}
		inserted++
	}

	observability.FromContext(ctx).Info("model price catalog applied",
		observability.Int("inserted", inserted),
		observability.Int("existing", len(existing)),
	)

	return inserted, nil
}

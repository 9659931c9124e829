package seed_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/pricewise/internal/domain"
	"github.com/davidbz/pricewise/internal/store/memory"
	"github.com/davidbz/pricewise/internal/store/seed"
)

func TestCatalog(t *testing.T) {
	records := seed.Catalog()
	require.NotEmpty(t, records)

	seen := make(map[string]bool, len(records))
	for _, record := range records {
		require.NoError(t, domain.ValidateModelPrice(record), record.ModelName)
		require.False(t, seen[record.ModelName], "duplicate model %s", record.ModelName)
		seen[record.ModelName] = true
	}
}

func TestApply(t *testing.T) {
	t.Run("should insert full catalog into empty store", func(t *testing.T) {
		store := memory.NewStore()
		ctx := context.Background()

		inserted, err := seed.Apply(ctx, store)
		require.NoError(t, err)
		require.Equal(t, len(seed.Catalog()), inserted)

		records, err := store.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, records, inserted)
	})

	t.Run("should keep existing rows and be idempotent", func(t *testing.T) {
		store := memory.NewStore()
		ctx := context.Background()

		custom := domain.ModelPrice{
			ModelName:   "gpt-4o",
			InputPrice:  decimal.NewFromInt(99),
			OutputPrice: decimal.NewFromInt(99),
			Provider:    "openai",
		}
		_, err := store.Upsert(ctx, custom)
		require.NoError(t, err)

		inserted, err := seed.Apply(ctx, store)
		require.NoError(t, err)
		require.Equal(t, len(seed.Catalog())-1, inserted)

		inserted, err = seed.Apply(ctx, store)
		require.NoError(t, err)
		require.Zero(t, inserted)

		records, err := store.ListAll(ctx)
		require.NoError(t, err)
		require.Equal(t, "gpt-4o", records[0].ModelName)
		require.True(t, records[0].InputPrice.Equal(decimal.NewFromInt(99)))
	})

	t.Run("should return error when store is closed", func(t *testing.T) {
		store := memory.NewStore()
		require.NoError(t, store.Close())

		_, err := seed.Apply(context.Background(), store)
		require.ErrorIs(t, err, domain.ErrDataAccess)
	})
}

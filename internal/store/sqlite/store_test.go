package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/pricewise/internal/domain"
	"github.com/davidbz/pricewise/internal/store/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	store, err := sqlite.NewStore(filepath.Join(t.TempDir(), "prices.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestNewStore_RequiresPath(t *testing.T) {
	_, err := sqlite.NewStore("   ")
	require.Error(t, err)
	require.Contains(t, err.Error(), "path is required")
}

func TestStore_Upsert(t *testing.T) {
	t.Run("should keep decimal precision", func(t *testing.T) {
		store := newTestStore(t)
		ctx := context.Background()

		saved, err := store.Upsert(ctx, domain.ModelPrice{
			ModelName:   "gemini-1.5-flash",
			InputPrice:  decimal.RequireFromString("0.075"),
			OutputPrice: decimal.RequireFromString("0.3"),
			Provider:    "google",
		})
		require.NoError(t, err)
		require.True(t, saved.InputPrice.Equal(decimal.RequireFromString("0.075")))

		records, err := store.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, records, 1)
		require.Equal(t, "0.075", records[0].InputPrice.String())
		require.Equal(t, "google", records[0].Provider)
	})

	t.Run("should replace existing row and keep order", func(t *testing.T) {
		store := newTestStore(t)
		ctx := context.Background()

		for _, name := range []string{"a", "b", "c"} {
			_, err := store.Upsert(ctx, domain.ModelPrice{
				ModelName: name, InputPrice: decimal.NewFromInt(1), OutputPrice: decimal.NewFromInt(1), Provider: "p",
			})
			require.NoError(t, err)
		}

		_, err := store.Upsert(ctx, domain.ModelPrice{
			ModelName: "b", InputPrice: decimal.NewFromInt(7), OutputPrice: decimal.NewFromInt(8), Provider: "q",
		})
		require.NoError(t, err)

		records, err := store.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, records, 3)
		require.Equal(t, []string{"a", "b", "c"}, []string{records[0].ModelName, records[1].ModelName, records[2].ModelName})
		require.True(t, records[1].InputPrice.Equal(decimal.NewFromInt(7)))
		require.Equal(t, "q", records[1].Provider)
	})

	t.Run("should reject empty model name", func(t *testing.T) {
		store := newTestStore(t)

		_, err := store.Upsert(context.Background(), domain.ModelPrice{Provider: "p"})
		require.ErrorIs(t, err, domain.ErrInvalidRecord)
	})
}

func TestStore_ListAll_Empty(t *testing.T) {
	store := newTestStore(t)

	records, err := store.ListAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.sqlite")
	ctx := context.Background()

	store, err := sqlite.NewStore(path)
	require.NoError(t, err)
	_, err = store.Upsert(ctx, domain.ModelPrice{
		ModelName: "gpt-4o", InputPrice: decimal.RequireFromString("2.5"), OutputPrice: decimal.NewFromInt(10), Provider: "openai",
	})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := sqlite.NewStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	records, err := reopened.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "gpt-4o", records[0].ModelName)
}

func TestStore_SubscribeInserts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	sub, err := store.SubscribeInserts(ctx)
	require.NoError(t, err)
	defer sub.Unsubscribe()

	record := domain.ModelPrice{
		ModelName: "gpt-4o", InputPrice: decimal.RequireFromString("2.5"), OutputPrice: decimal.NewFromInt(10), Provider: "openai",
	}
	_, err = store.Upsert(ctx, record)
	require.NoError(t, err)

	record.InputPrice = decimal.NewFromInt(3)
	_, err = store.Upsert(ctx, record)
	require.NoError(t, err)

	select {
	case event := <-sub.Events():
		require.Equal(t, domain.EventInsert, event.Kind)
		require.Equal(t, "gpt-4o", event.Record.ModelName)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for insert event")
	}

	select {
	case event := <-sub.Events():
		t.Fatalf("unexpected event for update: %+v", event)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestStore_SubscribeInserts_AfterClose(t *testing.T) {
	store, err := sqlite.NewStore(filepath.Join(t.TempDir(), "prices.sqlite"))
	require.NoError(t, err)
	require.NoError(t, store.Close())
	require.NoError(t, store.Close())

	sub, err := store.SubscribeInserts(context.Background())
	require.ErrorIs(t, err, domain.ErrDataAccess)
	require.Nil(t, sub)
}

func TestDriver_Open(t *testing.T) {
	driver := sqlite.NewDriver(&sqlite.Config{Path: filepath.Join(t.TempDir(), "nested", "prices.sqlite")})
	require.Equal(t, sqlite.DriverName, driver.Name())

	store, err := driver.Open(context.Background())
	require.NoError(t, err)
	require.NoError(t, store.Close())
}

package postgres

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/pricewise/internal/domain"
)

// newIntegrationStore connects to the database named by POSTGRES_TEST_DSN and installs the schema.
// Rows created under the returned name prefix are deleted on cleanup.
func newIntegrationStore(t *testing.T) (*Store, string) {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("POSTGRES_TEST_DSN"))
	if dsn == "" {
		t.Skip("POSTGRES_TEST_DSN not set")
	}

	store, err := NewStore(context.Background(), &Config{
		URL:          dsn,
		Migrate:      true,
		Channel:      "ai_model_prices_insert",
		MinReconnect: time.Second,
		MaxReconnect: 5 * time.Second,
		MaxOpenConns: 4,
	})
	require.NoError(t, err)

	prefix := "it-" + strings.ToLower(ulid.Make().String()) + "-"
	t.Cleanup(func() {
		_ = store.db.Exec(`DELETE FROM ai_model_prices WHERE model_name LIKE ?`, prefix+"%").Error
		_ = store.Close()
	})

	return store, prefix
}

func TestStore_Integration_UpsertAndListAll(t *testing.T) {
	store, prefix := newIntegrationStore(t)
	ctx := context.Background()

	record := domain.ModelPrice{
		ModelName:   prefix + "gpt-4o",
		InputPrice:  decimal.RequireFromString("2.5"),
		OutputPrice: decimal.RequireFromString("10"),
		Provider:    "openai",
	}

	saved, err := store.Upsert(ctx, record)
	require.NoError(t, err)
	require.Equal(t, record.ModelName, saved.ModelName)
	require.True(t, saved.InputPrice.Equal(record.InputPrice))

	record.InputPrice = decimal.RequireFromString("0.075")
	record.Provider = "openai-eu"
	_, err = store.Upsert(ctx, record)
	require.NoError(t, err)

	records, err := store.ListAll(ctx)
	require.NoError(t, err)

	var matches []domain.ModelPrice
	for _, r := range records {
		if r.ModelName == record.ModelName {
			matches = append(matches, r)
		}
	}
	require.Len(t, matches, 1)
	require.Equal(t, "0.075", matches[0].InputPrice.String())
	require.Equal(t, "openai-eu", matches[0].Provider)
}

func TestStore_Integration_UpsertEmptyResult(t *testing.T) {
	store, prefix := newIntegrationStore(t)
	ctx := context.Background()

	// Swap the procedure for one that returns no row inside a transaction that is rolled back.
	tx := store.db.WithContext(ctx).Begin()
	require.NoError(t, tx.Error)
	defer tx.Rollback()

	require.NoError(t, tx.Exec(`
		CREATE OR REPLACE FUNCTION upsert_model_price(
			p_model_name TEXT,
			p_input_price NUMERIC,
			p_output_price NUMERIC,
			p_provider TEXT
		)
		RETURNS TABLE (model_name TEXT, input_price NUMERIC, output_price NUMERIC, provider TEXT)
		LANGUAGE sql AS $$
			SELECT p_model_name, p_input_price, p_output_price, p_provider WHERE false
		$$
	`).Error)

	txStore := &Store{db: tx, config: store.config}
	saved, err := txStore.Upsert(ctx, domain.ModelPrice{
		ModelName:   prefix + "ghost",
		InputPrice:  decimal.NewFromInt(1),
		OutputPrice: decimal.NewFromInt(1),
		Provider:    "test",
	})
	require.ErrorIs(t, err, domain.ErrEmptyResult)
	require.Nil(t, saved)
}

func TestStore_Integration_SubscribeInserts(t *testing.T) {
	store, prefix := newIntegrationStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub, err := store.SubscribeInserts(ctx)
	require.NoError(t, err)
	defer sub.Unsubscribe()

	name := prefix + "claude-3-5-sonnet"
	_, err = store.Upsert(ctx, domain.ModelPrice{
		ModelName:   name,
		InputPrice:  decimal.NewFromInt(3),
		OutputPrice: decimal.NewFromInt(15),
		Provider:    "anthropic",
	})
	require.NoError(t, err)

	timeout := time.After(5 * time.Second)
	for {
		select {
		case event, ok := <-sub.Events():
			require.True(t, ok, "subscription closed early")
			// Other writers may share the database.
			if event.Kind != domain.EventInsert || event.Record.ModelName != name {
				continue
			}
			require.Equal(t, "anthropic", event.Record.Provider)
			require.True(t, event.Record.OutputPrice.Equal(decimal.NewFromInt(15)))
			return
		case <-timeout:
			t.Fatal("timed out waiting for insert notification")
		}
	}
}

package price_ingestion

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"coinflow/internal/db/models/postgres/public/model"

	"github.com/stretchr/testify/require"
)

// fakePriceStore mimics the unique index on (source, symbol, ts_bucket):
// colliding rows are dropped, everything else is kept.
type fakePriceStore struct {
	rows  map[string]model.PriceRecord
	err   error
	calls int
}

func newFakePriceStore() *fakePriceStore {
	return &fakePriceStore{rows: map[string]model.PriceRecord{}}
}

func (s *fakePriceStore) AddPriceRecords(ctx context.Context, records []model.PriceRecord) ([]model.PriceRecord, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}

	inserted := []model.PriceRecord{}
	for _, r := range records {
		key := fmt.Sprintf("%s|%s|%s", r.Source, r.Symbol, r.TsBucket.Format(time.RFC3339))
		if _, ok := s.rows[key]; ok {
			continue
		}
		s.rows[key] = r
		inserted = append(inserted, r)
	}
	return inserted, nil
}

func testQuotes() []MarketQuote {
	return []MarketQuote{
		{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin", CurrentPrice: dec(64250.12), MarketCap: decPtr(1267000000000), PriceChangePercentage24h: decPtr(-1.24)},
		{ID: "ethereum", Symbol: "eth", Name: "Ethereum", CurrentPrice: dec(3401.5)},
	}
}

func TestPriceRecorder_RecordQuotes(t *testing.T) {
	ctx := context.Background()
	fetchedAt := time.Date(2024, 3, 14, 12, 34, 56, 789000000, time.UTC)

	t.Run("persists the batch under one minute bucket", func(t *testing.T) {
		store := newFakePriceStore()
		recorder := NewPriceRecorder("coingecko", store)
		recorder.now = func() time.Time { return fetchedAt }

		inserted, skipped, err := recorder.RecordQuotes(ctx, testQuotes())
		require.NoError(t, err)
		require.Equal(t, 2, inserted)
		require.Equal(t, 0, skipped)
		require.Equal(t, 1, store.calls)

		wantBucket := time.Date(2024, 3, 14, 12, 34, 0, 0, time.UTC)
		for _, row := range store.rows {
			require.Equal(t, "coingecko", row.Source)
			require.Equal(t, wantBucket, row.TsBucket)
			require.Equal(t, fetchedAt, row.CreatedAt)
		}
	})

	t.Run("second pass in the same minute is fully deduplicated", func(t *testing.T) {
		store := newFakePriceStore()
		recorder := NewPriceRecorder("coingecko", store)
		recorder.now = func() time.Time { return fetchedAt }

		_, _, err := recorder.RecordQuotes(ctx, testQuotes())
		require.NoError(t, err)

		inserted, skipped, err := recorder.RecordQuotes(ctx, testQuotes())
		require.NoError(t, err)
		require.Equal(t, 0, inserted)
		require.Equal(t, 2, skipped)
		require.Len(t, store.rows, 2)
	})

	t.Run("a later minute produces new rows per symbol", func(t *testing.T) {
		store := newFakePriceStore()
		recorder := NewPriceRecorder("coingecko", store)

		recorder.now = func() time.Time { return fetchedAt }
		_, _, err := recorder.RecordQuotes(ctx, testQuotes())
		require.NoError(t, err)

		recorder.now = func() time.Time { return fetchedAt.Add(time.Minute) }
		inserted, skipped, err := recorder.RecordQuotes(ctx, testQuotes())
		require.NoError(t, err)
		require.Equal(t, 2, inserted)
		require.Equal(t, 0, skipped)
		require.Len(t, store.rows, 4)
	})

	t.Run("partial collision only skips the colliding row", func(t *testing.T) {
		store := newFakePriceStore()
		recorder := NewPriceRecorder("coingecko", store)
		recorder.now = func() time.Time { return fetchedAt }

		_, _, err := recorder.RecordQuotes(ctx, testQuotes()[:1])
		require.NoError(t, err)

		inserted, skipped, err := recorder.RecordQuotes(ctx, testQuotes())
		require.NoError(t, err)
		require.Equal(t, 1, inserted)
		require.Equal(t, 1, skipped)
		require.Len(t, store.rows, 2)
	})

	t.Run("store failure fails the whole batch", func(t *testing.T) {
		store := newFakePriceStore()
		store.err = errors.New("connection refused")
		recorder := NewPriceRecorder("coingecko", store)
		recorder.now = func() time.Time { return fetchedAt }

		_, _, err := recorder.RecordQuotes(ctx, testQuotes())
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to record 2 quotes")
	})
}

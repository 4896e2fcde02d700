package price_ingestion

import (
	"context"
	"fmt"
	"time"

	"coinflow/internal/db/models/postgres/public/model"
	db "coinflow/internal/db/query"
)

type PriceStore interface {
	AddPriceRecords(ctx context.Context, records []model.PriceRecord) ([]model.PriceRecord, error)
}

type dbPriceStore struct{}

func NewDbPriceStore() PriceStore {
	return dbPriceStore{}
}

func (dbPriceStore) AddPriceRecords(ctx context.Context, records []model.PriceRecord) ([]model.PriceRecord, error) {
	return db.AddPriceRecords(ctx, records)
}

// PriceRecorder persists a batch of quotes under one minute-truncated bucket.
// Callers must not hand it an empty batch.
type PriceRecorder struct {
	Source string
	Store  PriceStore

	now func() time.Time
}

func NewPriceRecorder(source string, store PriceStore) PriceRecorder {
	return PriceRecorder{
		Source: source,
		Store:  store,
		now:    time.Now,
	}
}

// RecordQuotes writes all quotes in one batch. The bucket is computed once so
// every row of the pass lands in the same minute. Rows colliding with an
// existing (source, symbol, bucket) triple are silently skipped; the returned
// counts are informational only.
func (r PriceRecorder) RecordQuotes(ctx context.Context, quotes []MarketQuote) (inserted int, skipped int, err error) {
	now := r.now().UTC()
	bucket := now.Truncate(time.Minute)

	records := make([]model.PriceRecord, 0, len(quotes))
	for _, q := range quotes {
		records = append(records, model.PriceRecord{
			Source:       r.Source,
			Symbol:       q.Symbol,
			CoinID:       q.ID,
			Name:         q.Name,
			Price:        q.CurrentPrice,
			MarketCap:    q.MarketCap,
			PctChange24h: q.PriceChangePercentage24h,
			CreatedAt:    now,
			TsBucket:     bucket,
		})
	}

	insertedRows, err := r.Store.AddPriceRecords(ctx, records)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to record %d quotes for source %s: %w", len(quotes), r.Source, err)
	}

	return len(insertedRows), len(quotes) - len(insertedRows), nil
}

package db

import (
	"context"
	"fmt"

	"coinflow/internal/db/models/postgres/public/model"
	"coinflow/internal/db/models/postgres/public/table"
)

// AddPriceRecords inserts the batch in one statement. Rows colliding on the
// (source, symbol, ts_bucket) unique index are dropped by the database, so only
// rows that actually landed are returned.
func AddPriceRecords(ctx context.Context, records []model.PriceRecord) ([]model.PriceRecord, error) {
	tx, err := GetTx(ctx)
	if err != nil {
		return nil, err
	}

	t := table.PriceRecord
	stmt := t.INSERT(t.MutableColumns).
		MODELS(records).
		ON_CONFLICT(t.Source, t.Symbol, t.TsBucket).
		DO_NOTHING().
		RETURNING(t.AllColumns)

	inserted := []model.PriceRecord{}
	err = stmt.Query(tx, &inserted)
	if err != nil {
		return nil, fmt.Errorf("failed to insert price records: %w", err)
	}

	return inserted, nil
}

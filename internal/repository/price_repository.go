package repository

import (
	"database/sql"
	"fmt"

	"coinflow/internal/db/models/postgres/public/model"
	. "coinflow/internal/db/models/postgres/public/table"

	. "github.com/go-jet/jet/v2/postgres"
)

type PriceRepository interface {
	GetLatest(source string) ([]model.PriceRecord, error)
}

type priceRepositoryHandler struct {
	DB *sql.DB
}

func NewPriceRepository(db *sql.DB) PriceRepository {
	return priceRepositoryHandler{
		DB: db,
	}
}

// GetLatest returns all rows of the most recent bucket written for the source.
func (h priceRepositoryHandler) GetLatest(source string) ([]model.PriceRecord, error) {
	t := PriceRecord

	latestBucket := SELECT(t.TsBucket).
		FROM(t).
		WHERE(t.Source.EQ(String(source))).
		ORDER_BY(t.TsBucket.DESC()).
		LIMIT(1)

	query := t.SELECT(t.AllColumns).
		WHERE(
			t.Source.EQ(String(source)).
				AND(t.TsBucket.EQ(TimestampzExp(latestBucket))),
		).
		ORDER_BY(t.Symbol.ASC())

	records := []model.PriceRecord{}
	err := query.Query(h.DB, &records)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest prices for source %s: %w", source, err)
	}

	return records, nil
}

package price_ingestion

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
)

// IngestOnce runs one fetch-then-record pass. An empty fetch result skips the
// write entirely. Scheduling recurring passes is the caller's problem.
func IngestOnce(ctx context.Context, client MarketDataClient, recorder PriceRecorder, vsCurrency string, perPage, page int) error {
	runID := uuid.NewString()
	log.Printf("[ingest %s] fetching top %d markets in %s (page %d)", runID, perPage, vsCurrency, page)

	quotes, err := client.TopMarkets(ctx, vsCurrency, perPage, page)
	if err != nil {
		return fmt.Errorf("ingestion run %s: %w", runID, err)
	}
	if len(quotes) == 0 {
		log.Printf("[ingest %s] provider returned no markets, skipping write", runID)
		return nil
	}

	inserted, skipped, err := recorder.RecordQuotes(ctx, quotes)
	if err != nil {
		return fmt.Errorf("ingestion run %s: %w", runID, err)
	}

	log.Printf("[ingest %s] recorded %d quotes: %d inserted, %d deduplicated", runID, len(quotes), inserted, skipped)
	return nil
}

package price_ingestion

import "context"

type MarketDataClient interface {
	TopMarkets(ctx context.Context, vsCurrency string, perPage, page int) ([]MarketQuote, error)
}

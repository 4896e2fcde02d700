package price_ingestion

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestIngestOnce(t *testing.T) {
	ctx := context.Background()
	fetchedAt := time.Date(2024, 3, 14, 12, 34, 56, 0, time.UTC)

	t.Run("records the fetched batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := NewMockMarketDataClient(ctrl)
		client.EXPECT().
			TopMarkets(ctx, "usd", 10, 1).
			Return(testQuotes(), nil)

		store := newFakePriceStore()
		recorder := NewPriceRecorder("coingecko", store)
		recorder.now = func() time.Time { return fetchedAt }

		err := IngestOnce(ctx, client, recorder, "usd", 10, 1)
		require.NoError(t, err)
		require.Equal(t, 1, store.calls)
		require.Len(t, store.rows, 2)
	})

	t.Run("empty fetch issues no write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := NewMockMarketDataClient(ctrl)
		client.EXPECT().
			TopMarkets(ctx, "usd", 10, 1).
			Return([]MarketQuote{}, nil)

		store := newFakePriceStore()
		err := IngestOnce(ctx, client, NewPriceRecorder("coingecko", store), "usd", 10, 1)
		require.NoError(t, err)
		require.Equal(t, 0, store.calls)
	})

	t.Run("fetch failure issues no write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := NewMockMarketDataClient(ctrl)
		client.EXPECT().
			TopMarkets(ctx, "usd", 10, 1).
			Return(nil, errors.New("provider down"))

		store := newFakePriceStore()
		err := IngestOnce(ctx, client, NewPriceRecorder("coingecko", store), "usd", 10, 1)
		require.Error(t, err)
		require.Equal(t, 0, store.calls)
	})

	t.Run("write failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := NewMockMarketDataClient(ctrl)
		client.EXPECT().
			TopMarkets(ctx, "usd", 10, 1).
			Return(testQuotes(), nil)

		store := newFakePriceStore()
		store.err = errors.New("connection refused")
		err := IngestOnce(ctx, client, NewPriceRecorder("coingecko", store), "usd", 10, 1)
		require.Error(t, err)
		require.Contains(t, err.Error(), "connection refused")
	})
}

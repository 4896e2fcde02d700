package price_ingestion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// MarketQuote is one asset's snapshot as reported by the provider. The provider
// omits market cap and 24h change for thinly traded assets, hence the pointers.
type MarketQuote struct {
	ID                       string           `json:"id"`
	Symbol                   string           `json:"symbol"`
	Name                     string           `json:"name"`
	CurrentPrice             decimal.Decimal  `json:"current_price"`
	MarketCap                *decimal.Decimal `json:"market_cap"`
	PriceChangePercentage24h *decimal.Decimal `json:"price_change_percentage_24h"`
}

type Config struct {
	BaseURL      string
	APIKeyHeader string
	APIKey       string
}

type CoinGeckoClient struct {
	HttpClient *http.Client
	Config     Config
	Retry      RetryPolicy
}

var ErrRateLimited = errors.New("rate limited by market data provider")

// fetchTimeout bounds the whole TopMarkets call, retries included.
const fetchTimeout = 15 * time.Second

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries: 3,
		BaseDelay:  2 * time.Second,
		Multiplier: 2,
		Retryable:  isRetryableFetchErr,
	}
}

func NewCoinGeckoClient(cfg Config, httpClient *http.Client) CoinGeckoClient {
	return CoinGeckoClient{
		HttpClient: httpClient,
		Config:     cfg,
		Retry:      DefaultRetryPolicy(),
	}
}

// TopMarkets fetches one page of markets ordered by descending 24h volume.
// A page the provider legitimately returns empty is not an error.
func (c CoinGeckoClient) TopMarkets(ctx context.Context, vsCurrency string, perPage, page int) ([]MarketQuote, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	var quotes []MarketQuote
	err := c.Retry.Do(ctx, func() error {
		var fetchErr error
		quotes, fetchErr = c.fetchMarketsPage(ctx, vsCurrency, perPage, page)
		return fetchErr
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			// either the 15s ceiling or a shorter caller deadline fired
			return nil, fmt.Errorf("market fetch deadline exceeded: %w", err)
		}
		return nil, fmt.Errorf("failed to fetch top markets: %w", err)
	}

	return quotes, nil
}

func (c CoinGeckoClient) fetchMarketsPage(ctx context.Context, vsCurrency string, perPage, page int) ([]MarketQuote, error) {
	params := url.Values{}
	params.Set("vs_currency", vsCurrency)
	params.Set("order", "volume_desc")
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("page", strconv.Itoa(page))
	params.Set("price_change_percentage", "24h")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Config.BaseURL+"/coins/markets?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.Config.APIKey != "" {
		req.Header.Set(c.Config.APIKeyHeader, c.Config.APIKey)
	}

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if response.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(response.Body, 512))
		return nil, fmt.Errorf("markets request failed with status %d: %s", response.StatusCode, body)
	}

	quotes := []MarketQuote{}
	if err := json.NewDecoder(response.Body).Decode(&quotes); err != nil {
		return nil, fmt.Errorf("failed to decode markets response: %w", err)
	}

	return quotes, nil
}

// Only 429 and transport-level failures are worth retrying; any other status
// (auth errors, bad request) will not get better on a second attempt.
func isRetryableFetchErr(err error) bool {
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

package util

import (
	"encoding/json"
	"fmt"
	"os"
)

func StringPtr(s string) *string {
	return &s
}

type Secrets struct {
	CoinGecko CoinGeckoSecrets `json:"coinGecko"`
	Ingestor  IngestorSecrets  `json:"ingestor"`
}

type CoinGeckoSecrets struct {
	BaseURL      string `json:"baseUrl"`
	APIKeyHeader string `json:"apiKeyHeader"`
	APIKey       string `json:"apiKey"`
}

type IngestorSecrets struct {
	VsCurrency string `json:"vsCurrency"`
	Source     string `json:"source"`
	PerPage    int    `json:"perPage"`
}

func LoadSecrets() (*Secrets, error) {
	f, err := os.ReadFile("secrets.json")
	if err != nil {
		return nil, fmt.Errorf("could not open secrets.json: %w", err)
	}
	secrets := Secrets{}
	err = json.Unmarshal(f, &secrets)
	if err != nil {
		return nil, err
	}

	if secrets.CoinGecko.BaseURL == "" {
		return nil, fmt.Errorf("secrets.json is missing coinGecko.baseUrl")
	}
	if secrets.Ingestor.Source == "" {
		return nil, fmt.Errorf("secrets.json is missing ingestor.source")
	}
	if secrets.Ingestor.VsCurrency == "" {
		secrets.Ingestor.VsCurrency = "usd"
	}
	if secrets.Ingestor.PerPage == 0 {
		secrets.Ingestor.PerPage = 10
	}

	return &secrets, nil
}

package main

import (
	"context"
	"log"
	"net/http"

	db "coinflow/internal/db/query"
	prices "coinflow/internal/price-ingestion"
	"coinflow/internal/util"

	_ "github.com/lib/pq"
)

func main() {
	secrets, err := util.LoadSecrets()
	if err != nil {
		log.Fatal(err)
	}

	dbConn, err := db.New()
	if err != nil {
		log.Fatal(err)
	}

	tx, err := dbConn.Begin()
	if err != nil {
		log.Fatal(err)
	}
	ctx := context.WithValue(
		context.Background(),
		"tx",
		tx,
	)

	client := prices.NewCoinGeckoClient(prices.Config{
		BaseURL:      secrets.CoinGecko.BaseURL,
		APIKeyHeader: secrets.CoinGecko.APIKeyHeader,
		APIKey:       secrets.CoinGecko.APIKey,
	}, http.DefaultClient)
	recorder := prices.NewPriceRecorder(secrets.Ingestor.Source, prices.NewDbPriceStore())

	err = prices.IngestOnce(ctx, client, recorder, secrets.Ingestor.VsCurrency, secrets.Ingestor.PerPage, 1)
	if err != nil {
		tx.Rollback()
		log.Fatal(err)
	}

	if err := tx.Commit(); err != nil {
		log.Fatal(err)
	}
}

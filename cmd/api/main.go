package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"coinflow/api"
	db "coinflow/internal/db/query"
	prices "coinflow/internal/price-ingestion"
	"coinflow/internal/repository"
	"coinflow/internal/user"
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

	userRepository := repository.NewUserRepository(dbConn)
	priceRepository := repository.NewPriceRepository(dbConn)
	userService := user.NewUserService(userRepository)

	// one ingestion pass on startup; recurring runs are an external
	// scheduler's responsibility
	go func() {
		if err := runStartupIngestion(dbConn, secrets); err != nil {
			log.Printf("startup ingestion failed: %v", err)
		}
	}()

	err = api.StartApi(5001, userService, priceRepository)
	if err != nil {
		log.Fatal(err)
	}
}

func runStartupIngestion(dbConn *sql.DB, secrets *util.Secrets) error {
	tx, err := dbConn.Begin()
	if err != nil {
		return err
	}
	ctx := context.WithValue(context.Background(), "tx", tx)

	client := prices.NewCoinGeckoClient(prices.Config{
		BaseURL:      secrets.CoinGecko.BaseURL,
		APIKeyHeader: secrets.CoinGecko.APIKeyHeader,
		APIKey:       secrets.CoinGecko.APIKey,
	}, http.DefaultClient)
	recorder := prices.NewPriceRecorder(secrets.Ingestor.Source, prices.NewDbPriceStore())

	if err := prices.IngestOnce(ctx, client, recorder, secrets.Ingestor.VsCurrency, secrets.Ingestor.PerPage, 1); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

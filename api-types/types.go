package types

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateUserRequest struct {
	Username  string  `json:"username" binding:"required,min=3,max=100"`
	Email     string  `json:"email" binding:"required,email"`
	FirstName *string `json:"first_name" binding:"omitempty,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,max=100"`
}

type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName *string   `json:"first_name,omitempty"`
	LastName  *string   `json:"last_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LatestPrice struct {
	Symbol       string           `json:"symbol"`
	CoinID       string           `json:"coinId"`
	Name         string           `json:"name"`
	Price        decimal.Decimal  `json:"price"`
	MarketCap    *decimal.Decimal `json:"marketCap,omitempty"`
	PctChange24h *decimal.Decimal `json:"pctChange24h,omitempty"`
}

type LatestPricesResponse struct {
	Source string        `json:"source"`
	Bucket *time.Time    `json:"bucket,omitempty"`
	Prices []LatestPrice `json:"prices"`
}

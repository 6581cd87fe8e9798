package market

import (
	"errors"
	"time"
)

var (
	ErrNotSeeded    = errors.New("market data not seeded")
	ErrInvalidPrice = errors.New("invalid price")
)

// Data is a singleton row: the current BTC/USD quote.
type Data struct {
	ID          uint64    `gorm:"column:id;primaryKey" json:"-"`
	PriceUSD    float64   `gorm:"column:btc_price_usd;not null" json:"btc_price_usd"`
	LastUpdated time.Time `gorm:"column:last_updated" json:"last_updated"`
}

func (Data) TableName() string { return "market_data" }

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceFeedBinding maps a currency key to its oracle feed and the decimal
// precision the feed reports. Registered by an administrator; a bid priced
// against a binding is never retroactively repriced.
type PriceFeedBinding struct {
	Currency  string    `json:"currency"` // canonical currency key
	FeedID    string    `json:"feed_id"`
	Decimals  int32     `json:"decimals"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PriceQuote is one oracle reading, treated as untrusted input.
type PriceQuote struct {
	Value     decimal.Decimal `json:"value"` // raw feed answer, scaled by Decimals
	Decimals  int32           `json:"decimals"`
	Timestamp time.Time       `json:"timestamp"`
}

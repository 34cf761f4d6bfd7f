package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerEntry is a pull-payment balance keyed by (account, currency).
// Credits are additive; the balance is only ever zeroed by its owner's
// withdrawal.
type LedgerEntry struct {
	Account   string          `json:"account"`
	Currency  string          `json:"currency"` // canonical currency key
	Balance   decimal.Decimal `json:"balance"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// WithdrawalReceipt records one completed withdrawal.
type WithdrawalReceipt struct {
	ID        uuid.UUID       `json:"id"`
	Account   string          `json:"account"`
	Currency  string          `json:"currency"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

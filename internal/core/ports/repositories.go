package ports

import (
	"context"

	"nft-auction-engine/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AuctionRepository defines persistence operations for auction records.
// Methods accepting pgx.Tx are used inside transaction blocks for
// pessimistic locking.
type AuctionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, a *domain.AuctionRecord) error
	GetByID(ctx context.Context, id int64) (*domain.AuctionRecord, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.AuctionRecord, error)
	// UpdateLeadingBid overwrites the leading bid triple in one statement.
	UpdateLeadingBid(ctx context.Context, tx pgx.Tx, id int64, bid domain.Bid, bidder string, usd decimal.Decimal) error
	MarkEnded(ctx context.Context, tx pgx.Tx, id int64) error
	List(ctx context.Context, params AuctionListParams) ([]domain.AuctionRecord, int64, error)
}

// AuctionListParams holds filter + pagination for listing auctions.
type AuctionListParams struct {
	Seller   *string
	OpenOnly bool
	Page     int
	PageSize int
}

// LedgerRepository defines persistence for pull-payment balances keyed by
// (account, currency key).
type LedgerRepository interface {
	// Credit adds amount to the balance, creating the row if absent.
	Credit(ctx context.Context, tx pgx.Tx, account, currency string, amount decimal.Decimal) error
	GetBalance(ctx context.Context, account, currency string) (decimal.Decimal, error)
	GetBalanceForUpdate(ctx context.Context, tx pgx.Tx, account, currency string) (decimal.Decimal, error)
	Zero(ctx context.Context, tx pgx.Tx, account, currency string) error
	ListByAccount(ctx context.Context, account string) ([]domain.LedgerEntry, error)
}

// OracleBindingRepository defines persistence for currency -> price feed
// bindings.
type OracleBindingRepository interface {
	Upsert(ctx context.Context, b *domain.PriceFeedBinding) error
	GetByCurrency(ctx context.Context, currency string) (*domain.PriceFeedBinding, error)
	List(ctx context.Context) ([]domain.PriceFeedBinding, error)
}

// EngineStateRepository manages the single engine-state row.
type EngineStateRepository interface {
	Get(ctx context.Context) (*domain.EngineState, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx) (*domain.EngineState, error)
	// NextAuctionID increments and returns the auction counter.
	NextAuctionID(ctx context.Context, tx pgx.Tx) (int64, error)
	// UpgradeToV2 bumps the version marker and sets the floor.
	UpgradeToV2(ctx context.Context, tx pgx.Tx, minBidUSD decimal.Decimal) error
	SetMinBid(ctx context.Context, tx pgx.Tx, minBidUSD decimal.Decimal) error
}

// AccountRepository defines persistence for registered accounts.
type AccountRepository interface {
	Create(ctx context.Context, a *domain.Account) error
	GetByAccessKey(ctx context.Context, accessKey string) (*domain.Account, error)
	GetByAddress(ctx context.Context, address string) (*domain.Account, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

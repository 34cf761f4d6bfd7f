package postgres

import (
	"context"
	"fmt"

	"nft-auction-engine/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// StateRepo implements ports.EngineStateRepository against the single
// engine_state row (id = 1, seeded by migration).
type StateRepo struct {
	pool Pool
}

// NewStateRepo creates a new StateRepo.
func NewStateRepo(pool Pool) *StateRepo {
	return &StateRepo{pool: pool}
}

// Get fetches the engine state (non-locking read).
func (r *StateRepo) Get(ctx context.Context) (*domain.EngineState, error) {
	query := `SELECT version, auction_counter, min_bid_usd::text, updated_at FROM engine_state WHERE id = 1`
	return scanState(r.pool.QueryRow(ctx, query))
}

// GetForUpdate fetches the engine state with pessimistic locking.
// This MUST be called within a transaction.
func (r *StateRepo) GetForUpdate(ctx context.Context, tx pgx.Tx) (*domain.EngineState, error) {
	query := `SELECT version, auction_counter, min_bid_usd::text, updated_at FROM engine_state WHERE id = 1 FOR UPDATE`
	return scanState(tx.QueryRow(ctx, query))
}

// NextAuctionID increments the auction counter and returns the new value.
// Row-level locking on the state row serializes allocations.
func (r *StateRepo) NextAuctionID(ctx context.Context, tx pgx.Tx) (int64, error) {
	query := `UPDATE engine_state SET auction_counter = auction_counter + 1, updated_at = NOW()
		WHERE id = 1 RETURNING auction_counter`

	var id int64
	if err := tx.QueryRow(ctx, query).Scan(&id); err != nil {
		return 0, fmt.Errorf("next auction id: %w", err)
	}
	return id, nil
}

// UpgradeToV2 bumps the version marker and records the minimum-bid floor.
func (r *StateRepo) UpgradeToV2(ctx context.Context, tx pgx.Tx, minBidUSD decimal.Decimal) error {
	query := `UPDATE engine_state SET version = $1, min_bid_usd = $2, updated_at = NOW() WHERE id = 1`

	if _, err := tx.Exec(ctx, query, domain.VersionV2, minBidUSD.String()); err != nil {
		return fmt.Errorf("upgrade engine state: %w", err)
	}
	return nil
}

// SetMinBid updates the minimum-bid floor on an upgraded engine.
func (r *StateRepo) SetMinBid(ctx context.Context, tx pgx.Tx, minBidUSD decimal.Decimal) error {
	query := `UPDATE engine_state SET min_bid_usd = $1, updated_at = NOW() WHERE id = 1`

	if _, err := tx.Exec(ctx, query, minBidUSD.String()); err != nil {
		return fmt.Errorf("set min bid: %w", err)
	}
	return nil
}

func scanState(row pgx.Row) (*domain.EngineState, error) {
	s := &domain.EngineState{}
	var minBid string
	err := row.Scan(&s.Version, &s.AuctionCounter, &minBid, &s.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("scan engine state: %w", err)
	}
	s.MinBidUSD, err = decimal.NewFromString(minBid)
	if err != nil {
		return nil, fmt.Errorf("parse min_bid_usd %q: %w", minBid, err)
	}
	return s, nil
}

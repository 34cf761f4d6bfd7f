package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nft-auction-engine/internal/core/domain"
	"nft-auction-engine/internal/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const auctionColumns = `id, seller, asset_contract, asset_id, deadline, ended,
	leading_currency, leading_amount::text, leading_bidder, leading_bid_usd::text, created_at, updated_at`

// AuctionRepo implements ports.AuctionRepository.
type AuctionRepo struct {
	pool Pool
}

// NewAuctionRepo creates a new AuctionRepo.
func NewAuctionRepo(pool Pool) *AuctionRepo {
	return &AuctionRepo{pool: pool}
}

// Create inserts a new auction within a database transaction. The ID is
// allocated by the caller from the engine-state counter.
func (r *AuctionRepo) Create(ctx context.Context, tx pgx.Tx, a *domain.AuctionRecord) error {
	query := `INSERT INTO auctions (id, seller, asset_contract, asset_id, deadline, ended, leading_bid_usd, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, 0, $6, $7)`

	_, err := tx.Exec(ctx, query,
		a.ID, a.Seller, a.AssetContract, a.AssetID, a.Deadline, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert auction: %w", err)
	}
	return nil
}

// GetByID fetches an auction by ID (without locking).
func (r *AuctionRepo) GetByID(ctx context.Context, id int64) (*domain.AuctionRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM auctions WHERE id = $1`, auctionColumns)
	return r.scanAuction(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate fetches an auction by ID with pessimistic locking.
// This MUST be called within a transaction.
func (r *AuctionRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.AuctionRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM auctions WHERE id = $1 FOR UPDATE`, auctionColumns)
	return r.scanAuction(tx.QueryRow(ctx, query, id))
}

// UpdateLeadingBid overwrites the leading bid triple within a transaction.
func (r *AuctionRepo) UpdateLeadingBid(ctx context.Context, tx pgx.Tx, id int64, bid domain.Bid, bidder string, usd decimal.Decimal) error {
	query := `UPDATE auctions SET leading_currency = $1, leading_amount = $2, leading_bidder = $3,
		leading_bid_usd = $4, updated_at = NOW() WHERE id = $5`

	tag, err := tx.Exec(ctx, query, bid.Currency.Key(), bid.Amount.String(), bidder, usd.String(), id)
	if err != nil {
		return fmt.Errorf("update leading bid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("auction not found: %d", id)
	}
	return nil
}

// MarkEnded flips the ended flag within a transaction.
func (r *AuctionRepo) MarkEnded(ctx context.Context, tx pgx.Tx, id int64) error {
	query := `UPDATE auctions SET ended = TRUE, updated_at = NOW() WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("mark auction ended: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("auction not found: %d", id)
	}
	return nil
}

// List fetches auctions with filtering and pagination.
func (r *AuctionRepo) List(ctx context.Context, params ports.AuctionListParams) ([]domain.AuctionRecord, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.Seller != nil {
		conditions = append(conditions, fmt.Sprintf("seller = $%d", argIdx))
		args = append(args, *params.Seller)
		argIdx++
	}
	if params.OpenOnly {
		conditions = append(conditions, "ended = FALSE AND deadline > NOW()")
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	// Count total
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM auctions %s", where)
	var total int64
	err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count auctions: %w", err)
	}

	// Fetch page
	offset := (params.Page - 1) * params.PageSize
	dataQuery := fmt.Sprintf(`SELECT %s FROM auctions %s ORDER BY id DESC LIMIT $%d OFFSET $%d`,
		auctionColumns, where, argIdx, argIdx+1)
	args = append(args, params.PageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list auctions: %w", err)
	}
	defer rows.Close()

	var auctions []domain.AuctionRecord
	for rows.Next() {
		a, err := scanAuctionRow(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan auction row: %w", err)
		}
		auctions = append(auctions, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate auction rows: %w", err)
	}
	return auctions, total, nil
}

// scanAuction is a helper to scan a single row into an AuctionRecord.
func (r *AuctionRepo) scanAuction(row pgx.Row) (*domain.AuctionRecord, error) {
	a, err := scanAuctionRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan auction: %w", err)
	}
	return a, nil
}

// scanAuctionRow reassembles the leading-bid triple from its nullable
// columns. Either all three are set or none is.
func scanAuctionRow(row pgx.Row) (*domain.AuctionRecord, error) {
	a := &domain.AuctionRecord{}
	var (
		leadingCurrency *string
		leadingAmount   *string
		leadingBidder   *string
		leadingUSD      string
	)
	err := row.Scan(
		&a.ID, &a.Seller, &a.AssetContract, &a.AssetID, &a.Deadline, &a.Ended,
		&leadingCurrency, &leadingAmount, &leadingBidder, &leadingUSD,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.LeadingBidUSD, err = decimal.NewFromString(leadingUSD)
	if err != nil {
		return nil, fmt.Errorf("parse leading_bid_usd %q: %w", leadingUSD, err)
	}

	if leadingCurrency != nil && leadingAmount != nil && leadingBidder != nil {
		currency, err := domain.ParseCurrencyKey(*leadingCurrency)
		if err != nil {
			return nil, fmt.Errorf("parse leading_currency: %w", err)
		}
		amount, err := decimal.NewFromString(*leadingAmount)
		if err != nil {
			return nil, fmt.Errorf("parse leading_amount %q: %w", *leadingAmount, err)
		}
		a.LeadingBid = &domain.Bid{Currency: currency, Amount: amount}
		a.LeadingBidder = leadingBidder
	}
	return a, nil
}

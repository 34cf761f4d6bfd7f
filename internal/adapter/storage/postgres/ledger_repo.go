package postgres

import (
	"context"
	"errors"
	"fmt"

	"nft-auction-engine/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// LedgerRepo implements ports.LedgerRepository. Balances are keyed by
// (account, currency key) and only ever move through Credit and Zero.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

// Credit adds amount to the balance within a transaction, creating the row
// if absent.
func (r *LedgerRepo) Credit(ctx context.Context, tx pgx.Tx, account, currency string, amount decimal.Decimal) error {
	query := `INSERT INTO ledger_entries (account, currency, balance, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (account, currency)
		DO UPDATE SET balance = ledger_entries.balance + EXCLUDED.balance, updated_at = NOW()`

	_, err := tx.Exec(ctx, query, account, currency, amount.String())
	if err != nil {
		return fmt.Errorf("credit ledger entry: %w", err)
	}
	return nil
}

// GetBalance fetches a balance (non-locking read). A missing row is a zero
// balance.
func (r *LedgerRepo) GetBalance(ctx context.Context, account, currency string) (decimal.Decimal, error) {
	query := `SELECT balance::text FROM ledger_entries WHERE account = $1 AND currency = $2`
	return r.scanBalance(r.pool.QueryRow(ctx, query, account, currency))
}

// GetBalanceForUpdate fetches a balance with pessimistic locking.
// This MUST be called within a transaction.
func (r *LedgerRepo) GetBalanceForUpdate(ctx context.Context, tx pgx.Tx, account, currency string) (decimal.Decimal, error) {
	query := `SELECT balance::text FROM ledger_entries WHERE account = $1 AND currency = $2 FOR UPDATE`
	return r.scanBalance(tx.QueryRow(ctx, query, account, currency))
}

// Zero sets a balance to zero within a transaction.
func (r *LedgerRepo) Zero(ctx context.Context, tx pgx.Tx, account, currency string) error {
	query := `UPDATE ledger_entries SET balance = 0, updated_at = NOW() WHERE account = $1 AND currency = $2`

	tag, err := tx.Exec(ctx, query, account, currency)
	if err != nil {
		return fmt.Errorf("zero ledger entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ledger entry not found: %s/%s", account, currency)
	}
	return nil
}

// ListByAccount fetches all positive balances for an account.
func (r *LedgerRepo) ListByAccount(ctx context.Context, account string) ([]domain.LedgerEntry, error) {
	query := `SELECT account, currency, balance::text, updated_at
		FROM ledger_entries WHERE account = $1 AND balance > 0 ORDER BY currency`

	rows, err := r.pool.Query(ctx, query, account)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		var balance string
		if err := rows.Scan(&e.Account, &e.Currency, &balance, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger row: %w", err)
		}
		e.Balance, err = decimal.NewFromString(balance)
		if err != nil {
			return nil, fmt.Errorf("parse balance %q: %w", balance, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger rows: %w", err)
	}
	return entries, nil
}

func (r *LedgerRepo) scanBalance(row pgx.Row) (decimal.Decimal, error) {
	var balance string
	err := row.Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("scan balance: %w", err)
	}
	parsed, err := decimal.NewFromString(balance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse balance %q: %w", balance, err)
	}
	return parsed, nil
}

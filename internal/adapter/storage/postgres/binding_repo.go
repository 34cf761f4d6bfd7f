package postgres

import (
	"context"
	"errors"
	"fmt"

	"nft-auction-engine/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// BindingRepo implements ports.OracleBindingRepository.
type BindingRepo struct {
	pool Pool
}

// NewBindingRepo creates a new BindingRepo.
func NewBindingRepo(pool Pool) *BindingRepo {
	return &BindingRepo{pool: pool}
}

// Upsert registers or replaces a currency's oracle binding.
func (r *BindingRepo) Upsert(ctx context.Context, b *domain.PriceFeedBinding) error {
	query := `INSERT INTO oracle_bindings (currency, feed_id, decimals, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (currency)
		DO UPDATE SET feed_id = EXCLUDED.feed_id, decimals = EXCLUDED.decimals, updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query, b.Currency, b.FeedID, b.Decimals, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert oracle binding: %w", err)
	}
	return nil
}

// GetByCurrency fetches a binding by its canonical currency key.
func (r *BindingRepo) GetByCurrency(ctx context.Context, currency string) (*domain.PriceFeedBinding, error) {
	query := `SELECT currency, feed_id, decimals, updated_at FROM oracle_bindings WHERE currency = $1`

	b := &domain.PriceFeedBinding{}
	err := r.pool.QueryRow(ctx, query, currency).Scan(&b.Currency, &b.FeedID, &b.Decimals, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get oracle binding: %w", err)
	}
	return b, nil
}

// List fetches all registered bindings.
func (r *BindingRepo) List(ctx context.Context) ([]domain.PriceFeedBinding, error) {
	query := `SELECT currency, feed_id, decimals, updated_at FROM oracle_bindings ORDER BY currency`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list oracle bindings: %w", err)
	}
	defer rows.Close()

	var bindings []domain.PriceFeedBinding
	for rows.Next() {
		var b domain.PriceFeedBinding
		if err := rows.Scan(&b.Currency, &b.FeedID, &b.Decimals, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan oracle binding row: %w", err)
		}
		bindings = append(bindings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate oracle binding rows: %w", err)
	}
	return bindings, nil
}

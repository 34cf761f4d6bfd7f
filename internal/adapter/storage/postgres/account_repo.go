package postgres

import (
	"context"
	"errors"
	"fmt"

	"nft-auction-engine/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// AccountRepo implements ports.AccountRepository.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// Create inserts a new account into the database.
func (r *AccountRepo) Create(ctx context.Context, a *domain.Account) error {
	query := `INSERT INTO accounts (id, address, access_key, secret_key_enc, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query, a.ID, a.Address, a.AccessKey, a.SecretKeyEnc, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByAccessKey fetches an account by its public access key.
func (r *AccountRepo) GetByAccessKey(ctx context.Context, accessKey string) (*domain.Account, error) {
	query := `SELECT id, address, access_key, secret_key_enc, created_at FROM accounts WHERE access_key = $1`
	return r.scanAccount(r.pool.QueryRow(ctx, query, accessKey))
}

// GetByAddress fetches an account by its custody address.
func (r *AccountRepo) GetByAddress(ctx context.Context, address string) (*domain.Account, error) {
	query := `SELECT id, address, access_key, secret_key_enc, created_at FROM accounts WHERE address = $1`
	return r.scanAccount(r.pool.QueryRow(ctx, query, address))
}

func (r *AccountRepo) scanAccount(row pgx.Row) (*domain.Account, error) {
	a := &domain.Account{}
	err := row.Scan(&a.ID, &a.Address, &a.AccessKey, &a.SecretKeyEnc, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan account: %w", err)
	}
	return a, nil
}

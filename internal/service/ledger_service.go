package service

import (
	"context"
	"fmt"

	"nft-auction-engine/internal/core/domain"
	"nft-auction-engine/internal/core/ports"
	"nft-auction-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// LedgerServiceImpl implements ports.LedgerService. Withdrawals follow
// checks-effects-interactions: the balance is zeroed and committed before
// the external release, and restored by a compensating credit if the
// release fails.
type LedgerServiceImpl struct {
	ledgerRepo ports.LedgerRepository
	tokens     ports.TokenCustody
	vault      ports.NativeVault
	transactor ports.DBTransactor
	clock      ports.Clock
	log        zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	ledgerRepo ports.LedgerRepository,
	tokens ports.TokenCustody,
	vault ports.NativeVault,
	transactor ports.DBTransactor,
	clock ports.Clock,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		ledgerRepo: ledgerRepo,
		tokens:     tokens,
		vault:      vault,
		transactor: transactor,
		clock:      clock,
		log:        log,
	}
}

// Withdraw reads and zeroes the caller's balance for one currency, then
// releases the funds through the matching collaborator.
func (s *LedgerServiceImpl) Withdraw(ctx context.Context, account string, currency domain.Currency) (*domain.WithdrawalReceipt, error) {
	key := currency.Key()

	amount, err := s.debit(ctx, account, key)
	if err != nil {
		return nil, err
	}

	// The zeroing is committed; an external re-entry now sees an empty
	// balance and fails NothingToWithdraw.
	if err := s.release(ctx, account, currency, amount); err != nil {
		s.restore(ctx, account, key, amount)
		return nil, apperror.ErrTransferFailed(err)
	}

	receipt := &domain.WithdrawalReceipt{
		ID:        uuid.New(),
		Account:   account,
		Currency:  key,
		Amount:    amount,
		CreatedAt: s.clock.Now(),
	}

	s.log.Info().
		Str("withdrawal_id", receipt.ID.String()).
		Str("account", account).
		Str("currency", key).
		Str("amount", amount.String()).
		Msg("withdrawal completed")

	return receipt, nil
}

// debit zeroes the balance in its own committed transaction and returns
// the amount owed.
func (s *LedgerServiceImpl) debit(ctx context.Context, account, currency string) (decimal.Decimal, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return decimal.Zero, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	balance, err := s.ledgerRepo.GetBalanceForUpdate(ctx, dbTx, account, currency)
	if err != nil {
		return decimal.Zero, apperror.InternalError(fmt.Errorf("lock ledger entry: %w", err))
	}
	if !balance.IsPositive() {
		return decimal.Zero, apperror.ErrNothingToWithdraw()
	}

	if err := s.ledgerRepo.Zero(ctx, dbTx, account, currency); err != nil {
		return decimal.Zero, apperror.InternalError(fmt.Errorf("zero ledger entry: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return decimal.Zero, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return balance, nil
}

func (s *LedgerServiceImpl) release(ctx context.Context, account string, currency domain.Currency, amount decimal.Decimal) error {
	if currency.IsNative() {
		return s.vault.Release(ctx, account, amount)
	}
	return s.tokens.Release(ctx, currency.Token, account, amount)
}

// restore is the compensating credit after a failed release. Losing it
// would lose funds, so a failure here is logged at error level for manual
// reconciliation.
func (s *LedgerServiceImpl) restore(ctx context.Context, account, currency string, amount decimal.Decimal) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		s.log.Error().Err(err).
			Str("account", account).
			Str("currency", currency).
			Str("amount", amount.String()).
			Msg("failed to begin compensating credit after failed release")
		return
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.ledgerRepo.Credit(ctx, dbTx, account, currency, amount); err != nil {
		s.log.Error().Err(err).
			Str("account", account).
			Str("currency", currency).
			Str("amount", amount.String()).
			Msg("compensating credit failed after failed release")
		return
	}
	if err := dbTx.Commit(ctx); err != nil {
		s.log.Error().Err(err).
			Str("account", account).
			Str("currency", currency).
			Str("amount", amount.String()).
			Msg("compensating credit commit failed after failed release")
	}
}

// GetBalances returns all pending balances for an account.
func (s *LedgerServiceImpl) GetBalances(ctx context.Context, account string) ([]domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.ListByAccount(ctx, account)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list balances: %w", err))
	}
	return entries, nil
}

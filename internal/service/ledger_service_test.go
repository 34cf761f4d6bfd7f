package service

import (
	"context"
	"errors"
	"testing"

	"nft-auction-engine/internal/core/domain"
	"nft-auction-engine/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type ledgerTestDeps struct {
	svc        *LedgerServiceImpl
	ledgerRepo *mocks.MockLedgerRepository
	tokens     *mocks.MockTokenCustody
	vault      *mocks.MockNativeVault
	transactor *mocks.MockDBTransactor
	clock      *mocks.MockClock
	ctrl       *gomock.Controller
}

func setupLedgerService(t *testing.T) *ledgerTestDeps {
	ctrl := gomock.NewController(t)
	d := &ledgerTestDeps{
		ledgerRepo: mocks.NewMockLedgerRepository(ctrl),
		tokens:     mocks.NewMockTokenCustody(ctrl),
		vault:      mocks.NewMockNativeVault(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		clock:      mocks.NewMockClock(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewLedgerService(d.ledgerRepo, d.tokens, d.vault, d.transactor, d.clock, zerolog.Nop())
	return d
}

func TestLedgerService_Withdraw_Native(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	amount := decimal.RequireFromString("1.5")

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.ledgerRepo.EXPECT().GetBalanceForUpdate(ctx, tx, "bob", "native").Return(amount, nil)
	d.ledgerRepo.EXPECT().Zero(ctx, tx, "bob", "native").Return(nil)
	d.vault.EXPECT().Release(ctx, "bob", amount).Return(nil)
	d.clock.EXPECT().Now().Return(testNow)

	receipt, err := d.svc.Withdraw(ctx, "bob", domain.NativeCurrency())
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, "bob", receipt.Account)
	assert.Equal(t, "native", receipt.Currency)
	assert.True(t, amount.Equal(receipt.Amount))
	assert.NotEmpty(t, receipt.ID)
}

func TestLedgerService_Withdraw_Token(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	amount := decimal.NewFromInt(3000)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.ledgerRepo.EXPECT().GetBalanceForUpdate(ctx, tx, "carol", "token:0xTOK").Return(amount, nil)
	d.ledgerRepo.EXPECT().Zero(ctx, tx, "carol", "token:0xTOK").Return(nil)
	d.tokens.EXPECT().Release(ctx, "0xTOK", "carol", amount).Return(nil)
	d.clock.EXPECT().Now().Return(testNow)

	receipt, err := d.svc.Withdraw(ctx, "carol", domain.TokenCurrency("0xTOK"))
	require.NoError(t, err)
	assert.True(t, amount.Equal(receipt.Amount))
}

func TestLedgerService_Withdraw_EmptyBalance(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.ledgerRepo.EXPECT().GetBalanceForUpdate(ctx, tx, "bob", "native").Return(decimal.Zero, nil)

	receipt, err := d.svc.Withdraw(ctx, "bob", domain.NativeCurrency())
	assert.Nil(t, receipt)
	assertAppError(t, err, "LED_001")
}

func TestLedgerService_Withdraw_ReleaseFailureRestoresBalance(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	debitTx := &mockTx{}
	restoreTx := &mockTx{}
	amount := decimal.NewFromInt(2)

	d.transactor.EXPECT().Begin(ctx).Return(debitTx, nil)
	d.ledgerRepo.EXPECT().GetBalanceForUpdate(ctx, debitTx, "bob", "native").Return(amount, nil)
	d.ledgerRepo.EXPECT().Zero(ctx, debitTx, "bob", "native").Return(nil)
	d.vault.EXPECT().Release(ctx, "bob", amount).Return(errors.New("vault outage"))
	// Compensating credit restores the zeroed balance.
	d.transactor.EXPECT().Begin(ctx).Return(restoreTx, nil)
	d.ledgerRepo.EXPECT().Credit(ctx, restoreTx, "bob", "native", amount).Return(nil)

	receipt, err := d.svc.Withdraw(ctx, "bob", domain.NativeCurrency())
	assert.Nil(t, receipt)
	assertAppError(t, err, "LED_002")
}

func TestLedgerService_GetBalances(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	entries := []domain.LedgerEntry{
		{Account: "bob", Currency: "native", Balance: decimal.NewFromInt(1)},
		{Account: "bob", Currency: "token:0xTOK", Balance: decimal.NewFromInt(500)},
	}
	d.ledgerRepo.EXPECT().ListByAccount(ctx, "bob").Return(entries, nil)

	got, err := d.svc.GetBalances(ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"nft-auction-engine/internal/core/domain"
	"nft-auction-engine/internal/core/ports"
	"nft-auction-engine/internal/core/ports/mocks"
	"nft-auction-engine/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type auctionTestDeps struct {
	svc         *AuctionServiceImpl
	auctionRepo *mocks.MockAuctionRepository
	ledgerRepo  *mocks.MockLedgerRepository
	stateRepo   *mocks.MockEngineStateRepository
	valuation   *mocks.MockValuationService
	assets      *mocks.MockAssetCustody
	tokens      *mocks.MockTokenCustody
	vault       *mocks.MockNativeVault
	transactor  *mocks.MockDBTransactor
	clock       *mocks.MockClock
	ctrl        *gomock.Controller
}

func setupAuctionService(t *testing.T) *auctionTestDeps {
	ctrl := gomock.NewController(t)
	d := &auctionTestDeps{
		auctionRepo: mocks.NewMockAuctionRepository(ctrl),
		ledgerRepo:  mocks.NewMockLedgerRepository(ctrl),
		stateRepo:   mocks.NewMockEngineStateRepository(ctrl),
		valuation:   mocks.NewMockValuationService(ctrl),
		assets:      mocks.NewMockAssetCustody(ctrl),
		tokens:      mocks.NewMockTokenCustody(ctrl),
		vault:       mocks.NewMockNativeVault(ctrl),
		transactor:  mocks.NewMockDBTransactor(ctrl),
		clock:       mocks.NewMockClock(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewAuctionService(
		d.auctionRepo, d.ledgerRepo, d.stateRepo, d.valuation,
		d.assets, d.tokens, d.vault, d.transactor, d.clock,
		zerolog.Nop(),
	)
	return d
}

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

// failingCommitTx refuses to commit, for exercising compensation paths.
type failingCommitTx struct{ pgx.Tx }

func (m *failingCommitTx) Rollback(_ context.Context) error { return nil }
func (m *failingCommitTx) Commit(_ context.Context) error   { return errors.New("commit refused") }

func assertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, expectedCode, appErr.Code)
}

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func openAuction(id int64) *domain.AuctionRecord {
	return &domain.AuctionRecord{
		ID:            id,
		Seller:        "alice",
		AssetContract: "0xNFT",
		AssetID:       "42",
		Deadline:      testNow.Add(time.Hour),
		LeadingBidUSD: decimal.Zero,
	}
}

func v1State() *domain.EngineState {
	return &domain.EngineState{Version: domain.VersionV1, AuctionCounter: 7}
}

// ==================== CreateAuction Tests ====================

func TestAuctionService_CreateAuction_Success(t *testing.T) {
	d := setupAuctionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	req := ports.CreateAuctionRequest{
		Seller:        "alice",
		AssetContract: "0xNFT",
		AssetID:       "42",
		Duration:      24 * time.Hour,
	}

	d.assets.EXPECT().OwnerOf(ctx, "0xNFT", "42").Return("alice", nil)
	d.assets.EXPECT().Pull(ctx, "0xNFT", "42", "alice").Return(nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.stateRepo.EXPECT().NextAuctionID(ctx, tx).Return(int64(8), nil)
	d.clock.EXPECT().Now().Return(testNow)
	d.auctionRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	record, err := d.svc.CreateAuction(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, int64(8), record.ID)
	assert.Equal(t, "alice", record.Seller)
	assert.Equal(t, testNow.Add(24*time.Hour), record.Deadline)
	assert.False(t, record.Ended)
	assert.False(t, record.HasBid())
}

func TestAuctionService_CreateAuction_NonPositiveDuration(t *testing.T) {
	d := setupAuctionService(t)
	defer d.ctrl.Finish()

	record, err := d.svc.CreateAuction(context.Background(), ports.CreateAuctionRequest{
		Seller: "alice", AssetContract: "0xNFT", AssetID: "42",
	})
	assert.Nil(t, record)
	assertAppError(t, err, "VAL_001")
}

func TestAuctionService_CreateAuction_NotOwner(t *testing.T) {
	d := setupAuctionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.assets.EXPECT().OwnerOf(ctx, "0xNFT", "42").Return("mallory", nil)

	record, err := d.svc.CreateAuction(ctx, ports.CreateAuctionRequest{
		Seller: "alice", AssetContract: "0xNFT", AssetID: "42", Duration: time.Hour,
	})
	assert.Nil(t, record)
	assertAppError(t, err, "AUC_006")
}

func TestAuctionService_CreateAuction_PullRejected(t *testing.T) {
	d := setupAuctionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.assets.EXPECT().OwnerOf(ctx, "0xNFT", "42").Return("alice", nil)
	d.assets.EXPECT().Pull(ctx, "0xNFT", "42", "alice").Return(errors.New("not approved"))

	record, err := d.svc.CreateAuction(ctx, ports.CreateAuctionRequest{
		Seller: "alice", AssetContract: "0xNFT", AssetID: "42", Duration: time.Hour,
	})
	assert.Nil(t, record)
	assertAppError(t, err, "AUC_006")
}

func TestAuctionService_CreateAuction_CompensatesEscrowOnDBFailure(t *testing.T) {
	d := setupAuctionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	d.assets.EXPECT().OwnerOf(ctx, "0xNFT", "42").Return("alice", nil)
	d.assets.EXPECT().Pull(ctx, "0xNFT", "42", "alice").Return(nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.stateRepo.EXPECT().NextAuctionID(ctx, tx).Return(int64(0), errors.New("db down"))
	// The escrowed asset goes back to the seller.
	d.assets.EXPECT().Release(ctx, "0xNFT", "42", "alice").Return(nil)

	record, err := d.svc.CreateAuction(ctx, ports.CreateAuctionRequest{
		Seller: "alice", AssetContract: "0xNFT", AssetID: "42", Duration: time.Hour,
	})
	assert.Nil(t, record)
	assertAppError(t, err, "SYS_001")
}

// ==================== PlaceBid Tests ====================

func TestAuctionService_PlaceBid_FirstBid_Native(t *testing.T) {
	d := setupAuctionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	auction := openAuction(1)
	amount := decimal.NewFromInt(1)
	usd := decimal.RequireFromString("200000000000") // 2000 USD at 1e-8

	req := ports.BidRequest{
		AuctionID: 1,
		Bidder:    "bob",
		Currency:  domain.NativeCurrency(),
		Amount:    amount,
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.auctionRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(auction, nil)
	d.clock.EXPECT().Now().Return(testNow)
	d.valuation.EXPECT().Valuate(ctx, req.Currency, amount).Return(usd, nil)
	d.stateRepo.EXPECT().GetForUpdate(ctx, tx).Return(v1State(), nil)
	d.vault.EXPECT().Pull(ctx, "bob", amount).Return(nil)
	d.auctionRepo.EXPECT().UpdateLeadingBid(ctx, tx, int64(1), domain.Bid{Currency: req.Currency, Amount: amount}, "bob", usd).Return(nil)

	bidder := "bob"
	updated := openAuction(1)
	updated.LeadingBid = &domain.Bid{Currency: req.Currency, Amount: amount}
	updated.LeadingBidder = &bidder
	updated.LeadingBidUSD = usd
	d.auctionRepo.EXPECT().GetByID(ctx, int64(1)).Return(updated, nil)

	result, err := d.svc.PlaceBid(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, usd.Equal(result.LeadingBidUSD))
	assert.Equal(t, "bob", *result.LeadingBidder)
}

func TestAuctionService_PlaceBid_OutbidCreditsPreviousLeader(t *testing.T) {
	d := setupAuctionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	// Bob leads with 1 native; Carol outbids with 3000 of token 0xTOK.
	bob := "bob"
	prevAmount := decimal.NewFromInt(1)
	auction := openAuction(1)
	auction.LeadingBid = &domain.Bid{Currency: domain.NativeCurrency(), Amount: prevAmount}
	auction.LeadingBidder = &bob
	auction.LeadingBidUSD = decimal.RequireFromString("200000000000")

	amount := decimal.NewFromInt(3000)
	usd := decimal.RequireFromString("300000000000")
	req := ports.BidRequest{
		AuctionID: 1,
		Bidder:    "carol",
		Currency:  domain.TokenCurrency("0xTOK"),
		Amount:    amount,
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.auctionRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(auction, nil)
	d.clock.EXPECT().Now().Return(testNow)
	d.valuation.EXPECT().Valuate(ctx, req.Currency, amount).Return(usd, nil)
	d.stateRepo.EXPECT().GetForUpdate(ctx, tx).Return(v1State(), nil)
	d.tokens.EXPECT().Pull(ctx, "0xTOK", "carol", amount).Return(nil)
	// Bob gets his native stake back in his own currency.
	d.ledgerRepo.EXPECT().Credit(ctx, tx, "bob", domain.NativeCurrencyKey, prevAmount).Return(nil)
	d.auctionRepo.EXPECT().UpdateLeadingBid(ctx, tx, int64(1), domain.Bid{Currency: req.Currency, Amount: amount}, "carol", usd).Return(nil)
	d.auctionRepo.EXPECT().GetByID(ctx, int64(1)).Return(auction, nil)

	_, err := d.svc.PlaceBid(ctx, req)
	require.NoError(t, err)
}

func TestAuctionService_PlaceBid_OutbidCreditsTokenLeaderInKind(t *testing.T) {
	d := setupAuctionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	// Carol leads with 2500 of token 0xTOK; Bob outbids with 2 native.
	carol := "carol"
	prevAmount := decimal.NewFromInt(2500)
	tokCurrency := domain.TokenCurrency("0xTOK")
	auction := openAuction(1)
	auction.LeadingBid = &domain.Bid{Currency: tokCurrency, Amount: prevAmount}
	auction.LeadingBidder = &carol
	auction.LeadingBidUSD = decimal.RequireFromString("250000000000")

	amount := decimal.NewFromInt(2)
	usd := decimal.RequireFromString("400000000000")
	req := ports.BidRequest{
		AuctionID: 1,
		Bidder:    "bob",
		Currency:  domain.NativeCurrency(),
		Amount:    amount,
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.auctionRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(auction, nil)
	d.clock.EXPECT().Now().Return(testNow)
	d.valuation.EXPECT().Valuate(ctx, req.Currency, amount).Return(usd, nil)
	d.stateRepo.EXPECT().GetForUpdate(ctx, tx).Return(v1State(), nil)
	d.vault.EXPECT().Pull(ctx, "bob", amount).Return(nil)
	// Carol gets her token stake back under its own currency key.
	d.ledgerRepo.EXPECT().Credit(ctx, tx, "carol", tokCurrency.Key(), prevAmount).Return(nil)
	d.auctionRepo.EXPECT().UpdateLeadingBid(ctx, tx, int64(1), domain.Bid{Currency: req.Currency, Amount: amount}, "bob", usd).Return(nil)
	d.auctionRepo.EXPECT().GetByID(ctx, int64(1)).Return(auction, nil)

	_, err := d.svc.PlaceBid(ctx, req)
	require.NoError(t, err)
}

func TestAuctionService_PlaceBid_AuctionPastDeadline(t *testing.T) {
	d := setupAuctionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	auction := openAuction(1)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.auctionRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(auction, nil)
	d.clock.EXPECT().Now().Return(auction.Deadline) // deadline itself is closed

	result, err := d.svc.PlaceBid(ctx, ports.BidRequest{
		AuctionID: 1, Bidder: "bob", Currency: domain.NativeCurrency(), Amount: decimal.NewFromInt(1),
	})
	assert.Nil(t, result)
	assertAppError(t, err, "AUC_001")
}

func TestAuctionService_PlaceBid_NotFound(t *testing.T) {
	d := setupAuctionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.auctionRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(99)).Return(nil, nil)

	result, err := d.svc.PlaceBid(ctx, ports.BidRequest{
		AuctionID: 99, Bidder: "bob", Currency: domain.NativeCurrency(), Amount: decimal.NewFromInt(1),
	})
	assert.Nil(t, result)
	assertAppError(t, err, "SYS_404")
}

func TestAuctionService_PlaceBid_EqualUSDRejected(t *testing.T) {
	d := setupAuctionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	bob := "bob"
	auction := openAuction(1)
	auction.LeadingBid = &domain.Bid{Currency: domain.NativeCurrency(), Amount: decimal.NewFromInt(1)}
	auction.LeadingBidder = &bob
	auction.LeadingBidUSD = decimal.RequireFromString("200000000000")

	amount := decimal.NewFromInt(2000)
	req := ports.BidRequest{AuctionID: 1, Bidder: "carol", Currency: domain.TokenCurrency("0xTOK"), Amount: amount}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.auctionRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(auction, nil)
	d.clock.EXPECT().Now().Return(testNow)
	// Same USD value as the current leader: no strict improvement.
	d.valuation.EXPECT().Valuate(ctx, req.Currency, amount).Return(decimal.RequireFromString("200000000000"), nil)
	d.stateRepo.EXPECT().GetForUpdate(ctx, tx).Return(v1State(), nil)

	result, err := d.svc.PlaceBid(ctx, req)
	assert.Nil(t, result)
	assertAppError(t, err, "AUC_004")
}

func TestAuctionService_PlaceBid_BelowFloorAfterUpgrade(t *testing.T) {
	d := setupAuctionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	auction := openAuction(1)
	amount := decimal.NewFromInt(1)

	state := &domain.EngineState{
		Version:   domain.VersionV2,
		MinBidUSD: decimal.RequireFromString("500000000000"), // 5000 USD
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.auctionRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(auction, nil)
	d.clock.EXPECT().Now().Return(testNow)
	d.valuation.EXPECT().Valuate(ctx, domain.NativeCurrency(), amount).Return(decimal.RequireFromString("200000000000"), nil)
	d.stateRepo.EXPECT().GetForUpdate(ctx, tx).Return(state, nil)

	result, err := d.svc.PlaceBid(ctx, ports.BidRequest{
		AuctionID: 1, Bidder: "bob", Currency: domain.NativeCurrency(), Amount: amount,
	})
	assert.Nil(t, result)
	assertAppError(t, err, "AUC_005")
}

func TestAuctionService_PlaceBid_FloorAppliesToFirstBid(t *testing.T) {
	d := setupAuctionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	auction := openAuction(1) // no previous bid, leading USD zero
	amount := decimal.NewFromInt(1)

	state := &domain.EngineState{Version: domain.VersionV2, MinBidUSD: decimal.RequireFromString("500000000000")}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.auctionRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(auction, nil)
	d.clock.EXPECT().Now().Return(testNow)
	d.valuation.EXPECT().Valuate(ctx, domain.NativeCurrency(), amount).Return(decimal.RequireFromString("100000000000"), nil)
	d.stateRepo.EXPECT().GetForUpdate(ctx, tx).Return(state, nil)

	_, err := d.svc.PlaceBid(ctx, ports.BidRequest{
		AuctionID: 1, Bidder: "bob", Currency: domain.NativeCurrency(), Amount: amount,
	})
	// Floor beats strict improvement even though the bid would exceed zero.
	assertAppError(t, err, "AUC_005")
}

func TestAuctionService_PlaceBid_ValuationErrorPropagates(t *testing.T) {
	d := setupAuctionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	auction := openAuction(1)
	amount := decimal.NewFromInt(5)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.auctionRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(auction, nil)
	d.clock.EXPECT().Now().Return(testNow)
	d.valuation.EXPECT().Valuate(ctx, domain.TokenCurrency("0xBAD"), amount).
		Return(decimal.Zero, apperror.ErrUnregisteredCurrency())

	result, err := d.svc.PlaceBid(ctx, ports.BidRequest{
		AuctionID: 1, Bidder: "bob", Currency: domain.TokenCurrency("0xBAD"), Amount: amount,
	})
	assert.Nil(t, result)
	assertAppError(t, err, "PRC_002")
}

func TestAuctionService_PlaceBid_PullFailure(t *testing.T) {
	d := setupAuctionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	auction := openAuction(1)
	amount := decimal.NewFromInt(1)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.auctionRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(auction, nil)
	d.clock.EXPECT().Now().Return(testNow)
	d.valuation.EXPECT().Valuate(ctx, domain.NativeCurrency(), amount).Return(decimal.RequireFromString("200000000000"), nil)
	d.stateRepo.EXPECT().GetForUpdate(ctx, tx).Return(v1State(), nil)
	d.vault.EXPECT().Pull(ctx, "bob", amount).Return(errors.New("insufficient funds"))

	result, err := d.svc.PlaceBid(ctx, ports.BidRequest{
		AuctionID: 1, Bidder: "bob", Currency: domain.NativeCurrency(), Amount: amount,
	})
	assert.Nil(t, result)
	assertAppError(t, err, "LED_002")
}

func TestAuctionService_PlaceBid_RefundsPullOnCommitPathFailure(t *testing.T) {
	d := setupAuctionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	auction := openAuction(1)
	amount := decimal.NewFromInt(1)
	usd := decimal.RequireFromString("200000000000")

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.auctionRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(auction, nil)
	d.clock.EXPECT().Now().Return(testNow)
	d.valuation.EXPECT().Valuate(ctx, domain.NativeCurrency(), amount).Return(usd, nil)
	d.stateRepo.EXPECT().GetForUpdate(ctx, tx).Return(v1State(), nil)
	d.vault.EXPECT().Pull(ctx, "bob", amount).Return(nil)
	d.auctionRepo.EXPECT().UpdateLeadingBid(ctx, tx, int64(1), gomock.Any(), "bob", usd).
		Return(errors.New("db down"))
	// Pulled funds go straight back to the bidder.
	d.vault.EXPECT().Release(ctx, "bob", amount).Return(nil)

	result, err := d.svc.PlaceBid(ctx, ports.BidRequest{
		AuctionID: 1, Bidder: "bob", Currency: domain.NativeCurrency(), Amount: amount,
	})
	assert.Nil(t, result)
	assertAppError(t, err, "SYS_001")
}

func TestAuctionService_PlaceBid_ReloadFailureWrapped(t *testing.T) {
	d := setupAuctionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	auction := openAuction(1)
	amount := decimal.NewFromInt(1)
	usd := decimal.RequireFromString("200000000000")

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.auctionRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(auction, nil)
	d.clock.EXPECT().Now().Return(testNow)
	d.valuation.EXPECT().Valuate(ctx, domain.NativeCurrency(), amount).Return(usd, nil)
	d.stateRepo.EXPECT().GetForUpdate(ctx, tx).Return(v1State(), nil)
	d.vault.EXPECT().Pull(ctx, "bob", amount).Return(nil)
	d.auctionRepo.EXPECT().UpdateLeadingBid(ctx, tx, int64(1), gomock.Any(), "bob", usd).Return(nil)
	d.auctionRepo.EXPECT().GetByID(ctx, int64(1)).Return(nil, errors.New("db down"))

	result, err := d.svc.PlaceBid(ctx, ports.BidRequest{
		AuctionID: 1, Bidder: "bob", Currency: domain.NativeCurrency(), Amount: amount,
	})
	assert.Nil(t, result)
	assertAppError(t, err, "SYS_001")
}

func TestAuctionService_PlaceBid_NonPositiveAmount(t *testing.T) {
	d := setupAuctionService(t)
	defer d.ctrl.Finish()

	result, err := d.svc.PlaceBid(context.Background(), ports.BidRequest{
		AuctionID: 1, Bidder: "bob", Currency: domain.NativeCurrency(), Amount: decimal.Zero,
	})
	assert.Nil(t, result)
	assertAppError(t, err, "VAL_001")
}

// ==================== EndAuction Tests ====================

func TestAuctionService_EndAuction_WithWinner(t *testing.T) {
	d := setupAuctionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	bob := "bob"
	amount := decimal.NewFromInt(1)
	auction := openAuction(1)
	auction.LeadingBid = &domain.Bid{Currency: domain.NativeCurrency(), Amount: amount}
	auction.LeadingBidder = &bob
	auction.LeadingBidUSD = decimal.RequireFromString("200000000000")

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.auctionRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(auction, nil)
	d.clock.EXPECT().Now().Return(auction.Deadline)
	d.auctionRepo.EXPECT().MarkEnded(ctx, tx, int64(1)).Return(nil)
	// Seller collects the winning amount through the ledger.
	d.ledgerRepo.EXPECT().Credit(ctx, tx, "alice", domain.NativeCurrencyKey, amount).Return(nil)
	// Asset goes to the winner.
	d.assets.EXPECT().Release(ctx, "0xNFT", "42", "bob").Return(nil)

	ended := openAuction(1)
	ended.Ended = true
	d.auctionRepo.EXPECT().GetByID(ctx, int64(1)).Return(ended, nil)

	result, err := d.svc.EndAuction(ctx, 1, "anyone")
	require.NoError(t, err)
	assert.True(t, result.Ended)
}

func TestAuctionService_EndAuction_NoBids_AssetBackToSeller(t *testing.T) {
	d := setupAuctionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	auction := openAuction(1)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.auctionRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(auction, nil)
	d.clock.EXPECT().Now().Return(auction.Deadline.Add(time.Minute))
	d.auctionRepo.EXPECT().MarkEnded(ctx, tx, int64(1)).Return(nil)
	d.assets.EXPECT().Release(ctx, "0xNFT", "42", "alice").Return(nil)
	d.auctionRepo.EXPECT().GetByID(ctx, int64(1)).Return(auction, nil)

	_, err := d.svc.EndAuction(ctx, 1, "anyone")
	require.NoError(t, err)
}

func TestAuctionService_EndAuction_BeforeDeadline(t *testing.T) {
	d := setupAuctionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	auction := openAuction(1)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.auctionRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(auction, nil)
	d.clock.EXPECT().Now().Return(testNow)

	result, err := d.svc.EndAuction(ctx, 1, "anyone")
	assert.Nil(t, result)
	assertAppError(t, err, "AUC_002")
}

func TestAuctionService_EndAuction_AlreadySettled(t *testing.T) {
	d := setupAuctionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	auction := openAuction(1)
	auction.Ended = true

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.auctionRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(auction, nil)
	d.clock.EXPECT().Now().Return(auction.Deadline.Add(time.Hour))

	result, err := d.svc.EndAuction(ctx, 1, "anyone")
	assert.Nil(t, result)
	assertAppError(t, err, "AUC_003")
}

func TestAuctionService_EndAuction_CustodyFailureRollsBack(t *testing.T) {
	d := setupAuctionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	bob := "bob"
	amount := decimal.NewFromInt(1)
	auction := openAuction(1)
	auction.LeadingBid = &domain.Bid{Currency: domain.NativeCurrency(), Amount: amount}
	auction.LeadingBidder = &bob

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.auctionRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(auction, nil)
	d.clock.EXPECT().Now().Return(auction.Deadline)
	d.auctionRepo.EXPECT().MarkEnded(ctx, tx, int64(1)).Return(nil)
	d.ledgerRepo.EXPECT().Credit(ctx, tx, "alice", domain.NativeCurrencyKey, amount).Return(nil)
	d.assets.EXPECT().Release(ctx, "0xNFT", "42", "bob").Return(errors.New("custody outage"))

	result, err := d.svc.EndAuction(ctx, 1, "anyone")
	assert.Nil(t, result)
	assertAppError(t, err, "LED_002")
}

func TestAuctionService_EndAuction_CommitFailureReEscrowsAsset(t *testing.T) {
	d := setupAuctionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &failingCommitTx{}
	bob := "bob"
	amount := decimal.NewFromInt(1)
	auction := openAuction(1)
	auction.LeadingBid = &domain.Bid{Currency: domain.NativeCurrency(), Amount: amount}
	auction.LeadingBidder = &bob

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.auctionRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(auction, nil)
	d.clock.EXPECT().Now().Return(auction.Deadline)
	d.auctionRepo.EXPECT().MarkEnded(ctx, tx, int64(1)).Return(nil)
	d.ledgerRepo.EXPECT().Credit(ctx, tx, "alice", domain.NativeCurrencyKey, amount).Return(nil)
	d.assets.EXPECT().Release(ctx, "0xNFT", "42", "bob").Return(nil)
	// The asset already left escrow; the aborted settlement pulls it back
	// so a retry can release it again.
	d.assets.EXPECT().Pull(ctx, "0xNFT", "42", "bob").Return(nil)

	result, err := d.svc.EndAuction(ctx, 1, "anyone")
	assert.Nil(t, result)
	assertAppError(t, err, "SYS_001")
}

func TestAuctionService_EndAuction_ReloadFailureWrapped(t *testing.T) {
	d := setupAuctionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	auction := openAuction(1)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.auctionRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(auction, nil)
	d.clock.EXPECT().Now().Return(auction.Deadline)
	d.auctionRepo.EXPECT().MarkEnded(ctx, tx, int64(1)).Return(nil)
	d.assets.EXPECT().Release(ctx, "0xNFT", "42", "alice").Return(nil)
	d.auctionRepo.EXPECT().GetByID(ctx, int64(1)).Return(nil, errors.New("db down"))

	result, err := d.svc.EndAuction(ctx, 1, "anyone")
	assert.Nil(t, result)
	assertAppError(t, err, "SYS_001")
}

// ==================== Read Path Tests ====================

func TestAuctionService_GetAuction_NotFound(t *testing.T) {
	d := setupAuctionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.auctionRepo.EXPECT().GetByID(ctx, int64(5)).Return(nil, nil)

	result, err := d.svc.GetAuction(ctx, 5)
	assert.Nil(t, result)
	assertAppError(t, err, "SYS_404")
}

func TestAuctionService_ListAuctions_ClampsPagination(t *testing.T) {
	d := setupAuctionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.auctionRepo.EXPECT().
		List(ctx, ports.AuctionListParams{Page: 1, PageSize: 20}).
		Return([]domain.AuctionRecord{}, int64(0), nil)

	_, total, err := d.svc.ListAuctions(ctx, ports.AuctionListParams{Page: 0, PageSize: 1000})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

package service

import (
	"context"
	"fmt"

	"nft-auction-engine/internal/core/domain"
	"nft-auction-engine/internal/core/ports"
	"nft-auction-engine/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// AuctionServiceImpl implements ports.AuctionService. Every operation is
// all-or-nothing: state mutation happens inside one database transaction
// with the auction row locked, and external pulls are compensated if the
// transaction cannot commit.
type AuctionServiceImpl struct {
	auctionRepo ports.AuctionRepository
	ledgerRepo  ports.LedgerRepository
	stateRepo   ports.EngineStateRepository
	valuation   ports.ValuationService
	assets      ports.AssetCustody
	tokens      ports.TokenCustody
	vault       ports.NativeVault
	transactor  ports.DBTransactor
	clock       ports.Clock
	log         zerolog.Logger
}

// NewAuctionService creates a new AuctionServiceImpl.
func NewAuctionService(
	auctionRepo ports.AuctionRepository,
	ledgerRepo ports.LedgerRepository,
	stateRepo ports.EngineStateRepository,
	valuation ports.ValuationService,
	assets ports.AssetCustody,
	tokens ports.TokenCustody,
	vault ports.NativeVault,
	transactor ports.DBTransactor,
	clock ports.Clock,
	log zerolog.Logger,
) *AuctionServiceImpl {
	return &AuctionServiceImpl{
		auctionRepo: auctionRepo,
		ledgerRepo:  ledgerRepo,
		stateRepo:   stateRepo,
		valuation:   valuation,
		assets:      assets,
		tokens:      tokens,
		vault:       vault,
		transactor:  transactor,
		clock:       clock,
		log:         log,
	}
}

// CreateAuction escrows the asset and opens a new auction. The caller must
// own the asset and must have pre-authorized the engine at the custody
// collaborator; both checks are delegated there.
func (s *AuctionServiceImpl) CreateAuction(ctx context.Context, req ports.CreateAuctionRequest) (*domain.AuctionRecord, error) {
	if req.Duration <= 0 {
		return nil, apperror.Validation("duration must be positive")
	}

	owner, err := s.assets.OwnerOf(ctx, req.AssetContract, req.AssetID)
	if err != nil {
		s.log.Warn().Err(err).
			Str("asset_contract", req.AssetContract).
			Str("asset_id", req.AssetID).
			Msg("owner lookup failed")
		return nil, apperror.ErrUnauthorized()
	}
	if owner != req.Seller {
		return nil, apperror.ErrUnauthorized()
	}

	// Pull the asset into escrow. Fails when the engine was not approved.
	if err := s.assets.Pull(ctx, req.AssetContract, req.AssetID, req.Seller); err != nil {
		s.log.Warn().Err(err).
			Str("asset_contract", req.AssetContract).
			Str("asset_id", req.AssetID).
			Msg("asset escrow pull rejected")
		return nil, apperror.ErrUnauthorized()
	}

	record, err := s.createRecord(ctx, req)
	if err != nil {
		// Compensate the escrow pull so a failed creation leaves state
		// exactly as before the call.
		if relErr := s.assets.Release(ctx, req.AssetContract, req.AssetID, req.Seller); relErr != nil {
			s.log.Error().Err(relErr).
				Str("asset_contract", req.AssetContract).
				Str("asset_id", req.AssetID).
				Msg("failed to return asset after aborted creation")
		}
		return nil, err
	}

	s.log.Info().
		Int64("auction_id", record.ID).
		Str("seller", record.Seller).
		Time("deadline", record.Deadline).
		Msg("auction created")

	return record, nil
}

func (s *AuctionServiceImpl) createRecord(ctx context.Context, req ports.CreateAuctionRequest) (*domain.AuctionRecord, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	id, err := s.stateRepo.NextAuctionID(ctx, dbTx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("allocate auction id: %w", err))
	}

	now := s.clock.Now()
	record := &domain.AuctionRecord{
		ID:            id,
		Seller:        req.Seller,
		AssetContract: req.AssetContract,
		AssetID:       req.AssetID,
		Deadline:      now.Add(req.Duration),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.auctionRepo.Create(ctx, dbTx, record); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create auction: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return record, nil
}

// PlaceBid runs the single acceptance rule for native and token bids.
// Check order is load-bearing: ended -> valuation -> floor -> strict
// improvement -> funds pull -> previous-leader credit -> overwrite.
func (s *AuctionServiceImpl) PlaceBid(ctx context.Context, req ports.BidRequest) (*domain.AuctionRecord, error) {
	if !req.Amount.IsPositive() {
		return nil, apperror.Validation("amount must be positive")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	auction, err := s.auctionRepo.GetByIDForUpdate(ctx, dbTx, req.AuctionID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock auction: %w", err))
	}
	if auction == nil {
		return nil, apperror.ErrNotFound("auction")
	}

	if !auction.IsOpen(s.clock.Now()) {
		return nil, apperror.ErrAuctionEnded()
	}

	// Exactly one valuation per bid attempt.
	usd, err := s.valuation.Valuate(ctx, req.Currency, req.Amount)
	if err != nil {
		return nil, err
	}

	// State is read under the same transaction so a concurrent upgrade
	// cannot change the floor mid-acceptance.
	state, err := s.stateRepo.GetForUpdate(ctx, dbTx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("read engine state: %w", err))
	}
	// The floor applies even to an auction's very first bid, ahead of the
	// strict-improvement rule.
	if state.MinBidActive() && usd.LessThan(state.MinBidUSD) {
		return nil, apperror.ErrBelowMinimumBid()
	}

	// Strict improvement: equal USD value does not supersede.
	if usd.LessThanOrEqual(auction.LeadingBidUSD) {
		return nil, apperror.ErrBidTooLow()
	}

	// Pull the offer into escrow before any state becomes visible.
	if err := s.pullFunds(ctx, req); err != nil {
		return nil, apperror.ErrTransferFailed(err)
	}

	if err := s.applyBid(ctx, dbTx, auction, req, usd); err != nil {
		// The pull already happened externally; hand the funds back so the
		// failed bid has no net effect.
		s.refundPulledFunds(ctx, req)
		return nil, err
	}

	s.log.Info().
		Int64("auction_id", auction.ID).
		Str("bidder", req.Bidder).
		Str("currency", req.Currency.Key()).
		Str("amount", req.Amount.String()).
		Str("usd", usd.String()).
		Msg("bid accepted")

	updated, err := s.auctionRepo.GetByID(ctx, auction.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("reload auction: %w", err))
	}
	return updated, nil
}

// applyBid credits the superseded leader and overwrites the leading bid,
// then commits.
func (s *AuctionServiceImpl) applyBid(ctx context.Context, dbTx pgx.Tx, auction *domain.AuctionRecord, req ports.BidRequest, usd decimal.Decimal) error {
	if auction.HasBid() {
		prev := *auction.LeadingBid
		if err := s.ledgerRepo.Credit(ctx, dbTx, *auction.LeadingBidder, prev.Currency.Key(), prev.Amount); err != nil {
			return apperror.InternalError(fmt.Errorf("credit superseded bidder: %w", err))
		}
	}

	newBid := domain.Bid{Currency: req.Currency, Amount: req.Amount}
	if err := s.auctionRepo.UpdateLeadingBid(ctx, dbTx, auction.ID, newBid, req.Bidder, usd); err != nil {
		return apperror.InternalError(fmt.Errorf("update leading bid: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}

func (s *AuctionServiceImpl) pullFunds(ctx context.Context, req ports.BidRequest) error {
	if req.Currency.IsNative() {
		return s.vault.Pull(ctx, req.Bidder, req.Amount)
	}
	return s.tokens.Pull(ctx, req.Currency.Token, req.Bidder, req.Amount)
}

func (s *AuctionServiceImpl) refundPulledFunds(ctx context.Context, req ports.BidRequest) {
	var err error
	if req.Currency.IsNative() {
		err = s.vault.Release(ctx, req.Bidder, req.Amount)
	} else {
		err = s.tokens.Release(ctx, req.Currency.Token, req.Bidder, req.Amount)
	}
	if err != nil {
		s.log.Error().Err(err).
			Int64("auction_id", req.AuctionID).
			Str("bidder", req.Bidder).
			Str("amount", req.Amount.String()).
			Msg("failed to refund pulled funds after aborted bid")
	}
}

// EndAuction settles an auction past its deadline. Permissionless: any
// caller may settle, so a stalling seller cannot block the winner.
func (s *AuctionServiceImpl) EndAuction(ctx context.Context, auctionID int64, caller string) (*domain.AuctionRecord, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	auction, err := s.auctionRepo.GetByIDForUpdate(ctx, dbTx, auctionID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock auction: %w", err))
	}
	if auction == nil {
		return nil, apperror.ErrNotFound("auction")
	}

	if s.clock.Now().Before(auction.Deadline) {
		return nil, apperror.ErrAuctionNotYetEnded()
	}
	if auction.Ended {
		return nil, apperror.ErrAlreadyEnded()
	}

	if err := s.auctionRepo.MarkEnded(ctx, dbTx, auctionID); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("mark ended: %w", err))
	}

	recipient := auction.Seller
	if auction.HasBid() {
		recipient = *auction.LeadingBidder
		bid := *auction.LeadingBid
		if err := s.ledgerRepo.Credit(ctx, dbTx, auction.Seller, bid.Currency.Key(), bid.Amount); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("credit seller: %w", err))
		}
	}

	// Asset leaves escrow inside the transaction scope: a custody failure
	// rolls the whole settlement back.
	if err := s.assets.Release(ctx, auction.AssetContract, auction.AssetID, recipient); err != nil {
		return nil, apperror.ErrTransferFailed(err)
	}

	if err := dbTx.Commit(ctx); err != nil {
		// The release already happened externally; pull the asset back into
		// escrow so the rolled-back settlement can be retried.
		if pullErr := s.assets.Pull(ctx, auction.AssetContract, auction.AssetID, recipient); pullErr != nil {
			s.log.Error().Err(pullErr).
				Int64("auction_id", auctionID).
				Str("asset_contract", auction.AssetContract).
				Str("asset_id", auction.AssetID).
				Str("holder", recipient).
				Msg("failed to re-escrow asset after aborted settlement")
		}
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Int64("auction_id", auctionID).
		Str("caller", caller).
		Str("asset_recipient", recipient).
		Bool("had_bid", auction.HasBid()).
		Msg("auction settled")

	updated, err := s.auctionRepo.GetByID(ctx, auctionID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("reload auction: %w", err))
	}
	return updated, nil
}

// GetAuction returns one auction record.
func (s *AuctionServiceImpl) GetAuction(ctx context.Context, auctionID int64) (*domain.AuctionRecord, error) {
	auction, err := s.auctionRepo.GetByID(ctx, auctionID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get auction: %w", err))
	}
	if auction == nil {
		return nil, apperror.ErrNotFound("auction")
	}
	return auction, nil
}

// ListAuctions returns a page of auction records.
func (s *AuctionServiceImpl) ListAuctions(ctx context.Context, params ports.AuctionListParams) ([]domain.AuctionRecord, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 100 {
		params.PageSize = 20
	}
	auctions, total, err := s.auctionRepo.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list auctions: %w", err))
	}
	return auctions, total, nil
}

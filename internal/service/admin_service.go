package service

import (
	"context"
	"fmt"

	"nft-auction-engine/internal/core/domain"
	"nft-auction-engine/internal/core/ports"
	"nft-auction-engine/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// AdminServiceImpl implements ports.AdminService: oracle bindings and the
// upgrade/versioning layer.
type AdminServiceImpl struct {
	bindingRepo ports.OracleBindingRepository
	stateRepo   ports.EngineStateRepository
	transactor  ports.DBTransactor
	clock       ports.Clock
	log         zerolog.Logger
}

// NewAdminService creates a new AdminServiceImpl.
func NewAdminService(
	bindingRepo ports.OracleBindingRepository,
	stateRepo ports.EngineStateRepository,
	transactor ports.DBTransactor,
	clock ports.Clock,
	log zerolog.Logger,
) *AdminServiceImpl {
	return &AdminServiceImpl{
		bindingRepo: bindingRepo,
		stateRepo:   stateRepo,
		transactor:  transactor,
		clock:       clock,
		log:         log,
	}
}

// RegisterBinding registers or updates a currency's oracle binding. Bids
// already priced keep their recorded USD value; only future valuations see
// the new feed.
func (s *AdminServiceImpl) RegisterBinding(ctx context.Context, req ports.RegisterBindingRequest) (*domain.PriceFeedBinding, error) {
	if req.FeedID == "" {
		return nil, apperror.Validation("feed_id is required")
	}
	if req.Decimals < 0 || req.Decimals > 18 {
		return nil, apperror.Validation("decimals must be between 0 and 18")
	}

	binding := &domain.PriceFeedBinding{
		Currency:  req.Currency.Key(),
		FeedID:    req.FeedID,
		Decimals:  req.Decimals,
		UpdatedAt: s.clock.Now(),
	}
	if err := s.bindingRepo.Upsert(ctx, binding); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("upsert binding: %w", err))
	}

	s.log.Info().
		Str("currency", binding.Currency).
		Str("feed_id", binding.FeedID).
		Int32("decimals", binding.Decimals).
		Msg("oracle binding registered")

	return binding, nil
}

// InitializeV2 activates the minimum-bid floor. Callable exactly once;
// existing auctions and balances are untouched. A zero floor is a valid,
// explicit "no floor" setting.
func (s *AdminServiceImpl) InitializeV2(ctx context.Context, minBidUSD decimal.Decimal) (*domain.EngineState, error) {
	if minBidUSD.IsNegative() {
		return nil, apperror.Validation("min_bid_usd must not be negative")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	state, err := s.stateRepo.GetForUpdate(ctx, dbTx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock engine state: %w", err))
	}
	if state.Version >= domain.VersionV2 {
		return nil, apperror.ErrAlreadyInitialized()
	}

	if err := s.stateRepo.UpgradeToV2(ctx, dbTx, minBidUSD); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("upgrade to v2: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("min_bid_usd", minBidUSD.String()).
		Msg("engine upgraded to v2")

	return s.GetState(ctx)
}

// SetMinBid updates the floor on an already-upgraded engine.
func (s *AdminServiceImpl) SetMinBid(ctx context.Context, minBidUSD decimal.Decimal) (*domain.EngineState, error) {
	if minBidUSD.IsNegative() {
		return nil, apperror.Validation("min_bid_usd must not be negative")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	state, err := s.stateRepo.GetForUpdate(ctx, dbTx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock engine state: %w", err))
	}
	if !state.MinBidActive() {
		return nil, apperror.Validation("minimum bid floor requires engine version 2")
	}

	if err := s.stateRepo.SetMinBid(ctx, dbTx, minBidUSD); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("set min bid: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("min_bid_usd", minBidUSD.String()).
		Msg("minimum bid floor updated")

	return s.GetState(ctx)
}

// GetState returns the current engine state (version, counter, floor).
func (s *AdminServiceImpl) GetState(ctx context.Context) (*domain.EngineState, error) {
	state, err := s.stateRepo.Get(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("read engine state: %w", err))
	}
	return state, nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"nft-auction-engine/internal/core/domain"
	"nft-auction-engine/internal/core/ports"
	"nft-auction-engine/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ValuationServiceImpl implements ports.ValuationService. It is pure with
// respect to ledger state: one oracle read, no side effects.
type ValuationServiceImpl struct {
	bindingRepo ports.OracleBindingRepository
	oracle      ports.PriceOracle
	clock       ports.Clock
	maxPriceAge time.Duration
	log         zerolog.Logger
}

// NewValuationService creates a new ValuationServiceImpl.
func NewValuationService(
	bindingRepo ports.OracleBindingRepository,
	oracle ports.PriceOracle,
	clock ports.Clock,
	maxPriceAge time.Duration,
	log zerolog.Logger,
) *ValuationServiceImpl {
	return &ValuationServiceImpl{
		bindingRepo: bindingRepo,
		oracle:      oracle,
		clock:       clock,
		maxPriceAge: maxPriceAge,
		log:         log,
	}
}

// Valuate converts amount units of currency into USD fixed-point with
// domain.USDDecimals precision:
//
//	usd = amount * price * 10^(USDDecimals - feedDecimals)
//
// truncated to whole USD-1e-8 units. Fails closed on unregistered
// currencies and on non-positive or stale quotes.
func (s *ValuationServiceImpl) Valuate(ctx context.Context, currency domain.Currency, amount decimal.Decimal) (decimal.Decimal, error) {
	binding, err := s.bindingRepo.GetByCurrency(ctx, currency.Key())
	if err != nil {
		return decimal.Zero, apperror.InternalError(fmt.Errorf("lookup oracle binding: %w", err))
	}
	if binding == nil {
		return decimal.Zero, apperror.ErrUnregisteredCurrency()
	}

	quote, err := s.oracle.LatestPrice(ctx, binding.FeedID)
	if err != nil {
		return decimal.Zero, apperror.InternalError(fmt.Errorf("read oracle %s: %w", binding.FeedID, err))
	}
	if quote == nil || !quote.Value.IsPositive() {
		s.log.Warn().
			Str("feed_id", binding.FeedID).
			Str("currency", currency.Key()).
			Msg("oracle reported non-positive price")
		return decimal.Zero, apperror.ErrInvalidPrice()
	}
	if s.maxPriceAge > 0 && s.clock.Now().Sub(quote.Timestamp) > s.maxPriceAge {
		s.log.Warn().
			Str("feed_id", binding.FeedID).
			Time("quote_at", quote.Timestamp).
			Msg("oracle quote is stale")
		return decimal.Zero, apperror.ErrInvalidPrice()
	}

	usd := amount.
		Mul(quote.Value).
		Shift(int32(domain.USDDecimals) - binding.Decimals).
		Truncate(0)

	return usd, nil
}

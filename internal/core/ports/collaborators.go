package ports

import (
	"context"

	"nft-auction-engine/internal/core/domain"

	"github.com/shopspring/decimal"
)

// AssetCustody is the non-fungible-asset collaborator. The engine must be
// pre-authorized by the owner before Pull succeeds.
type AssetCustody interface {
	OwnerOf(ctx context.Context, contract, assetID string) (string, error)
	// Pull transfers the asset from its owner into engine escrow.
	Pull(ctx context.Context, contract, assetID, from string) error
	// Release transfers the asset out of escrow to the recipient.
	Release(ctx context.Context, contract, assetID, to string) error
}

// TokenCustody is the fungible-token collaborator, one namespace per token
// contract address.
type TokenCustody interface {
	// Pull transfers amount of token from the payer into engine escrow.
	Pull(ctx context.Context, token, from string, amount decimal.Decimal) error
	// Release pushes amount of token from escrow to the recipient.
	Release(ctx context.Context, token, to string, amount decimal.Decimal) error
}

// NativeVault is the native-currency collaborator holding escrowed funds.
type NativeVault interface {
	Pull(ctx context.Context, from string, amount decimal.Decimal) error
	Release(ctx context.Context, to string, amount decimal.Decimal) error
}

// PriceOracle reads the latest quote for a feed. Quotes are untrusted:
// callers must reject non-positive and stale values.
type PriceOracle interface {
	LatestPrice(ctx context.Context, feedID string) (*domain.PriceQuote, error)
}

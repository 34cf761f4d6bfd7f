package ports

import (
	"context"
	"time"

	"nft-auction-engine/internal/core/domain"

	"github.com/shopspring/decimal"
)

// EncryptionService handles AES-256-GCM encryption/decryption of stored
// account secret keys.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SignatureService handles HMAC-SHA256 signing and verification of API
// requests.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
	BuildCanonicalString(method, path string, timestamp int64, nonce string, body string) string
}

// TokenService handles JWT token operations for the admin surface.
type TokenService interface {
	Generate(subject string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject string
}

// NonceStore manages nonce uniqueness for replay attack prevention.
type NonceStore interface {
	// CheckAndSet atomically checks if nonce exists, sets it if not.
	// Returns true if nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, account string, nonce string, ttl time.Duration) (bool, error)
}

// Clock supplies the ambient current time; expiry is evaluated lazily
// against it on each bid/settlement call.
type Clock interface {
	Now() time.Time
}

// --- Service Ports (Business Logic) ---

// ValuationService converts an offer into the internal USD fixed-point
// unit. Pure with respect to ledger state; called exactly once per bid
// attempt.
type ValuationService interface {
	Valuate(ctx context.Context, currency domain.Currency, amount decimal.Decimal) (decimal.Decimal, error)
}

// AuctionService drives the auction state machine.
type AuctionService interface {
	CreateAuction(ctx context.Context, req CreateAuctionRequest) (*domain.AuctionRecord, error)
	PlaceBid(ctx context.Context, req BidRequest) (*domain.AuctionRecord, error)
	EndAuction(ctx context.Context, auctionID int64, caller string) (*domain.AuctionRecord, error)
	GetAuction(ctx context.Context, auctionID int64) (*domain.AuctionRecord, error)
	ListAuctions(ctx context.Context, params AuctionListParams) ([]domain.AuctionRecord, int64, error)
}

// CreateAuctionRequest holds validated input for auction creation.
type CreateAuctionRequest struct {
	Seller        string
	AssetContract string
	AssetID       string
	Duration      time.Duration
}

// BidRequest holds validated input for a bid. Currency tags native vs.
// token offers; both funnel into one acceptance rule.
type BidRequest struct {
	AuctionID int64
	Bidder    string
	Currency  domain.Currency
	Amount    decimal.Decimal
}

// LedgerService exposes the pull-payment ledger.
type LedgerService interface {
	Withdraw(ctx context.Context, account string, currency domain.Currency) (*domain.WithdrawalReceipt, error)
	GetBalances(ctx context.Context, account string) ([]domain.LedgerEntry, error)
}

// AdminService owns the administrative surface: oracle bindings and the
// upgrade/versioning layer.
type AdminService interface {
	RegisterBinding(ctx context.Context, req RegisterBindingRequest) (*domain.PriceFeedBinding, error)
	InitializeV2(ctx context.Context, minBidUSD decimal.Decimal) (*domain.EngineState, error)
	SetMinBid(ctx context.Context, minBidUSD decimal.Decimal) (*domain.EngineState, error)
	GetState(ctx context.Context) (*domain.EngineState, error)
}

// RegisterBindingRequest binds a currency to an oracle feed.
type RegisterBindingRequest struct {
	Currency domain.Currency
	FeedID   string
	Decimals int32
}

// AuthService defines account registration and admin login.
type AuthService interface {
	Register(ctx context.Context, address string) (*RegisterResponse, error)
	AdminLogin(ctx context.Context, apiKey string) (string, time.Time, error) // token, expiry, error
}

// RegisterResponse holds the registration result shown once.
type RegisterResponse struct {
	Account   *domain.Account
	SecretKey string // Plaintext, shown only at registration
}

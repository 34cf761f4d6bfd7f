package dto

// RegisterRequest is the request body for account registration.
type RegisterRequest struct {
	Address string `json:"address" binding:"required,min=1,max=128"`
}

// RegisterResponse is the response body for successful registration. The
// secret key appears here exactly once.
type RegisterResponse struct {
	AccountID string `json:"account_id"`
	Address   string `json:"address"`
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
}

// AdminLoginRequest is the request body for admin login.
type AdminLoginRequest struct {
	APIKey string `json:"api_key" binding:"required"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// CreateAuctionRequest is the request body for listing an asset.
type CreateAuctionRequest struct {
	AssetContract   string `json:"asset_contract" binding:"required,max=128,safe_id"`
	AssetID         string `json:"asset_id" binding:"required,max=128,safe_id"`
	DurationSeconds int64  `json:"duration_seconds" binding:"required,gt=0"`
}

// BidRequest is the request body for placing a bid. Currency is the
// canonical key: "native" or "token:<address>". Amount is a decimal
// string in the bid currency's own unit.
type BidRequest struct {
	Currency string `json:"currency" binding:"required,currency_key"`
	Amount   string `json:"amount" binding:"required"`
}

// WithdrawRequest is the request body for a ledger withdrawal.
type WithdrawRequest struct {
	Currency string `json:"currency" binding:"required,currency_key"`
}

// RegisterBindingRequest is the admin request body for binding a currency
// to a price feed.
type RegisterBindingRequest struct {
	Currency string `json:"currency" binding:"required,currency_key"`
	FeedID   string `json:"feed_id" binding:"required,max=128"`
	Decimals int32  `json:"decimals" binding:"gte=0,lte=18"`
}

// InitializeV2Request is the admin request body for the one-shot upgrade.
type InitializeV2Request struct {
	MinBidUSD string `json:"min_bid_usd" binding:"required"`
}

// SetMinBidRequest is the admin request body for updating the floor.
type SetMinBidRequest struct {
	MinBidUSD string `json:"min_bid_usd" binding:"required"`
}

// BidResponse describes a bid in its own currency unit.
type BidResponse struct {
	Currency string `json:"currency"`
	Amount   string `json:"amount"`
}

// AuctionResponse is the response body for auction queries.
type AuctionResponse struct {
	ID            int64        `json:"id"`
	Seller        string       `json:"seller"`
	AssetContract string       `json:"asset_contract"`
	AssetID       string       `json:"asset_id"`
	Deadline      string       `json:"deadline"`
	Ended         bool         `json:"ended"`
	LeadingBid    *BidResponse `json:"leading_bid,omitempty"`
	LeadingBidder *string      `json:"leading_bidder,omitempty"`
	LeadingBidUSD string       `json:"leading_bid_usd"`
	CreatedAt     string       `json:"created_at"`
}

// AuctionListResponse wraps a paginated auction list.
type AuctionListResponse struct {
	Items    []AuctionResponse `json:"items"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// BalanceResponse is one pull-payment ledger balance.
type BalanceResponse struct {
	Currency string `json:"currency"`
	Balance  string `json:"balance"`
}

// WithdrawalResponse is the response body for a completed withdrawal.
type WithdrawalResponse struct {
	ID        string `json:"id"`
	Currency  string `json:"currency"`
	Amount    string `json:"amount"`
	CreatedAt string `json:"created_at"`
}

// BindingResponse is the response body for an oracle binding.
type BindingResponse struct {
	Currency  string `json:"currency"`
	FeedID    string `json:"feed_id"`
	Decimals  int32  `json:"decimals"`
	UpdatedAt string `json:"updated_at"`
}

// EngineStateResponse is the response body for the engine state.
type EngineStateResponse struct {
	Version        int    `json:"version"`
	AuctionCounter int64  `json:"auction_counter"`
	MinBidUSD      string `json:"min_bid_usd"`
}

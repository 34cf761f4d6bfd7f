package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuctionRecord is one listed asset under escrow. IDs are allocated from a
// monotonic counter and never reused. Seller, asset identity and deadline
// are immutable after creation; Ended transitions one way.
type AuctionRecord struct {
	ID            int64           `json:"id"`
	Seller        string          `json:"seller"`
	AssetContract string          `json:"asset_contract"`
	AssetID       string          `json:"asset_id"`
	Deadline      time.Time       `json:"deadline"`
	Ended         bool            `json:"ended"`
	LeadingBid    *Bid            `json:"leading_bid,omitempty"`
	LeadingBidder *string         `json:"leading_bidder,omitempty"`
	LeadingBidUSD decimal.Decimal `json:"leading_bid_usd"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// IsOpen reports whether the auction still accepts bids at the given time.
func (a *AuctionRecord) IsOpen(now time.Time) bool {
	return !a.Ended && now.Before(a.Deadline)
}

// HasBid reports whether any bid has ever been accepted.
func (a *AuctionRecord) HasBid() bool {
	return a.LeadingBidder != nil && a.LeadingBid != nil
}

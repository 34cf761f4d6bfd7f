package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Engine schema versions. VersionV2 adds the minimum-bid floor; enforcement
// is gated on the version marker, never on the floor value, so a zero floor
// post-upgrade is an explicit "no floor".
const (
	VersionV1 = 1
	VersionV2 = 2
)

// EngineState is the process-wide configuration row: schema version, the
// auction ID counter and the post-upgrade minimum bid in USD fixed-point.
type EngineState struct {
	Version        int             `json:"version"`
	AuctionCounter int64           `json:"auction_counter"`
	MinBidUSD      decimal.Decimal `json:"min_bid_usd"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// MinBidActive reports whether the minimum-bid floor feature is enabled.
func (s *EngineState) MinBidActive() bool {
	return s.Version >= VersionV2
}

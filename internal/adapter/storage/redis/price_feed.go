package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"nft-auction-engine/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// PriceFeedStore implements ports.PriceOracle against Redis hashes written
// by the off-process price feeder. One hash per feed:
//
//	HSET price:<feed_id> value <fixed-point integer> decimals <n> updated_at <unix seconds>
//
// A missing feed is not an infrastructure error; it surfaces as a nil quote
// and the valuation layer rejects the bid.
type PriceFeedStore struct {
	client *goredis.Client
	prefix string
}

// NewPriceFeedStore creates a new Redis-backed price feed reader.
func NewPriceFeedStore(client *goredis.Client) *PriceFeedStore {
	return &PriceFeedStore{
		client: client,
		prefix: "price:",
	}
}

// LatestPrice reads the most recent quote for a feed.
func (s *PriceFeedStore) LatestPrice(ctx context.Context, feedID string) (*domain.PriceQuote, error) {
	fields, err := s.client.HGetAll(ctx, s.prefix+feedID).Result()
	if err != nil {
		return nil, fmt.Errorf("redis price read %s: %w", feedID, err)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	value, err := decimal.NewFromString(fields["value"])
	if err != nil {
		return nil, fmt.Errorf("parse price value %q for %s: %w", fields["value"], feedID, err)
	}
	decimals, err := strconv.ParseInt(fields["decimals"], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("parse price decimals %q for %s: %w", fields["decimals"], feedID, err)
	}
	updatedAt, err := strconv.ParseInt(fields["updated_at"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse price updated_at %q for %s: %w", fields["updated_at"], feedID, err)
	}

	return &domain.PriceQuote{
		Value:     value,
		Decimals:  int32(decimals),
		Timestamp: time.Unix(updatedAt, 0).UTC(),
	}, nil
}

// PublishPrice writes a quote for a feed. Used by the feeder process and by
// integration tests.
func (s *PriceFeedStore) PublishPrice(ctx context.Context, feedID string, q domain.PriceQuote) error {
	err := s.client.HSet(ctx, s.prefix+feedID, map[string]any{
		"value":      q.Value.String(),
		"decimals":   strconv.FormatInt(int64(q.Decimals), 10),
		"updated_at": strconv.FormatInt(q.Timestamp.Unix(), 10),
	}).Err()
	if err != nil {
		return fmt.Errorf("redis price publish %s: %w", feedID, err)
	}
	return nil
}

package postgres

import (
	"context"
	"testing"
	"time"

	"nft-auction-engine/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stateRow(version int, counter int64, minBid string) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"version", "auction_counter", "min_bid_usd", "updated_at"}).
		AddRow(version, counter, minBid, time.Now().UTC())
}

func TestStateRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStateRepo(mock)

	mock.ExpectQuery("SELECT version, auction_counter, min_bid_usd.+ FROM engine_state").
		WillReturnRows(stateRow(domain.VersionV1, 7, "0"))

	state, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.VersionV1, state.Version)
	assert.Equal(t, int64(7), state.AuctionCounter)
	assert.False(t, state.MinBidActive())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStateRepo_NextAuctionID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStateRepo(mock)

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE engine_state SET auction_counter").
		WillReturnRows(pgxmock.NewRows([]string{"auction_counter"}).AddRow(int64(8)))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	id, err := repo.NextAuctionID(context.Background(), tx)
	require.NoError(t, err)
	assert.Equal(t, int64(8), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStateRepo_UpgradeToV2(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStateRepo(mock)
	floor := decimal.RequireFromString("100000000000")

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE engine_state SET version").
		WithArgs(domain.VersionV2, floor.String()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpgradeToV2(context.Background(), tx, floor)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStateRepo_SetMinBid(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStateRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE engine_state SET min_bid_usd").
		WithArgs("700000000000").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.SetMinBid(context.Background(), tx, decimal.RequireFromString("700000000000"))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

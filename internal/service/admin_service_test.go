package service

import (
	"context"
	"testing"

	"nft-auction-engine/internal/core/domain"
	"nft-auction-engine/internal/core/ports"
	"nft-auction-engine/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type adminTestDeps struct {
	svc         *AdminServiceImpl
	bindingRepo *mocks.MockOracleBindingRepository
	stateRepo   *mocks.MockEngineStateRepository
	transactor  *mocks.MockDBTransactor
	clock       *mocks.MockClock
	ctrl        *gomock.Controller
}

func setupAdminService(t *testing.T) *adminTestDeps {
	ctrl := gomock.NewController(t)
	d := &adminTestDeps{
		bindingRepo: mocks.NewMockOracleBindingRepository(ctrl),
		stateRepo:   mocks.NewMockEngineStateRepository(ctrl),
		transactor:  mocks.NewMockDBTransactor(ctrl),
		clock:       mocks.NewMockClock(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewAdminService(d.bindingRepo, d.stateRepo, d.transactor, d.clock, zerolog.Nop())
	return d
}

func TestAdminService_RegisterBinding_Success(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.clock.EXPECT().Now().Return(testNow)
	d.bindingRepo.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)

	binding, err := d.svc.RegisterBinding(ctx, ports.RegisterBindingRequest{
		Currency: domain.TokenCurrency("0xTOK"),
		FeedID:   "tok-usd",
		Decimals: 8,
	})
	require.NoError(t, err)
	assert.Equal(t, "token:0xTOK", binding.Currency)
	assert.Equal(t, "tok-usd", binding.FeedID)
	assert.Equal(t, int32(8), binding.Decimals)
}

func TestAdminService_RegisterBinding_MissingFeed(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.RegisterBinding(context.Background(), ports.RegisterBindingRequest{
		Currency: domain.NativeCurrency(),
	})
	assertAppError(t, err, "VAL_001")
}

func TestAdminService_RegisterBinding_DecimalsOutOfRange(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.RegisterBinding(context.Background(), ports.RegisterBindingRequest{
		Currency: domain.NativeCurrency(),
		FeedID:   "native-usd",
		Decimals: 19,
	})
	assertAppError(t, err, "VAL_001")
}

func TestAdminService_InitializeV2_Success(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	floor := decimal.RequireFromString("100000000000")

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.stateRepo.EXPECT().GetForUpdate(ctx, tx).Return(&domain.EngineState{Version: domain.VersionV1}, nil)
	d.stateRepo.EXPECT().UpgradeToV2(ctx, tx, floor).Return(nil)
	d.stateRepo.EXPECT().Get(ctx).Return(&domain.EngineState{
		Version: domain.VersionV2, MinBidUSD: floor,
	}, nil)

	state, err := d.svc.InitializeV2(ctx, floor)
	require.NoError(t, err)
	assert.Equal(t, domain.VersionV2, state.Version)
	assert.True(t, floor.Equal(state.MinBidUSD))
}

func TestAdminService_InitializeV2_SecondCallRejected(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.stateRepo.EXPECT().GetForUpdate(ctx, tx).Return(&domain.EngineState{Version: domain.VersionV2}, nil)

	_, err := d.svc.InitializeV2(ctx, decimal.Zero)
	assertAppError(t, err, "UPG_001")
}

func TestAdminService_InitializeV2_NegativeFloor(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.InitializeV2(context.Background(), decimal.NewFromInt(-1))
	assertAppError(t, err, "VAL_001")
}

func TestAdminService_InitializeV2_ZeroFloorAllowed(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.stateRepo.EXPECT().GetForUpdate(ctx, tx).Return(&domain.EngineState{Version: domain.VersionV1}, nil)
	d.stateRepo.EXPECT().UpgradeToV2(ctx, tx, decimal.Zero).Return(nil)
	d.stateRepo.EXPECT().Get(ctx).Return(&domain.EngineState{Version: domain.VersionV2}, nil)

	state, err := d.svc.InitializeV2(ctx, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, state.MinBidActive())
}

func TestAdminService_SetMinBid_RequiresV2(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.stateRepo.EXPECT().GetForUpdate(ctx, tx).Return(&domain.EngineState{Version: domain.VersionV1}, nil)

	_, err := d.svc.SetMinBid(ctx, decimal.NewFromInt(100))
	assertAppError(t, err, "VAL_001")
}

func TestAdminService_SetMinBid_Success(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	floor := decimal.RequireFromString("700000000000")

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.stateRepo.EXPECT().GetForUpdate(ctx, tx).Return(&domain.EngineState{Version: domain.VersionV2}, nil)
	d.stateRepo.EXPECT().SetMinBid(ctx, tx, floor).Return(nil)
	d.stateRepo.EXPECT().Get(ctx).Return(&domain.EngineState{
		Version: domain.VersionV2, MinBidUSD: floor,
	}, nil)

	state, err := d.svc.SetMinBid(ctx, floor)
	require.NoError(t, err)
	assert.True(t, floor.Equal(state.MinBidUSD))
}

package service

import (
	"context"
	"errors"
	"testing"

	"nft-auction-engine/internal/core/domain"
	"nft-auction-engine/internal/core/ports/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type authTestDeps struct {
	svc         *AuthServiceImpl
	accountRepo *mocks.MockAccountRepository
	encSvc      *mocks.MockEncryptionService
	tokenSvc    *mocks.MockTokenService
	ctrl        *gomock.Controller
}

func setupAuthService(t *testing.T, adminHash string) *authTestDeps {
	ctrl := gomock.NewController(t)
	d := &authTestDeps{
		accountRepo: mocks.NewMockAccountRepository(ctrl),
		encSvc:      mocks.NewMockEncryptionService(ctrl),
		tokenSvc:    mocks.NewMockTokenService(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewAuthService(d.accountRepo, d.encSvc, d.tokenSvc, adminHash)
	return d
}

func TestAuthService_Register_Success(t *testing.T) {
	d := setupAuthService(t, "")
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.accountRepo.EXPECT().GetByAddress(ctx, "0xBIDDER").Return(nil, nil)
	d.encSvc.EXPECT().Encrypt(gomock.Any()).Return("enc_secret", nil)

	var created *domain.Account
	d.accountRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *domain.Account) error {
			created = a
			return nil
		})

	resp, err := d.svc.Register(ctx, "0xBIDDER")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "0xBIDDER", resp.Account.Address)
	// 16 random bytes, hex encoded.
	assert.Len(t, resp.Account.AccessKey, 32)
	// 32 random bytes, hex encoded; returned in plaintext exactly once.
	assert.Len(t, resp.SecretKey, 64)
	require.NotNil(t, created)
	assert.Equal(t, "enc_secret", created.SecretKeyEnc)
}

func TestAuthService_Register_EmptyAddress(t *testing.T) {
	d := setupAuthService(t, "")
	defer d.ctrl.Finish()

	resp, err := d.svc.Register(context.Background(), "")
	assert.Nil(t, resp)
	assertAppError(t, err, "VAL_001")
}

func TestAuthService_Register_DuplicateAddress(t *testing.T) {
	d := setupAuthService(t, "")
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.accountRepo.EXPECT().GetByAddress(ctx, "0xBIDDER").Return(&domain.Account{Address: "0xBIDDER"}, nil)

	resp, err := d.svc.Register(ctx, "0xBIDDER")
	assert.Nil(t, resp)
	assertAppError(t, err, "AUTH_003")
}

func TestAuthService_Register_EncryptionFailure(t *testing.T) {
	d := setupAuthService(t, "")
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.accountRepo.EXPECT().GetByAddress(ctx, "0xBIDDER").Return(nil, nil)
	d.encSvc.EXPECT().Encrypt(gomock.Any()).Return("", errors.New("kms down"))

	resp, err := d.svc.Register(ctx, "0xBIDDER")
	assert.Nil(t, resp)
	assertAppError(t, err, "SYS_002")
}

func TestAuthService_AdminLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("super-secret"), bcrypt.MinCost)
	require.NoError(t, err)

	d := setupAuthService(t, string(hash))
	defer d.ctrl.Finish()

	d.tokenSvc.EXPECT().Generate("admin").Return("jwt-token", testNow, nil)

	token, expiry, err := d.svc.AdminLogin(context.Background(), "super-secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
	assert.Equal(t, testNow, expiry)
}

func TestAuthService_AdminLogin_WrongKey(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("super-secret"), bcrypt.MinCost)
	require.NoError(t, err)

	d := setupAuthService(t, string(hash))
	defer d.ctrl.Finish()

	token, _, err := d.svc.AdminLogin(context.Background(), "guess")
	assert.Empty(t, token)
	assertAppError(t, err, "AUTH_001")
}

func TestAuthService_AdminLogin_NoHashConfigured(t *testing.T) {
	d := setupAuthService(t, "")
	defer d.ctrl.Finish()

	token, _, err := d.svc.AdminLogin(context.Background(), "anything")
	assert.Empty(t, token)
	assertAppError(t, err, "AUTH_001")
}

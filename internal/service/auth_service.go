package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"nft-auction-engine/internal/core/domain"
	"nft-auction-engine/internal/core/ports"
	"nft-auction-engine/pkg/apperror"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// adminSubject is the JWT subject for the administrative capability.
const adminSubject = "admin"

// AuthServiceImpl implements ports.AuthService: account registration for
// bidders/sellers and login for the administrator.
type AuthServiceImpl struct {
	accountRepo     ports.AccountRepository
	encSvc          ports.EncryptionService
	tokenSvc        ports.TokenService
	adminAPIKeyHash string // bcrypt hash from configuration
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	accountRepo ports.AccountRepository,
	encSvc ports.EncryptionService,
	tokenSvc ports.TokenService,
	adminAPIKeyHash string,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		accountRepo:     accountRepo,
		encSvc:          encSvc,
		tokenSvc:        tokenSvc,
		adminAPIKeyHash: adminAPIKeyHash,
	}
}

// Register creates an account for a custody address and issues its API key
// pair. The secret key is returned in plaintext exactly once.
func (s *AuthServiceImpl) Register(ctx context.Context, address string) (*ports.RegisterResponse, error) {
	if address == "" {
		return nil, apperror.Validation("address is required")
	}

	existing, err := s.accountRepo.GetByAddress(ctx, address)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup address: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrAddressExists()
	}

	accessKey, err := randomHex(16)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate access key: %w", err))
	}
	secretKey, err := randomHex(32)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate secret key: %w", err))
	}

	secretEnc, err := s.encSvc.Encrypt(secretKey)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("encrypt secret key: %w", err))
	}

	account := &domain.Account{
		ID:           uuid.New(),
		Address:      address,
		AccessKey:    accessKey,
		SecretKeyEnc: secretEnc,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create account: %w", err))
	}

	return &ports.RegisterResponse{
		Account:   account,
		SecretKey: secretKey,
	}, nil
}

// AdminLogin verifies the admin API key and issues a JWT for the
// administrative surface.
func (s *AuthServiceImpl) AdminLogin(ctx context.Context, apiKey string) (string, time.Time, error) {
	if s.adminAPIKeyHash == "" {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.adminAPIKeyHash), []byte(apiKey)); err != nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.tokenSvc.Generate(adminSubject)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}
	return token, expiry, nil
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

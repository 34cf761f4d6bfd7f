package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Auction State Machine (AUC) ----

func ErrAuctionEnded() *AppError {
	return New("AUC_001", "Auction has ended, no further bids accepted", http.StatusConflict)
}

func ErrAuctionNotYetEnded() *AppError {
	return New("AUC_002", "Auction deadline has not been reached", http.StatusConflict)
}

func ErrAlreadyEnded() *AppError {
	return New("AUC_003", "Auction has already been settled", http.StatusConflict)
}

func ErrBidTooLow() *AppError {
	return New("AUC_004", "Bid does not exceed the current leading bid", http.StatusUnprocessableEntity)
}

func ErrBelowMinimumBid() *AppError {
	return New("AUC_005", "Bid is below the minimum bid floor", http.StatusUnprocessableEntity)
}

func ErrUnauthorized() *AppError {
	return New("AUC_006", "Caller does not own or has not approved the asset", http.StatusForbidden)
}

// ---- Bid Valuation (PRC) ----

func ErrInvalidPrice() *AppError {
	return New("PRC_001", "Oracle reported an invalid or stale price", http.StatusUnprocessableEntity)
}

func ErrUnregisteredCurrency() *AppError {
	return New("PRC_002", "No oracle binding registered for currency", http.StatusBadRequest)
}

// ---- Pending-Balance Ledger (LED) ----

func ErrNothingToWithdraw() *AppError {
	return New("LED_001", "No pending balance to withdraw", http.StatusConflict)
}

func ErrTransferFailed(err error) *AppError {
	return Wrap("LED_002", "External transfer failed", http.StatusBadGateway, err)
}

// ---- Upgrade / Versioning (UPG) ----

func ErrAlreadyInitialized() *AppError {
	return New("UPG_001", "Upgrade initializer has already been called", http.StatusConflict)
}

// ---- Security & Authentication (SEC) ----

func ErrInvalidAccessKey() *AppError {
	return New("SEC_001", "Invalid access key", http.StatusUnauthorized)
}

func ErrInvalidSignature() *AppError {
	return New("SEC_002", "Invalid signature", http.StatusUnauthorized)
}

func ErrTimestampExpired() *AppError {
	return New("SEC_003", "Request timestamp expired", http.StatusForbidden)
}

func ErrNonceUsed() *AppError {
	return New("SEC_004", "Nonce has already been used", http.StatusForbidden)
}

// ---- Admin Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrAddressExists() *AppError {
	return New("AUTH_003", "Address is already registered", http.StatusConflict)
}

// ---- System & Infrastructure (SYS) ----

func ErrNotFound(entity string) *AppError {
	return New("SYS_404", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_002", "Encryption service failure", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

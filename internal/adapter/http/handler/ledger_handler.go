package handler

import (
	"nft-auction-engine/internal/adapter/http/dto"
	"nft-auction-engine/internal/core/domain"
	"nft-auction-engine/internal/core/ports"
	"nft-auction-engine/pkg/apperror"
	"nft-auction-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// LedgerHandler handles pull-payment endpoints.
type LedgerHandler struct {
	ledgerSvc ports.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerSvc ports.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerSvc: ledgerSvc}
}

// Withdraw handles POST /api/v1/ledger/withdrawals.
func (h *LedgerHandler) Withdraw(c *gin.Context) {
	account, ok := callerAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidAccessKey())
		return
	}

	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	currency, err := domain.ParseCurrencyKey(req.Currency)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	receipt, err := h.ledgerSvc.Withdraw(c.Request.Context(), account, currency)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WithdrawalResponse{
		ID:        receipt.ID.String(),
		Currency:  receipt.Currency,
		Amount:    receipt.Amount.String(),
		CreatedAt: receipt.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// GetBalances handles GET /api/v1/ledger/balances.
func (h *LedgerHandler) GetBalances(c *gin.Context) {
	account, ok := callerAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidAccessKey())
		return
	}

	entries, err := h.ledgerSvc.GetBalances(c.Request.Context(), account)
	if err != nil {
		response.Error(c, err)
		return
	}

	balances := make([]dto.BalanceResponse, 0, len(entries))
	for _, e := range entries {
		balances = append(balances, dto.BalanceResponse{
			Currency: e.Currency,
			Balance:  e.Balance.String(),
		})
	}

	response.OK(c, balances)
}

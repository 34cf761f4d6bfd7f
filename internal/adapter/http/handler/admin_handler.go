package handler

import (
	"nft-auction-engine/internal/adapter/http/dto"
	"nft-auction-engine/internal/core/domain"
	"nft-auction-engine/internal/core/ports"
	"nft-auction-engine/pkg/apperror"
	"nft-auction-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AdminHandler handles the administrative surface: oracle bindings and the
// upgrade/versioning layer.
type AdminHandler struct {
	adminSvc ports.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminSvc ports.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

// RegisterBinding handles POST /api/v1/admin/bindings.
func (h *AdminHandler) RegisterBinding(c *gin.Context) {
	var req dto.RegisterBindingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	currency, err := domain.ParseCurrencyKey(req.Currency)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	binding, err := h.adminSvc.RegisterBinding(c.Request.Context(), ports.RegisterBindingRequest{
		Currency: currency,
		FeedID:   req.FeedID,
		Decimals: req.Decimals,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toBindingResponse(binding))
}

// InitializeV2 handles POST /api/v1/admin/upgrade.
func (h *AdminHandler) InitializeV2(c *gin.Context) {
	var req dto.InitializeV2Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	minBid, err := decimal.NewFromString(req.MinBidUSD)
	if err != nil {
		response.Error(c, apperror.Validation("min_bid_usd must be a decimal string"))
		return
	}

	state, err := h.adminSvc.InitializeV2(c.Request.Context(), minBid)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toEngineStateResponse(state))
}

// SetMinBid handles PUT /api/v1/admin/min-bid.
func (h *AdminHandler) SetMinBid(c *gin.Context) {
	var req dto.SetMinBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	minBid, err := decimal.NewFromString(req.MinBidUSD)
	if err != nil {
		response.Error(c, apperror.Validation("min_bid_usd must be a decimal string"))
		return
	}

	state, err := h.adminSvc.SetMinBid(c.Request.Context(), minBid)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toEngineStateResponse(state))
}

// GetState handles GET /api/v1/engine.
func (h *AdminHandler) GetState(c *gin.Context) {
	state, err := h.adminSvc.GetState(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toEngineStateResponse(state))
}

// toBindingResponse converts domain.PriceFeedBinding to DTO.
func toBindingResponse(b *domain.PriceFeedBinding) dto.BindingResponse {
	return dto.BindingResponse{
		Currency:  b.Currency,
		FeedID:    b.FeedID,
		Decimals:  b.Decimals,
		UpdatedAt: b.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// toEngineStateResponse converts domain.EngineState to DTO.
func toEngineStateResponse(s *domain.EngineState) dto.EngineStateResponse {
	return dto.EngineStateResponse{
		Version:        s.Version,
		AuctionCounter: s.AuctionCounter,
		MinBidUSD:      s.MinBidUSD.String(),
	}
}

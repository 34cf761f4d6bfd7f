package handler

import (
	"strconv"
	"time"

	"nft-auction-engine/internal/adapter/http/dto"
	"nft-auction-engine/internal/adapter/http/middleware"
	"nft-auction-engine/internal/core/domain"
	"nft-auction-engine/internal/core/ports"
	"nft-auction-engine/pkg/apperror"
	"nft-auction-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AuctionHandler handles auction lifecycle endpoints.
type AuctionHandler struct {
	auctionSvc ports.AuctionService
}

// NewAuctionHandler creates a new AuctionHandler.
func NewAuctionHandler(auctionSvc ports.AuctionService) *AuctionHandler {
	return &AuctionHandler{auctionSvc: auctionSvc}
}

// Create handles POST /api/v1/auctions.
func (h *AuctionHandler) Create(c *gin.Context) {
	seller, ok := callerAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidAccessKey())
		return
	}

	var req dto.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	auction, err := h.auctionSvc.CreateAuction(c.Request.Context(), ports.CreateAuctionRequest{
		Seller:        seller,
		AssetContract: req.AssetContract,
		AssetID:       req.AssetID,
		Duration:      time.Duration(req.DurationSeconds) * time.Second,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toAuctionResponse(auction))
}

// PlaceBid handles POST /api/v1/auctions/:id/bids.
func (h *AuctionHandler) PlaceBid(c *gin.Context) {
	bidder, ok := callerAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidAccessKey())
		return
	}

	auctionID, err := parseAuctionID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.BidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	currency, err := domain.ParseCurrencyKey(req.Currency)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		response.Error(c, apperror.Validation("amount must be a decimal string"))
		return
	}

	auction, err := h.auctionSvc.PlaceBid(c.Request.Context(), ports.BidRequest{
		AuctionID: auctionID,
		Bidder:    bidder,
		Currency:  currency,
		Amount:    amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toAuctionResponse(auction))
}

// End handles POST /api/v1/auctions/:id/end.
func (h *AuctionHandler) End(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidAccessKey())
		return
	}

	auctionID, err := parseAuctionID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	auction, err := h.auctionSvc.EndAuction(c.Request.Context(), auctionID, caller)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toAuctionResponse(auction))
}

// Get handles GET /api/v1/auctions/:id.
func (h *AuctionHandler) Get(c *gin.Context) {
	auctionID, err := parseAuctionID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	auction, err := h.auctionSvc.GetAuction(c.Request.Context(), auctionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toAuctionResponse(auction))
}

// List handles GET /api/v1/auctions.
// Query params: page, page_size, seller, open.
func (h *AuctionHandler) List(c *gin.Context) {
	params := ports.AuctionListParams{
		Page:     parseIntQuery(c, "page", 1),
		PageSize: parseIntQuery(c, "page_size", 20),
		OpenOnly: c.Query("open") == "true",
	}
	if seller := c.Query("seller"); seller != "" {
		params.Seller = &seller
	}

	auctions, total, err := h.auctionSvc.ListAuctions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.AuctionResponse, 0, len(auctions))
	for i := range auctions {
		items = append(items, toAuctionResponse(&auctions[i]))
	}

	response.OK(c, dto.AuctionListResponse{
		Items:    items,
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
	})
}

// callerAddress reads the authenticated account address set by HMACAuth.
func callerAddress(c *gin.Context) (string, bool) {
	v, ok := c.Get(middleware.CtxAccountAddress)
	if !ok {
		return "", false
	}
	addr, ok := v.(string)
	return addr, ok
}

func parseAuctionID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.Validation("auction id must be a positive integer")
	}
	return id, nil
}

func parseIntQuery(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// toAuctionResponse converts domain.AuctionRecord to DTO.
func toAuctionResponse(a *domain.AuctionRecord) dto.AuctionResponse {
	resp := dto.AuctionResponse{
		ID:            a.ID,
		Seller:        a.Seller,
		AssetContract: a.AssetContract,
		AssetID:       a.AssetID,
		Deadline:      a.Deadline.Format("2006-01-02T15:04:05Z07:00"),
		Ended:         a.Ended,
		LeadingBidder: a.LeadingBidder,
		LeadingBidUSD: a.LeadingBidUSD.String(),
		CreatedAt:     a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if a.LeadingBid != nil {
		resp.LeadingBid = &dto.BidResponse{
			Currency: a.LeadingBid.Currency.Key(),
			Amount:   a.LeadingBid.Amount.String(),
		}
	}
	return resp
}

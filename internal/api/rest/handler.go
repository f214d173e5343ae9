package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-goblet/internal/api/middleware"
	"github.com/feral-file/ff-goblet/internal/api/rest/dto"
	"github.com/feral-file/ff-goblet/internal/domain"
	"github.com/feral-file/ff-goblet/internal/gemstone"
	"github.com/feral-file/ff-goblet/internal/goblet"
	"github.com/feral-file/ff-goblet/internal/store"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// GetGemstone retrieves the URI and redemption mark of a minted gemstone
	// GET /api/v1/gemstones/:token_id
	GetGemstone(c *gin.Context)

	// AdmitToWhitelist admits an address to mint one gemstone of a type (administrator only)
	// POST /api/v1/gemstones/whitelist
	AdmitToWhitelist(c *gin.Context)

	// MintGemstone consumes the caller's whitelist entry for a gem type
	// POST /api/v1/gemstones/mint
	MintGemstone(c *gin.Context)

	// TransferGemstone moves gemstone units from the caller
	// POST /api/v1/gemstones/transfer
	TransferGemstone(c *gin.Context)

	// GetGoblet retrieves the URI of a minted goblet
	// GET /api/v1/goblets/:token_id
	GetGoblet(c *gin.Context)

	// GetGobletStatus retrieves the CID, supply and current year window
	// GET /api/v1/goblets
	GetGobletStatus(c *gin.Context)

	// MintGoblet redeems the caller's gemstone set for the next goblet
	// POST /api/v1/goblets/mint
	MintGoblet(c *gin.Context)

	// OwnerMintGoblet issues the next goblet to the administrator
	// POST /api/v1/goblets/owner-mint
	OwnerMintGoblet(c *gin.Context)

	// UpdateGobletCID replaces the goblet metadata CID (administrator only)
	// PUT /api/v1/goblets/cid
	UpdateGobletCID(c *gin.Context)

	// GetGemstoneHoldings lists the gemstones held by an address
	// GET /api/v1/accounts/:address/gemstones
	GetGemstoneHoldings(c *gin.Context)

	// GetGobletHoldings lists the goblets held by an address
	// GET /api/v1/accounts/:address/goblets
	GetGobletHoldings(c *gin.Context)

	// GetEligibility reports whether an address holds a complete unredeemed gemstone set
	// GET /api/v1/accounts/:address/eligibility
	GetEligibility(c *gin.Context)

	// ListEvents lists committed ledger events, newest first
	// GET /api/v1/events?address=<address>&collection=<gemstone|goblet>&limit=<limit>&offset=<offset>
	ListEvents(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	debug  bool
	ledger gemstone.Ledger
	minter goblet.Minter
	store  store.Store
}

// NewHandler creates a new REST API handler
func NewHandler(debug bool, ledger gemstone.Ledger, minter goblet.Minter, st store.Store) Handler {
	return &handler{
		debug:  debug,
		ledger: ledger,
		minter: minter,
		store:  st,
	}
}

// GetGemstone retrieves a minted gemstone
func (h *handler) GetGemstone(c *gin.Context) {
	tokenID, ok := parseTokenID(c)
	if !ok {
		return
	}

	gemType, ok := domain.GemTypeOf(tokenID)
	if !ok {
		respondNotFound(c, "Gemstone not found")
		return
	}

	uri, err := h.ledger.URI(c.Request.Context(), tokenID)
	if err != nil {
		respondError(c, err, "Failed to get gemstone")
		return
	}

	redeemed, err := h.ledger.IsRedeemed(c.Request.Context(), tokenID)
	if err != nil {
		respondInternalError(c, err, "Failed to get gemstone")
		return
	}

	c.JSON(http.StatusOK, dto.GemstoneResponse{
		TokenID:  tokenID,
		GemType:  gemType.String(),
		URI:      uri,
		Redeemed: redeemed,
	})
}

// AdmitToWhitelist admits an address for a gem type
func (h *handler) AdmitToWhitelist(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req dto.WhitelistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	address, err := domain.ParseAddress(req.Address)
	if err != nil {
		respondError(c, err, "Invalid address")
		return
	}

	gemType, err := domain.ParseGemType(*req.GemType)
	if err != nil {
		respondError(c, err, "Invalid gem type")
		return
	}

	if err := h.ledger.AdmitToWhitelist(c.Request.Context(), caller, address, gemType); err != nil {
		respondError(c, err, "Failed to whitelist address")
		return
	}

	c.Status(http.StatusNoContent)
}

// MintGemstone consumes a whitelist entry
func (h *handler) MintGemstone(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req dto.MintGemstoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	address, ok := addressOrCaller(c, req.Address, caller)
	if !ok {
		return
	}

	gemType, err := domain.ParseGemType(*req.GemType)
	if err != nil {
		respondError(c, err, "Invalid gem type")
		return
	}

	tokenID, err := h.ledger.MintWhitelisted(c.Request.Context(), caller, address, gemType)
	if err != nil {
		respondError(c, err, "Failed to mint gemstone")
		return
	}

	c.JSON(http.StatusCreated, dto.MintGemstoneResponse{
		TokenID: tokenID,
		GemType: gemType.String(),
	})
}

// TransferGemstone moves gemstone units
func (h *handler) TransferGemstone(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	from, ok := addressOrCaller(c, req.From, caller)
	if !ok {
		return
	}

	to, err := domain.ParseAddress(req.To)
	if err != nil {
		respondError(c, err, "Invalid recipient")
		return
	}

	if err := h.ledger.Transfer(c.Request.Context(), caller, from, to, req.TokenID, req.Amount); err != nil {
		respondError(c, err, "Failed to transfer gemstone")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetGoblet retrieves a minted goblet
func (h *handler) GetGoblet(c *gin.Context) {
	tokenID, ok := parseTokenID(c)
	if !ok {
		return
	}

	uri, err := h.minter.URI(c.Request.Context(), tokenID)
	if err != nil {
		respondError(c, err, "Failed to get goblet")
		return
	}

	c.JSON(http.StatusOK, dto.GobletResponse{
		TokenID:      tokenID,
		CalendarYear: domain.GobletCalendarYear(tokenID),
		URI:          uri,
	})
}

// GetGobletStatus retrieves the goblet collection state
func (h *handler) GetGobletStatus(c *gin.Context) {
	ctx := c.Request.Context()

	yearIndex, err := h.minter.YearIndex(ctx)
	if err != nil {
		respondError(c, err, "Failed to get goblet status")
		return
	}

	cid, err := h.minter.CID(ctx)
	if err != nil {
		respondInternalError(c, err, "Failed to get goblet status")
		return
	}

	supply, err := h.minter.TotalSupply(ctx)
	if err != nil {
		respondInternalError(c, err, "Failed to get goblet status")
		return
	}

	c.JSON(http.StatusOK, dto.GobletStatusResponse{
		CID:         cid,
		TotalSupply: supply,
		MaxSupply:   domain.GOBLET_MAX_SUPPLY,
		YearIndex:   yearIndex,
		MintingOpen: yearIndex >= 0 && yearIndex < domain.GOBLET_MINTING_YEARS && supply < domain.GOBLET_MAX_SUPPLY,
	})
}

// MintGoblet redeems a gemstone set for a goblet
func (h *handler) MintGoblet(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req dto.MintGobletRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err.Error())
			return
		}
	}

	holder, ok := addressOrCaller(c, req.Holder, caller)
	if !ok {
		return
	}

	result, err := h.minter.MintGoblet(c.Request.Context(), caller, holder, h.ledger)
	if err != nil {
		respondError(c, err, "Failed to mint goblet")
		return
	}

	yearIndex := result.YearIndex
	c.JSON(http.StatusCreated, dto.MintGobletResponse{
		TokenID:          result.TokenID,
		CalendarYear:     domain.GobletCalendarYear(result.TokenID),
		YearIndex:        &yearIndex,
		RedeemedTokenIDs: result.Redeemed.TokenIDs(),
	})
}

// OwnerMintGoblet issues a goblet to the administrator
func (h *handler) OwnerMintGoblet(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	tokenID, err := h.minter.OwnerGobletMint(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err, "Failed to mint goblet")
		return
	}

	c.JSON(http.StatusCreated, dto.MintGobletResponse{
		TokenID:      tokenID,
		CalendarYear: domain.GobletCalendarYear(tokenID),
	})
}

// UpdateGobletCID replaces the goblet metadata CID
func (h *handler) UpdateGobletCID(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req dto.UpdateCIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := h.minter.UpdateCID(c.Request.Context(), caller, req.CID); err != nil {
		respondError(c, err, "Failed to update CID")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetGemstoneHoldings lists gemstone balances of an address
func (h *handler) GetGemstoneHoldings(c *gin.Context) {
	h.holdings(c, domain.CollectionGemstone, h.ledger.OwnedTokenIDs, h.ledger.BalanceOf)
}

// GetGobletHoldings lists goblet balances of an address
func (h *handler) GetGobletHoldings(c *gin.Context) {
	h.holdings(c, domain.CollectionGoblet, h.minter.OwnedTokenIDs, h.minter.BalanceOf)
}

func (h *handler) holdings(
	c *gin.Context,
	collection domain.Collection,
	owned func(ctx context.Context, address common.Address) ([]uint64, error),
	balanceOf func(ctx context.Context, address common.Address, tokenID uint64) (uint64, error),
) {
	address, ok := parseAddressParam(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	tokenIDs, err := owned(ctx, address)
	if err != nil {
		respondInternalError(c, err, "Failed to list holdings")
		return
	}

	tokens := make([]dto.TokenBalance, 0, len(tokenIDs))
	for _, id := range tokenIDs {
		balance, err := balanceOf(ctx, address, id)
		if err != nil {
			respondInternalError(c, err, "Failed to list holdings")
			return
		}
		tokens = append(tokens, dto.TokenBalance{TokenID: id, Balance: balance})
	}

	c.JSON(http.StatusOK, dto.HoldingsResponse{
		Address:    address.Hex(),
		Collection: collection,
		Tokens:     tokens,
	})
}

// GetEligibility reports the goblet eligibility of an address
func (h *handler) GetEligibility(c *gin.Context) {
	address, ok := parseAddressParam(c)
	if !ok {
		return
	}

	set, eligible, err := h.ledger.IsEligibleToMintGoblet(c.Request.Context(), address)
	if err != nil {
		respondInternalError(c, err, "Failed to check eligibility")
		return
	}

	resp := dto.EligibilityResponse{
		Address:  address.Hex(),
		Eligible: eligible,
	}
	if eligible {
		resp.TokenIDs = set.TokenIDs()
	}

	c.JSON(http.StatusOK, resp)
}

// ListEvents lists ledger events
func (h *handler) ListEvents(c *gin.Context) {
	queryParams, err := ParseListEventsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	filter := store.LedgerEventFilter{
		Limit:  queryParams.Limit,
		Offset: queryParams.Offset,
	}
	if queryParams.Address != "" {
		address := common.HexToAddress(queryParams.Address)
		filter.Address = domain.AddressPtr(address)
	}
	if queryParams.Collection != "" {
		collection := domain.Collection(queryParams.Collection)
		filter.Collection = &collection
	}

	events, err := h.store.GetLedgerEvents(c.Request.Context(), filter)
	if err != nil {
		respondInternalError(c, err, "Failed to list events")
		return
	}

	c.JSON(http.StatusOK, dto.LedgerEventListResponse{
		Events: dto.MapLedgerEventsToDTO(events),
		Offset: queryParams.Offset,
		Limit:  queryParams.Limit,
	})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "ff-goblet-api",
	})
}

// requireCaller returns the authenticated caller or responds with 401
func requireCaller(c *gin.Context) (common.Address, bool) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		respondUnauthorized(c, "Authentication required")
		return common.Address{}, false
	}
	return caller, true
}

// addressOrCaller parses an optional address, defaulting to the caller
func addressOrCaller(c *gin.Context, raw string, caller common.Address) (common.Address, bool) {
	if raw == "" {
		return caller, true
	}
	address, err := domain.ParseAddress(raw)
	if err != nil {
		respondError(c, err, "Invalid address")
		return common.Address{}, false
	}
	return address, true
}

func parseAddressParam(c *gin.Context) (common.Address, bool) {
	address, err := domain.ParseAddress(c.Param("address"))
	if err != nil {
		respondError(c, err, "Invalid address")
		return common.Address{}, false
	}
	return address, true
}

func parseTokenID(c *gin.Context) (uint64, bool) {
	tokenID, err := strconv.ParseUint(c.Param("token_id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid token ID", err.Error())
		return 0, false
	}
	return tokenID, true
}

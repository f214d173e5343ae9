package dto

// WhitelistRequest admits an address to mint one gemstone of a type
type WhitelistRequest struct {
	Address string `json:"address" binding:"required"`
	GemType *int   `json:"gem_type" binding:"required"`
}

// MintGemstoneRequest consumes a whitelist entry. Address defaults to the caller.
type MintGemstoneRequest struct {
	Address string `json:"address"`
	GemType *int   `json:"gem_type" binding:"required"`
}

// TransferRequest moves gemstone units. From defaults to the caller.
type TransferRequest struct {
	From    string `json:"from"`
	To      string `json:"to" binding:"required"`
	TokenID uint64 `json:"token_id" binding:"required"`
	Amount  uint64 `json:"amount"`
}

// MintGobletRequest mints a goblet for a holder. Holder defaults to the caller.
type MintGobletRequest struct {
	Holder string `json:"holder"`
}

// UpdateCIDRequest replaces the goblet metadata content identifier
type UpdateCIDRequest struct {
	CID string `json:"cid" binding:"required"`
}

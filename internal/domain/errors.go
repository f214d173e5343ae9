package domain

import "errors"

var (
	// ErrNotAuthorized is returned when the caller is not allowed to perform the operation
	ErrNotAuthorized = errors.New("not authorized")

	// ErrInvalidAddress is returned when an address is not a valid non-zero hex address
	ErrInvalidAddress = errors.New("invalid address")

	// ErrUnknownGemType is returned when a gem type is outside 0..5
	ErrUnknownGemType = errors.New("unknown gem type")

	// ErrAlreadyAdmitted is returned when an (address, gem type) pair is whitelisted twice
	ErrAlreadyAdmitted = errors.New("address already whitelisted for gem type")

	// ErrNotAdmitted is returned when minting without a whitelist entry
	ErrNotAdmitted = errors.New("address not whitelisted for gem type")

	// ErrAlreadyMinted is returned when a whitelist entry was already used
	ErrAlreadyMinted = errors.New("whitelist entry already minted")

	// ErrSlotsExhausted is returned when all token ids of a gem type are assigned
	ErrSlotsExhausted = errors.New("gem type slots exhausted")

	// ErrInvalidAmount is returned for zero-quantity transfers
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientBalance is returned when the sender holds fewer units than requested
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrNotEligible is returned when the holder lacks a complete unredeemed gemstone set
	ErrNotEligible = errors.New("not eligible")

	// ErrNotEligibleToMintGoblet is the goblet-side form of ErrNotEligible
	ErrNotEligibleToMintGoblet = errors.New("not eligible to mint goblet")

	// ErrAlreadyMintedThisYear is returned on a second goblet mint in the same year window
	ErrAlreadyMintedThisYear = errors.New("goblet already minted this year")

	// ErrOutOfMintingWindow is returned once the year index reaches GOBLET_MINTING_YEARS
	ErrOutOfMintingWindow = errors.New("goblets cannot be minted anymore")

	// ErrSupplyExhausted is returned when all GOBLET_MAX_SUPPLY goblets exist
	ErrSupplyExhausted = errors.New("goblet supply exhausted")

	// ErrUnknownToken is returned for token ids that are out of range or never minted
	ErrUnknownToken = errors.New("unknown token")

	// ErrInvalidCID is returned when updating the content identifier to a blank value
	ErrInvalidCID = errors.New("invalid content identifier")

	// ErrMintingNotStarted is returned when a goblet mint comes before the epoch
	ErrMintingNotStarted = errors.New("goblet minting has not started")

	// ErrNotDeployed is returned when the goblet epoch has not been recorded yet
	ErrNotDeployed = errors.New("goblet minter not deployed")
)

var errorCodes = []struct {
	err  error
	code string
}{
	{ErrNotAuthorized, "not_authorized"},
	{ErrInvalidAddress, "invalid_address"},
	{ErrUnknownGemType, "unknown_gem_type"},
	{ErrAlreadyAdmitted, "already_admitted"},
	{ErrNotAdmitted, "not_admitted"},
	{ErrAlreadyMinted, "already_minted"},
	{ErrSlotsExhausted, "slots_exhausted"},
	{ErrInvalidAmount, "invalid_amount"},
	{ErrInsufficientBalance, "insufficient_balance"},
	{ErrNotEligibleToMintGoblet, "not_eligible_to_mint_goblet"},
	{ErrNotEligible, "not_eligible"},
	{ErrAlreadyMintedThisYear, "already_minted_this_year"},
	{ErrMintingNotStarted, "minting_not_started"},
	{ErrOutOfMintingWindow, "out_of_minting_window"},
	{ErrSupplyExhausted, "supply_exhausted"},
	{ErrUnknownToken, "unknown_token"},
	{ErrInvalidCID, "invalid_cid"},
	{ErrNotDeployed, "not_deployed"},
}

// ErrorCode returns the snake case code of the first sentinel matched by err, or "internal".
// ErrNotEligibleToMintGoblet is checked before ErrNotEligible since it wraps it.
func ErrorCode(err error) string {
	for _, c := range errorCodes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return "internal"
}

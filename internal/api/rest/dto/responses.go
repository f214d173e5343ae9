package dto

import (
	"encoding/json"
	"time"

	"github.com/feral-file/ff-goblet/internal/domain"
	"github.com/feral-file/ff-goblet/internal/store/schema"
)

// GemstoneResponse describes a minted gemstone
type GemstoneResponse struct {
	TokenID  uint64 `json:"token_id"`
	GemType  string `json:"gem_type"`
	URI      string `json:"uri"`
	Redeemed bool   `json:"redeemed"`
}

// GobletResponse describes a minted goblet
type GobletResponse struct {
	TokenID      uint64 `json:"token_id"`
	CalendarYear int    `json:"calendar_year"`
	URI          string `json:"uri"`
}

// GobletStatusResponse describes the goblet collection
type GobletStatusResponse struct {
	CID         string `json:"cid"`
	TotalSupply uint64 `json:"total_supply"`
	MaxSupply   uint64 `json:"max_supply"`
	YearIndex   int    `json:"year_index"`
	MintingOpen bool   `json:"minting_open"`
}

// TokenBalance is one holding of an account
type TokenBalance struct {
	TokenID uint64 `json:"token_id"`
	Balance uint64 `json:"balance"`
}

// HoldingsResponse lists the tokens of one collection held by an address
type HoldingsResponse struct {
	Address    string            `json:"address"`
	Collection domain.Collection `json:"collection"`
	Tokens     []TokenBalance    `json:"tokens"`
}

// EligibilityResponse tells whether an address can mint a goblet now
type EligibilityResponse struct {
	Address  string   `json:"address"`
	Eligible bool     `json:"eligible"`
	TokenIDs []uint64 `json:"token_ids,omitempty"`
}

// MintGemstoneResponse returns the id assigned by a whitelisted mint
type MintGemstoneResponse struct {
	TokenID uint64 `json:"token_id"`
	GemType string `json:"gem_type"`
}

// MintGobletResponse returns the outcome of a goblet mint
type MintGobletResponse struct {
	TokenID          uint64   `json:"token_id"`
	CalendarYear     int      `json:"calendar_year"`
	YearIndex        *int     `json:"year_index,omitempty"`
	RedeemedTokenIDs []uint64 `json:"redeemed_token_ids,omitempty"`
}

// LedgerEventResponse is a persisted ledger event
type LedgerEventResponse struct {
	ID          string            `json:"id"`
	Collection  domain.Collection `json:"collection"`
	EventType   domain.EventType  `json:"event_type"`
	FromAddress *string           `json:"from_address,omitempty"`
	ToAddress   *string           `json:"to_address,omitempty"`
	TokenID     *uint64           `json:"token_id,omitempty"`
	Payload     json.RawMessage   `json:"payload,omitempty"`
	Timestamp   time.Time         `json:"timestamp"`
}

// LedgerEventListResponse is a page of ledger events
type LedgerEventListResponse struct {
	Events []LedgerEventResponse `json:"events"`
	Offset int                   `json:"offset"`
	Limit  int                   `json:"limit"`
}

// MapLedgerEventsToDTO converts stored events to response objects
func MapLedgerEventsToDTO(events []*schema.LedgerEvent) []LedgerEventResponse {
	result := make([]LedgerEventResponse, 0, len(events))
	for _, e := range events {
		result = append(result, LedgerEventResponse{
			ID:          e.ID,
			Collection:  e.Collection,
			EventType:   e.EventType,
			FromAddress: e.FromAddress,
			ToAddress:   e.ToAddress,
			TokenID:     e.TokenID,
			Payload:     json.RawMessage(e.Payload),
			Timestamp:   e.Timestamp,
		})
	}
	return result
}

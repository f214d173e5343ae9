package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// GemType is one of the six gemstone categories
type GemType uint8

const (
	GemAmethyst GemType = iota
	GemSapphire
	GemEmerald
	GemCitrine
	GemAmber
	GemRuby
)

var gemNames = [GEM_TYPE_COUNT]string{
	"Amethyst",
	"Sapphire",
	"Emerald",
	"Citrine",
	"Amber",
	"Ruby",
}

// AllGemTypes returns every gem type in ascending order
func AllGemTypes() []GemType {
	types := make([]GemType, GEM_TYPE_COUNT)
	for i := range types {
		types[i] = GemType(i)
	}
	return types
}

// ParseGemType converts a raw integer into a GemType
func ParseGemType(v int) (GemType, error) {
	if v < 0 || v >= GEM_TYPE_COUNT {
		return 0, fmt.Errorf("%w: %d", ErrUnknownGemType, v)
	}
	return GemType(v), nil
}

// Valid reports whether the gem type is one of the six known types
func (t GemType) Valid() bool {
	return t < GEM_TYPE_COUNT
}

// String returns the human readable gem name
func (t GemType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("GemType(%d)", uint8(t))
	}
	return gemNames[t]
}

// FirstTokenID returns the lowest token id reserved for the gem type
func (t GemType) FirstTokenID() uint64 {
	return uint64(t)*GEM_SLOTS_PER_TYPE + 1
}

// LastTokenID returns the highest token id reserved for the gem type
func (t GemType) LastTokenID() uint64 {
	return uint64(t)*GEM_SLOTS_PER_TYPE + GEM_SLOTS_PER_TYPE
}

// GemstoneTokenID derives the token id for the given 1-based slot of a gem type
func GemstoneTokenID(t GemType, slot uint64) (uint64, error) {
	if !t.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownGemType, t)
	}
	if slot == 0 || slot > GEM_SLOTS_PER_TYPE {
		return 0, fmt.Errorf("%w: slot %d of %s", ErrSlotsExhausted, slot, t)
	}
	return uint64(t)*GEM_SLOTS_PER_TYPE + slot, nil
}

// GemTypeOf returns the gem type owning a token id
func GemTypeOf(tokenID uint64) (GemType, bool) {
	if tokenID == 0 || tokenID > GEM_TYPE_COUNT*GEM_SLOTS_PER_TYPE {
		return 0, false
	}
	return GemType((tokenID - 1) / GEM_SLOTS_PER_TYPE), true
}

// EligibilitySet holds, per gem type, the token id a holder would redeem for a goblet
type EligibilitySet [GEM_TYPE_COUNT]uint64

// TokenIDs returns the selected ids ordered by gem type
func (s EligibilitySet) TokenIDs() []uint64 {
	ids := make([]uint64, 0, GEM_TYPE_COUNT)
	ids = append(ids, s[:]...)
	return ids
}

// Complete reports whether every gem type has a selected token
func (s EligibilitySet) Complete() bool {
	for _, id := range s {
		if id == 0 {
			return false
		}
	}
	return true
}

// IsGobletTokenID reports whether the id is inside the goblet supply range
func IsGobletTokenID(tokenID uint64) bool {
	return tokenID >= 1 && tokenID <= GOBLET_MAX_SUPPLY
}

// GobletCalendarYear returns the calendar year encoded by a goblet's sequential id
func GobletCalendarYear(tokenID uint64) int {
	return GOBLET_BASE_CALENDAR_YEAR + int((tokenID-1)/GOBLETS_PER_YEAR)
}

// GobletURI builds the metadata URI for a goblet token
func GobletURI(cid string, tokenID uint64) string {
	return fmt.Sprintf("ipfs://%s/%d_%d.json", cid, tokenID, GobletCalendarYear(tokenID))
}

// GemstoneURI builds the ERC-1155 style metadata URI for a gemstone token
func GemstoneURI(cid string, tokenID uint64) string {
	return fmt.Sprintf("ipfs://%s/%s.json", cid, GemstoneMetadataName(tokenID))
}

// GemstoneMetadataName returns the 64 character lowercase hex file name for a token id
func GemstoneMetadataName(tokenID uint64) string {
	return fmt.Sprintf("%064x", tokenID)
}

// YearIndex buckets the time elapsed since epoch into windows of the given length.
// Times before the epoch return -1.
func YearIndex(epoch, now time.Time, window time.Duration) int {
	if window <= 0 {
		window = DEFAULT_YEAR_WINDOW
	}
	elapsed := now.Sub(epoch)
	if elapsed < 0 {
		return -1
	}
	return int(elapsed / window)
}

// ParseAddress validates and normalizes a hex address into its checksummed form
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	addr := common.HexToAddress(s)
	if addr == (common.Address{}) {
		return common.Address{}, fmt.Errorf("%w: zero address", ErrInvalidAddress)
	}
	return addr, nil
}

// Collection identifies which ledger a token belongs to
type Collection string

const (
	CollectionGemstone Collection = "gemstone"
	CollectionGoblet   Collection = "goblet"
)

// EventType represents the type of ledger event
type EventType string

const (
	EventTypeWhitelisted EventType = "whitelisted"
	EventTypeMint        EventType = "mint"
	EventTypeTransfer    EventType = "transfer"
	EventTypeRedeemed    EventType = "redeemed"
	EventTypeCIDUpdated  EventType = "cid_updated"
)

// LedgerEvent is a committed state transition.
// It is persisted with the transition and published to the message broker after commit.
type LedgerEvent struct {
	ID          string     `json:"id"`                     // ULID
	Collection  Collection `json:"collection"`             // gemstone, goblet
	EventType   EventType  `json:"event_type"`             // whitelisted, mint, transfer, redeemed, cid_updated
	FromAddress *string    `json:"from_address,omitempty"` // sender (transfer, redeemed)
	ToAddress   *string    `json:"to_address,omitempty"`   // recipient (whitelisted, mint, transfer)
	TokenID     *uint64    `json:"token_id,omitempty"`
	TokenIDs    []uint64   `json:"token_ids,omitempty"` // redeemed gemstone ids
	Quantity    uint64     `json:"quantity,omitempty"`
	GemType     *GemType   `json:"gem_type,omitempty"`
	YearIndex   *int       `json:"year_index,omitempty"`
	CID         string     `json:"cid,omitempty"`
	Timestamp   time.Time  `json:"timestamp"`
}

// Subject returns the broker subject for the event, e.g. events.goblet.mint
func (e *LedgerEvent) Subject() string {
	return fmt.Sprintf("events.%s.%s", e.Collection, e.EventType)
}

// AddressPtr returns a pointer to the hex form of an address
func AddressPtr(a common.Address) *string {
	s := a.Hex()
	return &s
}

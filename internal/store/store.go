package store

import (
	"context"
	"time"

	"github.com/feral-file/ff-goblet/internal/domain"
	"github.com/feral-file/ff-goblet/internal/store/schema"
)

// Key-value store keys
const (
	KeyGobletEpoch  = "goblet_epoch"
	KeyGobletCID    = "goblet_cid"
	KeyGobletSupply = "goblet_supply"
)

// GemSlotKey returns the key of the slot counter of a gem type
func GemSlotKey(gemType domain.GemType) string {
	return "gem_slot:" + gemType.String()
}

// CreateRedemptionInput represents the input for marking a gemstone as redeemed
type CreateRedemptionInput struct {
	TokenID    uint64
	GemType    domain.GemType
	RedeemedBy string
	RedeemedAt time.Time
}

// CreateGobletTokenInput represents the input for recording an issued goblet
type CreateGobletTokenInput struct {
	TokenID      uint64
	MintedTo     string
	CalendarYear int
	YearIndex    *int
	OwnerMint    bool
}

// LedgerEventFilter represents filters for ledger event queries
type LedgerEventFilter struct {
	Address    *string
	Collection *domain.Collection
	Limit      int
	Offset     int
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// Transaction runs fn in a database transaction. Writers are serialized; nested calls join the outer transaction.
	Transaction(ctx context.Context, fn func(tx Store) error) error

	// GetValue retrieves a key-value entry, found is false when the key does not exist
	GetValue(ctx context.Context, key string) (value string, found bool, err error)
	// SetValue creates or replaces a key-value entry
	SetValue(ctx context.Context, key string, value string) error
	// EnsureValue stores value only when key does not exist yet and returns the stored value
	EnsureValue(ctx context.Context, key string, value string) (string, error)
	// GetCounter reads a numeric key-value entry (0 when absent)
	GetCounter(ctx context.Context, key string) (uint64, error)
	// GetCounterForUpdate reads a numeric key-value entry and locks its row until the transaction ends
	GetCounterForUpdate(ctx context.Context, key string) (uint64, error)
	// SetCounter stores a numeric key-value entry
	SetCounter(ctx context.Context, key string, value uint64) error

	// GetWhitelistEntry retrieves the whitelist entry of an (address, gem type) pair, nil when absent
	GetWhitelistEntry(ctx context.Context, address string, gemType domain.GemType) (*schema.WhitelistEntry, error)
	// CreateWhitelistEntry admits an address for a gem type
	CreateWhitelistEntry(ctx context.Context, address string, gemType domain.GemType) error
	// MarkWhitelistEntryMinted consumes a whitelist entry
	MarkWhitelistEntryMinted(ctx context.Context, entryID uint64, tokenID uint64, mintedAt time.Time) error

	// GetBalance returns the quantity of a token held by an owner (0 when none)
	GetBalance(ctx context.Context, collection domain.Collection, owner string, tokenID uint64) (uint64, error)
	// GetOwnedTokenIDs returns the ids of all tokens with a positive balance, ascending
	GetOwnedTokenIDs(ctx context.Context, collection domain.Collection, owner string) ([]uint64, error)
	// IncreaseBalance credits amount units of a token to an owner
	IncreaseBalance(ctx context.Context, collection domain.Collection, owner string, tokenID uint64, amount uint64) error
	// DecreaseBalance debits amount units of a token from an owner, failing with domain.ErrInsufficientBalance
	DecreaseBalance(ctx context.Context, collection domain.Collection, owner string, tokenID uint64, amount uint64) error

	// GetRedeemedTokenIDs returns which of the given gemstone ids are redeemed
	GetRedeemedTokenIDs(ctx context.Context, tokenIDs []uint64) (map[uint64]bool, error)
	// CreateRedemptions marks gemstones as redeemed
	CreateRedemptions(ctx context.Context, redemptions []CreateRedemptionInput) error

	// CreateGobletToken records an issued goblet
	CreateGobletToken(ctx context.Context, input CreateGobletTokenInput) error
	// GetGobletToken retrieves an issued goblet, nil when absent
	GetGobletToken(ctx context.Context, tokenID uint64) (*schema.GobletToken, error)
	// HasYearlyMint reports whether the address minted a goblet in the year window
	HasYearlyMint(ctx context.Context, address string, yearIndex int) (bool, error)
	// CreateYearlyMint records a holder goblet mint for a year window
	CreateYearlyMint(ctx context.Context, address string, yearIndex int, gobletTokenID uint64) error

	// CreateLedgerEvents persists committed state transitions
	CreateLedgerEvents(ctx context.Context, events []*domain.LedgerEvent) error
	// GetLedgerEvents lists ledger events, newest first
	GetLedgerEvents(ctx context.Context, filter LedgerEventFilter) ([]*schema.LedgerEvent, error)
}

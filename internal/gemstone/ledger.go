package gemstone

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-goblet/internal/adapter"
	"github.com/feral-file/ff-goblet/internal/domain"
	"github.com/feral-file/ff-goblet/internal/logger"
	"github.com/feral-file/ff-goblet/internal/messaging"
	"github.com/feral-file/ff-goblet/internal/metrics"
	"github.com/feral-file/ff-goblet/internal/store"
)

// Config holds the configuration of the gemstone ledger
type Config struct {
	// AdminAddress is the only caller allowed to whitelist addresses
	AdminAddress common.Address
	// UnredeemedCID is the metadata set of gemstones that can still be redeemed
	UnredeemedCID string
	// RedeemedCID is the metadata set of gemstones consumed by a goblet mint
	RedeemedCID string
}

// Ledger tracks gemstone whitelist entries, balances and redemption marks
//
//go:generate mockgen -source=ledger.go -destination=../mocks/gemstone_ledger.go -package=mocks -mock_names=Ledger=MockGemstoneLedger
type Ledger interface {
	// Init seeds the per-type slot counters
	Init(ctx context.Context) error

	// AdmitToWhitelist admits an address to mint one gemstone of a type
	AdmitToWhitelist(ctx context.Context, caller, address common.Address, gemType domain.GemType) error
	// MintWhitelisted consumes the whitelist entry of address and returns the minted token id
	MintWhitelisted(ctx context.Context, caller, address common.Address, gemType domain.GemType) (uint64, error)
	// BalanceOf returns the number of units of a gemstone held by address
	BalanceOf(ctx context.Context, address common.Address, tokenID uint64) (uint64, error)
	// OwnedTokenIDs returns every gemstone id held by address, ascending
	OwnedTokenIDs(ctx context.Context, address common.Address) ([]uint64, error)
	// Transfer moves amount units of a gemstone from one address to another
	Transfer(ctx context.Context, caller, from, to common.Address, tokenID, amount uint64) error

	// IsEligibleToMintGoblet returns the gemstones address would redeem now, ok is false when the set is incomplete
	IsEligibleToMintGoblet(ctx context.Context, address common.Address) (set domain.EligibilitySet, ok bool, err error)
	// CheckAndRedeem marks the eligibility set of address as redeemed in its own transaction
	CheckAndRedeem(ctx context.Context, address common.Address) (domain.EligibilitySet, error)
	// RedeemWithin marks the eligibility set of address as redeemed inside the caller's transaction.
	// The returned events must be persisted and published by the caller.
	RedeemWithin(ctx context.Context, tx store.Store, address common.Address, now time.Time) (domain.EligibilitySet, []*domain.LedgerEvent, error)
	// IsRedeemed reports whether a gemstone was consumed by a goblet mint
	IsRedeemed(ctx context.Context, tokenID uint64) (bool, error)
	// URI returns the metadata URI of a minted gemstone
	URI(ctx context.Context, tokenID uint64) (string, error)
}

type ledger struct {
	config    Config
	store     store.Store
	clock     adapter.Clock
	publisher messaging.Publisher
	metrics   *metrics.Metrics
}

// NewLedger creates a new gemstone ledger
func NewLedger(cfg Config, st store.Store, clock adapter.Clock, publisher messaging.Publisher, m *metrics.Metrics) Ledger {
	return &ledger{
		config:    cfg,
		store:     st,
		clock:     clock,
		publisher: publisher,
		metrics:   m,
	}
}

// Init seeds the per-type slot counters so their rows can be locked
func (l *ledger) Init(ctx context.Context) error {
	for _, gemType := range domain.AllGemTypes() {
		if _, err := l.store.EnsureValue(ctx, store.GemSlotKey(gemType), "0"); err != nil {
			return fmt.Errorf("failed to seed slot counter of %s: %w", gemType, err)
		}
	}
	return nil
}

// AdmitToWhitelist admits an address to mint one gemstone of a type
func (l *ledger) AdmitToWhitelist(ctx context.Context, caller, address common.Address, gemType domain.GemType) error {
	if caller != l.config.AdminAddress {
		return l.reject("admit_to_whitelist", domain.ErrNotAuthorized)
	}
	if address == (common.Address{}) {
		return l.reject("admit_to_whitelist", fmt.Errorf("%w: zero address", domain.ErrInvalidAddress))
	}
	if !gemType.Valid() {
		return l.reject("admit_to_whitelist", fmt.Errorf("%w: %d", domain.ErrUnknownGemType, gemType))
	}

	now := l.clock.Now()
	event := &domain.LedgerEvent{
		ID:         ulid.MustNewDefault(now).String(),
		Collection: domain.CollectionGemstone,
		EventType:  domain.EventTypeWhitelisted,
		ToAddress:  domain.AddressPtr(address),
		GemType:    &gemType,
		Timestamp:  now,
	}

	err := l.store.Transaction(ctx, func(tx store.Store) error {
		if err := tx.CreateWhitelistEntry(ctx, address.Hex(), gemType); err != nil {
			return err
		}
		return tx.CreateLedgerEvents(ctx, []*domain.LedgerEvent{event})
	})
	if err != nil {
		return l.reject("admit_to_whitelist", err)
	}

	logger.InfoCtx(ctx, "Address whitelisted",
		zap.String("address", address.Hex()),
		zap.String("gemType", gemType.String()),
	)
	l.afterCommit(ctx, []*domain.LedgerEvent{event})

	return nil
}

// MintWhitelisted consumes the whitelist entry of address and credits the next gemstone of the type
func (l *ledger) MintWhitelisted(ctx context.Context, caller, address common.Address, gemType domain.GemType) (uint64, error) {
	if caller != address {
		return 0, l.reject("mint_whitelisted", domain.ErrNotAuthorized)
	}
	if !gemType.Valid() {
		return 0, l.reject("mint_whitelisted", fmt.Errorf("%w: %d", domain.ErrUnknownGemType, gemType))
	}

	now := l.clock.Now()
	var tokenID uint64
	var events []*domain.LedgerEvent

	err := l.store.Transaction(ctx, func(tx store.Store) error {
		entry, err := tx.GetWhitelistEntry(ctx, address.Hex(), gemType)
		if err != nil {
			return err
		}
		if entry == nil {
			return domain.ErrNotAdmitted
		}
		if entry.Minted {
			return domain.ErrAlreadyMinted
		}

		slotKey := store.GemSlotKey(gemType)
		slot, err := tx.GetCounterForUpdate(ctx, slotKey)
		if err != nil {
			return err
		}
		tokenID, err = domain.GemstoneTokenID(gemType, slot+1)
		if err != nil {
			return err
		}
		if err := tx.SetCounter(ctx, slotKey, slot+1); err != nil {
			return err
		}

		if err := tx.MarkWhitelistEntryMinted(ctx, entry.ID, tokenID, now); err != nil {
			return err
		}
		if err := tx.IncreaseBalance(ctx, domain.CollectionGemstone, address.Hex(), tokenID, 1); err != nil {
			return err
		}

		events = []*domain.LedgerEvent{{
			ID:         ulid.MustNewDefault(now).String(),
			Collection: domain.CollectionGemstone,
			EventType:  domain.EventTypeMint,
			ToAddress:  domain.AddressPtr(address),
			TokenID:    &tokenID,
			Quantity:   1,
			GemType:    &gemType,
			Timestamp:  now,
		}}
		return tx.CreateLedgerEvents(ctx, events)
	})
	if err != nil {
		return 0, l.reject("mint_whitelisted", err)
	}

	logger.InfoCtx(ctx, "Gemstone minted",
		zap.String("address", address.Hex()),
		zap.String("gemType", gemType.String()),
		zap.Uint64("tokenID", tokenID),
	)
	l.afterCommit(ctx, events)

	return tokenID, nil
}

// BalanceOf returns the number of units of a gemstone held by address
func (l *ledger) BalanceOf(ctx context.Context, address common.Address, tokenID uint64) (uint64, error) {
	return l.store.GetBalance(ctx, domain.CollectionGemstone, address.Hex(), tokenID)
}

// OwnedTokenIDs returns every gemstone id held by address
func (l *ledger) OwnedTokenIDs(ctx context.Context, address common.Address) ([]uint64, error) {
	return l.store.GetOwnedTokenIDs(ctx, domain.CollectionGemstone, address.Hex())
}

// Transfer moves amount units of a gemstone. Redemption marks stay with the token id.
func (l *ledger) Transfer(ctx context.Context, caller, from, to common.Address, tokenID, amount uint64) error {
	if caller != from {
		return l.reject("transfer", domain.ErrNotAuthorized)
	}
	if amount == 0 {
		return l.reject("transfer", domain.ErrInvalidAmount)
	}
	if to == (common.Address{}) {
		return l.reject("transfer", fmt.Errorf("%w: zero address", domain.ErrInvalidAddress))
	}
	if _, ok := domain.GemTypeOf(tokenID); !ok {
		return l.reject("transfer", fmt.Errorf("%w: %d", domain.ErrUnknownToken, tokenID))
	}

	now := l.clock.Now()
	event := &domain.LedgerEvent{
		ID:          ulid.MustNewDefault(now).String(),
		Collection:  domain.CollectionGemstone,
		EventType:   domain.EventTypeTransfer,
		FromAddress: domain.AddressPtr(from),
		ToAddress:   domain.AddressPtr(to),
		TokenID:     &tokenID,
		Quantity:    amount,
		Timestamp:   now,
	}

	err := l.store.Transaction(ctx, func(tx store.Store) error {
		if err := tx.DecreaseBalance(ctx, domain.CollectionGemstone, from.Hex(), tokenID, amount); err != nil {
			return err
		}
		if err := tx.IncreaseBalance(ctx, domain.CollectionGemstone, to.Hex(), tokenID, amount); err != nil {
			return err
		}
		return tx.CreateLedgerEvents(ctx, []*domain.LedgerEvent{event})
	})
	if err != nil {
		return l.reject("transfer", err)
	}

	logger.InfoCtx(ctx, "Gemstone transferred",
		zap.String("from", from.Hex()),
		zap.String("to", to.Hex()),
		zap.Uint64("tokenID", tokenID),
		zap.Uint64("amount", amount),
	)
	l.afterCommit(ctx, []*domain.LedgerEvent{event})

	return nil
}

// IsEligibleToMintGoblet returns the gemstones address would redeem now
func (l *ledger) IsEligibleToMintGoblet(ctx context.Context, address common.Address) (domain.EligibilitySet, bool, error) {
	set, err := eligibilitySet(ctx, l.store, address)
	if err != nil {
		return domain.EligibilitySet{}, false, err
	}
	if !set.Complete() {
		return domain.EligibilitySet{}, false, nil
	}
	return set, true, nil
}

// CheckAndRedeem marks the eligibility set of address as redeemed
func (l *ledger) CheckAndRedeem(ctx context.Context, address common.Address) (domain.EligibilitySet, error) {
	now := l.clock.Now()
	var set domain.EligibilitySet
	var events []*domain.LedgerEvent

	err := l.store.Transaction(ctx, func(tx store.Store) error {
		var err error
		set, events, err = l.RedeemWithin(ctx, tx, address, now)
		if err != nil {
			return err
		}
		return tx.CreateLedgerEvents(ctx, events)
	})
	if err != nil {
		return domain.EligibilitySet{}, l.reject("check_and_redeem", err)
	}

	l.afterCommit(ctx, events)

	return set, nil
}

// RedeemWithin marks the eligibility set of address as redeemed using tx
func (l *ledger) RedeemWithin(ctx context.Context, tx store.Store, address common.Address, now time.Time) (domain.EligibilitySet, []*domain.LedgerEvent, error) {
	set, err := eligibilitySet(ctx, tx, address)
	if err != nil {
		return domain.EligibilitySet{}, nil, err
	}
	if !set.Complete() {
		return domain.EligibilitySet{}, nil, domain.ErrNotEligible
	}

	redemptions := make([]store.CreateRedemptionInput, 0, domain.GEM_TYPE_COUNT)
	for gemType, tokenID := range set {
		redemptions = append(redemptions, store.CreateRedemptionInput{
			TokenID:    tokenID,
			GemType:    domain.GemType(gemType),
			RedeemedBy: address.Hex(),
			RedeemedAt: now,
		})
	}
	if err := tx.CreateRedemptions(ctx, redemptions); err != nil {
		return domain.EligibilitySet{}, nil, err
	}

	logger.InfoCtx(ctx, "Gemstones redeemed",
		zap.String("address", address.Hex()),
		zap.Uint64s("tokenIDs", set.TokenIDs()),
	)

	events := []*domain.LedgerEvent{{
		ID:          ulid.MustNewDefault(now).String(),
		Collection:  domain.CollectionGemstone,
		EventType:   domain.EventTypeRedeemed,
		FromAddress: domain.AddressPtr(address),
		TokenIDs:    set.TokenIDs(),
		Timestamp:   now,
	}}

	return set, events, nil
}

// IsRedeemed reports whether a gemstone was consumed by a goblet mint
func (l *ledger) IsRedeemed(ctx context.Context, tokenID uint64) (bool, error) {
	redeemed, err := l.store.GetRedeemedTokenIDs(ctx, []uint64{tokenID})
	if err != nil {
		return false, err
	}
	return redeemed[tokenID], nil
}

// URI returns the metadata URI of a minted gemstone, switching sets once it is redeemed
func (l *ledger) URI(ctx context.Context, tokenID uint64) (string, error) {
	gemType, ok := domain.GemTypeOf(tokenID)
	if !ok {
		return "", fmt.Errorf("%w: %d", domain.ErrUnknownToken, tokenID)
	}

	minted, err := l.store.GetCounter(ctx, store.GemSlotKey(gemType))
	if err != nil {
		return "", err
	}
	if tokenID-gemType.FirstTokenID()+1 > minted {
		return "", fmt.Errorf("%w: %d", domain.ErrUnknownToken, tokenID)
	}

	redeemed, err := l.IsRedeemed(ctx, tokenID)
	if err != nil {
		return "", err
	}
	if redeemed {
		return domain.GemstoneURI(l.config.RedeemedCID, tokenID), nil
	}

	return domain.GemstoneURI(l.config.UnredeemedCID, tokenID), nil
}

// eligibilitySet picks the lowest unredeemed owned id of every gem type
func eligibilitySet(ctx context.Context, st store.Store, address common.Address) (domain.EligibilitySet, error) {
	var set domain.EligibilitySet

	owned, err := st.GetOwnedTokenIDs(ctx, domain.CollectionGemstone, address.Hex())
	if err != nil {
		return set, err
	}
	redeemed, err := st.GetRedeemedTokenIDs(ctx, owned)
	if err != nil {
		return set, err
	}

	for _, tokenID := range owned {
		if redeemed[tokenID] {
			continue
		}
		gemType, ok := domain.GemTypeOf(tokenID)
		if !ok {
			continue
		}
		if set[gemType] == 0 || tokenID < set[gemType] {
			set[gemType] = tokenID
		}
	}

	return set, nil
}

func (l *ledger) afterCommit(ctx context.Context, events []*domain.LedgerEvent) {
	l.metrics.ObserveEvents(events)
	messaging.PublishAll(ctx, l.publisher, events)
}

func (l *ledger) reject(operation string, err error) error {
	l.metrics.ObserveRejection(operation, err)
	return err
}

package goblet

import (
	"context"
	"errors"
	"fmt"
	"strings"
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

// Config holds the configuration of the goblet minter
type Config struct {
	// AdminAddress is the only caller allowed to use the administrative operations
	AdminAddress common.Address
	// DefaultCID is the content identifier used until UpdateCID is called
	DefaultCID string
	// YearWindow is the length of one eligibility window
	YearWindow time.Duration
	// Epoch overrides the deployment time recorded by Deploy
	Epoch *time.Time
}

// Redeemer spends a complete gemstone set inside a goblet mint transaction
type Redeemer interface {
	RedeemWithin(ctx context.Context, tx store.Store, address common.Address, now time.Time) (domain.EligibilitySet, []*domain.LedgerEvent, error)
}

// MintResult describes a goblet issued to a holder
type MintResult struct {
	TokenID   uint64
	YearIndex int
	Redeemed  domain.EligibilitySet
}

// Minter issues goblets against redeemed gemstone sets
//
//go:generate mockgen -source=minter.go -destination=../mocks/goblet_minter.go -package=mocks -mock_names=Minter=MockGobletMinter,Redeemer=MockRedeemer
type Minter interface {
	// Deploy records the minting epoch once and returns the stored epoch
	Deploy(ctx context.Context) (time.Time, error)

	// MintGoblet redeems the holder's gemstone set and issues the next goblet
	MintGoblet(ctx context.Context, caller, holder common.Address, ledger Redeemer) (*MintResult, error)
	// OwnerGobletMint issues the next goblet to the administrator without eligibility checks
	OwnerGobletMint(ctx context.Context, caller common.Address) (uint64, error)
	// UpdateCID replaces the content identifier of every goblet URI
	UpdateCID(ctx context.Context, caller common.Address, cid string) error

	// URI returns the metadata URI of a minted goblet
	URI(ctx context.Context, tokenID uint64) (string, error)
	// BalanceOf returns the number of units of a goblet held by address
	BalanceOf(ctx context.Context, address common.Address, tokenID uint64) (uint64, error)
	// OwnedTokenIDs returns every goblet id held by address, ascending
	OwnedTokenIDs(ctx context.Context, address common.Address) ([]uint64, error)
	// CID returns the current content identifier
	CID(ctx context.Context) (string, error)
	// TotalSupply returns the number of goblets issued
	TotalSupply(ctx context.Context) (uint64, error)
	// YearIndex returns the current eligibility window, -1 before the epoch
	YearIndex(ctx context.Context) (int, error)
}

type minter struct {
	config    Config
	store     store.Store
	clock     adapter.Clock
	publisher messaging.Publisher
	metrics   *metrics.Metrics
}

// NewMinter creates a new goblet minter
func NewMinter(cfg Config, st store.Store, clock adapter.Clock, publisher messaging.Publisher, m *metrics.Metrics) Minter {
	if cfg.DefaultCID == "" {
		cfg.DefaultCID = domain.DEFAULT_GOBLET_CID
	}
	if cfg.YearWindow <= 0 {
		cfg.YearWindow = domain.DEFAULT_YEAR_WINDOW
	}

	return &minter{
		config:    cfg,
		store:     st,
		clock:     clock,
		publisher: publisher,
		metrics:   m,
	}
}

// Deploy records the minting epoch, the default content identifier and the supply counter.
// Values stored by an earlier deployment are kept.
func (m *minter) Deploy(ctx context.Context) (time.Time, error) {
	epoch := m.clock.Now()
	if m.config.Epoch != nil {
		epoch = *m.config.Epoch
	}

	var stored string
	err := m.store.Transaction(ctx, func(tx store.Store) error {
		var err error
		stored, err = tx.EnsureValue(ctx, store.KeyGobletEpoch, epoch.UTC().Format(time.RFC3339Nano))
		if err != nil {
			return err
		}
		if _, err := tx.EnsureValue(ctx, store.KeyGobletCID, m.config.DefaultCID); err != nil {
			return err
		}
		_, err = tx.EnsureValue(ctx, store.KeyGobletSupply, "0")
		return err
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to deploy goblet minter: %w", err)
	}

	deployed, err := parseEpoch(stored)
	if err != nil {
		return time.Time{}, err
	}

	logger.InfoCtx(ctx, "Goblet minter deployed", zap.Time("epoch", deployed))

	return deployed, nil
}

// MintGoblet redeems the holder's gemstone set and issues the next goblet in one transaction
func (m *minter) MintGoblet(ctx context.Context, caller, holder common.Address, ledger Redeemer) (*MintResult, error) {
	if caller != holder {
		return nil, m.reject("mint_goblet", domain.ErrNotAuthorized)
	}

	now := m.clock.Now()
	result := &MintResult{}
	var events []*domain.LedgerEvent

	err := m.store.Transaction(ctx, func(tx store.Store) error {
		// Locking the supply row first serializes goblet mints across processes
		supply, err := tx.GetCounterForUpdate(ctx, store.KeyGobletSupply)
		if err != nil {
			return err
		}

		epoch, err := m.epoch(ctx, tx)
		if err != nil {
			return err
		}
		yearIndex := domain.YearIndex(epoch, now, m.config.YearWindow)
		if yearIndex < 0 {
			return domain.ErrMintingNotStarted
		}
		if yearIndex >= domain.GOBLET_MINTING_YEARS {
			return domain.ErrOutOfMintingWindow
		}

		minted, err := tx.HasYearlyMint(ctx, holder.Hex(), yearIndex)
		if err != nil {
			return err
		}
		if minted {
			return domain.ErrAlreadyMintedThisYear
		}

		redeemed, redeemEvents, err := ledger.RedeemWithin(ctx, tx, holder, now)
		if err != nil {
			if errors.Is(err, domain.ErrNotEligible) {
				return fmt.Errorf("%w: %w", domain.ErrNotEligibleToMintGoblet, err)
			}
			return err
		}

		if supply >= domain.GOBLET_MAX_SUPPLY {
			return domain.ErrSupplyExhausted
		}
		tokenID := supply + 1

		if err := tx.SetCounter(ctx, store.KeyGobletSupply, tokenID); err != nil {
			return err
		}
		if err := tx.CreateYearlyMint(ctx, holder.Hex(), yearIndex, tokenID); err != nil {
			return err
		}
		if err := m.issue(ctx, tx, holder, tokenID, &yearIndex); err != nil {
			return err
		}

		result.TokenID = tokenID
		result.YearIndex = yearIndex
		result.Redeemed = redeemed

		events = append(redeemEvents, &domain.LedgerEvent{
			ID:         ulid.MustNewDefault(now).String(),
			Collection: domain.CollectionGoblet,
			EventType:  domain.EventTypeMint,
			ToAddress:  domain.AddressPtr(holder),
			TokenID:    &result.TokenID,
			TokenIDs:   redeemed.TokenIDs(),
			Quantity:   1,
			YearIndex:  &result.YearIndex,
			Timestamp:  now,
		})
		return tx.CreateLedgerEvents(ctx, events)
	})
	if err != nil {
		return nil, m.reject("mint_goblet", err)
	}

	logger.InfoCtx(ctx, "Goblet minted",
		zap.String("holder", holder.Hex()),
		zap.Uint64("tokenID", result.TokenID),
		zap.Int("yearIndex", result.YearIndex),
	)
	m.afterCommit(ctx, events)

	return result, nil
}

// OwnerGobletMint issues the next goblet to the administrator.
// The calendar year of the goblet follows from its id, not from the eligibility window.
func (m *minter) OwnerGobletMint(ctx context.Context, caller common.Address) (uint64, error) {
	if caller != m.config.AdminAddress {
		return 0, m.reject("owner_goblet_mint", domain.ErrNotAuthorized)
	}

	now := m.clock.Now()
	var tokenID uint64
	var events []*domain.LedgerEvent

	err := m.store.Transaction(ctx, func(tx store.Store) error {
		supply, err := tx.GetCounterForUpdate(ctx, store.KeyGobletSupply)
		if err != nil {
			return err
		}
		if supply >= domain.GOBLET_MAX_SUPPLY {
			return domain.ErrSupplyExhausted
		}
		tokenID = supply + 1

		if err := tx.SetCounter(ctx, store.KeyGobletSupply, tokenID); err != nil {
			return err
		}
		if err := m.issue(ctx, tx, caller, tokenID, nil); err != nil {
			return err
		}

		events = []*domain.LedgerEvent{{
			ID:         ulid.MustNewDefault(now).String(),
			Collection: domain.CollectionGoblet,
			EventType:  domain.EventTypeMint,
			ToAddress:  domain.AddressPtr(caller),
			TokenID:    &tokenID,
			Quantity:   1,
			Timestamp:  now,
		}}
		return tx.CreateLedgerEvents(ctx, events)
	})
	if err != nil {
		return 0, m.reject("owner_goblet_mint", err)
	}

	logger.InfoCtx(ctx, "Goblet minted by owner",
		zap.Uint64("tokenID", tokenID),
		zap.Int("calendarYear", domain.GobletCalendarYear(tokenID)),
	)
	m.afterCommit(ctx, events)

	return tokenID, nil
}

// UpdateCID replaces the content identifier, changing the URI of every goblet
func (m *minter) UpdateCID(ctx context.Context, caller common.Address, cid string) error {
	if caller != m.config.AdminAddress {
		return m.reject("update_cid", domain.ErrNotAuthorized)
	}
	cid = strings.TrimSpace(cid)
	if cid == "" {
		return m.reject("update_cid", domain.ErrInvalidCID)
	}

	now := m.clock.Now()
	event := &domain.LedgerEvent{
		ID:         ulid.MustNewDefault(now).String(),
		Collection: domain.CollectionGoblet,
		EventType:  domain.EventTypeCIDUpdated,
		CID:        cid,
		Timestamp:  now,
	}

	err := m.store.Transaction(ctx, func(tx store.Store) error {
		if err := tx.SetValue(ctx, store.KeyGobletCID, cid); err != nil {
			return err
		}
		return tx.CreateLedgerEvents(ctx, []*domain.LedgerEvent{event})
	})
	if err != nil {
		return m.reject("update_cid", err)
	}

	logger.InfoCtx(ctx, "Goblet CID updated", zap.String("cid", cid))
	m.afterCommit(ctx, []*domain.LedgerEvent{event})

	return nil
}

// URI returns the metadata URI of a minted goblet
func (m *minter) URI(ctx context.Context, tokenID uint64) (string, error) {
	if !domain.IsGobletTokenID(tokenID) {
		return "", fmt.Errorf("%w: %d", domain.ErrUnknownToken, tokenID)
	}

	token, err := m.store.GetGobletToken(ctx, tokenID)
	if err != nil {
		return "", err
	}
	if token == nil {
		return "", fmt.Errorf("%w: %d", domain.ErrUnknownToken, tokenID)
	}

	cid, err := m.CID(ctx)
	if err != nil {
		return "", err
	}

	return domain.GobletURI(cid, tokenID), nil
}

// BalanceOf returns the number of units of a goblet held by address
func (m *minter) BalanceOf(ctx context.Context, address common.Address, tokenID uint64) (uint64, error) {
	return m.store.GetBalance(ctx, domain.CollectionGoblet, address.Hex(), tokenID)
}

// OwnedTokenIDs returns every goblet id held by address
func (m *minter) OwnedTokenIDs(ctx context.Context, address common.Address) ([]uint64, error) {
	return m.store.GetOwnedTokenIDs(ctx, domain.CollectionGoblet, address.Hex())
}

// CID returns the current content identifier
func (m *minter) CID(ctx context.Context) (string, error) {
	cid, found, err := m.store.GetValue(ctx, store.KeyGobletCID)
	if err != nil {
		return "", err
	}
	if !found {
		return m.config.DefaultCID, nil
	}
	return cid, nil
}

// TotalSupply returns the number of goblets issued
func (m *minter) TotalSupply(ctx context.Context) (uint64, error) {
	return m.store.GetCounter(ctx, store.KeyGobletSupply)
}

// YearIndex returns the current eligibility window
func (m *minter) YearIndex(ctx context.Context) (int, error) {
	epoch, err := m.epoch(ctx, m.store)
	if err != nil {
		return 0, err
	}
	return domain.YearIndex(epoch, m.clock.Now(), m.config.YearWindow), nil
}

// issue records a goblet and credits it to the recipient
func (m *minter) issue(ctx context.Context, tx store.Store, to common.Address, tokenID uint64, yearIndex *int) error {
	err := tx.CreateGobletToken(ctx, store.CreateGobletTokenInput{
		TokenID:      tokenID,
		MintedTo:     to.Hex(),
		CalendarYear: domain.GobletCalendarYear(tokenID),
		YearIndex:    yearIndex,
		OwnerMint:    yearIndex == nil,
	})
	if err != nil {
		return err
	}

	return tx.IncreaseBalance(ctx, domain.CollectionGoblet, to.Hex(), tokenID, 1)
}

func (m *minter) epoch(ctx context.Context, st store.Store) (time.Time, error) {
	value, found, err := st.GetValue(ctx, store.KeyGobletEpoch)
	if err != nil {
		return time.Time{}, err
	}
	if !found {
		return time.Time{}, domain.ErrNotDeployed
	}
	return parseEpoch(value)
}

func parseEpoch(value string) (time.Time, error) {
	epoch, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse goblet epoch %q: %w", value, err)
	}
	return epoch, nil
}

func (m *minter) afterCommit(ctx context.Context, events []*domain.LedgerEvent) {
	m.metrics.ObserveEvents(events)
	messaging.PublishAll(ctx, m.publisher, events)
}

func (m *minter) reject(operation string, err error) error {
	m.metrics.ObserveRejection(operation, err)
	return err
}

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-goblet/internal/domain"
	"github.com/feral-file/ff-goblet/internal/store/schema"
)

type gormStore struct {
	db      *gorm.DB
	writeMu *sync.Mutex
	inTx    bool
}

// NewStore creates a new store on top of a GORM connection (PostgreSQL or SQLite)
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db, writeMu: &sync.Mutex{}}
}

// Transaction runs fn in a database transaction
func (s *gormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	if s.inTx {
		return fn(s)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx, writeMu: s.writeMu, inTx: true})
	})
}

// GetValue retrieves a key-value entry
func (s *gormStore) GetValue(ctx context.Context, key string) (string, bool, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get value %s: %w", key, err)
	}

	return kv.Value, true, nil
}

// SetValue creates or replaces a key-value entry
func (s *gormStore) SetValue(ctx context.Context, key string, value string) error {
	kv := schema.KeyValueStore{
		Key:   key,
		Value: value,
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to set value %s: %w", key, err)
	}

	return nil
}

// EnsureValue stores value only when key does not exist yet
func (s *gormStore) EnsureValue(ctx context.Context, key string, value string) (string, error) {
	kv := schema.KeyValueStore{
		Key:   key,
		Value: value,
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoNothing: true,
	}).Create(&kv).Error
	if err != nil {
		return "", fmt.Errorf("failed to ensure value %s: %w", key, err)
	}

	stored, _, err := s.GetValue(ctx, key)
	if err != nil {
		return "", err
	}

	return stored, nil
}

// GetCounter reads a numeric key-value entry
func (s *gormStore) GetCounter(ctx context.Context, key string) (uint64, error) {
	value, found, err := s.GetValue(ctx, key)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, nil
	}

	return parseCounter(key, value)
}

// GetCounterForUpdate reads a numeric key-value entry with a row lock
func (s *gormStore) GetCounterForUpdate(ctx context.Context, key string) (uint64, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("key = ?", key).
		First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to lock counter %s: %w", key, err)
	}

	return parseCounter(key, kv.Value)
}

// SetCounter stores a numeric key-value entry
func (s *gormStore) SetCounter(ctx context.Context, key string, value uint64) error {
	return s.SetValue(ctx, key, strconv.FormatUint(value, 10))
}

func parseCounter(key, value string) (uint64, error) {
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse counter %s: %w", key, err)
	}
	return n, nil
}

// GetWhitelistEntry retrieves the whitelist entry of an (address, gem type) pair
func (s *gormStore) GetWhitelistEntry(ctx context.Context, address string, gemType domain.GemType) (*schema.WhitelistEntry, error) {
	var entry schema.WhitelistEntry
	err := s.db.WithContext(ctx).
		Where("address = ? AND gem_type = ?", address, gemType).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get whitelist entry: %w", err)
	}

	return &entry, nil
}

// CreateWhitelistEntry admits an address for a gem type
func (s *gormStore) CreateWhitelistEntry(ctx context.Context, address string, gemType domain.GemType) error {
	entry := schema.WhitelistEntry{
		Address: address,
		GemType: gemType,
	}

	err := s.db.WithContext(ctx).Create(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAlreadyAdmitted
		}
		return fmt.Errorf("failed to create whitelist entry: %w", err)
	}

	return nil
}

// MarkWhitelistEntryMinted consumes a whitelist entry
func (s *gormStore) MarkWhitelistEntryMinted(ctx context.Context, entryID uint64, tokenID uint64, mintedAt time.Time) error {
	result := s.db.WithContext(ctx).
		Model(&schema.WhitelistEntry{}).
		Where("id = ? AND minted = ?", entryID, false).
		Updates(map[string]interface{}{
			"minted":    true,
			"token_id":  tokenID,
			"minted_at": mintedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark whitelist entry minted: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrAlreadyMinted
	}

	return nil
}

// GetBalance returns the quantity of a token held by an owner
func (s *gormStore) GetBalance(ctx context.Context, collection domain.Collection, owner string, tokenID uint64) (uint64, error) {
	var balance schema.Balance
	err := s.db.WithContext(ctx).
		Where("collection = ? AND token_id = ? AND owner_address = ?", collection, tokenID, owner).
		First(&balance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}

	return balance.Quantity, nil
}

// GetOwnedTokenIDs returns the ids of all tokens with a positive balance
func (s *gormStore) GetOwnedTokenIDs(ctx context.Context, collection domain.Collection, owner string) ([]uint64, error) {
	var tokenIDs []uint64
	err := s.db.WithContext(ctx).
		Model(&schema.Balance{}).
		Where("collection = ? AND owner_address = ? AND quantity > 0", collection, owner).
		Order("token_id ASC").
		Pluck("token_id", &tokenIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get owned tokens: %w", err)
	}

	return tokenIDs, nil
}

// IncreaseBalance credits amount units of a token to an owner
func (s *gormStore) IncreaseBalance(ctx context.Context, collection domain.Collection, owner string, tokenID uint64, amount uint64) error {
	balance := schema.Balance{
		Collection:   collection,
		TokenID:      tokenID,
		OwnerAddress: owner,
		Quantity:     amount,
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "collection"}, {Name: "token_id"}, {Name: "owner_address"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("balances.quantity + ?", amount),
			"updated_at": time.Now(),
		}),
	}).Create(&balance).Error
	if err != nil {
		return fmt.Errorf("failed to increase balance: %w", err)
	}

	return nil
}

// DecreaseBalance debits amount units of a token from an owner
func (s *gormStore) DecreaseBalance(ctx context.Context, collection domain.Collection, owner string, tokenID uint64, amount uint64) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Balance{}).
		Where("collection = ? AND token_id = ? AND owner_address = ? AND quantity >= ?", collection, tokenID, owner, amount).
		Updates(map[string]interface{}{
			"quantity":   gorm.Expr("quantity - ?", amount),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to decrease balance: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrInsufficientBalance
	}

	return nil
}

// GetRedeemedTokenIDs returns which of the given gemstone ids are redeemed
func (s *gormStore) GetRedeemedTokenIDs(ctx context.Context, tokenIDs []uint64) (map[uint64]bool, error) {
	redeemed := make(map[uint64]bool, len(tokenIDs))
	if len(tokenIDs) == 0 {
		return redeemed, nil
	}

	var ids []uint64
	err := s.db.WithContext(ctx).
		Model(&schema.GemstoneRedemption{}).
		Where("token_id IN ?", tokenIDs).
		Pluck("token_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get redemptions: %w", err)
	}

	for _, id := range ids {
		redeemed[id] = true
	}

	return redeemed, nil
}

// CreateRedemptions marks gemstones as redeemed
func (s *gormStore) CreateRedemptions(ctx context.Context, redemptions []CreateRedemptionInput) error {
	if len(redemptions) == 0 {
		return nil
	}

	rows := make([]schema.GemstoneRedemption, 0, len(redemptions))
	for _, r := range redemptions {
		rows = append(rows, schema.GemstoneRedemption{
			TokenID:    r.TokenID,
			GemType:    r.GemType,
			RedeemedBy: r.RedeemedBy,
			RedeemedAt: r.RedeemedAt,
		})
	}

	if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to create redemptions: %w", err)
	}

	return nil
}

// CreateGobletToken records an issued goblet
func (s *gormStore) CreateGobletToken(ctx context.Context, input CreateGobletTokenInput) error {
	token := schema.GobletToken{
		TokenID:      input.TokenID,
		MintedTo:     input.MintedTo,
		CalendarYear: input.CalendarYear,
		YearIndex:    input.YearIndex,
		OwnerMint:    input.OwnerMint,
	}

	if err := s.db.WithContext(ctx).Create(&token).Error; err != nil {
		return fmt.Errorf("failed to create goblet token: %w", err)
	}

	return nil
}

// GetGobletToken retrieves an issued goblet
func (s *gormStore) GetGobletToken(ctx context.Context, tokenID uint64) (*schema.GobletToken, error) {
	var token schema.GobletToken
	err := s.db.WithContext(ctx).Where("token_id = ?", tokenID).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get goblet token: %w", err)
	}

	return &token, nil
}

// HasYearlyMint reports whether the address minted a goblet in the year window
func (s *gormStore) HasYearlyMint(ctx context.Context, address string, yearIndex int) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.GobletYearlyMint{}).
		Where("address = ? AND year_index = ?", address, yearIndex).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check yearly mint: %w", err)
	}

	return count > 0, nil
}

// CreateYearlyMint records a holder goblet mint for a year window
func (s *gormStore) CreateYearlyMint(ctx context.Context, address string, yearIndex int, gobletTokenID uint64) error {
	record := schema.GobletYearlyMint{
		Address:       address,
		YearIndex:     yearIndex,
		GobletTokenID: gobletTokenID,
	}

	err := s.db.WithContext(ctx).Create(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAlreadyMintedThisYear
		}
		return fmt.Errorf("failed to create yearly mint: %w", err)
	}

	return nil
}

// CreateLedgerEvents persists committed state transitions
func (s *gormStore) CreateLedgerEvents(ctx context.Context, events []*domain.LedgerEvent) error {
	if len(events) == 0 {
		return nil
	}

	rows := make([]schema.LedgerEvent, 0, len(events))
	for _, event := range events {
		payload, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to marshal ledger event: %w", err)
		}

		rows = append(rows, schema.LedgerEvent{
			ID:          event.ID,
			Collection:  event.Collection,
			EventType:   event.EventType,
			FromAddress: event.FromAddress,
			ToAddress:   event.ToAddress,
			TokenID:     event.TokenID,
			Payload:     payload,
			Timestamp:   event.Timestamp,
		})
	}

	if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to create ledger events: %w", err)
	}

	return nil
}

// GetLedgerEvents lists ledger events, newest first
func (s *gormStore) GetLedgerEvents(ctx context.Context, filter LedgerEventFilter) ([]*schema.LedgerEvent, error) {
	query := s.db.WithContext(ctx).Model(&schema.LedgerEvent{})

	if filter.Address != nil {
		query = query.Where("from_address = ? OR to_address = ?", *filter.Address, *filter.Address)
	}
	if filter.Collection != nil {
		query = query.Where("collection = ?", *filter.Collection)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	var events []*schema.LedgerEvent
	err := query.
		Order("id DESC").
		Limit(limit).
		Offset(filter.Offset).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger events: %w", err)
	}

	return events, nil
}

package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-goblet/internal/domain"
)

const (
	testOwner1 = "0x1111111111111111111111111111111111111111"
	testOwner2 = "0x2222222222222222222222222222222222222222"
)

// =============================================================================
// Test: KeyValueStore
// =============================================================================

func testKeyValueStore(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("missing key is not found", func(t *testing.T) {
		value, found, err := store.GetValue(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, value)
	})

	t.Run("set and overwrite value", func(t *testing.T) {
		require.NoError(t, store.SetValue(ctx, KeyGobletCID, "first"))
		require.NoError(t, store.SetValue(ctx, KeyGobletCID, "second"))

		value, found, err := store.GetValue(ctx, KeyGobletCID)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "second", value)
	})

	t.Run("ensure value keeps existing entry", func(t *testing.T) {
		stored, err := store.EnsureValue(ctx, KeyGobletEpoch, "100")
		require.NoError(t, err)
		assert.Equal(t, "100", stored)

		stored, err = store.EnsureValue(ctx, KeyGobletEpoch, "200")
		require.NoError(t, err)
		assert.Equal(t, "100", stored)
	})
}

// =============================================================================
// Test: Counters
// =============================================================================

func testCounters(t *testing.T, store Store) {
	ctx := context.Background()

	count, err := store.GetCounter(ctx, KeyGobletSupply)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), count)

	err = store.Transaction(ctx, func(tx Store) error {
		current, err := tx.GetCounterForUpdate(ctx, KeyGobletSupply)
		if err != nil {
			return err
		}
		return tx.SetCounter(ctx, KeyGobletSupply, current+1)
	})
	require.NoError(t, err)

	count, err = store.GetCounter(ctx, KeyGobletSupply)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)

	require.NoError(t, store.SetValue(ctx, GemSlotKey(domain.GemRuby), "not-a-number"))
	_, err = store.GetCounter(ctx, GemSlotKey(domain.GemRuby))
	assert.Error(t, err)
}

// =============================================================================
// Test: Transaction
// =============================================================================

func testTransaction(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("error rolls back every write", func(t *testing.T) {
		boom := errors.New("boom")
		err := store.Transaction(ctx, func(tx Store) error {
			if err := tx.IncreaseBalance(ctx, domain.CollectionGemstone, testOwner1, 1, 1); err != nil {
				return err
			}
			if err := tx.CreateWhitelistEntry(ctx, testOwner1, domain.GemAmethyst); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		balance, err := store.GetBalance(ctx, domain.CollectionGemstone, testOwner1, 1)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), balance)

		entry, err := store.GetWhitelistEntry(ctx, testOwner1, domain.GemAmethyst)
		require.NoError(t, err)
		assert.Nil(t, entry)
	})

	t.Run("nested transaction joins outer", func(t *testing.T) {
		err := store.Transaction(ctx, func(tx Store) error {
			return tx.Transaction(ctx, func(inner Store) error {
				return inner.IncreaseBalance(ctx, domain.CollectionGemstone, testOwner1, 2, 1)
			})
		})
		require.NoError(t, err)

		balance, err := store.GetBalance(ctx, domain.CollectionGemstone, testOwner1, 2)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), balance)
	})
}

// =============================================================================
// Test: Whitelist
// =============================================================================

func testWhitelist(t *testing.T, store Store) {
	ctx := context.Background()

	entry, err := store.GetWhitelistEntry(ctx, testOwner1, domain.GemSapphire)
	require.NoError(t, err)
	assert.Nil(t, entry)

	require.NoError(t, store.CreateWhitelistEntry(ctx, testOwner1, domain.GemSapphire))

	err = store.CreateWhitelistEntry(ctx, testOwner1, domain.GemSapphire)
	assert.ErrorIs(t, err, domain.ErrAlreadyAdmitted)

	// Same address, other type and other address, same type are distinct entries
	require.NoError(t, store.CreateWhitelistEntry(ctx, testOwner1, domain.GemRuby))
	require.NoError(t, store.CreateWhitelistEntry(ctx, testOwner2, domain.GemSapphire))

	entry, err = store.GetWhitelistEntry(ctx, testOwner1, domain.GemSapphire)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.False(t, entry.Minted)
	assert.Nil(t, entry.TokenID)

	mintedAt := time.Date(2022, time.October, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.MarkWhitelistEntryMinted(ctx, entry.ID, 51, mintedAt))

	err = store.MarkWhitelistEntryMinted(ctx, entry.ID, 52, mintedAt)
	assert.ErrorIs(t, err, domain.ErrAlreadyMinted)

	entry, err = store.GetWhitelistEntry(ctx, testOwner1, domain.GemSapphire)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.True(t, entry.Minted)
	require.NotNil(t, entry.TokenID)
	assert.Equal(t, uint64(51), *entry.TokenID)
}

// =============================================================================
// Test: Balances
// =============================================================================

func testBalances(t *testing.T, store Store) {
	ctx := context.Background()

	require.NoError(t, store.IncreaseBalance(ctx, domain.CollectionGemstone, testOwner1, 51, 1))
	require.NoError(t, store.IncreaseBalance(ctx, domain.CollectionGemstone, testOwner1, 1, 1))
	require.NoError(t, store.IncreaseBalance(ctx, domain.CollectionGemstone, testOwner1, 1, 2))
	require.NoError(t, store.IncreaseBalance(ctx, domain.CollectionGoblet, testOwner1, 1, 1))

	balance, err := store.GetBalance(ctx, domain.CollectionGemstone, testOwner1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), balance)

	// Collections do not share balances
	balance, err = store.GetBalance(ctx, domain.CollectionGoblet, testOwner1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), balance)

	ids, err := store.GetOwnedTokenIDs(ctx, domain.CollectionGemstone, testOwner1)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 51}, ids)

	err = store.DecreaseBalance(ctx, domain.CollectionGemstone, testOwner1, 51, 2)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	err = store.DecreaseBalance(ctx, domain.CollectionGemstone, testOwner2, 51, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	require.NoError(t, store.DecreaseBalance(ctx, domain.CollectionGemstone, testOwner1, 51, 1))

	// Zero balances are not reported as owned
	ids, err = store.GetOwnedTokenIDs(ctx, domain.CollectionGemstone, testOwner1)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1}, ids)

	ids, err = store.GetOwnedTokenIDs(ctx, domain.CollectionGemstone, testOwner2)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

// =============================================================================
// Test: Redemptions
// =============================================================================

func testRedemptions(t *testing.T, store Store) {
	ctx := context.Background()

	redeemed, err := store.GetRedeemedTokenIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, redeemed)

	now := time.Now().UTC()
	require.NoError(t, store.CreateRedemptions(ctx, []CreateRedemptionInput{
		{TokenID: 1, GemType: domain.GemAmethyst, RedeemedBy: testOwner1, RedeemedAt: now},
		{TokenID: 51, GemType: domain.GemSapphire, RedeemedBy: testOwner1, RedeemedAt: now},
	}))

	redeemed, err = store.GetRedeemedTokenIDs(ctx, []uint64{1, 2, 51})
	require.NoError(t, err)
	assert.True(t, redeemed[1])
	assert.False(t, redeemed[2])
	assert.True(t, redeemed[51])

	// A token can only be redeemed once
	err = store.CreateRedemptions(ctx, []CreateRedemptionInput{
		{TokenID: 1, GemType: domain.GemAmethyst, RedeemedBy: testOwner2, RedeemedAt: now},
	})
	assert.Error(t, err)
}

// =============================================================================
// Test: Goblets
// =============================================================================

func testGoblets(t *testing.T, store Store) {
	ctx := context.Background()

	token, err := store.GetGobletToken(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, token)

	yearIndex := 0
	require.NoError(t, store.CreateGobletToken(ctx, CreateGobletTokenInput{
		TokenID:      1,
		MintedTo:     testOwner1,
		CalendarYear: 2022,
		YearIndex:    &yearIndex,
	}))
	require.NoError(t, store.CreateGobletToken(ctx, CreateGobletTokenInput{
		TokenID:      2,
		MintedTo:     testOwner2,
		CalendarYear: 2022,
		OwnerMint:    true,
	}))

	token, err = store.GetGobletToken(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, testOwner1, token.MintedTo)
	require.NotNil(t, token.YearIndex)
	assert.Equal(t, 0, *token.YearIndex)
	assert.False(t, token.OwnerMint)

	token, err = store.GetGobletToken(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Nil(t, token.YearIndex)
	assert.True(t, token.OwnerMint)

	minted, err := store.HasYearlyMint(ctx, testOwner1, 0)
	require.NoError(t, err)
	assert.False(t, minted)

	require.NoError(t, store.CreateYearlyMint(ctx, testOwner1, 0, 1))

	minted, err = store.HasYearlyMint(ctx, testOwner1, 0)
	require.NoError(t, err)
	assert.True(t, minted)

	minted, err = store.HasYearlyMint(ctx, testOwner1, 1)
	require.NoError(t, err)
	assert.False(t, minted)

	err = store.CreateYearlyMint(ctx, testOwner1, 0, 3)
	assert.ErrorIs(t, err, domain.ErrAlreadyMintedThisYear)
}

// =============================================================================
// Test: LedgerEvents
// =============================================================================

func testLedgerEvents(t *testing.T, store Store) {
	ctx := context.Background()

	tokenID := uint64(1)
	ts := time.Date(2022, time.October, 1, 0, 0, 0, 0, time.UTC)
	events := []*domain.LedgerEvent{
		{
			ID:         "01GE3Y6Y000000000000000001",
			Collection: domain.CollectionGemstone,
			EventType:  domain.EventTypeMint,
			ToAddress:  strPtr(testOwner1),
			TokenID:    &tokenID,
			Quantity:   1,
			Timestamp:  ts,
		},
		{
			ID:          "01GE3Y6Y000000000000000002",
			Collection:  domain.CollectionGemstone,
			EventType:   domain.EventTypeTransfer,
			FromAddress: strPtr(testOwner1),
			ToAddress:   strPtr(testOwner2),
			TokenID:     &tokenID,
			Quantity:    1,
			Timestamp:   ts,
		},
		{
			ID:         "01GE3Y6Y000000000000000003",
			Collection: domain.CollectionGoblet,
			EventType:  domain.EventTypeCIDUpdated,
			CID:        "fooBarCID",
			Timestamp:  ts,
		},
	}
	require.NoError(t, store.CreateLedgerEvents(ctx, events))
	require.NoError(t, store.CreateLedgerEvents(ctx, nil))

	all, err := store.GetLedgerEvents(ctx, LedgerEventFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "01GE3Y6Y000000000000000003", all[0].ID)

	owner2 := testOwner2
	byAddress, err := store.GetLedgerEvents(ctx, LedgerEventFilter{Address: &owner2})
	require.NoError(t, err)
	require.Len(t, byAddress, 1)
	assert.Equal(t, domain.EventTypeTransfer, byAddress[0].EventType)

	gemstones := domain.CollectionGemstone
	owner1 := testOwner1
	filtered, err := store.GetLedgerEvents(ctx, LedgerEventFilter{Address: &owner1, Collection: &gemstones, Limit: 1})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "01GE3Y6Y000000000000000002", filtered[0].ID)

	var payload domain.LedgerEvent
	require.NoError(t, json.Unmarshal(filtered[0].Payload, &payload))
	assert.Equal(t, domain.EventTypeTransfer, payload.EventType)
	assert.Equal(t, uint64(1), payload.Quantity)
}

func strPtr(s string) *string {
	return &s
}

// RunStoreTests runs all store tests against a store implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"KeyValueStore", testKeyValueStore},
		{"Counters", testCounters},
		{"Transaction", testTransaction},
		{"Whitelist", testWhitelist},
		{"Balances", testBalances},
		{"Redemptions", testRedemptions},
		{"Goblets", testGoblets},
		{"LedgerEvents", testLedgerEvents},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}

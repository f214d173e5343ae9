package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGemType(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected GemType
		wantErr  bool
	}{
		{name: "amethyst", input: 0, expected: GemAmethyst},
		{name: "ruby", input: 5, expected: GemRuby},
		{name: "negative", input: -1, wantErr: true},
		{name: "past ruby", input: 6, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gemType, err := ParseGemType(tt.input)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrUnknownGemType))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, gemType)
		})
	}
}

func TestGemTypeString(t *testing.T) {
	assert.Equal(t, "Amethyst", GemAmethyst.String())
	assert.Equal(t, "Sapphire", GemSapphire.String())
	assert.Equal(t, "Emerald", GemEmerald.String())
	assert.Equal(t, "Citrine", GemCitrine.String())
	assert.Equal(t, "Amber", GemAmber.String())
	assert.Equal(t, "Ruby", GemRuby.String())
	assert.Equal(t, "GemType(9)", GemType(9).String())
}

func TestGemstoneTokenID(t *testing.T) {
	tests := []struct {
		name     string
		gemType  GemType
		slot     uint64
		expected uint64
		err      error
	}{
		{name: "first amethyst", gemType: GemAmethyst, slot: 1, expected: 1},
		{name: "last amethyst", gemType: GemAmethyst, slot: 50, expected: 50},
		{name: "first sapphire", gemType: GemSapphire, slot: 1, expected: 51},
		{name: "second sapphire", gemType: GemSapphire, slot: 2, expected: 52},
		{name: "first ruby", gemType: GemRuby, slot: 1, expected: 251},
		{name: "last ruby", gemType: GemRuby, slot: 50, expected: 300},
		{name: "slot zero", gemType: GemRuby, slot: 0, err: ErrSlotsExhausted},
		{name: "slot past range", gemType: GemAmber, slot: 51, err: ErrSlotsExhausted},
		{name: "unknown type", gemType: GemType(6), slot: 1, err: ErrUnknownGemType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := GemstoneTokenID(tt.gemType, tt.slot)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)

			back, ok := GemTypeOf(id)
			assert.True(t, ok)
			assert.Equal(t, tt.gemType, back)
		})
	}
}

func TestGemTypeOf_OutOfRange(t *testing.T) {
	_, ok := GemTypeOf(0)
	assert.False(t, ok)
	_, ok = GemTypeOf(301)
	assert.False(t, ok)
}

func TestGemTypeRange(t *testing.T) {
	assert.Equal(t, uint64(101), GemEmerald.FirstTokenID())
	assert.Equal(t, uint64(150), GemEmerald.LastTokenID())
}

func TestEligibilitySet(t *testing.T) {
	var set EligibilitySet
	assert.False(t, set.Complete())

	set = EligibilitySet{1, 51, 101, 151, 201, 251}
	assert.True(t, set.Complete())
	assert.Equal(t, []uint64{1, 51, 101, 151, 201, 251}, set.TokenIDs())

	set[GemCitrine] = 0
	assert.False(t, set.Complete())
}

func TestGobletCalendarYear(t *testing.T) {
	tests := []struct {
		tokenID  uint64
		expected int
	}{
		{1, 2022},
		{50, 2022},
		{51, 2023},
		{100, 2023},
		{101, 2024},
		{150, 2024},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, GobletCalendarYear(tt.tokenID), "token %d", tt.tokenID)
	}
}

func TestGobletURI(t *testing.T) {
	assert.Equal(t,
		"ipfs://QmSczXio2CCNkcTwbJPmHqbPv6oSv1C1ax61ebQuWhTLFj/1_2022.json",
		GobletURI(DEFAULT_GOBLET_CID, 1))
	assert.Equal(t, "ipfs://fooBarCID/75_2023.json", GobletURI("fooBarCID", 75))
	assert.Equal(t, "ipfs://fooBarCID/150_2024.json", GobletURI("fooBarCID", 150))
}

func TestIsGobletTokenID(t *testing.T) {
	assert.False(t, IsGobletTokenID(0))
	assert.True(t, IsGobletTokenID(1))
	assert.True(t, IsGobletTokenID(150))
	assert.False(t, IsGobletTokenID(151))
}

func TestGemstoneURI(t *testing.T) {
	assert.Equal(t,
		"ipfs://cid/0000000000000000000000000000000000000000000000000000000000000033.json",
		GemstoneURI("cid", 51))
}

func TestYearIndex(t *testing.T) {
	epoch := time.Date(2022, time.October, 1, 0, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	tests := []struct {
		name     string
		now      time.Time
		window   time.Duration
		expected int
	}{
		{name: "at epoch", now: epoch, window: DEFAULT_YEAR_WINDOW, expected: 0},
		{name: "before epoch", now: epoch.Add(-day), window: DEFAULT_YEAR_WINDOW, expected: -1},
		{name: "last second of first window", now: epoch.Add(365*day - time.Second), window: DEFAULT_YEAR_WINDOW, expected: 0},
		{name: "start of second window", now: epoch.Add(365 * day), window: DEFAULT_YEAR_WINDOW, expected: 1},
		{name: "thirteen months", now: epoch.Add(396 * day), window: DEFAULT_YEAR_WINDOW, expected: 1},
		{name: "three leap windows", now: epoch.Add(3 * 366 * day), window: DEFAULT_YEAR_WINDOW, expected: 3},
		{name: "366 day window", now: epoch.Add(731 * day), window: 366 * day, expected: 1},
		{name: "zero window falls back to default", now: epoch.Add(400 * day), window: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, YearIndex(epoch, tt.now, tt.window))
		})
	}
}

func TestParseAddress(t *testing.T) {
	addr, err := ParseAddress("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	require.NoError(t, err)
	assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", addr.Hex())

	_, err = ParseAddress("not-an-address")
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = ParseAddress(ETHEREUM_ZERO_ADDRESS)
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestLedgerEventSubject(t *testing.T) {
	event := &LedgerEvent{Collection: CollectionGoblet, EventType: EventTypeMint}
	assert.Equal(t, "events.goblet.mint", event.Subject())
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "supply_exhausted", ErrorCode(ErrSupplyExhausted))
	assert.Equal(t, "unknown_token", ErrorCode(fmt.Errorf("%w: 151", ErrUnknownToken)))
	assert.Equal(t, "not_eligible_to_mint_goblet",
		ErrorCode(fmt.Errorf("%w: %w", ErrNotEligibleToMintGoblet, ErrNotEligible)))
	assert.Equal(t, "not_eligible", ErrorCode(ErrNotEligible))
	assert.Equal(t, "internal", ErrorCode(errors.New("connection reset")))
}

package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/feral-file/ff-goblet/internal/adapter"
	"github.com/feral-file/ff-goblet/internal/domain"
	"github.com/feral-file/ff-goblet/internal/logger"
)

// WhitelistData represents the structure of the whitelist.json file
// Key format: gem type name (e.g. "Amethyst") -> list of addresses
type WhitelistData map[string][]string

// WhitelistEntry is one (address, gem type) admission
type WhitelistEntry struct {
	Address common.Address
	GemType domain.GemType
}

// Admitter admits addresses to the gemstone whitelist
type Admitter interface {
	AdmitToWhitelist(ctx context.Context, caller, address common.Address, gemType domain.GemType) error
}

// WhitelistLoader loads whitelist seed files
type WhitelistLoader struct {
	fs   adapter.FileSystem
	json adapter.JSON
}

// NewWhitelistLoader creates a new whitelist loader
func NewWhitelistLoader(fs adapter.FileSystem, json adapter.JSON) *WhitelistLoader {
	return &WhitelistLoader{
		fs:   fs,
		json: json,
	}
}

// Load reads a whitelist seed file and returns its entries ordered by gem type then address
func (l *WhitelistLoader) Load(filePath string) ([]WhitelistEntry, error) {
	data, err := l.fs.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read whitelist file: %w", err)
	}

	var whitelistData WhitelistData
	if err := l.json.Unmarshal(data, &whitelistData); err != nil {
		return nil, fmt.Errorf("failed to parse whitelist JSON: %w", err)
	}

	gemTypes := make(map[string]domain.GemType, domain.GEM_TYPE_COUNT)
	for _, t := range domain.AllGemTypes() {
		gemTypes[strings.ToLower(t.String())] = t
	}

	var entries []WhitelistEntry
	for name, addresses := range whitelistData {
		gemType, ok := gemTypes[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownGemType, name)
		}

		seen := make(map[common.Address]bool, len(addresses))
		for _, raw := range addresses {
			address, err := domain.ParseAddress(raw)
			if err != nil {
				return nil, fmt.Errorf("gem type %s: %w", gemType, err)
			}
			if seen[address] {
				continue
			}
			seen[address] = true
			entries = append(entries, WhitelistEntry{Address: address, GemType: gemType})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].GemType != entries[j].GemType {
			return entries[i].GemType < entries[j].GemType
		}
		return entries[i].Address.Cmp(entries[j].Address) < 0
	})

	return entries, nil
}

// SeedWhitelist admits every entry on behalf of the administrator.
// Entries admitted by an earlier run are skipped.
func SeedWhitelist(ctx context.Context, admitter Admitter, admin common.Address, entries []WhitelistEntry) (admitted int, skipped int, err error) {
	for _, e := range entries {
		err := admitter.AdmitToWhitelist(ctx, admin, e.Address, e.GemType)
		switch {
		case err == nil:
			admitted++
		case errors.Is(err, domain.ErrAlreadyAdmitted):
			skipped++
		default:
			return admitted, skipped, fmt.Errorf("failed to admit %s for %s: %w", e.Address.Hex(), e.GemType, err)
		}
	}

	logger.InfoCtx(ctx, "Whitelist seeded",
		zap.Int("admitted", admitted),
		zap.Int("skipped", skipped),
	)

	return admitted, skipped, nil
}

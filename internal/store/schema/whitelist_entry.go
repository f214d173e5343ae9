package schema

import (
	"time"

	"github.com/feral-file/ff-goblet/internal/domain"
)

// WhitelistEntry represents the whitelist_entries table - one mint ticket per (address, gem type)
type WhitelistEntry struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Address is the checksummed hex address admitted to mint
	Address string `gorm:"column:address;not null;type:text;uniqueIndex:idx_whitelist_address_gem_type,priority:1"`
	// GemType is the gem type the address may mint
	GemType domain.GemType `gorm:"column:gem_type;not null;uniqueIndex:idx_whitelist_address_gem_type,priority:2"`
	// Minted is set once the entry has been used
	Minted bool `gorm:"column:minted;not null;default:false"`
	// TokenID is the gemstone minted with this entry
	TokenID *uint64 `gorm:"column:token_id"`
	// MintedAt is the time the entry was used
	MintedAt *time.Time `gorm:"column:minted_at"`
	// CreatedAt is the admission time
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
}

// TableName specifies the table name for the WhitelistEntry model
func (WhitelistEntry) TableName() string {
	return "whitelist_entries"
}

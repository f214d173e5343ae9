package schema

import "time"

// GobletToken represents the goblet_tokens table - one row per issued goblet.
// Metadata URIs are derived from the token id and the current content identifier and are never stored.
type GobletToken struct {
	// TokenID is the sequential goblet id (1..150)
	TokenID uint64 `gorm:"column:token_id;primaryKey;autoIncrement:false"`
	// MintedTo is the checksummed hex address the goblet was issued to
	MintedTo string `gorm:"column:minted_to;not null;type:text;index"`
	// CalendarYear is the year encoded by the token id
	CalendarYear int `gorm:"column:calendar_year;not null"`
	// YearIndex is the eligibility window of a holder mint (nil for administrative mints)
	YearIndex *int `gorm:"column:year_index"`
	// OwnerMint marks administrative mints that bypassed eligibility
	OwnerMint bool `gorm:"column:owner_mint;not null;default:false"`
	// CreatedAt is the mint time
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
}

// TableName specifies the table name for the GobletToken model
func (GobletToken) TableName() string {
	return "goblet_tokens"
}

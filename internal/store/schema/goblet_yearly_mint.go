package schema

import "time"

// GobletYearlyMint represents the goblet_yearly_mints table - at most one holder mint per year window
type GobletYearlyMint struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Address is the checksummed hex address of the holder
	Address string `gorm:"column:address;not null;type:text;uniqueIndex:idx_goblet_yearly_mints_address_year,priority:1"`
	// YearIndex is the eligibility window (0..2)
	YearIndex int `gorm:"column:year_index;not null;uniqueIndex:idx_goblet_yearly_mints_address_year,priority:2"`
	// GobletTokenID is the goblet issued in this window
	GobletTokenID uint64 `gorm:"column:goblet_token_id;not null"`
	// CreatedAt is the mint time
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
}

// TableName specifies the table name for the GobletYearlyMint model
func (GobletYearlyMint) TableName() string {
	return "goblet_yearly_mints"
}

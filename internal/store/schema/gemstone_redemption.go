package schema

import (
	"time"

	"github.com/feral-file/ff-goblet/internal/domain"
)

// GemstoneRedemption represents the gemstone_redemptions table.
// A row exists for every gemstone token id consumed by a goblet mint; rows are never removed.
type GemstoneRedemption struct {
	// TokenID is the redeemed gemstone token id
	TokenID uint64 `gorm:"column:token_id;primaryKey;autoIncrement:false"`
	// GemType is the gem type of the token
	GemType domain.GemType `gorm:"column:gem_type;not null"`
	// RedeemedBy is the holder that redeemed the token
	RedeemedBy string `gorm:"column:redeemed_by;not null;type:text;index"`
	// RedeemedAt is the redemption time
	RedeemedAt time.Time `gorm:"column:redeemed_at;not null"`
}

// TableName specifies the table name for the GemstoneRedemption model
func (GemstoneRedemption) TableName() string {
	return "gemstone_redemptions"
}

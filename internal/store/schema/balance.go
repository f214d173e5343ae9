package schema

import (
	"time"

	"github.com/feral-file/ff-goblet/internal/domain"
)

// Balance represents the balances table - tracks ownership quantities for gemstone and goblet tokens
type Balance struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Collection identifies the ledger the token belongs to (gemstone, goblet)
	Collection domain.Collection `gorm:"column:collection;not null;type:text;uniqueIndex:idx_balances_collection_token_owner,priority:1;index:idx_balances_collection_owner,priority:1"`
	// TokenID is the token id within the collection
	TokenID uint64 `gorm:"column:token_id;not null;uniqueIndex:idx_balances_collection_token_owner,priority:2"`
	// OwnerAddress is the checksummed hex address of the owner
	OwnerAddress string `gorm:"column:owner_address;not null;type:text;uniqueIndex:idx_balances_collection_token_owner,priority:3;index:idx_balances_collection_owner,priority:2"`
	// Quantity is the number of units owned
	Quantity uint64 `gorm:"column:quantity;not null;default:0"`
	// CreatedAt is the timestamp when this balance was created
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	// UpdatedAt is the timestamp when this balance was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName specifies the table name for the Balance model
func (Balance) TableName() string {
	return "balances"
}

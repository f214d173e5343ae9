package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/feral-file/ff-goblet/internal/domain"
)

// LedgerEvent represents the ledger_events table - audit trail of committed state transitions
type LedgerEvent struct {
	// ID is the event ULID
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Collection identifies the ledger (gemstone, goblet)
	Collection domain.Collection `gorm:"column:collection;not null;type:text;index:idx_ledger_events_collection_type,priority:1"`
	// EventType identifies the transition (whitelisted, mint, transfer, redeemed, cid_updated)
	EventType domain.EventType `gorm:"column:event_type;not null;type:text;index:idx_ledger_events_collection_type,priority:2"`
	// FromAddress is the sender address (nil when not applicable)
	FromAddress *string `gorm:"column:from_address;type:text"`
	// ToAddress is the recipient address (nil when not applicable)
	ToAddress *string `gorm:"column:to_address;type:text"`
	// TokenID is the token involved (nil for redemptions and CID updates)
	TokenID *uint64 `gorm:"column:token_id"`
	// Payload contains the complete event as JSON
	Payload datatypes.JSON `gorm:"column:payload"`
	// Timestamp is the time the transition happened
	Timestamp time.Time `gorm:"column:timestamp;not null"`
	// CreatedAt is the timestamp when this record was written
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
}

// TableName specifies the table name for the LedgerEvent model
func (LedgerEvent) TableName() string {
	return "ledger_events"
}

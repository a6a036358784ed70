package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OfferModel mirrors the 'offers' table. The partial unique index allows one
// pending or countered offer per (product, buyer) pair.
type OfferModel struct {
	ID            uuid.UUID                              `gorm:"type:uuid;primaryKey"`
	ProductID     uuid.UUID                              `gorm:"type:uuid;not null;index;uniqueIndex:idx_offers_active_pair,priority:1,where:state = 'pending' OR state = 'countered'"`
	BuyerID       uuid.UUID                              `gorm:"type:uuid;not null;index;uniqueIndex:idx_offers_active_pair,priority:2"`
	SellerID      uuid.UUID                              `gorm:"type:uuid;not null;index"`
	InitialAmount decimal.Decimal                        `gorm:"type:numeric(12,2);not null"`
	CurrentAmount decimal.Decimal                        `gorm:"type:numeric(12,2);not null;check:chk_offers_current_amount,current_amount > 0"`
	ListingPrice  decimal.Decimal                        `gorm:"type:numeric(12,2);not null"`
	State         string                                 `gorm:"type:varchar(16);not null;index:idx_offers_state_expires,priority:1"`
	Messages      datatypes.JSONSlice[OfferMessageModel] `gorm:"type:jsonb;not null"`
	ExpiresAt     time.Time                              `gorm:"not null;index:idx_offers_state_expires,priority:2"`
	Version       int64                                  `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}

// OfferMessageModel is one element of the jsonb 'messages' column.
type OfferMessageModel struct {
	AuthorID       uuid.UUID        `json:"author_id"`
	Text           string           `json:"text"`
	ProposedAmount *decimal.Decimal `json:"proposed_amount,omitempty"`
	IsCounterOffer bool             `json:"is_counter_offer"`
	CreatedAt      time.Time        `json:"created_at"`
}

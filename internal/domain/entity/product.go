package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a listing in the catalog. Offers only read it.
type Product struct {
	ID         uuid.UUID       `json:"id"`
	Title      string          `json:"title"`
	Price      decimal.Decimal `json:"price"`
	OwnerID    uuid.UUID       `json:"owner_id"`
	IsActive   bool            `json:"is_active"`
	IsApproved bool            `json:"is_approved"` // Set by moderation.
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// IsAvailable reports whether buyers may make offers on the product.
func (p *Product) IsAvailable() bool {
	return p != nil && p.IsActive && p.IsApproved
}

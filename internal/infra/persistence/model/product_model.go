package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table owned by the catalog.
type ProductModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Title      string          `gorm:"type:varchar(200);not null"`
	Price      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	OwnerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	IsActive   bool            `gorm:"not null;default:true"`
	IsApproved bool            `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

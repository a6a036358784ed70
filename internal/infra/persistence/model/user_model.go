package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. The negotiation engine only reads it.
type UserModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	DisplayName string    `gorm:"type:varchar(100)"`
	Email       string    `gorm:"type:varchar(255);unique;not null"`
	Role        string    `gorm:"type:varchar(32);not null;default:user"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

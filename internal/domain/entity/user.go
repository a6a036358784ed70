// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a marketplace account as seen by the offer engine. The engine only
// reads users; registration and profile management live elsewhere.
type User struct {
	ID          uuid.UUID `json:"id"`           // The Global Unique Identifier (GUID) for the user.
	DisplayName string    `json:"display_name"` // Name shown to the other party and used in notices.
	Email       string    `json:"email"`        // Address used for notifications.
	Role        Role      `json:"role"`         // Account role.
	IsActive    bool      `json:"is_active"`    // Disabled accounts cannot act.
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

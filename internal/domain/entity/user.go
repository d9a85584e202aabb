// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity of the system, representing a registered account.
// An account starts inactive and becomes active once the holder proves email
// ownership with the activation code. The activation code is present only
// while the account is inactive; the reset code is present only between a
// forgot-password request and its consumption.
type User struct {
	ID             uuid.UUID  // The unique identifier for the account.
	Email          string     // The unique login identifier.
	HashedPassword string     // bcrypt hash; never exposed outside the domain.
	IsActive       bool       // True once the activation code has been redeemed.
	ActivationCode *string    // One-time code proving email ownership. Nil once activated.
	ResetCode      *string    // One-time code authorizing a password reset. Nil when unused.
	CreatedAt      time.Time  // Timestamp of when this account was created.
	UpdatedAt      time.Time  // Timestamp of the last modification to this account.
}

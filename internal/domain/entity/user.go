// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in to the admin panel.
// Customers placing orders are not users; checkout is anonymous.
type User struct {
	ID           uuid.UUID // The unique identifier of the user.
	Username     string    // Unique login name.
	Email        string    // Contact email, may be empty.
	PasswordHash string    // bcrypt hash of the user's password.
	IsActive     bool      // Disabled accounts cannot sign in.
	IsSuperuser  bool      // Superusers default to the admin role when no profile exists.
	Profile      *Profile  // Role-bearing profile; nil until materialized.
	CreatedAt    time.Time // Timestamp of when the account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// Profile carries the role attached to a user account. It is created lazily:
// a superuser signing in without a profile gets an admin profile on the spot.
type Profile struct {
	UserID    uuid.UUID // Foreign key linking this profile to its User.
	Role      Role      // The role granted to the account.
	CreatedAt time.Time // Timestamp of when the profile was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// EffectiveRole resolves the role for a user, applying the superuser default
// when no profile has been materialized yet.
func (u *User) EffectiveRole() Role {
	if u.Profile != nil {
		return u.Profile.Role
	}
	if u.IsSuperuser {
		return RoleAdmin
	}

	return RoleUser
}

// Package account implements the account record store and the operations
// composed on top of it: login, signup, fetch, edit, edit-role and suspend.
package account

import (
	"time"

	"github.com/google/uuid"

	"github.com/jdgames/account-service/internal/authz"
)

// Account is the persisted account record. The password hash never leaves
// the service layer.
type Account struct {
	ID           uuid.UUID
	Nickname     string
	Username     string
	Email        string
	PasswordHash string
	Role         authz.Role
	IsStaff      bool
	IsSuspended  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Summary is the projection returned alongside a freshly issued token.
type Summary struct {
	ID       uuid.UUID  `json:"id"`
	Username string     `json:"username"`
	Role     authz.Role `json:"role"`
}

// Profile is the restricted projection served by the public fetch endpoint.
type Profile struct {
	ID          uuid.UUID  `json:"id"`
	Nickname    string     `json:"nickname"`
	Username    string     `json:"username"`
	Role        authz.Role `json:"role"`
	IsStaff     bool       `json:"is_staff"`
	IsSuspended bool       `json:"is_suspended"`
}

// Summary returns the public account summary.
func (a *Account) Summary() Summary {
	return Summary{ID: a.ID, Username: a.Username, Role: a.Role}
}

// Profile returns the public account projection.
func (a *Account) Profile() *Profile {
	return &Profile{
		ID:          a.ID,
		Nickname:    a.Nickname,
		Username:    a.Username,
		Role:        a.Role,
		IsStaff:     a.IsStaff,
		IsSuspended: a.IsSuspended,
	}
}

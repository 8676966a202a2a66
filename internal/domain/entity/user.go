package entity

import (
	"github.com/google/uuid"
	"github.com/techstock/techstock-api/internal/domain/enum"
)

// User is a local account. Accounts are seeded; there is no self-service
// registration in a single-tenant deployment.
type User struct {
	ID           uuid.UUID         `json:"id"`
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	PasswordHash string            `json:"-"`
	Role         enum.UserRole     `json:"role"`
	Permissions  []enum.Permission `json:"permissions"`
	Avatar       string            `json:"avatar,omitempty"`
}

// HasPermission reports whether the user may perform the gated operation.
// Admins implicitly hold every permission.
func (u *User) HasPermission(perm enum.Permission) bool {
	if u.Role == enum.RoleAdmin {
		return true
	}
	for _, p := range u.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

// Actor is the identity attributed to a mutating operation for audit
// purposes. Workflow operations take it explicitly rather than reading
// ambient session state.
type Actor struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// SystemActor is the sentinel used when no authenticated actor is present
var SystemActor = Actor{Name: "System", Role: "SYSTEM"}

// OrSystem returns the actor, or the System sentinel when it is empty
func (a Actor) OrSystem() Actor {
	if a.Name == "" {
		return SystemActor
	}
	return a
}

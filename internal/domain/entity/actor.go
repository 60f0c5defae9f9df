package entity

import "github.com/google/uuid"

// Actor is the authenticated account performing an operation.
type Actor struct {
	UserID uuid.UUID
	Role   Role
}

// IsCustomer reports whether the actor acts as a customer.
func (a Actor) IsCustomer() bool { return a.Role == RoleCustomer }

// IsProvider reports whether the actor acts as a service provider.
func (a Actor) IsProvider() bool { return a.Role == RoleServiceProvider }

// IsAdmin reports whether the actor acts as an administrator.
func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

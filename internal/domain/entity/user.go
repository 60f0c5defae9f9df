// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account of any role. Deleting it removes everything the account owns.
type User struct {
	ID             uuid.UUID `json:"id"`              // The Global Unique Identifier (GUID) for the user.
	Username       string    `json:"username"`        // Login name, unique across all roles.
	Email          string    `json:"email"`           // Contact email.
	Role           Role      `json:"role"`            // Fixed at registration.
	Phone          string    `json:"phone"`           // Optional contact phone.
	Address        string    `json:"address"`         // Optional postal address.
	ProfilePicture string    `json:"profile_picture"` // Blob key of the uploaded picture, empty when none.
	CreatedAt      time.Time `json:"created_at"`      // Timestamp of when this user account was created.
	UpdatedAt      time.Time `json:"updated_at"`      // Timestamp of the last modification to this user's data.
}

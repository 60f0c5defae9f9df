// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"washapp/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUsername is returned when the username is already registered.
	ErrDuplicateUsername = errors.New("username already exists")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error

	// Update writes the mutable profile fields (email, phone, address, picture).
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user; storage cascades to everything the account owns.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of users holding role, or all users when role is empty.
	Count(ctx context.Context, role entity.Role) (int64, error)
}

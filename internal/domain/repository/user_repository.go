// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"agency/internal/domain/entity"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists is returned by Create when the store already holds the email.
	// The store enforces this itself, so it is authoritative even when two
	// registrations race past the application-level existence check.
	ErrUserExists = errors.New("user already exists")

	// ErrCorruptRecord is returned when a stored record is missing a required field.
	ErrCorruptRecord = errors.New("corrupt record")
)

// UserRepository persists registered accounts.
type UserRepository interface {
	// FindByEmail returns the single user with this exact email, or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create inserts a new user, failing with ErrUserExists on a duplicate email.
	Create(ctx context.Context, user *entity.User) error
}

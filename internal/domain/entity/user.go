// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"
)

// User is a registered account. Email is its identity and is unique across the store.
type User struct {
	Email        string    // Login identifier and primary key.
	PasswordHash string    // bcrypt hash of the password; never the plaintext.
	Name         string    // Display name, derived from the email local-part on registration.
	CreatedAt    time.Time // Timestamp of registration.
}

// NewUser builds the record persisted on registration.
func NewUser(email, passwordHash string, now time.Time) *User {
	return &User{
		Email:        email,
		PasswordHash: passwordHash,
		Name:         DisplayNameFromEmail(email),
		CreatedAt:    now.UTC(),
	}
}

// NormalizeEmail lower-cases the domain of an address. The local part is
// kept as typed, so "Ava@Studio.COM" and "Ava@studio.com" are one account
// while "ava@studio.com" is another.
func NormalizeEmail(email string) string {
	at := strings.LastIndexByte(email, '@')
	if at < 0 {
		return email
	}

	return email[:at+1] + strings.ToLower(email[at+1:])
}

// DisplayNameFromEmail returns the part of an address before the first '@'.
func DisplayNameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")

	return local
}

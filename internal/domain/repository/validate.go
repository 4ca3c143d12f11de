package repository

import (
	"agency/internal/domain/entity"

	"github.com/pkg/errors"
)

// ValidateUserRecord checks a user decoded from storage carries every field
// the auth flow relies on.
func ValidateUserRecord(user *entity.User) error {
	switch {
	case user == nil:
		return errors.Wrap(ErrCorruptRecord, "user record is empty")
	case user.Email == "":
		return errors.Wrap(ErrCorruptRecord, "user record has no email")
	case user.PasswordHash == "":
		return errors.Wrapf(ErrCorruptRecord, "user %s has no password_hash", user.Email)
	}

	return nil
}

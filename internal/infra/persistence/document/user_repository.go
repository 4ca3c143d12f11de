package document

import (
	"context"
	"time"

	"agency/internal/domain/entity"
	"agency/internal/domain/repository"

	"github.com/pkg/errors"
	"gocloud.dev/gcerrors"
)

// userDocument is the stored shape of a user.
type userDocument struct {
	Email        string    `docstore:"email"`
	PasswordHash string    `docstore:"password_hash"`
	Name         string    `docstore:"name"`
	CreatedAt    time.Time `docstore:"created_at"`
}

type userRepository struct {
	store *Store
}

// NewUserRepository returns a UserRepository backed by the users collection.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	doc := &userDocument{Email: email}
	if err := repo.store.Users.Get(ctx, doc); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	user := toUserDomain(doc)
	if err := repository.ValidateUserRecord(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := repo.store.Users.Create(ctx, fromUserDomain(user)); err != nil {
		if gcerrors.Code(err) == gcerrors.AlreadyExists {
			return repository.ErrUserExists
		}

		return errors.Wrap(err, "failed to create user")
	}

	return nil
}

func toUserDomain(doc *userDocument) *entity.User {
	return &entity.User{
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		Name:         doc.Name,
		CreatedAt:    doc.CreatedAt,
	}
}

func fromUserDomain(user *entity.User) *userDocument {
	return &userDocument{
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Name:         user.Name,
		CreatedAt:    user.CreatedAt,
	}
}

package postgres

import (
	"context"

	"agency/internal/domain/entity"
	"agency/internal/domain/repository"
	"agency/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByEmail retrieves the user whose primary key is email.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).Take(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	user := toUserDomain(&userM)
	if err := repository.ValidateUserRecord(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Create inserts a user row. The email primary key turns a racing duplicate into ErrUserExists.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := repo.db.WithContext(ctx).Create(fromUserDomain(user)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUserExists
		}

		return errors.Wrap(err, "failed to create user")
	}

	return nil
}

func toUserDomain(data *model.UserModel) *entity.User {
	return &entity.User{
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Name:         data.Name,
		CreatedAt:    data.CreatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	return &model.UserModel{
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Name:         data.Name,
		CreatedAt:    data.CreatedAt,
	}
}

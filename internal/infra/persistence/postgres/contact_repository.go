package postgres

import (
	"context"

	"agency/internal/domain/entity"
	"agency/internal/domain/repository"
	"agency/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

func (repo *contactRepository) Create(ctx context.Context, msg *entity.ContactMessage) error {
	row := &model.ContactMessageModel{
		ID:        msg.ID,
		Name:      msg.Name,
		Email:     msg.Email,
		Message:   msg.Message,
		CreatedAt: msg.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		return errors.Wrap(err, "failed to store contact message")
	}

	return nil
}

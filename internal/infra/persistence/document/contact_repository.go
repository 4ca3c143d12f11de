package document

import (
	"context"
	"time"

	"agency/internal/domain/entity"
	"agency/internal/domain/repository"

	"github.com/pkg/errors"
)

type contactDocument struct {
	ID        string    `docstore:"id"`
	Name      string    `docstore:"name"`
	Email     string    `docstore:"email"`
	Message   string    `docstore:"message"`
	CreatedAt time.Time `docstore:"created_at"`
}

type contactRepository struct {
	store *Store
}

// NewContactRepository returns a ContactRepository backed by the contacts collection.
func NewContactRepository(store *Store) repository.ContactRepository {
	return &contactRepository{store: store}
}

func (repo *contactRepository) Create(ctx context.Context, msg *entity.ContactMessage) error {
	doc := &contactDocument{
		ID:        msg.ID.String(),
		Name:      msg.Name,
		Email:     msg.Email,
		Message:   msg.Message,
		CreatedAt: msg.CreatedAt,
	}

	if err := repo.store.Contacts.Create(ctx, doc); err != nil {
		return errors.Wrap(err, "failed to store contact message")
	}

	return nil
}

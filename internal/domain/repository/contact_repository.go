package repository

import (
	"context"

	"agency/internal/domain/entity"
)

// ContactRepository stores contact-form submissions. There is no read path.
type ContactRepository interface {
	Create(ctx context.Context, msg *entity.ContactMessage) error
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is a lead captured from the public contact form. It is write-only.
type ContactMessage struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}

// NewContactMessage assigns an identity and timestamp to a submission.
func NewContactMessage(name, email, message string, now time.Time) *ContactMessage {
	return &ContactMessage{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: now.UTC(),
	}
}

package service

import (
	"context"
	"time"
)

// ContactSubmittedEvent announces a new lead to downstream consumers (CRM sync, mail alerts).
type ContactSubmittedEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	MessageID   string    `json:"message_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// LeadPublisher publishes captured leads to a message bus
type LeadPublisher interface {
	PublishContactSubmitted(ctx context.Context, event *ContactSubmittedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

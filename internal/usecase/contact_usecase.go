package usecase

import "context"

// ContactInput is a contact-form submission.
type ContactInput struct {
	Name    string
	Email   string
	Message string
}

// ContactOutput acknowledges a stored submission.
type ContactOutput struct {
	OK       bool
	Received bool
}

// ContactUsecase captures leads from the public contact form.
type ContactUsecase interface {
	SubmitContact(ctx context.Context, input *ContactInput) (*ContactOutput, error)
}

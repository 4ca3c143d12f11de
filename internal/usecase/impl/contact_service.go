package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "agency/internal/delivery/context"
	"agency/internal/domain/entity"
	domainerrors "agency/internal/domain/errors"
	"agency/internal/domain/repository"
	"agency/internal/domain/service"
	"agency/internal/usecase"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

type contactService struct {
	contactRepo repository.ContactRepository
	publisher   service.LeadPublisher
	validate    *validator.Validate
	logger      *slog.Logger
	now         func() time.Time
}

// ContactServiceParams holds dependencies for ContactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	ContactRepo repository.ContactRepository
	Publisher   service.LeadPublisher
	Logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		contactRepo: params.ContactRepo,
		publisher:   params.Publisher,
		validate:    validator.New(),
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitContact stores the submission, then announces it. The email is
// checked here as well as at the edge so nothing malformed reaches the store.
func (srv *contactService) SubmitContact(ctx context.Context, input *usecase.ContactInput) (*usecase.ContactOutput, error) {
	if err := srv.validate.Var(input.Email, "required,email"); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email: must be a valid email address")
	}

	msg := entity.NewContactMessage(input.Name, entity.NormalizeEmail(input.Email), input.Message, srv.now())
	if err := srv.contactRepo.Create(ctx, msg); err != nil {
		srv.log(ctx).Error("Failed to store contact message", slog.Any("error", err))

		return nil, domainerrors.NewStorageError(err)
	}

	srv.log(ctx).Info("Contact message stored", slog.String("message_id", msg.ID.String()))

	// Best effort: the lead is already stored.
	event := &service.ContactSubmittedEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		MessageID:   msg.ID.String(),
		Name:        msg.Name,
		Email:       msg.Email,
		Message:     msg.Message,
		SubmittedAt: msg.CreatedAt,
	}
	if err := srv.publisher.PublishContactSubmitted(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish lead", slog.String("message_id", event.MessageID), slog.Any("error", err))
	}

	return &usecase.ContactOutput{OK: true, Received: true}, nil
}

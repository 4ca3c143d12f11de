// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "agency/internal/delivery/context"
	"agency/internal/domain/constants"
	"agency/internal/domain/entity"
	domainerrors "agency/internal/domain/errors"
	"agency/internal/domain/repository"
	"agency/internal/domain/service"
	"agency/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account and signs the caller in.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.TokenOutput, error) {
	email := entity.NormalizeEmail(input.Email)

	_, err := srv.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		srv.log(ctx).Warn("Registration for existing email", slog.String("email", email))

		return nil, domainerrors.ErrEmailTaken
	case !errors.Is(err, repository.ErrUserNotFound):
		srv.log(ctx).Error("Failed to look up user during registration", slog.Any("error", err))

		return nil, domainerrors.NewStorageError(err)
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		if errors.Is(err, domainerrors.ErrPasswordTooLong) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	user := entity.NewUser(email, passwordHash, srv.now())
	if err := srv.userRepo.Create(ctx, user); err != nil {
		// Another request registered the same email after our lookup.
		if errors.Is(err, repository.ErrUserExists) {
			srv.log(ctx).Warn("Concurrent registration for email", slog.String("email", email))

			return nil, domainerrors.ErrEmailTaken
		}
		srv.log(ctx).Error("Failed to create user", slog.Any("error", err))

		return nil, domainerrors.NewStorageError(err)
	}

	srv.log(ctx).Info("User registered", slog.String("email", user.Email))

	return srv.issueToken(user.Email)
}

// Login verifies the password. Unknown emails and wrong passwords are indistinguishable.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	email := entity.NormalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Debug("Login for unknown email", slog.String("email", email))

			return nil, domainerrors.ErrInvalidCredentials
		}
		srv.log(ctx).Error("Failed to look up user during login", slog.Any("error", err))

		return nil, domainerrors.NewStorageError(err)
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Debug("Login with wrong password", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issueToken(user.Email)
}

// CurrentUser resolves a bearer token to the stored user.
func (srv *authService) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		srv.log(ctx).Debug("Rejected bearer token", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthenticated
	}

	user, err := srv.userRepo.FindByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthenticated
		}
		srv.log(ctx).Error("Failed to load token subject", slog.Any("error", err))

		return nil, domainerrors.NewStorageError(err)
	}

	return user, nil
}

func (srv *authService) issueToken(email string) (*usecase.TokenOutput, error) {
	accessToken, err := srv.tokenService.IssueToken(email, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	return &usecase.TokenOutput{
		AccessToken: accessToken,
		TokenType:   constants.TokenTypeBearer,
	}, nil
}

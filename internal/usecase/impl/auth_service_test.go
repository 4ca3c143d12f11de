package impl

import (
	"context"
	"testing"
	"time"

	"agency/internal/domain/entity"
	domainerrors "agency/internal/domain/errors"
	"agency/internal/domain/repository"
	"agency/internal/domain/service"
	mockRepo "agency/internal/mocks/repository"
	mockSvc "agency/internal/mocks/service"
	"agency/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      *authService
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

var registeredAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	srv := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	}).(*authService)
	srv.now = fixedClock(registeredAt)

	return authServiceFixtures{
		service:      srv,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ava@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("s3cret").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, &entity.User{
		Email:        "ava@example.com",
		PasswordHash: "hashed",
		Name:         "ava",
		CreatedAt:    registeredAt,
	}).Return(nil)
	fx.tokenService.EXPECT().IssueToken("ava@example.com", time.Duration(0)).Return("token-abc", nil)

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "ava@example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, &usecase.TokenOutput{AccessToken: "token-abc", TokenType: "bearer"}, out)
}

func TestAuthService_Register_NormalizesDomain(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "Ava@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("s3cret").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, &entity.User{
		Email:        "Ava@example.com",
		PasswordHash: "hashed",
		Name:         "Ava",
		CreatedAt:    registeredAt,
	}).Return(nil)
	fx.tokenService.EXPECT().IssueToken("Ava@example.com", time.Duration(0)).Return("token-abc", nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "Ava@EXAMPLE.com", Password: "s3cret"})
	require.NoError(t, err)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ava@example.com").
		Return(&entity.User{Email: "ava@example.com", PasswordHash: "h"}, nil)

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "ava@example.com", Password: "x"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthService_Register_ConcurrentDuplicate(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ava@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("x").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrUserExists)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "ava@example.com", Password: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthService_Register_PasswordTooLong(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ava@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(mock.Anything).Return("", domainerrors.ErrPasswordTooLong)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "ava@example.com", Password: "long"})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordTooLong)
}

func TestAuthService_Register_StoreFailures(t *testing.T) {
	t.Run("lookup fails", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "ava@example.com").Return(nil, errors.New("connection reset"))

		_, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "ava@example.com", Password: "x"})

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "STORAGE_FAILURE", appErr.ErrorCode())
		assert.Equal(t, "connection reset", appErr.Details())
	})

	t.Run("insert fails", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "ava@example.com").Return(nil, repository.ErrUserNotFound)
		fx.hasher.EXPECT().Hash("x").Return("hashed", nil)
		fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("write conflict"))

		_, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "ava@example.com", Password: "x"})

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 500, appErr.HTTPCode())
	})
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ava@example.com").
		Return(&entity.User{Email: "ava@example.com", PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("s3cret", "hashed").Return(true)
	fx.tokenService.EXPECT().IssueToken("ava@example.com", time.Duration(0)).Return("token-abc", nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ava@example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "token-abc", out.AccessToken)
	assert.Equal(t, "bearer", out.TokenType)
}

func TestAuthService_Login_NormalizesDomain(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ava@example.com").
		Return(&entity.User{Email: "ava@example.com", PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("s3cret", "hashed").Return(true)
	fx.tokenService.EXPECT().IssueToken("ava@example.com", time.Duration(0)).Return("token-abc", nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ava@Example.COM", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "token-abc", out.AccessToken)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "x"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "ava@example.com").
			Return(&entity.User{Email: "ava@example.com", PasswordHash: "hashed"}, nil)
		fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ava@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Login_CorruptRecord(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ava@example.com").
		Return(nil, errors.Wrap(repository.ErrCorruptRecord, "user ava@example.com has no password_hash"))

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ava@example.com", Password: "x"})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "STORAGE_FAILURE", appErr.ErrorCode())
	assert.ErrorIs(t, err, repository.ErrCorruptRecord)
}

func TestAuthService_CurrentUser(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{Email: "ava@example.com", PasswordHash: "hashed", Name: "ava"}

	fx.tokenService.EXPECT().ValidateToken("good").Return(&service.Claims{Subject: "ava@example.com"}, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "ava@example.com").Return(user, nil)

	got, err := fx.service.CurrentUser(ctx, "good")
	require.NoError(t, err)
	assert.Same(t, user, got)
}

func TestAuthService_CurrentUser_Unauthenticated(t *testing.T) {
	tests := []struct {
		name  string
		setup func(fx authServiceFixtures)
	}{
		{
			name: "invalid token",
			setup: func(fx authServiceFixtures) {
				fx.tokenService.EXPECT().ValidateToken("tok").Return(nil, service.ErrInvalidToken)
			},
		},
		{
			name: "missing subject",
			setup: func(fx authServiceFixtures) {
				fx.tokenService.EXPECT().ValidateToken("tok").Return(nil, service.ErrMissingSubject)
			},
		},
		{
			name: "user no longer exists",
			setup: func(fx authServiceFixtures) {
				fx.tokenService.EXPECT().ValidateToken("tok").Return(&service.Claims{Subject: "gone@example.com"}, nil)
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "gone@example.com").Return(nil, repository.ErrUserNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			tt.setup(fx)

			user, err := fx.service.CurrentUser(context.Background(), "tok")
			assert.Nil(t, user)
			assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
		})
	}
}

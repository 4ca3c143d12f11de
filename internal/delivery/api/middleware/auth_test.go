package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"agency/internal/domain/entity"
	domainerrors "agency/internal/domain/errors"
	mockUC "agency/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func runAuthenticate(t *testing.T, authUC *mockUC.MockAuthUsecase, header string) (*httptest.ResponseRecorder, *entity.User, error) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	var seen *entity.User
	err := NewAuthMiddleware(authUC).Authenticate(func(c echo.Context) error {
		user, ok := GetCurrentUser(c)
		require.True(t, ok)
		seen = user

		return nil
	})(c)

	return rec, seen, err
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	user := &entity.User{Email: "ava@example.com", Name: "ava"}
	authUC.EXPECT().CurrentUser(mock.Anything, "good-token").Return(user, nil)

	_, seen, err := runAuthenticate(t, authUC, "Bearer good-token")

	require.NoError(t, err)
	assert.Equal(t, user, seen)
}

func TestAuthMiddleware_SchemeIsCaseInsensitive(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	authUC.EXPECT().CurrentUser(mock.Anything, "good-token").Return(&entity.User{Email: "ava@example.com"}, nil)

	_, _, err := runAuthenticate(t, authUC, "bearer good-token")

	require.NoError(t, err)
}

func TestAuthMiddleware_RejectsMissingOrMalformedHeader(t *testing.T) {
	headers := []string{"", "Bearer", "Bearer ", "Basic dXNlcjpwdw==", "good-token"}

	for _, header := range headers {
		t.Run(header, func(t *testing.T) {
			rec, _, err := runAuthenticate(t, mockUC.NewMockAuthUsecase(t), header)

			require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
			assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
		})
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	authUC.EXPECT().CurrentUser(mock.Anything, "expired").Return(nil, domainerrors.ErrUnauthenticated)

	rec, _, err := runAuthenticate(t, authUC, "Bearer expired")

	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
}

func TestAuthMiddleware_StoreFailurePassesThrough(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	storeErr := domainerrors.NewStorageError(errors.New("timeout"))
	authUC.EXPECT().CurrentUser(mock.Anything, "token").Return(nil, storeErr)

	rec, _, err := runAuthenticate(t, authUC, "Bearer token")

	require.ErrorIs(t, err, storeErr)
	assert.Empty(t, rec.Header().Get(echo.HeaderWWWAuthenticate))
}

func TestGetCurrentUser_Absent(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := GetCurrentUser(c)
	assert.False(t, ok)
}

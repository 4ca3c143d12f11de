package middleware

import (
	"strings"

	"agency/internal/domain/entity"
	domainerrors "agency/internal/domain/errors"
	"agency/internal/errors"
	"agency/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	currentUserKey = "currentUser"
	bearerScheme   = "Bearer"
)

// AuthMiddleware resolves the bearer token of a request to the registered user.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate rejects the request with 401 unless it carries a valid token for an existing user.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return unauthenticated(c)
		}

		user, err := m.authUC.CurrentUser(c.Request().Context(), token)
		if err != nil {
			if errors.Is(err, domainerrors.ErrUnauthenticated) {
				return unauthenticated(c)
			}

			return err
		}

		c.Set(currentUserKey, user)

		return next(c)
	}
}

// GetCurrentUser returns the user stored by Authenticate.
func GetCurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(currentUserKey).(*entity.User)

	return user, ok && user != nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}

func unauthenticated(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, bearerScheme)

	return domainerrors.ErrUnauthenticated
}

package handler

import (
	"net/http"

	apimiddleware "agency/internal/delivery/api/middleware"
	"agency/internal/delivery/api/response"
	"agency/internal/delivery/middleware"
	domainerrors "agency/internal/domain/errors"
	"agency/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type credentialsRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password *string `json:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type profileResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthHandler serves registration, login and the current-user profile.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		middleware.RecordAuthAttempt("register", middleware.OutcomeRejected)

		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:    req.Email,
		Password: *req.Password,
	})
	middleware.RecordAuthAttempt("register", outcome(err))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toTokenResponse(output))
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		middleware.RecordAuthAttempt("login", middleware.OutcomeRejected)

		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: *req.Password,
	})
	middleware.RecordAuthAttempt("login", outcome(err))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toTokenResponse(output))
}

// Me handles GET /me; the route sits behind AuthMiddleware.Authenticate.
func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := apimiddleware.GetCurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	return response.JSON(c, http.StatusOK, profileResponse{
		Email: user.Email,
		Name:  user.Name,
	})
}

func toTokenResponse(output *usecase.TokenOutput) tokenResponse {
	return tokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
	}
}

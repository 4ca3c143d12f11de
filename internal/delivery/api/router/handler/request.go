// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"agency/internal/delivery/middleware"
	domainerrors "agency/internal/domain/errors"
	"agency/internal/errors"

	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the JSON body into req and runs the struct tag rules.
// Malformed bodies are reported like failed validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("body: " + bindErrorMessage(err))
	}

	return c.Validate(req)
}

func bindErrorMessage(err error) string {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code == http.StatusUnsupportedMediaType {
			return "content type must be application/json"
		}
		if msg, ok := httpErr.Message.(string); ok {
			return msg
		}
	}

	return "malformed request body"
}

// outcome classifies a usecase result for the business counters.
func outcome(err error) string {
	if err == nil {
		return middleware.OutcomeSuccess
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return middleware.OutcomeRejected
	}

	return middleware.OutcomeError
}

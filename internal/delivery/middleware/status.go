package middleware

import (
	"net/http"

	domainerrors "agency/internal/domain/errors"
	"agency/internal/errors"

	"github.com/labstack/echo/v4"
)

// responseStatus predicts the status the error handler will write for err.
// Middlewares run before the central HTTPErrorHandler, so for a failed
// request the response has not been written yet when they observe it.
func responseStatus(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}

// routeLabel returns the matched route pattern, keeping label cardinality bounded.
func routeLabel(c echo.Context) string {
	if path := c.Path(); path != "" {
		return path
	}

	return "unmatched"
}

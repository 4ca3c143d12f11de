package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "agency/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func runRequestID(t *testing.T, header string) (echo.Context, *httptest.ResponseRecorder, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenInContext string
	handler := NewRequestIDMiddleware(newDiscardLogger()).Process(func(c echo.Context) error {
		ctx := c.Request().Context()
		seenInContext = deliverycontext.GetRequestIDFromContext(ctx)
		assert.NotNil(t, deliverycontext.GetLogger(ctx))

		return c.NoContent(http.StatusNoContent)
	})
	require.NoError(t, handler(c))

	return c, rec, seenInContext
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	c, rec, inContext := runRequestID(t, "")

	id := rec.Header().Get(deliverycontext.HeaderXRequestID)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, inContext)
	assert.Equal(t, id, deliverycontext.GetRequestID(c))
}

func TestRequestIDMiddleware_ReusesClientID(t *testing.T) {
	_, rec, inContext := runRequestID(t, "client-trace-42")

	assert.Equal(t, "client-trace-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "client-trace-42", inContext)
}

func TestRequestIDMiddleware_ReplacesUnacceptableID(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "too long", header: strings.Repeat("a", maxClientRequestIDLength+1)},
		{name: "contains space", header: "two words"},
		{name: "non ascii", header: "id-ü"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, rec, _ := runRequestID(t, tt.header)

			id := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEqual(t, tt.header, id)
			_, err := uuid.Parse(id)
			assert.NoError(t, err)
		})
	}
}

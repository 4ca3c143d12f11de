package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "agency/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() echo.Context {
	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
}

func TestResponseStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "app error", err: errors.WithStack(domainerrors.ErrEmailTaken), want: http.StatusBadRequest},
		{name: "echo error", err: echo.ErrNotFound, want: http.StatusNotFound},
		{name: "unknown error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, responseStatus(newTestContext(), tt.err))
		})
	}
}

func TestResponseStatus_CommittedResponseWins(t *testing.T) {
	c := newTestContext()
	require.NoError(t, c.NoContent(http.StatusAccepted))

	assert.Equal(t, http.StatusAccepted, responseStatus(c, errors.New("late failure")))
}

func TestRouteLabel(t *testing.T) {
	c := newTestContext()
	assert.Equal(t, "unmatched", routeLabel(c))

	c.SetPath("/auth/login")
	assert.Equal(t, "/auth/login", routeLabel(c))
}

func TestMetrics_CountsByRouteAndStatus(t *testing.T) {
	c := newTestContext()
	c.SetPath("/metrics-test")

	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/metrics-test", "422")
	before := testutil.ToFloat64(counter)

	err := Metrics(func(echo.Context) error {
		return domainerrors.ErrValidationFailed
	})(c)

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	assert.Equal(t, float64(0), testutil.ToFloat64(httpRequestsInFlight))
}

func TestRecordBusinessCounters(t *testing.T) {
	login := authAttemptsTotal.WithLabelValues("login", OutcomeRejected)
	contact := contactSubmissionsTotal.WithLabelValues(OutcomeSuccess)
	loginBefore := testutil.ToFloat64(login)
	contactBefore := testutil.ToFloat64(contact)

	RecordAuthAttempt("login", OutcomeRejected)
	RecordContactSubmission(OutcomeSuccess)

	assert.Equal(t, loginBefore+1, testutil.ToFloat64(login))
	assert.Equal(t, contactBefore+1, testutil.ToFloat64(contact))
}

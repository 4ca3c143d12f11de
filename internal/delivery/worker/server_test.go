package worker

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agency/config"
	"agency/internal/delivery/worker/handler"
	"agency/internal/domain/service"
	"agency/internal/infra/pubsub"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		PubSub:  &config.PubSubConfig{Provider: "local"},
		Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	cfg.Env.Env = "local"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := NewEcho(cfg, logger, handler.NewPushHandler(handler.PushHandlerParams{Config: cfg, Logger: logger}))
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	return srv
}

func TestWorker_ReceivesLeadsFromLocalPublisher(t *testing.T) {
	srv := newTestWorker(t)
	publisher := pubsub.NewLocalHTTPPublisher(srv.URL+"/push", slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := publisher.PublishContactSubmitted(context.Background(), &service.ContactSubmittedEvent{
		RequestID:   "req-1",
		MessageID:   "msg-1",
		Name:        "Ava",
		Email:       "ava@example.com",
		Message:     "Trailer please",
		SubmittedAt: time.Now(),
	})
	require.NoError(t, err)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `agency_leads_received_total{outcome="success"}`)
}

func TestWorker_Health(t *testing.T) {
	srv := newTestWorker(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

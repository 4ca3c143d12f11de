// Package pubsub announces captured leads on a message bus.
package pubsub

import (
	"context"
	"log/slog"

	"agency/config"
	"agency/internal/domain/constants"
	"agency/internal/domain/lifecycle"
	"agency/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// eventTypeContactSubmitted is sent as the event_type attribute so subscribers can filter.
const eventTypeContactSubmitted = "contact.submitted"

// noopPublisher is used when no provider is configured
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishContactSubmitted(_ context.Context, event *service.ContactSubmittedEvent) error {
	p.logger.Debug("[NoopPubSub] Lead publishing disabled, skipping",
		slog.String("message_id", event.MessageID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for LeadPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewLeadPublisher creates a LeadPublisher based on pubsub.provider
func NewLeadPublisher(params PublisherParams) (service.LeadPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op lead publisher")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.LeadPublisher

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for leads",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		var err error
		publisher, err = NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing LeadPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// eventAttributes are attached to every published lead for filtering and tracing.
func eventAttributes(event *service.ContactSubmittedEvent) map[string]string {
	attributes := map[string]string{
		"event_type": eventTypeContactSubmitted,
		"message_id": event.MessageID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

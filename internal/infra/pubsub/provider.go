package pubsub

import (
	"context"
	"log/slog"

	"zembil/config"
	"zembil/internal/domain/constants"
	"zembil/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the transport named by pubsub.provider. Without a provider
// events are dropped, which keeps product creation independent of the push worker.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("Event publishing disabled")

		return noopPublisher{}, nil
	}

	if err := validatePubSubConfig(cfg); err != nil {
		return nil, err
	}

	var publisher service.EventPublisher
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		publisher = newLocalHTTPPublisher(cfg.LocalEndpoint, params.Logger)
	case constants.PubSubProviderGoogle:
		google, err := newGooglePublisher(params.Ctx, cfg, params.Logger)
		if err != nil {
			return nil, err
		}
		publisher = google
	}

	params.Logger.Info("Event publisher ready", slog.String("provider", cfg.Provider))
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func validatePubSubConfig(cfg *config.PubSubConfig) error {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("pubsub.localEndpoint is required for the local provider")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
	default:
		return errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	return nil
}

type noopPublisher struct{}

func (noopPublisher) PublishProductEvent(context.Context, *service.ProductEvent) error { return nil }

func (noopPublisher) Close() error { return nil }

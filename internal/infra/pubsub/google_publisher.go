package pubsub

import (
	"context"
	"log/slog"

	"zembil/config"
	"zembil/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePublisher publishes product events to a Pub/Sub topic, ordered per shop.
type googlePublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

func newGooglePublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (*googlePublisher, error) {
	client, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	// Fail at startup rather than on the first product when the topic is missing.
	topic := "projects/" + cfg.ProjectID + "/topics/" + cfg.TopicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "get topic %s", topic)
	}

	publisher := client.Publisher(cfg.TopicID)
	publisher.EnableMessageOrdering = true

	return &googlePublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishProductEvent waits for the server ack so callers can log failures.
func (p *googlePublisher) PublishProductEvent(ctx context.Context, event *service.ProductEvent) error {
	enc, err := encodeProductEvent(event)
	if err != nil {
		return err
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        enc.data,
		Attributes:  enc.attributes,
		OrderingKey: enc.orderingKey,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		// A failed ordered publish pauses its key until resumed.
		p.publisher.ResumePublish(enc.orderingKey)

		return errors.Wrap(err, "publish product event")
	}

	p.logger.DebugContext(ctx, "Product event published",
		slog.Uint64("product_id", uint64(event.ProductID)),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *googlePublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}

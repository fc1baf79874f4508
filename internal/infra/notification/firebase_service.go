// Package notification delivers push notifications through Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"zembil/config"
	"zembil/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// MaxBatchSize is the largest number of tokens Firebase accepts in one multicast.
const MaxBatchSize = 500

// Params defines the dependencies of the push service.
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type firebaseService struct {
	client *messaging.Client
}

// NewPushService returns a Firebase backed push service, or a logging stub when
// no credentials are configured.
func NewPushService(params Params) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, push notifications are logged only")

		return &logPushService{logger: params.Logger}, nil
	}

	return NewFirebaseService(params.Ctx, cfg.ProjectID, cfg.CredentialsPath)
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string) (service.NotificationService, error) {
	var appConfig *firebase.Config
	if projectID != "" {
		appConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// SendMulticast sends msg to at most MaxBatchSize tokens in one Firebase call.
// Per-token invalid-argument and unregistered errors mark the token as invalid.
func (s *firebaseService) SendMulticast(ctx context.Context, tokens []string, msg *service.PushMessage) (*service.MulticastResult, error) {
	if len(tokens) == 0 {
		return &service.MulticastResult{}, nil
	}
	if len(tokens) > MaxBatchSize {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), MaxBatchSize)
	}

	response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	result := &service.MulticastResult{
		SuccessCount: response.SuccessCount,
		FailureCount: response.FailureCount,
	}
	for idx, sendResponse := range response.Responses {
		if isPermanentTokenError(sendResponse.Error) {
			result.InvalidTokens = append(result.InvalidTokens, tokens[idx])
		}
	}

	return result, nil
}

func isPermanentTokenError(err error) bool {
	return err != nil && (messaging.IsInvalidArgument(err) || messaging.IsUnregistered(err))
}

// logPushService records pushes in the log instead of sending them.
type logPushService struct {
	logger *slog.Logger
}

func (s *logPushService) SendMulticast(ctx context.Context, tokens []string, msg *service.PushMessage) (*service.MulticastResult, error) {
	s.logger.InfoContext(ctx, "Push skipped",
		slog.Int("token_count", len(tokens)),
		slog.String("title", msg.Title),
		slog.String("body", msg.Body),
	)

	return &service.MulticastResult{SuccessCount: len(tokens)}, nil
}

// Package handler contains the HTTP handlers of the push worker.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"zembil/config"
	deliverycontext "zembil/internal/delivery/context"
	"zembil/internal/domain/constants"
	"zembil/internal/domain/service"
	"zembil/internal/infra/pubsub"
	"zembil/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// TokenVerifier checks the OIDC token Google attaches to push requests.
type TokenVerifier func(ctx context.Context, req *http.Request) error

// PushHandler handles Pub/Sub push messages carrying product events
type PushHandler struct {
	verifyPushAuth bool
	verifyToken    TokenVerifier
	logger         *slog.Logger
	pushUC         usecase.PushUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	PushUC usecase.PushUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google push requests carry an OIDC token, and not in local development.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verifyToken:    verifyPubSubToken,
		logger:         params.Logger,
		pushUC:         params.PushUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// A 503 asks Pub/Sub to redeliver. Any 2xx acknowledges the message.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyToken(ctx, c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pushMsg.DecodeProductEvent()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode product event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, event)
	ctx = deliverycontext.WithRequest(ctx, requestID, h.logger)
	reqLogger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	reqLogger.Info("[Worker] Processing product event",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.Uint64("product_id", uint64(event.ProductID)),
		slog.Int("follower_count", len(event.FollowerIDs)),
	)

	result, err := h.pushUC.NotifyFollowers(ctx, event)
	if err != nil {
		reqLogger.Error("[Worker] Failed to notify followers",
			slog.Uint64("product_id", uint64(event.ProductID)),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.JSON(http.StatusOK, result)
}

// extractRequestID prefers the ID carried by the event, then the one set by the request middleware.
func (h *PushHandler) extractRequestID(ctx context.Context, event *service.ProductEvent) string {
	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(ctx context.Context, req *http.Request) error {
	token, found := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !found || token == "" {
		return errors.New("missing or malformed authorization header")
	}

	// The audience is the URL of this endpoint.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := scheme + "://" + req.Host + req.URL.Path

	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}

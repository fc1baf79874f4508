package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	deliverycontext "zembil/internal/delivery/context"
	"zembil/internal/domain/constants"
	"zembil/internal/domain/repository"
	"zembil/internal/domain/service"
	"zembil/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// pushBatchSize is the multicast limit of Firebase Cloud Messaging.
const pushBatchSize = 500

// pushService implements the PushUsecase interface.
type pushService struct {
	deviceRepo repository.DeviceRepository
	pushSvc    service.NotificationService
	logger     *slog.Logger
}

// PushServiceParams holds dependencies for PushService, injected by Fx.
type PushServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	PushSvc    service.NotificationService
	Logger     *slog.Logger
}

// NewPushService creates the push delivery usecase used by the worker.
func NewPushService(params PushServiceParams) usecase.PushUsecase {
	return &pushService{
		deviceRepo: params.DeviceRepo,
		pushSvc:    params.PushSvc,
		logger:     params.Logger,
	}
}

func (s *pushService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// NotifyFollowers pushes a new product message to the active devices of the shop's followers.
// Tokens Firebase reports invalid are deactivated. An error is returned only when nothing could be sent.
func (s *pushService) NotifyFollowers(ctx context.Context, event *service.ProductEvent) (*usecase.PushResult, error) {
	result := &usecase.PushResult{}
	if len(event.FollowerIDs) == 0 {
		return result, nil
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUsers(ctx, event.FollowerIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find follower devices")
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}
	result.Devices = len(tokens)

	if len(tokens) == 0 {
		s.log(ctx).Info("[Worker] No active devices for followers", slog.Uint64("productID", uint64(event.ProductID)))

		return result, nil
	}

	msg := &service.PushMessage{
		Title: event.ShopName,
		Body:  fmt.Sprintf("%s added new product %s", event.ShopName, event.ProductName),
		Data: map[string]string{
			"type":       constants.NotificationTypeNewProduct,
			"product_id": strconv.FormatUint(uint64(event.ProductID), 10),
			"shop_id":    strconv.FormatUint(uint64(event.ShopID), 10),
		},
	}

	var (
		invalidTokens []string
		lastErr       error
	)
	for idx := 0; idx < len(tokens); idx += pushBatchSize {
		batch := tokens[idx:min(idx+pushBatchSize, len(tokens))]

		sent, sendErr := s.pushSvc.SendMulticast(ctx, batch, msg)
		if sendErr != nil {
			s.log(ctx).Error("[Worker] Failed to send batch",
				slog.Int("batch_start", idx),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", sendErr),
			)
			result.FailureCount += len(batch)
			lastErr = sendErr

			continue
		}

		result.SuccessCount += sent.SuccessCount
		result.FailureCount += sent.FailureCount
		invalidTokens = append(invalidTokens, sent.InvalidTokens...)
	}

	result.InvalidTokens = len(invalidTokens)
	if len(invalidTokens) > 0 {
		if err := s.deviceRepo.DeactivateTokens(ctx, invalidTokens); err != nil {
			s.log(ctx).Warn("[Worker] Failed to deactivate invalid tokens", slog.Any("error", err))
		}
	}

	s.log(ctx).Info("[Worker] Push fan-out completed",
		slog.Uint64("productID", uint64(event.ProductID)),
		slog.Int("devices", result.Devices),
		slog.Int("total_sent", result.SuccessCount),
		slog.Int("total_failed", result.FailureCount),
		slog.Int("invalid_tokens", result.InvalidTokens),
	)

	if result.SuccessCount == 0 && lastErr != nil {
		return result, errors.Wrap(lastErr, "failed to send any push notification")
	}

	return result, nil
}

package usecase

import (
	"context"

	"zembil/internal/domain/service"
)

// PushResult summarizes one fan-out of push messages.
type PushResult struct {
	Devices       int
	SuccessCount  int
	FailureCount  int
	InvalidTokens int
}

// PushUsecase delivers device pushes for domain events. It runs in the push worker.
type PushUsecase interface {
	NotifyFollowers(ctx context.Context, event *service.ProductEvent) (*PushResult, error)
}

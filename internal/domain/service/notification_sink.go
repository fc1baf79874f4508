package service

import (
	"context"

	"zembil/internal/domain/entity"
	"zembil/internal/domain/repository"
)

// NotificationSink delivers in-app notifications inside the caller's transaction.
type NotificationSink interface {
	// Deliver stores the notifications through the transaction-bound repositories.
	// A returned error aborts the surrounding transaction.
	Deliver(ctx context.Context, txRepoFactory repository.RepositoryFactory, notifications []*entity.Notification) error
}

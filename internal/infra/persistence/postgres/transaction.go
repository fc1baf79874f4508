package postgres

import (
	"context"

	"zembil/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// txRepositories hands out repositories bound to one open transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (f *txRepositories) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *txRepositories) NewShopRepository() repository.ShopRepository {
	return NewShopRepository(f.tx)
}

func (f *txRepositories) NewLocationRepository() repository.LocationRepository {
	return NewLocationRepository(f.tx)
}

func (f *txRepositories) NewFollowerRepository() repository.FollowerRepository {
	return NewFollowerRepository(f.tx)
}

func (f *txRepositories) NewProductRepository() repository.ProductRepository {
	return NewProductRepository(f.tx)
}

func (f *txRepositories) NewReviewRepository() repository.ReviewRepository {
	return NewReviewRepository(f.tx)
}

func (f *txRepositories) NewNotificationRepository() repository.NotificationRepository {
	return NewNotificationRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute commits when fn returns nil and rolls back on an error or a panic.
// Domain errors returned by fn pass through unwrapped so callers can match them.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error

	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(&txRepositories{tx: tx})

		return fnErr
	})
	if err != nil && fnErr == nil {
		return errors.Wrap(err, "failed to run transaction")
	}

	return err
}

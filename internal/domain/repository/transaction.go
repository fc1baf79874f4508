package repository

import "context"

// TransactionManager runs a unit of work atomically. Every repository obtained from
// the factory inside fn shares the transaction; an error from fn rolls it back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewShopRepository() ShopRepository
	NewLocationRepository() LocationRepository
	NewFollowerRepository() FollowerRepository
	NewProductRepository() ProductRepository
	NewReviewRepository() ReviewRepository
	NewNotificationRepository() NotificationRepository
}

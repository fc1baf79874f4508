package impl

import (
	"context"
	"log/slog"
	"testing"

	"zembil/internal/domain/repository"
	mockRepo "zembil/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// txFixture runs transactional callbacks against mocked repositories.
type txFixture struct {
	manager  *mockRepo.MockTransactionManager
	factory  *mockRepo.MockRepositoryFactory
	products *mockRepo.MockProductRepository
	shops    *mockRepo.MockShopRepository
	location *mockRepo.MockLocationRepository
	follower *mockRepo.MockFollowerRepository
	reviews  *mockRepo.MockReviewRepository
}

func newTxFixture(t *testing.T) *txFixture {
	return &txFixture{
		manager:  mockRepo.NewMockTransactionManager(t),
		factory:  mockRepo.NewMockRepositoryFactory(t),
		products: mockRepo.NewMockProductRepository(t),
		shops:    mockRepo.NewMockShopRepository(t),
		location: mockRepo.NewMockLocationRepository(t),
		follower: mockRepo.NewMockFollowerRepository(t),
		reviews:  mockRepo.NewMockReviewRepository(t),
	}
}

// expectExecute makes the next Execute call invoke its callback with the mocked factory.
func (f *txFixture) expectExecute(ctx context.Context) {
	f.manager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		}).
		Once()
}

func uintPtr(v uint) *uint          { return &v }
func intPtr(v int) *int             { return &v }
func strPtr(v string) *string       { return &v }
func float64Ptr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool          { return &v }

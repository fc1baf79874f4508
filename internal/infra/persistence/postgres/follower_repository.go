package postgres

import (
	"context"

	"zembil/internal/domain/entity"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/domain/repository"
	"zembil/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type followerRepository struct {
	db *gorm.DB
}

// NewFollowerRepository is the constructor for followerRepository.
func NewFollowerRepository(db *gorm.DB) repository.FollowerRepository {
	return &followerRepository{db: db}
}

func (repo *followerRepository) CreateFollower(ctx context.Context, follower *entity.ShopFollower) error {
	followerM := &model.ShopFollowerModel{
		UserID: follower.UserID,
		ShopID: follower.ShopID,
	}

	if err := repo.db.WithContext(ctx).Omit("Shop").Create(followerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAlreadyFollowing
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrShopNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to follow shop")
	}

	follower.CreatedAt = followerM.CreatedAt

	return nil
}

func (repo *followerRepository) IsFollowing(ctx context.Context, userID, shopID uint) (bool, error) {
	return existsOnPrimary(ctx, repo.db, &model.ShopFollowerModel{},
		"user_id = ? AND shop_id = ?", userID, shopID)
}

func (repo *followerRepository) ListFollowerIDs(ctx context.Context, shopID uint) ([]uint, error) {
	userIDs := []uint{}

	if err := repo.db.WithContext(ctx).
		Model(&model.ShopFollowerModel{}).
		Where("shop_id = ?", shopID).
		Order("user_id ASC").
		Pluck("user_id", &userIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list followers")
	}

	return userIDs, nil
}

func (repo *followerRepository) DeleteFollower(ctx context.Context, userID, shopID uint) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND shop_id = ?", userID, shopID).
		Delete(&model.ShopFollowerModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to unfollow shop")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFollowerNotFound
	}

	return nil
}

package postgres

import (
	"context"

	"zembil/internal/domain/entity"
	"zembil/internal/domain/repository"
	"zembil/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type revokedTokenRepository struct {
	db *gorm.DB
}

// NewRevokedTokenRepository is the constructor for revokedTokenRepository.
func NewRevokedTokenRepository(db *gorm.DB) repository.RevokedTokenRepository {
	return &revokedTokenRepository{db: db}
}

// RevokeToken records the jti, ignoring an existing record for the same jti.
func (repo *revokedTokenRepository) RevokeToken(ctx context.Context, token *entity.RevokedToken) error {
	tokenM := &model.RevokedTokenModel{
		JTI:       token.JTI,
		RevokedAt: token.RevokedAt,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "jti"}}, DoNothing: true}).
		Create(tokenM).Error; err != nil {
		return errors.Wrap(err, "failed to revoke token")
	}

	token.ID = tokenM.ID

	return nil
}

// IsTokenRevoked reports whether the jti was revoked. Reads go to the primary so a
// logout is visible to the very next request.
func (repo *revokedTokenRepository) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	return existsOnPrimary(ctx, repo.db, &model.RevokedTokenModel{}, "jti = ?", jti)
}

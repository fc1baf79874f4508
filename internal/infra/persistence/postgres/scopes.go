package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// paginate applies an offset/limit window. A non-positive limit leaves the query unbounded.
func paginate(offset, limit int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if offset > 0 {
			db = db.Offset(offset)
		}
		if limit > 0 {
			db = db.Limit(limit)
		}

		return db
	}
}

// ilike matches a column case-insensitively against a substring.
func ilike(column, term string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" {
			return db
		}

		return db.Where(column+" ILIKE ?", "%"+term+"%")
	}
}

// existsOnPrimary counts matching rows on the primary so a pre-check sees rows written
// by the caller's previous requests even when reads are routed to replicas.
func existsOnPrimary(ctx context.Context, db *gorm.DB, model any, query string, args ...any) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(model).
		Where(query, args...).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check existence")
	}

	return count > 0, nil
}

// countAll counts the rows of a table.
func countAll(ctx context.Context, db *gorm.DB, model any) (int64, error) {
	var count int64
	if err := db.WithContext(ctx).Model(model).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count rows")
	}

	return count, nil
}

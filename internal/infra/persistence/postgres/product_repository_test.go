package postgres

import (
	"testing"

	"zembil/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dryRunDB renders statements with the PostgreSQL dialect without connecting.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN: "host=localhost user=zembil dbname=zembil sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)

	return db
}

func TestPopularProducts_OnlyReviewedProducts(t *testing.T) {
	db := dryRunDB(t)

	countSQL := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var total int64

		return tx.Model(&model.ProductModel{}).Scopes(ratedProducts).Count(&total)
	})
	listSQL := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return tx.Scopes(ratedProducts, byRating, paginate(9, 9)).Find(&[]*model.ProductModel{})
	})

	for _, sql := range []string{countSQL, listSQL} {
		assert.Contains(t, sql, "JOIN (SELECT product_id, AVG(rating) AS avg_rating FROM reviews GROUP BY product_id) ratings")
		assert.NotContains(t, sql, "LEFT JOIN")
	}
	assert.Contains(t, listSQL, "ORDER BY ratings.avg_rating DESC, products.id ASC")
	assert.Contains(t, listSQL, "LIMIT 9 OFFSET 9")
	assert.NotContains(t, listSQL, "COALESCE")
}

func TestListProducts_CountsEveryProduct(t *testing.T) {
	db := dryRunDB(t)

	countSQL := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var total int64

		return tx.Model(&model.ProductModel{}).Scopes(allProducts).Count(&total)
	})

	assert.NotContains(t, countSQL, "JOIN")
	assert.Contains(t, countSQL, `FROM "products"`)
}

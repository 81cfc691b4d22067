package repository

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/storefront-api/internal/domain"
)

func toSQL(t *testing.T, filter ProductFilter) (string, []any) {
	t.Helper()
	query, args, err := squirrel.
		Select("id").
		From("products").
		Where(filter.Predicate()).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	require.NoError(t, err)
	return query, args
}

func TestProductFilter_Predicate(t *testing.T) {
	t.Run("apenas a loja", func(t *testing.T) {
		query, args := toSQL(t, ProductFilter{TenantID: "tenant-1"})

		assert.Equal(t, "SELECT id FROM products WHERE (tenant_id = $1)", query)
		assert.Equal(t, []any{"tenant-1"}, args)
	})

	t.Run("todos os campos preenchidos", func(t *testing.T) {
		categoryID := "cat-1"
		minPrice := decimal.NewFromInt(10)
		maxPrice := decimal.NewFromInt(200)

		query, args := toSQL(t, ProductFilter{
			TenantID:   "tenant-1",
			CategoryID: &categoryID,
			MinPrice:   &minPrice,
			MaxPrice:   &maxPrice,
			Search:     "camiseta",
			InStock:    true,
			ActiveOnly: true,
		})

		assert.Equal(t,
			"SELECT id FROM products WHERE (tenant_id = $1 AND category_id = $2 AND price >= $3 AND price <= $4 AND name ILIKE $5 AND stock > $6 AND active = $7)",
			query,
		)
		assert.Equal(t, []any{"tenant-1", "cat-1", minPrice, maxPrice, "%camiseta%", 0, true}, args)
	})

	t.Run("busca escapa curingas do LIKE", func(t *testing.T) {
		_, args := toSQL(t, ProductFilter{TenantID: "tenant-1", Search: " 100%_algodão "})

		assert.Equal(t, []any{"tenant-1", `%100\%\_algodão%`}, args)
	})
}

func TestProductFilter_OrderByAndPageSize(t *testing.T) {
	assert.Equal(t, []string{"price ASC", "name ASC"}, ProductFilter{Sort: domain.SortPriceAsc}.OrderBy())
	assert.Equal(t, []string{"price DESC", "name ASC"}, ProductFilter{Sort: domain.SortPriceDesc}.OrderBy())
	assert.Equal(t, []string{"name ASC"}, ProductFilter{Sort: domain.SortName}.OrderBy())
	assert.Equal(t, []string{"created_at DESC", "name ASC"}, ProductFilter{}.OrderBy())

	assert.Equal(t, uint64(defaultProductPageSize), ProductFilter{}.PageSize())
	assert.Equal(t, uint64(10), ProductFilter{Limit: 10}.PageSize())
	assert.Equal(t, uint64(maxProductPageSize), ProductFilter{Limit: 1000}.PageSize())
}

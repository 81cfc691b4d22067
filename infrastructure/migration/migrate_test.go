package migration

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	source, err := iofs.New(migrationsFS, migrationsDir)
	require.NoError(t, err)
	defer source.Close()

	first, err := source.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	// toda migração tem up e down
	version := first
	for {
		up, _, err := source.ReadUp(version)
		require.NoError(t, err, "versão %d sem up", version)
		up.Close()

		down, _, err := source.ReadDown(version)
		require.NoError(t, err, "versão %d sem down", version)
		down.Close()

		next, err := source.Next(version)
		if err != nil {
			break
		}
		version = next
	}

	assert.Equal(t, uint(5), version)
}

func TestMonthlySummaryUniqueness(t *testing.T) {
	content, err := fs.ReadFile(migrationsFS, "sql/000005_create_sales_summaries.up.sql")
	require.NoError(t, err)

	schema := string(content)
	assert.True(t, strings.Contains(schema, "UNIQUE (tenant_id, month, year)"))
	assert.True(t, strings.Contains(schema, "UNIQUE (tenant_id, category_id, month, year)"))
	assert.True(t, strings.Contains(schema, "UNIQUE (tenant_id, product_id, month, year)"))
}

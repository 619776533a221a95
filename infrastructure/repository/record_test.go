package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRepository_listQuery(t *testing.T) {
	t.Run("Tabela padrão", func(t *testing.T) {
		repo := NewRecordRepository(nil, "").(*recordRepository)

		query, args, err := repo.listQuery()

		require.NoError(t, err)
		assert.Empty(t, args)
		assert.Equal(t, defaultRecordsTable, repo.Table())
		assert.Contains(t, query, "SELECT date_day::text, organisation_vertical, territory_name, google_paid_search_spend")
		assert.Contains(t, query, `all_purchases_original_price FROM "mmm_records"`)
		assert.Contains(t, query, "ORDER BY date_day ASC")
	})

	t.Run("Tabela configurada", func(t *testing.T) {
		repo := NewRecordRepository(nil, "analytics.mmm_daily").(*recordRepository)

		query, _, err := repo.listQuery()

		require.NoError(t, err)
		assert.Contains(t, query, `FROM "analytics"."mmm_daily"`)
		assert.Equal(t, "analytics.mmm_daily", repo.Table())
	})

	t.Run("Nome da tabela é citado", func(t *testing.T) {
		repo := NewRecordRepository(nil, "mmm; DROP TABLE users").(*recordRepository)

		query, _, err := repo.listQuery()

		require.NoError(t, err)
		assert.Contains(t, query, `FROM "mmm; DROP TABLE users" ORDER BY`)
	})
}

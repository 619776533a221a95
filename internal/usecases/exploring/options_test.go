package exploring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/mmm-explorer/internal/domain"
)

func TestDeriveOptions(t *testing.T) {
	t.Run("Sem registros não há opções", func(t *testing.T) {
		options := DeriveOptions(nil)
		assert.Empty(t, options.Verticals)
		assert.Empty(t, options.Territories)
		assert.NotNil(t, options.Verticals)
		assert.NotNil(t, options.Territories)
	})

	t.Run("Sentinela primeiro e valores distintos ordenados", func(t *testing.T) {
		records := []domain.Record{
			{Vertical: "Travel", Territory: "UK"},
			{Vertical: "Retail", Territory: "US"},
			{Vertical: "Travel", Territory: "DE"},
			{Vertical: "Beauty", Territory: "UK"},
		}

		options := DeriveOptions(records)

		assert.Equal(t, []string{domain.AllVerticals, "Beauty", "Retail", "Travel"}, options.Verticals)
		assert.Equal(t, []string{domain.AllTerritories, "DE", "UK", "US"}, options.Territories)
	})

	t.Run("Vertical vazia fica fora das opções mas entra no filtro All", func(t *testing.T) {
		records := []domain.Record{
			{Date: "2024-01-01", Vertical: "", Territory: "US", GooglePaidSearchSpend: num(3)},
			{Date: "2024-01-01", Vertical: "Retail", Territory: "US", GooglePaidSearchSpend: num(4)},
		}

		options := DeriveOptions(records)
		assert.Equal(t, []string{domain.AllVerticals, "Retail"}, options.Verticals)

		filtered := FilterRecords(records, domain.DefaultFilters())
		assert.Len(t, filtered, 2)

		metrics := ComputeMetrics(AggregateByDay(filtered))
		assert.True(t, dec(7).Equal(metrics.TotalSpend))
	})

	t.Run("Valor igual à sentinela não é duplicado", func(t *testing.T) {
		records := []domain.Record{
			{Vertical: domain.AllVerticals, Territory: domain.AllTerritories},
			{Vertical: "Retail", Territory: "US"},
		}

		options := DeriveOptions(records)

		assert.Equal(t, []string{domain.AllVerticals, "Retail"}, options.Verticals)
		assert.Equal(t, []string{domain.AllTerritories, "US"}, options.Territories)
	})

	t.Run("Apenas valores vazios resulta só na sentinela", func(t *testing.T) {
		options := DeriveOptions([]domain.Record{{Date: "2024-01-01"}})

		assert.Equal(t, []string{domain.AllVerticals}, options.Verticals)
		assert.Equal(t, []string{domain.AllTerritories}, options.Territories)
	})
}

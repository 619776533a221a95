package csvparse

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/mmm-explorer/internal/domain"
)

const header = "DATE_DAY,ORGANISATION_VERTICAL,TERRITORY_NAME,GOOGLE_PAID_SEARCH_SPEND,META_FACEBOOK_SPEND,TIKTOK_SPEND,ALL_PURCHASES_ORIGINAL_PRICE\n"

func TestParse(t *testing.T) {
	t.Run("Documento válido", func(t *testing.T) {
		doc := header +
			"2024-01-02,Retail,US,10,0,0,50\n" +
			"2024-01-01,Travel,UK,5,5,,20\n"

		result, err := Parse(strings.NewReader(doc))

		require.NoError(t, err)
		assert.Empty(t, result.Warnings)
		require.Len(t, result.Records, 2)

		first := result.Records[0]
		assert.Equal(t, "2024-01-02", first.Date)
		assert.Equal(t, "Retail", first.Vertical)
		assert.Equal(t, "US", first.Territory)
		assert.True(t, first.GooglePaidSearchSpend.Valid)
		assert.True(t, decimal.NewFromInt(10).Equal(first.GooglePaidSearchSpend.Decimal))
		assert.True(t, decimal.NewFromInt(50).Equal(first.Revenue()))

		second := result.Records[1]
		assert.False(t, second.TikTokSpend.Valid)
		assert.True(t, decimal.NewFromInt(10).Equal(second.ChannelSpend(domain.ChannelGoogle).Add(second.ChannelSpend(domain.ChannelMeta))))
	})

	t.Run("Documento vazio", func(t *testing.T) {
		_, err := Parse(strings.NewReader(""))
		assert.ErrorIs(t, err, ErrEmptyDocument)
	})

	t.Run("Cabeçalho sem DATE_DAY", func(t *testing.T) {
		_, err := Parse(strings.NewReader("DAY,TIKTOK_SPEND\n2024-01-01,1\n"))
		assert.True(t, errors.Is(err, ErrMissingDateColumn))
	})

	t.Run("Cabeçalho com BOM e espaços", func(t *testing.T) {
		doc := "\ufeffDATE_DAY , TIKTOK_SPEND\n2024-01-01,3.25\n"

		result, err := Parse(strings.NewReader(doc))

		require.NoError(t, err)
		require.Len(t, result.Records, 1)
		assert.Equal(t, "2024-01-01", result.Records[0].Date)
		assert.True(t, decimal.RequireFromString("3.25").Equal(result.Records[0].TikTokSpend.Decimal))
	})

	t.Run("Texto em coluna numérica vira nulo com aviso", func(t *testing.T) {
		doc := header + "2024-01-01,Retail,US,abc,1,2,3\n"

		result, err := Parse(strings.NewReader(doc))

		require.NoError(t, err)
		require.Len(t, result.Records, 1)
		assert.False(t, result.Records[0].GooglePaidSearchSpend.Valid)
		assert.True(t, result.Records[0].MetaFacebookSpend.Valid)

		require.Len(t, result.Warnings, 1)
		assert.Equal(t, 2, result.Warnings[0].Line)
		assert.Equal(t, domain.ColumnGooglePaidSearchSpend, result.Warnings[0].Column)
	})

	t.Run("Linha com quantidade errada de campos é pulada", func(t *testing.T) {
		doc := header +
			"2024-01-01,Retail\n" +
			"2024-01-02,Retail,US,1,1,1,1\n"

		result, err := Parse(strings.NewReader(doc))

		require.NoError(t, err)
		require.Len(t, result.Records, 1)
		assert.Equal(t, "2024-01-02", result.Records[0].Date)
		require.Len(t, result.Warnings, 1)
		assert.Equal(t, 2, result.Warnings[0].Line)
		assert.Contains(t, result.Warnings[0].String(), "expected 7 fields, got 2")
	})

	t.Run("Dataset carrega a contagem de avisos", func(t *testing.T) {
		doc := header +
			"2024-01-01,Retail\n" +
			"2024-01-02,Retail,US,abc,1,1,1\n"

		result, err := Parse(strings.NewReader(doc))
		require.NoError(t, err)

		dataset := result.Dataset()
		assert.Len(t, dataset.Records, 1)
		assert.Equal(t, 2, dataset.Warnings)
	})

	t.Run("Colunas desconhecidas são ignoradas", func(t *testing.T) {
		doc := "DATE_DAY,EXTRA,TIKTOK_SPEND\n2024-01-01,foo,4\n"

		result, err := Parse(strings.NewReader(doc))

		require.NoError(t, err)
		require.Len(t, result.Records, 1)
		assert.True(t, decimal.NewFromInt(4).Equal(result.Records[0].TikTokSpend.Decimal))
		assert.Empty(t, result.Warnings)
	})

	t.Run("Campos entre aspas com vírgula", func(t *testing.T) {
		doc := header + "2024-01-01,\"Food, Drink\",US,1,2,3,4\n"

		result, err := Parse(strings.NewReader(doc))

		require.NoError(t, err)
		require.Len(t, result.Records, 1)
		assert.Equal(t, "Food, Drink", result.Records[0].Vertical)
	})

	t.Run("Só cabeçalho resulta em zero registros", func(t *testing.T) {
		result, err := Parse(strings.NewReader(header))

		require.NoError(t, err)
		assert.NotNil(t, result.Records)
		assert.Empty(t, result.Records)
	})
}

func TestRowWarning_String(t *testing.T) {
	assert.Equal(t, "line 3: bad", RowWarning{Line: 3, Reason: "bad"}.String())
	assert.Equal(t, "line 3, column X: bad", RowWarning{Line: 3, Column: "X", Reason: "bad"}.String())
}

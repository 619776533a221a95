package fileloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mmm.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load(t *testing.T) {
	t.Run("Lê o arquivo", func(t *testing.T) {
		path := writeDataset(t, "DATE_DAY,ORGANISATION_VERTICAL,TIKTOK_SPEND\n2024-01-01,Retail,7\n")

		l := New(path)
		dataset, err := l.Load(context.Background())

		require.NoError(t, err)
		require.Len(t, dataset.Records, 1)
		assert.Equal(t, "Retail", dataset.Records[0].Vertical)
		assert.Zero(t, dataset.Warnings)
		assert.Equal(t, "file://"+path, l.Source())
	})

	t.Run("Linha com célula inválida conta como aviso", func(t *testing.T) {
		path := writeDataset(t, "DATE_DAY,ORGANISATION_VERTICAL,TIKTOK_SPEND\n2024-01-01,Retail,n/a\n")

		dataset, err := New(path).Load(context.Background())

		require.NoError(t, err)
		require.Len(t, dataset.Records, 1)
		assert.False(t, dataset.Records[0].TikTokSpend.Valid)
		assert.Equal(t, 1, dataset.Warnings)
	})

	t.Run("Arquivo inexistente", func(t *testing.T) {
		_, err := New(filepath.Join(t.TempDir(), "missing.csv")).Load(context.Background())
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Contexto cancelado", func(t *testing.T) {
		path := writeDataset(t, "DATE_DAY\n2024-01-01\n")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := New(path).Load(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

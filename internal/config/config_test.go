package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server:  Server{Host: "localhost", Port: "8000"},
		Dataset: Dataset{Source: SourceHTTP, BaseURL: "http://localhost:5173", Timeout: time.Minute},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "Configuração padrão é válida",
			mutate: func(c *Config) {},
		},
		{
			name:    "Porta não numérica",
			mutate:  func(c *Config) { c.Server.Port = "abc" },
			wantErr: "porta inválida",
		},
		{
			name:    "Porta fora do intervalo",
			mutate:  func(c *Config) { c.Server.Port = "70000" },
			wantErr: "fora do intervalo",
		},
		{
			name:    "Origem desconhecida",
			mutate:  func(c *Config) { c.Dataset.Source = "s3" },
			wantErr: "DATASET_SOURCE inválido",
		},
		{
			name:    "Origem http sem URL base",
			mutate:  func(c *Config) { c.Dataset.BaseURL = "" },
			wantErr: "DATASET_BASE_URL",
		},
		{
			name: "Origem file sem arquivo",
			mutate: func(c *Config) {
				c.Dataset.Source = SourceFile
				c.Dataset.File = ""
			},
			wantErr: "DATASET_FILE",
		},
		{
			name: "Origem postgres sem URL do banco",
			mutate: func(c *Config) {
				c.Dataset.Source = SourcePostgres
				c.Database.URL = ""
			},
			wantErr: "DATABASE_URL",
		},
		{
			name:    "Timeout negativo",
			mutate:  func(c *Config) { c.Dataset.Timeout = -time.Second },
			wantErr: "DATASET_TIMEOUT",
		},
		{
			name:   "Tabela com schema",
			mutate: func(c *Config) { c.Dataset.Table = "analytics.mmm_daily" },
		},
		{
			name:    "Tabela com caracteres inválidos",
			mutate:  func(c *Config) { c.Dataset.Table = "mmm; DROP TABLE users" },
			wantErr: "DATASET_TABLE inválido",
		},
		{
			name:    "Tabela com maiúsculas",
			mutate:  func(c *Config) { c.Dataset.Table = "MMM_Records" },
			wantErr: "DATASET_TABLE inválido",
		},
		{
			name:   "Timeout zero desliga o limite",
			mutate: func(c *Config) { c.Dataset.Timeout = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)

			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATASET_SOURCE", SourceFile)
	t.Setenv("DATASET_FILE", "/data/mmm.csv")
	t.Setenv("DATASET_TIMEOUT", "15s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("DATABASE_USER", "mmm")
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("DATABASE_URL", "db:5432/mmm")

	cfg, err := NewConfig()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, SourceFile, cfg.Dataset.Source)
	assert.Equal(t, "/data/mmm.csv", cfg.Dataset.File)
	assert.Equal(t, 15*time.Second, cfg.Dataset.Timeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "postgres://mmm:secret@db:5432/mmm", cfg.Database.DSN)
	assert.False(t, cfg.DatasetReload.Enabled)
	assert.Equal(t, "0 4 * * *", cfg.DatasetReload.CronSchedule)
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Nome de tabela aceito em DATASET_TABLE, opcionalmente com schema.
var tableNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*(\.[a-z_][a-z0-9_]*)?$`)

// Origens de dados suportadas pelo loader
const (
	SourceHTTP     = "http"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Dataset       Dataset       `mapstructure:",squash"`
	DatasetReload DatasetReload `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Dataset struct {
	Source  string        `mapstructure:"dataset_source"`
	BaseURL string        `mapstructure:"dataset_base_url"`
	Path    string        `mapstructure:"dataset_path"`
	File    string        `mapstructure:"dataset_file"`
	Table   string        `mapstructure:"dataset_table"`
	Timeout time.Duration `mapstructure:"dataset_timeout"`
}

type DatasetReload struct {
	CronSchedule string `mapstructure:"dataset_reload_cron"`
	Enabled      bool   `mapstructure:"dataset_reload_enabled"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("APP_ENV", "development")

	viper.SetDefault("DATASET_SOURCE", SourceHTTP)
	viper.SetDefault("DATASET_BASE_URL", "http://localhost:5173")
	viper.SetDefault("DATASET_PATH", "/conjura_mmm_data.csv")
	viper.SetDefault("DATASET_FILE", "conjura_mmm_data.csv")
	viper.SetDefault("DATASET_TABLE", "mmm_records")
	viper.SetDefault("DATASET_TIMEOUT", "60s")

	// Recarga agendada desligada por padrão: a sessão carrega uma vez só
	viper.SetDefault("DATASET_RELOAD_CRON", "0 4 * * *")
	viper.SetDefault("DATASET_RELOAD_ENABLED", false)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/mmm?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate confere as combinações de configuração que impedem a aplicação de subir.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Server.Port)
	if err != nil {
		return fmt.Errorf("config: porta inválida '%s'", c.Server.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("config: porta %d fora do intervalo 1-65535", port)
	}

	switch c.Dataset.Source {
	case SourceHTTP:
		if c.Dataset.BaseURL == "" {
			return fmt.Errorf("config: DATASET_BASE_URL é obrigatório para a origem %s", SourceHTTP)
		}
	case SourceFile:
		if c.Dataset.File == "" {
			return fmt.Errorf("config: DATASET_FILE é obrigatório para a origem %s", SourceFile)
		}
	case SourcePostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("config: DATABASE_URL é obrigatório para a origem %s", SourcePostgres)
		}
	default:
		return fmt.Errorf("config: DATASET_SOURCE inválido: %s", c.Dataset.Source)
	}

	if c.Dataset.Table != "" && !tableNamePattern.MatchString(c.Dataset.Table) {
		return fmt.Errorf("config: DATASET_TABLE inválido: %q", c.Dataset.Table)
	}

	if c.Dataset.Timeout < 0 {
		return fmt.Errorf("config: DATASET_TIMEOUT não pode ser negativo")
	}

	return nil
}

// loadEnvFile tenta carregar o .env do diretório atual e dos diretórios acima.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}

package loader

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mmm-explorer/infrastructure/database/postgres"
	"github.com/vfg2006/mmm-explorer/infrastructure/loader/fileloader"
	"github.com/vfg2006/mmm-explorer/infrastructure/loader/httploader"
	"github.com/vfg2006/mmm-explorer/infrastructure/loader/pgloader"
	"github.com/vfg2006/mmm-explorer/infrastructure/repository"
	"github.com/vfg2006/mmm-explorer/internal/config"
	"github.com/vfg2006/mmm-explorer/internal/usecases/sessioning"
)

// New escolhe a origem do dataset conforme DATASET_SOURCE. O closer libera
// recursos da origem (conexão com o banco) e nunca é nil.
func New(ctx context.Context, cfg *config.Config) (sessioning.Loader, func(), error) {
	noop := func() {}

	switch cfg.Dataset.Source {
	case config.SourceHTTP:
		client := httploader.NewHTTPClient(cfg.Dataset.Timeout)
		return httploader.New(client, cfg.Dataset.BaseURL, cfg.Dataset.Path), noop, nil

	case config.SourceFile:
		return fileloader.New(cfg.Dataset.File), noop, nil

	case config.SourcePostgres:
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, noop, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
		}
		logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")

		repo := repository.NewRecordRepository(conn, cfg.Dataset.Table)
		closer := func() {
			if err := conn.Close(); err != nil {
				logrus.WithError(err).Warn("Erro ao fechar conexão com PostgreSQL")
			}
		}
		return pgloader.New(repo), closer, nil

	default:
		return nil, noop, fmt.Errorf("origem de dataset desconhecida: %q", cfg.Dataset.Source)
	}
}

package pgloader

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/mmm-explorer/infrastructure/repository"
	"github.com/vfg2006/mmm-explorer/internal/domain"
)

// Loader carrega o dataset de uma tabela do PostgreSQL em vez do CSV.
type Loader struct {
	repo repository.RecordRepository
}

func New(repo repository.RecordRepository) *Loader {
	return &Loader{repo: repo}
}

func (l *Loader) Source() string {
	return "postgres://" + l.repo.Table()
}

func (l *Loader) Load(ctx context.Context) (*domain.Dataset, error) {
	records, err := l.repo.ListRecords(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "pgloader: list records")
	}
	return &domain.Dataset{Records: records}, nil
}

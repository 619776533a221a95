package fileloader

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/vfg2006/mmm-explorer/infrastructure/loader/csvparse"
	"github.com/vfg2006/mmm-explorer/internal/domain"
)

// Loader lê o dataset de um arquivo local.
type Loader struct {
	path string
}

func New(path string) *Loader {
	return &Loader{path: path}
}

func (l *Loader) Source() string {
	return "file://" + l.path
}

func (l *Loader) Load(ctx context.Context) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(l.path)
	if err != nil {
		return nil, errors.Wrap(err, "fileloader: open dataset")
	}
	defer f.Close()

	result, err := csvparse.Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "fileloader: parse %s", l.path)
	}
	result.Report(l.Source())

	return result.Dataset(), nil
}

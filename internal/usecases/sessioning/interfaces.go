package sessioning

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_loader.go -package=mocks

import (
	"context"

	"github.com/vfg2006/mmm-explorer/internal/domain"
)

// Loader busca e interpreta o dataset. Chamado uma única vez por sessão.
type Loader interface {
	// Load retorna os registros carregados com a contagem de avisos, ou um erro de carregamento
	Load(ctx context.Context) (*domain.Dataset, error)
	// Source identifica a origem dos dados nos logs e no status
	Source() string
}

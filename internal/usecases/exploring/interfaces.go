package exploring

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_explorer.go -package=mocks

import (
	"github.com/vfg2006/mmm-explorer/internal/domain"
)

// SnapshotProvider fornece os dados da sessão corrente.
type SnapshotProvider interface {
	Snapshot() (*domain.Snapshot, error)
}

// Explorer expõe o pipeline de agregação sobre o snapshot corrente.
type Explorer interface {
	// Options retorna as opções dos seletores de vertical e território
	Options() (domain.FilterOptions, error)

	// Timeline retorna a série diária para a seleção
	Timeline(filters domain.ExplorerFilters) ([]domain.DailyAggregate, error)

	// Metrics retorna os totais e o ROAS para a seleção
	Metrics(filters domain.ExplorerFilters) (domain.Metrics, error)

	// Dashboard retorna tudo o que a tela precisa em uma única chamada
	Dashboard(filters domain.ExplorerFilters) (*domain.Dashboard, error)
}

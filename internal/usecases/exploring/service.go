package exploring

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mmm-explorer/internal/domain"
)

// Service implementa Explorer. Não guarda estado entre chamadas: tudo é recalculado
// a partir do snapshot, que é somente leitura.
type Service struct {
	provider SnapshotProvider
}

func NewService(provider SnapshotProvider) Explorer {
	return &Service{provider: provider}
}

func (s *Service) Options() (domain.FilterOptions, error) {
	snapshot, err := s.provider.Snapshot()
	if err != nil {
		return domain.FilterOptions{}, err
	}
	return snapshot.Options, nil
}

func (s *Service) Timeline(filters domain.ExplorerFilters) ([]domain.DailyAggregate, error) {
	snapshot, err := s.provider.Snapshot()
	if err != nil {
		return nil, err
	}
	return AggregateByDay(FilterRecords(snapshot.Records, filters)), nil
}

func (s *Service) Metrics(filters domain.ExplorerFilters) (domain.Metrics, error) {
	timeline, err := s.Timeline(filters)
	if err != nil {
		return domain.Metrics{}, err
	}
	return ComputeMetrics(timeline), nil
}

func (s *Service) Dashboard(filters domain.ExplorerFilters) (*domain.Dashboard, error) {
	snapshot, err := s.provider.Snapshot()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	filtered := FilterRecords(snapshot.Records, filters)
	timeline := AggregateByDay(filtered)

	dashboard := &domain.Dashboard{
		SessionID: snapshot.SessionID,
		Filters:   filters,
		Options:   snapshot.Options,
		Rows:      len(filtered),
		Days:      len(timeline),
		Timeline:  timeline,
		Metrics:   ComputeMetrics(timeline),
	}

	logrus.WithFields(logrus.Fields{
		"session_id": snapshot.SessionID,
		"vertical":   filters.Vertical,
		"territory":  filters.Territory,
		"rows":       dashboard.Rows,
		"days":       dashboard.Days,
		"duration":   time.Since(start).String(),
	}).Debug("Dashboard recalculado")

	return dashboard, nil
}

package sessioning

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mmm-explorer/internal/domain"
	"github.com/vfg2006/mmm-explorer/internal/usecases/exploring"
	"github.com/vfg2006/mmm-explorer/pkg/metrics"
)

// Session controla um único carregamento do dataset:
// Idle -> Loading -> Ready | LoadError. Não há nova tentativa dentro da mesma sessão.
type Session struct {
	id      string
	loader  Loader
	timeout time.Duration

	once sync.Once
	done chan struct{}

	mu         sync.RWMutex
	state      domain.SessionState
	snapshot   *domain.Snapshot
	err        error
	warnings   int
	startedAt  time.Time
	finishedAt time.Time
}

// NewSession cria uma sessão em Idle. timeout <= 0 desabilita o limite do carregamento.
func NewSession(id string, loader Loader, timeout time.Duration) *Session {
	return &Session{
		id:      id,
		loader:  loader,
		timeout: timeout,
		done:    make(chan struct{}),
		state:   domain.SessionIdle,
	}
}

func (s *Session) ID() string {
	return s.id
}

// Start dispara o carregamento em background. Chamadas seguintes não têm efeito.
func (s *Session) Start(ctx context.Context) {
	s.once.Do(func() {
		s.mu.Lock()
		s.state = domain.SessionLoading
		s.startedAt = time.Now()
		s.mu.Unlock()

		go s.load(ctx)
	})
}

// Wait bloqueia até o carregamento terminar ou o contexto ser cancelado.
func (s *Session) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		s.mu.RLock()
		defer s.mu.RUnlock()
		return s.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done é fechado quando a sessão chega a um estado terminal.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) State() domain.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Snapshot devolve os dados prontos, ErrSessionLoading enquanto carrega
// ou o LoadError da sessão.
func (s *Session) Snapshot() (*domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch s.state {
	case domain.SessionReady:
		return s.snapshot, nil
	case domain.SessionLoadError:
		return nil, s.err
	default:
		return nil, ErrSessionLoading
	}
}

// Status monta a visão pública da sessão.
func (s *Session) Status() domain.SessionStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := domain.SessionStatus{
		ID:     s.id,
		State:  s.state,
		Source: s.loader.Source(),
	}
	if !s.startedAt.IsZero() {
		startedAt := s.startedAt
		status.StartedAt = &startedAt
	}
	if !s.finishedAt.IsZero() {
		finishedAt := s.finishedAt
		status.FinishedAt = &finishedAt
	}
	if s.snapshot != nil {
		status.Rows = len(s.snapshot.Records)
		status.Warnings = s.warnings
	}
	if s.err != nil {
		status.Error = s.err.Error()
	}
	return status
}

func (s *Session) load(ctx context.Context) {
	defer close(s.done)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	logger := logrus.WithFields(logrus.Fields{
		"session_id": s.id,
		"source":     s.loader.Source(),
	})
	logger.Info("Iniciando carregamento do dataset")

	start := time.Now()
	dataset, err := s.loader.Load(ctx)
	metrics.ObserveDatasetLoad(s.loader.Source(), time.Since(start), err)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.finishedAt = time.Now()

	if err != nil {
		s.state = domain.SessionLoadError
		s.err = &LoadError{
			SessionID: s.id,
			Err:       errors.Wrapf(err, "load from %s", s.loader.Source()),
		}
		logger.WithError(err).Error("Erro ao carregar o dataset")
		return
	}

	if dataset == nil {
		dataset = &domain.Dataset{}
	}
	records := dataset.Records
	s.warnings = dataset.Warnings
	s.snapshot = &domain.Snapshot{
		SessionID: s.id,
		Records:   records,
		Options:   exploring.DeriveOptions(records),
		LoadedAt:  s.finishedAt,
	}
	s.state = domain.SessionReady
	metrics.SetDatasetRows(len(records))

	logger.WithFields(logrus.Fields{
		"rows":        len(records),
		"warnings":    dataset.Warnings,
		"verticals":   len(s.snapshot.Options.Verticals),
		"territories": len(s.snapshot.Options.Territories),
		"duration":    time.Since(start).String(),
	}).Info("Dataset carregado com sucesso")
}

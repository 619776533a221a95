package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mmm-explorer/internal/config"
	"github.com/vfg2006/mmm-explorer/internal/domain"
	"github.com/vfg2006/mmm-explorer/internal/usecases/sessioning"
)

// Reloader troca a sessão corrente por uma nova.
type Reloader interface {
	Reload() (*sessioning.Session, error)
}

// DatasetReloadConfig representa a configuração do agendador de recarga do dataset
type DatasetReloadConfig struct {
	CronSchedule string
	Enabled      bool
	// Limite para aguardar o fim do carregamento antes de registrar o resultado
	WaitTimeout time.Duration
}

// DatasetReloadService agenda recargas periódicas do dataset
type DatasetReloadService struct {
	scheduler *gocron.Scheduler
	config    DatasetReloadConfig
	reloader  Reloader

	ctx context.Context

	mu                    sync.Mutex
	reloadRunning         bool
	lastReloadStartedAt   time.Time
	lastReloadCompletedAt time.Time
	lastSessionID         string
	lastState             domain.SessionState
	lastError             string
}

// NewDatasetReloadService cria uma nova instância do serviço de recarga
func NewDatasetReloadService(reloader Reloader, appConfig *config.Config) *DatasetReloadService {
	reloadConfig := DatasetReloadConfig{
		CronSchedule: appConfig.DatasetReload.CronSchedule,
		Enabled:      appConfig.DatasetReload.Enabled,
		WaitTimeout:  appConfig.Dataset.Timeout,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reloadConfig.CronSchedule,
		"enabled":       reloadConfig.Enabled,
	}).Info("Configuração do agendador de recarga do dataset carregada")

	return &DatasetReloadService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    reloadConfig,
		reloader:  reloader,
		ctx:       context.Background(),
	}
}

// Start inicia o agendador
func (s *DatasetReloadService) Start(ctx context.Context) error {
	s.mu.Lock()
	s.ctx = ctx
	s.mu.Unlock()

	if !s.config.Enabled {
		logrus.Info("Recarga agendada do dataset desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.reloadDataset()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do dataset: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// reloadDataset inicia uma nova sessão e aguarda o resultado do carregamento
func (s *DatasetReloadService) reloadDataset() {
	s.mu.Lock()
	if s.reloadRunning {
		s.mu.Unlock()
		logrus.Info("Recarga do dataset já em andamento, ignorando")
		return
	}
	s.reloadRunning = true
	s.lastReloadStartedAt = time.Now()
	ctx := s.ctx
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.reloadRunning = false
		s.lastReloadCompletedAt = time.Now()
		s.mu.Unlock()
	}()

	logrus.Info("Iniciando recarga do dataset")

	session, err := s.reloader.Reload()
	if err != nil {
		logrus.WithError(err).Error("Erro ao iniciar recarga do dataset")
		s.record("", domain.SessionLoadError, err)
		return
	}

	if s.config.WaitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.WaitTimeout)
		defer cancel()
	}

	err = session.Wait(ctx)
	s.record(session.ID(), session.State(), err)

	logger := logrus.WithFields(logrus.Fields{
		"session_id": session.ID(),
		"state":      session.State(),
	})
	if err != nil {
		logger.WithError(err).Error("Recarga do dataset terminou com erro")
		return
	}
	logger.Info("Recarga do dataset concluída")
}

func (s *DatasetReloadService) record(sessionID string, state domain.SessionState, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSessionID = sessionID
	s.lastState = state
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
}

// TriggerManualReload inicia manualmente uma recarga do dataset
func (s *DatasetReloadService) TriggerManualReload() {
	s.mu.Lock()
	if s.reloadRunning {
		s.mu.Unlock()
		logrus.Info("Recarga do dataset já em andamento, ignorando solicitação manual")
		return
	}
	s.mu.Unlock()

	logrus.Info("Iniciando recarga manual do dataset")
	go s.reloadDataset()
}

// IsRunning informa se há uma recarga em andamento
func (s *DatasetReloadService) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reloadRunning
}

// GetStatus retorna o status atual do agendador
func (s *DatasetReloadService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"reload_enabled":           s.config.Enabled,
		"reload_cron":              s.config.CronSchedule,
		"reload_running":           s.reloadRunning,
		"last_reload_started_at":   s.lastReloadStartedAt,
		"last_reload_completed_at": s.lastReloadCompletedAt,
		"last_session_id":          s.lastSessionID,
		"last_state":               s.lastState,
		"last_error":               s.lastError,
	}
}

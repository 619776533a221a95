package sessioning

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mmm-explorer/internal/domain"
	"github.com/vfg2006/mmm-explorer/pkg/utils"
	"golang.org/x/sync/singleflight"
)

const reloadKey = "reload"

// SessionManager é o dono do estado de sessão da aplicação.
type SessionManager interface {
	Snapshot() (*domain.Snapshot, error)
	Status() domain.SessionStatus
	Reload() (*Session, error)
}

// Manager guarda a sessão corrente. Cada recarga cria uma sessão nova,
// equivalente a recarregar a página do dashboard.
type Manager struct {
	loader  Loader
	timeout time.Duration
	newID   func() (string, error)

	current atomic.Pointer[Session]
	group   singleflight.Group

	ctxMu sync.RWMutex
	ctx   context.Context
}

// NewManager cria o gerenciador sem iniciar nenhuma sessão.
func NewManager(loader Loader, timeout time.Duration) *Manager {
	return &Manager{
		loader:  loader,
		timeout: timeout,
		newID:   utils.GenerateID,
		ctx:     context.Background(),
	}
}

// Start cria a primeira sessão e dispara o carregamento. ctx é o contexto da aplicação
// e também é usado pelas recargas.
func (m *Manager) Start(ctx context.Context) *Session {
	m.ctxMu.Lock()
	m.ctx = ctx
	m.ctxMu.Unlock()

	if s := m.current.Load(); s != nil {
		return s
	}

	s, _ := m.Reload()
	return s
}

// Current retorna a sessão corrente ou nil se Start ainda não foi chamado.
func (m *Manager) Current() *Session {
	return m.current.Load()
}

// Snapshot delega para a sessão corrente.
func (m *Manager) Snapshot() (*domain.Snapshot, error) {
	s := m.current.Load()
	if s == nil {
		return nil, ErrSessionLoading
	}
	return s.Snapshot()
}

// Status delega para a sessão corrente.
func (m *Manager) Status() domain.SessionStatus {
	s := m.current.Load()
	if s == nil {
		return domain.SessionStatus{
			State:  domain.SessionIdle,
			Source: m.loader.Source(),
		}
	}
	return s.Status()
}

// Reload troca a sessão corrente por uma nova. Se a corrente ainda está carregando,
// ela é devolvida sem disparar outro carregamento. Chamadas concorrentes compartilham
// o mesmo resultado.
func (m *Manager) Reload() (*Session, error) {
	v, err, shared := m.group.Do(reloadKey, func() (interface{}, error) {
		if cur := m.current.Load(); cur != nil && cur.State() == domain.SessionLoading {
			logrus.WithField("session_id", cur.ID()).Info("Sessão ainda carregando, recarga ignorada")
			return cur, nil
		}

		s := NewSession(m.sessionID(), m.loader, m.timeout)

		m.ctxMu.RLock()
		ctx := m.ctx
		m.ctxMu.RUnlock()

		s.Start(ctx)
		m.current.Store(s)

		logrus.WithField("session_id", s.ID()).Info("Nova sessão iniciada")
		return s, nil
	})
	if err != nil {
		return nil, err
	}

	if shared {
		logrus.Debug("Recarga compartilhada com chamada concorrente")
	}

	return v.(*Session), nil
}

func (m *Manager) sessionID() string {
	id, err := m.newID()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao gerar ID da sessão, usando UUID")
		return uuid.NewString()
	}
	return id
}

package domain

import "time"

// SessionState representa o ciclo de vida do carregamento do dataset.
type SessionState string

const (
	SessionIdle      SessionState = "idle"
	SessionLoading   SessionState = "loading"
	SessionReady     SessionState = "ready"
	SessionLoadError SessionState = "load_error"
)

// IsTerminal indica se o estado não muda mais dentro da mesma sessão.
func (s SessionState) IsTerminal() bool {
	return s == SessionReady || s == SessionLoadError
}

// SessionStatus é a visão pública de uma sessão.
type SessionStatus struct {
	ID         string       `json:"id"`
	State      SessionState `json:"state"`
	Source     string       `json:"source"`
	Rows       int          `json:"rows"`
	Warnings   int          `json:"warnings"`
	StartedAt  *time.Time   `json:"started_at,omitempty"`
	FinishedAt *time.Time   `json:"finished_at,omitempty"`
	Error      string       `json:"error,omitempty"`
}

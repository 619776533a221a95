package domain

import "time"

// Snapshot é a cópia somente leitura dos dados de uma sessão pronta.
// Records e Options nunca são alterados depois de publicados.
type Snapshot struct {
	SessionID string
	Records   []Record
	Options   FilterOptions
	LoadedAt  time.Time
}

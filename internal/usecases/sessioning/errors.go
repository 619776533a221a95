package sessioning

import (
	"github.com/pkg/errors"
)

// ErrSessionLoading indica que o dataset ainda não está disponível.
var ErrSessionLoading = errors.New("sessioning: dataset is still loading")

// LoadError é o erro terminal de uma sessão: falha de rede ou de parse do dataset.
type LoadError struct {
	SessionID string
	Err       error
}

func (e *LoadError) Error() string {
	return "sessioning: failed to load dataset: " + e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsLoadError informa se err (ou algum erro encadeado) é um LoadError.
func IsLoadError(err error) bool {
	var loadErr *LoadError
	return errors.As(err, &loadErr)
}

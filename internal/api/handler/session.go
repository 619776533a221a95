package handler

import (
	"net/http"

	"github.com/vfg2006/mmm-explorer/internal/usecases/sessioning"
	"github.com/vfg2006/mmm-explorer/pkg/apiErrors"
	"github.com/vfg2006/mmm-explorer/pkg/log"
)

func GetSessionStatus(manager sessioning.SessionManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, manager.Status())
	})
}

// ReloadSession descarta a sessão corrente e inicia um novo carregamento.
// Responde 202 com o status da nova sessão, ainda em loading.
func ReloadSession(manager sessioning.SessionManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := manager.Reload()
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao recarregar a sessão")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao recarregar a sessão", nil)
			return
		}

		log.ForContext(r.Context()).WithField("session_id", session.ID()).Info("Recarga solicitada via API")
		writeJSON(w, r, http.StatusAccepted, session.Status())
	})
}

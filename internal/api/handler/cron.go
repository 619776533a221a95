package handler

import (
	"net/http"

	"github.com/vfg2006/mmm-explorer/internal/scheduler"
	"github.com/vfg2006/mmm-explorer/pkg/apiErrors"
	"github.com/vfg2006/mmm-explorer/pkg/log"
)

// RunDatasetReload dispara manualmente a mesma recarga executada pelo agendador
func RunDatasetReload(service *scheduler.DatasetReloadService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recarga não disponível", nil)
			return
		}

		log.ForContext(r.Context()).Info("Recarga manual solicitada")
		service.TriggerManualReload()

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Recarga iniciada com sucesso",
			"type":    "reload",
		})
	})
}

// GetCronStatus retorna o status do agendador de recarga
func GetCronStatus(service *scheduler.DatasetReloadService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recarga não disponível", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"reload": service.GetStatus(),
		})
	})
}

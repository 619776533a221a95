package handler

import (
	"bytes"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/mmm-explorer/internal/api/web"
	"github.com/vfg2006/mmm-explorer/internal/usecases/exploring"
	"github.com/vfg2006/mmm-explorer/internal/usecases/sessioning"
	"github.com/vfg2006/mmm-explorer/pkg/log"
)

// DashboardPage renderiza o dashboard em HTML. Enquanto a sessão carrega a página
// se atualiza sozinha; depois de um erro de carregamento ela fica no estado de erro.
func DashboardPage(explorer exploring.Explorer, renderer *web.Renderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var page *web.Page
		status := http.StatusOK

		filters, err := parseFilters(r)
		if err != nil {
			http.Error(w, "Filtro inválido", http.StatusBadRequest)
			return
		}

		dashboard, err := explorer.Dashboard(filters)
		switch {
		case err == nil:
			page, err = web.DashboardPage(dashboard)
			if err != nil {
				logger.WithError(err).Error("Erro ao montar os gráficos do dashboard")
				page = web.ErrorPage()
				status = http.StatusInternalServerError
			}
		case errors.Is(err, sessioning.ErrSessionLoading):
			page = web.LoadingPage()
		case sessioning.IsLoadError(err):
			logger.WithError(err).Warn("Dashboard exibido com erro de carregamento")
			page = web.ErrorPage()
		default:
			logger.WithError(err).Error("Erro inesperado ao montar o dashboard")
			page = web.ErrorPage()
			status = http.StatusInternalServerError
		}

		var buf bytes.Buffer
		if err := renderer.Render(&buf, page); err != nil {
			logger.WithError(err).Error("Erro ao renderizar o dashboard")
			http.Error(w, "Erro interno no servidor", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		if _, err := buf.WriteTo(w); err != nil {
			logger.WithError(err).Warn("Erro ao escrever o dashboard")
		}
	})
}

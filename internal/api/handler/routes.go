package handler

import (
	"net/http"

	"github.com/vfg2006/mmm-explorer/internal/api/handler/router"
	"github.com/vfg2006/mmm-explorer/internal/api/web"
	"github.com/vfg2006/mmm-explorer/internal/scheduler"
	"github.com/vfg2006/mmm-explorer/internal/usecases/exploring"
	"github.com/vfg2006/mmm-explorer/internal/usecases/sessioning"
	"github.com/vfg2006/mmm-explorer/pkg/apiErrors"
	"github.com/vfg2006/mmm-explorer/pkg/metrics"
	"github.com/vfg2006/mmm-explorer/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Dashboard(explorer exploring.Explorer, renderer *web.Renderer) []router.Route {
	return []router.Route{
		{
			Path:        "/",
			Method:      http.MethodGet,
			Handler:     DashboardPage(explorer, renderer),
			Middlewares: []func(http.Handler) http.Handler{middleware.NoStore()},
		},
	}
}

func Explorer(explorer exploring.Explorer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/filters",
			Method:  http.MethodGet,
			Handler: GetFilterOptions(explorer),
		},
		{
			Path:    "/v1/timeline",
			Method:  http.MethodGet,
			Handler: GetTimeline(explorer),
		},
		{
			Path:    "/v1/metrics",
			Method:  http.MethodGet,
			Handler: GetMetrics(explorer),
		},
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(explorer),
			Middlewares: []func(http.Handler) http.Handler{middleware.NoStore()},
		},
	}
}

func Session(manager sessioning.SessionManager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/session",
			Method:      http.MethodGet,
			Handler:     GetSessionStatus(manager),
			Middlewares: []func(http.Handler) http.Handler{middleware.NoStore()},
		},
		{
			Path:    "/v1/session/reload",
			Method:  http.MethodPost,
			Handler: ReloadSession(manager),
		},
	}
}

func CronJobs(reloadService *scheduler.DatasetReloadService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/reload/run",
			Method:  http.MethodPost,
			Handler: RunDatasetReload(reloadService),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(reloadService),
		},
	}
}

// NotFound responde rotas desconhecidas no formato padrão de erro.
func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Rota não encontrada", r.URL.Path)
	})
}

package handler

import (
	"net/http"

	"github.com/vfg2006/mmm-explorer/internal/usecases/exploring"
	"github.com/vfg2006/mmm-explorer/pkg/apiErrors"
)

func GetFilterOptions(explorer exploring.Explorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		options, err := explorer.Options()
		if err != nil {
			writeSessionError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, options)
	})
}

func GetTimeline(explorer exploring.Explorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Filtro inválido", err.Error())
			return
		}

		timeline, err := explorer.Timeline(filters)
		if err != nil {
			writeSessionError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, TimelineResponse{
			Filters:  filters,
			Days:     len(timeline),
			Timeline: toDailyPoints(timeline),
		})
	})
}

func GetMetrics(explorer exploring.Explorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Filtro inválido", err.Error())
			return
		}

		metrics, err := explorer.Metrics(filters)
		if err != nil {
			writeSessionError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, toMetricsResponse(metrics))
	})
}

func GetDashboard(explorer exploring.Explorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Filtro inválido", err.Error())
			return
		}

		dashboard, err := explorer.Dashboard(filters)
		if err != nil {
			writeSessionError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, toDashboardResponse(dashboard))
	})
}

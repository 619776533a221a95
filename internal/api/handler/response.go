package handler

import (
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/mmm-explorer/internal/domain"
	"github.com/vfg2006/mmm-explorer/internal/usecases/sessioning"
	"github.com/vfg2006/mmm-explorer/pkg/apiErrors"
	"github.com/vfg2006/mmm-explorer/pkg/log"
	"github.com/vfg2006/mmm-explorer/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Mensagem exibida ao usuário quando o carregamento falha. Os detalhes ficam só no log.
const loadFailedMessage = "Failed to load data."

const maxFilterLength = 256

type DailyPointResponse struct {
	Date    string  `json:"date"`
	Spend   float64 `json:"spend"`
	Revenue float64 `json:"revenue"`
	Google  float64 `json:"google"`
	Meta    float64 `json:"meta"`
	TikTok  float64 `json:"tiktok"`
}

type MetricsResponse struct {
	TotalSpend   float64 `json:"total_spend"`
	TotalRevenue float64 `json:"total_revenue"`
	ROAS         float64 `json:"roas"`
}

type TimelineResponse struct {
	Filters  domain.ExplorerFilters `json:"filters"`
	Days     int                    `json:"days"`
	Timeline []DailyPointResponse   `json:"timeline"`
}

type DashboardResponse struct {
	SessionID string                 `json:"session_id"`
	Filters   domain.ExplorerFilters `json:"filters"`
	Options   domain.FilterOptions   `json:"options"`
	Rows      int                    `json:"rows"`
	Days      int                    `json:"days"`
	Timeline  []DailyPointResponse   `json:"timeline"`
	Metrics   MetricsResponse        `json:"metrics"`
}

func toDailyPoints(timeline []domain.DailyAggregate) []DailyPointResponse {
	points := make([]DailyPointResponse, 0, len(timeline))
	for _, day := range timeline {
		points = append(points, DailyPointResponse{
			Date:    day.Date,
			Spend:   utils.ToFloat(day.Spend),
			Revenue: utils.ToFloat(day.Revenue),
			Google:  utils.ToFloat(day.Google),
			Meta:    utils.ToFloat(day.Meta),
			TikTok:  utils.ToFloat(day.TikTok),
		})
	}
	return points
}

func toMetricsResponse(m domain.Metrics) MetricsResponse {
	return MetricsResponse{
		TotalSpend:   utils.ToFloat(m.TotalSpend),
		TotalRevenue: utils.ToFloat(m.TotalRevenue),
		ROAS:         utils.ToFloat(m.ROAS),
	}
}

func toDashboardResponse(d *domain.Dashboard) DashboardResponse {
	return DashboardResponse{
		SessionID: d.SessionID,
		Filters:   d.Filters,
		Options:   d.Options,
		Rows:      d.Rows,
		Days:      d.Days,
		Timeline:  toDailyPoints(d.Timeline),
		Metrics:   toMetricsResponse(d.Metrics),
	}
}

// parseFilters lê vertical e territory da query. Ausente ou vazio equivale ao sentinela.
// Valores desconhecidos são aceitos e apenas não casam com nenhuma linha.
func parseFilters(r *http.Request) (domain.ExplorerFilters, error) {
	filters := domain.DefaultFilters()
	query := r.URL.Query()

	if v := query.Get("vertical"); v != "" {
		filters.Vertical = v
	}
	if t := query.Get("territory"); t != "" {
		filters.Territory = t
	}

	if len(filters.Vertical) > maxFilterLength || len(filters.Territory) > maxFilterLength {
		return filters, errors.New("filter value too long")
	}
	if strings.ContainsRune(filters.Vertical, 0) || strings.ContainsRune(filters.Territory, 0) {
		return filters, errors.New("filter value contains invalid characters")
	}

	return filters, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao serializar resposta")
	}
}

// writeSessionError traduz os erros da sessão para a resposta padronizada.
func writeSessionError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context())

	switch {
	case errors.Is(err, sessioning.ErrSessionLoading):
		w.Header().Set("Retry-After", "1")
		apiErrors.WriteError(w, apiErrors.ErrSessionLoading, "Dataset ainda carregando", nil)
	case sessioning.IsLoadError(err):
		logger.WithError(err).Warn("Requisição sobre sessão com erro de carregamento")
		apiErrors.WriteError(w, apiErrors.ErrSessionLoadError, loadFailedMessage, nil)
	default:
		logger.WithError(err).Error("Erro inesperado ao consultar a sessão")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
	}
}

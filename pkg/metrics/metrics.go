package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mmm_explorer"

var (
	datasetLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dataset_loads_total",
		Help:      "Carregamentos do dataset por origem e resultado.",
	}, []string{"source", "result"})

	datasetLoadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "dataset_load_duration_seconds",
		Help:      "Duração do carregamento do dataset.",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
	}, []string{"source"})

	datasetRows = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "dataset_rows",
		Help:      "Linhas da sessão pronta mais recente.",
	})

	rowWarnings = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dataset_row_warnings_total",
		Help:      "Linhas ou campos ignorados durante o parse do CSV.",
	}, []string{"source"})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Requisições HTTP por método e status.",
	}, []string{"method", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Latência das requisições HTTP.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})
)

// ObserveDatasetLoad registra o resultado de um carregamento.
func ObserveDatasetLoad(source string, d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	datasetLoads.WithLabelValues(source, result).Inc()
	datasetLoadDuration.WithLabelValues(source).Observe(d.Seconds())
}

func SetDatasetRows(n int) {
	datasetRows.Set(float64(n))
}

func AddRowWarnings(source string, n int) {
	if n <= 0 {
		return
	}
	rowWarnings.WithLabelValues(source).Add(float64(n))
}

func ObserveRequest(method string, status int, d time.Duration) {
	httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method).Observe(d.Seconds())
}

// Handler expõe as métricas no formato do Prometheus.
func Handler() http.Handler {
	return promhttp.Handler()
}

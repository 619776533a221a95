package web

import (
	"embed"
	"html/template"
	"io"

	"github.com/pkg/errors"
	"github.com/vfg2006/mmm-explorer/internal/domain"
	"github.com/vfg2006/mmm-explorer/pkg/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	PageLoading = "loading"
	PageError   = "error"
	PageReady   = "ready"

	LoadingMessage = "Loading Conjura MMM Data..."
	ErrorMessage   = "Failed to load data."

	// Intervalo do auto refresh da página de carregamento, em segundos
	loadingRefresh = 2
)

type Scorecard struct {
	Label string
	Value string
	Color string
}

// Page é o modelo passado ao template do dashboard.
type Page struct {
	Title          string
	State          string
	Message        string
	RefreshSeconds int
	Filters        domain.ExplorerFilters
	Options        domain.FilterOptions
	Summary        string
	Scorecards     []Scorecard
	ChartScript    string
	Trend          *Chart
	Mix            *Chart
}

func LoadingPage() *Page {
	return &Page{
		Title:          "MMM Data Explorer",
		State:          PageLoading,
		Message:        LoadingMessage,
		RefreshSeconds: loadingRefresh,
	}
}

// ErrorPage é terminal: não há refresh automático, o usuário decide recarregar.
func ErrorPage() *Page {
	return &Page{
		Title:   "MMM Data Explorer",
		State:   PageError,
		Message: ErrorMessage,
	}
}

func DashboardPage(d *domain.Dashboard) (*Page, error) {
	trend, err := TrendChart(d.Timeline)
	if err != nil {
		return nil, err
	}
	mix, err := ChannelMixChart(d.Timeline)
	if err != nil {
		return nil, err
	}

	return &Page{
		Title:   "MMM Data Explorer",
		State:   PageReady,
		Filters: d.Filters,
		Options: d.Options,
		Summary: utils.FormatCount(d.Rows) + " rows • " + utils.FormatCount(d.Days) + " days",
		Scorecards: []Scorecard{
			{Label: "Total Spend", Value: utils.FormatCurrency(d.Metrics.TotalSpend), Color: ColorSpend},
			{Label: "Total Revenue", Value: utils.FormatCurrency(d.Metrics.TotalRevenue), Color: ColorRevenue},
			{Label: "ROAS", Value: utils.FormatMultiplier(d.Metrics.ROAS), Color: ColorGoogle},
		},
		ChartScript: EChartsScript,
		Trend:       trend,
		Mix:         mix,
	}, nil
}

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("base").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse templates")
	}

	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) Render(w io.Writer, page *Page) error {
	return r.tmpl.ExecuteTemplate(w, "dashboard.html", page)
}

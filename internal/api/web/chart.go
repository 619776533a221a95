package web

import (
	"html/template"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/mmm-explorer/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// EChartsScript é o bundle servido pelo host de assets do go-echarts.
	EChartsScript = "https://go-echarts.github.io/go-echarts-assets/assets/echarts.min.js"

	TrendChartID = "trend-chart"
	MixChartID   = "mix-chart"

	// Domínio do eixo log é [1, auto]; valores abaixo de 1 ficam na base.
	logAxisMin = 1.0
	spendStack = "spend"

	// Valor que o ECharts trata como ausente; segmentos zerados não são desenhados.
	missingValue = "-"
)

// Cores das séries
const (
	ColorRevenue = "#10b981"
	ColorSpend   = "#ef4444"
	ColorGoogle  = "#4285F4"
	ColorMeta    = "#1877F2"
	ColorTikTok  = "#000000"
)

// Chart é um gráfico pronto para o template: id do elemento e opções do ECharts serializadas.
type Chart struct {
	ID     string
	Empty  bool
	Option template.JS
}

type echartsOption interface {
	Validate()
	JSON() map[string]interface{}
}

func newChart(id string, c echartsOption, empty bool) (*Chart, error) {
	c.Validate()

	option, err := json.Marshal(c.JSON())
	if err != nil {
		return nil, errors.Wrapf(err, "marshal chart %s", id)
	}

	return &Chart{
		ID:     id,
		Empty:  empty,
		Option: template.JS(option),
	}, nil
}

// TrendChart monta o gráfico de área de receita e investimento por dia.
func TrendChart(timeline []domain.DailyAggregate) (*Chart, error) {
	return newChart(TrendChartID, trendChart(timeline), len(timeline) == 0)
}

// ChannelMixChart monta as barras empilhadas Google, Meta e TikTok por dia.
func ChannelMixChart(timeline []domain.DailyAggregate) (*Chart, error) {
	return newChart(MixChartID, channelMixChart(timeline), len(timeline) == 0)
}

func trendChart(timeline []domain.DailyAggregate) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category"}),
		charts.WithYAxisOpts(logAxis()),
	)

	revenue := make([]opts.LineData, 0, len(timeline))
	spend := make([]opts.LineData, 0, len(timeline))
	for _, day := range timeline {
		revenue = append(revenue, opts.LineData{Value: clampToAxis(day.Revenue)})
		spend = append(spend, opts.LineData{Value: clampToAxis(day.Spend)})
	}

	line.SetXAxis(dates(timeline)).
		AddSeries("Revenue", revenue, areaSeries(ColorRevenue)...).
		AddSeries("Spend", spend, areaSeries(ColorSpend)...)

	return line
}

func channelMixChart(timeline []domain.DailyAggregate) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category"}),
		charts.WithYAxisOpts(logAxis()),
	)

	google := make([]opts.BarData, 0, len(timeline))
	meta := make([]opts.BarData, 0, len(timeline))
	tiktok := make([]opts.BarData, 0, len(timeline))
	for _, day := range timeline {
		google = append(google, segment(day.Google))
		meta = append(meta, segment(day.Meta))
		tiktok = append(tiktok, segment(day.TikTok))
	}

	bar.SetXAxis(dates(timeline)).
		AddSeries("Google", google, stackedSeries(ColorGoogle)...).
		AddSeries("Meta", meta, stackedSeries(ColorMeta)...).
		AddSeries("TikTok", tiktok, stackedSeries(ColorTikTok)...)

	return bar
}

func logAxis() opts.YAxis {
	return opts.YAxis{
		Type: "log",
		Min:  logAxisMin,
	}
}

func areaSeries(color string) []charts.SeriesOpts {
	return []charts.SeriesOpts{
		charts.WithItemStyleOpts(opts.ItemStyle{Color: color}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: color, Width: 2}),
		charts.WithAreaStyleOpts(opts.AreaStyle{Color: color, Opacity: 0.15}),
	}
}

func stackedSeries(color string) []charts.SeriesOpts {
	return []charts.SeriesOpts{
		charts.WithItemStyleOpts(opts.ItemStyle{Color: color}),
		charts.WithBarChartOpts(opts.BarChart{Stack: spendStack}),
	}
}

func dates(timeline []domain.DailyAggregate) []string {
	out := make([]string, 0, len(timeline))
	for _, day := range timeline {
		out = append(out, day.Date)
	}
	return out
}

// clampToAxis prende o valor no mínimo do eixo log, que não representa zero.
func clampToAxis(d decimal.Decimal) float64 {
	return math.Max(round2(d.InexactFloat64()), logAxisMin)
}

func segment(d decimal.Decimal) opts.BarData {
	if !d.IsPositive() {
		return opts.BarData{Value: missingValue}
	}
	return opts.BarData{Value: round2(d.InexactFloat64())}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

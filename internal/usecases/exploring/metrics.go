package exploring

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/mmm-explorer/internal/domain"
)

// ComputeMetrics reduz a série diária aos números dos scorecards.
// ROAS é zero quando não houve investimento.
func ComputeMetrics(days []domain.DailyAggregate) domain.Metrics {
	spend := decimal.Zero
	revenue := decimal.Zero
	for _, d := range days {
		spend = spend.Add(d.Spend)
		revenue = revenue.Add(d.Revenue)
	}

	roas := decimal.Zero
	if spend.IsPositive() {
		roas = revenue.Div(spend)
	}

	return domain.Metrics{
		TotalSpend:   spend,
		TotalRevenue: revenue,
		ROAS:         roas,
	}
}

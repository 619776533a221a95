package exploring

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/mmm-explorer/internal/domain"
)

func num(v float64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromFloat(v))
}

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// sampleRecords reproduz o cenário de dois dias usado em vários testes.
func sampleRecords() []domain.Record {
	return []domain.Record{
		{
			Date:                      "2024-01-02",
			Vertical:                  "Retail",
			Territory:                 "US",
			GooglePaidSearchSpend:     num(10),
			MetaFacebookSpend:         num(0),
			TikTokSpend:               num(0),
			AllPurchasesOriginalPrice: num(50),
		},
		{
			Date:                      "2024-01-01",
			Vertical:                  "Travel",
			Territory:                 "UK",
			GooglePaidSearchSpend:     num(5),
			MetaFacebookSpend:         num(5),
			TikTokSpend:               num(0),
			AllPurchasesOriginalPrice: num(20),
		},
	}
}

package exploring

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/mmm-explorer/internal/domain"
	"github.com/vfg2006/mmm-explorer/pkg/utils"
)

// Formatos de data aceitos, do mais comum para o menos comum.
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	time.DateTime,
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"02-Jan-2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

type dayBucket struct {
	aggregate *domain.DailyAggregate
	day       time.Time
	parsed    bool
}

// AggregateByDay agrupa os registros filtrados por dia e soma investimento, receita
// e os subtotais por canal. Linhas sem data são descartadas.
// A saída é ordenada cronologicamente e não tem datas repetidas.
func AggregateByDay(records []domain.Record) []domain.DailyAggregate {
	buckets := make(map[string]*dayBucket)

	for _, r := range records {
		raw := strings.TrimSpace(r.Date)
		if raw == "" {
			continue
		}

		key, day, parsed := dayKey(raw)
		b, ok := buckets[key]
		if !ok {
			b = &dayBucket{
				aggregate: &domain.DailyAggregate{
					Date:    key,
					Spend:   decimal.Zero,
					Revenue: decimal.Zero,
					Google:  decimal.Zero,
					Meta:    decimal.Zero,
					TikTok:  decimal.Zero,
				},
				day:    day,
				parsed: parsed,
			}
			buckets[key] = b
		}

		google := r.ChannelSpend(domain.ChannelGoogle)
		meta := r.ChannelSpend(domain.ChannelMeta)
		tiktok := r.ChannelSpend(domain.ChannelTikTok)

		agg := b.aggregate
		agg.Google = agg.Google.Add(google)
		agg.Meta = agg.Meta.Add(meta)
		agg.TikTok = agg.TikTok.Add(tiktok)
		agg.Spend = agg.Spend.Add(google).Add(meta).Add(tiktok)
		agg.Revenue = agg.Revenue.Add(r.Revenue())
	}

	sorted := make([]*dayBucket, 0, len(buckets))
	for _, b := range buckets {
		sorted = append(sorted, b)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return bucketLess(sorted[i], sorted[j])
	})

	out := make([]domain.DailyAggregate, 0, len(sorted))
	for _, b := range sorted {
		out = append(out, *b.aggregate)
	}
	return out
}

// ParseDay interpreta a data de um registro como dia de calendário.
func ParseDay(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// dayKey devolve a chave de agrupamento. Datas reconhecidas viram ISO, de modo que
// formatos diferentes do mesmo dia caem no mesmo grupo.
func dayKey(raw string) (string, time.Time, bool) {
	day, ok := ParseDay(raw)
	if !ok {
		return raw, time.Time{}, false
	}
	return utils.FormatDate(&day), day, true
}

// Datas não reconhecidas ficam depois de todas as válidas, em ordem lexicográfica.
func bucketLess(a, b *dayBucket) bool {
	if a.parsed != b.parsed {
		return a.parsed
	}
	if a.parsed && !a.day.Equal(b.day) {
		return a.day.Before(b.day)
	}
	return a.aggregate.Date < b.aggregate.Date
}

package exploring

import (
	"sort"

	"github.com/vfg2006/mmm-explorer/internal/domain"
)

// DeriveOptions monta as opções dos seletores a partir de todos os registros.
// Sem registros não há opções, nem mesmo as sentinelas: o chamador trata isso como
// "dados ainda não carregados".
func DeriveOptions(records []domain.Record) domain.FilterOptions {
	if len(records) == 0 {
		return domain.FilterOptions{Verticals: []string{}, Territories: []string{}}
	}

	verticals := make(map[string]struct{})
	territories := make(map[string]struct{})
	for _, r := range records {
		if r.Vertical != "" {
			verticals[r.Vertical] = struct{}{}
		}
		if r.Territory != "" {
			territories[r.Territory] = struct{}{}
		}
	}

	return domain.FilterOptions{
		Verticals:   withSentinel(domain.AllVerticals, verticals),
		Territories: withSentinel(domain.AllTerritories, territories),
	}
}

func withSentinel(sentinel string, values map[string]struct{}) []string {
	delete(values, sentinel)

	out := make([]string, 0, len(values)+1)
	for v := range values {
		out = append(out, v)
	}
	sort.Strings(out)

	return append([]string{sentinel}, out...)
}

package exploring

import "github.com/vfg2006/mmm-explorer/internal/domain"

// FilterRecords mantém os registros que atendem às duas dimensões, preservando a ordem.
// A sentinela de cada dimensão desliga a restrição correspondente.
func FilterRecords(records []domain.Record, filters domain.ExplorerFilters) []domain.Record {
	out := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if matches(r, filters) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r domain.Record, filters domain.ExplorerFilters) bool {
	if filters.Vertical != domain.AllVerticals && r.Vertical != filters.Vertical {
		return false
	}
	if filters.Territory != domain.AllTerritories && r.Territory != filters.Territory {
		return false
	}
	return true
}

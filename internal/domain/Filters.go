package domain

// Valores sentinela: selecionar um deles equivale a não filtrar a dimensão.
const (
	AllVerticals   = "All"
	AllTerritories = "All Territories"
)

// ExplorerFilters é a seleção atual do usuário.
type ExplorerFilters struct {
	Vertical  string `json:"vertical"`
	Territory string `json:"territory"`
}

// DefaultFilters retorna a seleção inicial (sem restrição).
func DefaultFilters() ExplorerFilters {
	return ExplorerFilters{
		Vertical:  AllVerticals,
		Territory: AllTerritories,
	}
}

// FilterOptions contém as opções dos dois seletores. Vazio enquanto não há dados.
type FilterOptions struct {
	Verticals   []string `json:"verticals"`
	Territories []string `json:"territories"`
}

package domain

import "github.com/shopspring/decimal"

// DailyAggregate consolida as linhas filtradas de um mesmo dia.
// Google + Meta + TikTok é sempre igual a Spend.
type DailyAggregate struct {
	Date    string          `json:"date"`
	Spend   decimal.Decimal `json:"spend"`
	Revenue decimal.Decimal `json:"revenue"`
	Google  decimal.Decimal `json:"google"`
	Meta    decimal.Decimal `json:"meta"`
	TikTok  decimal.Decimal `json:"tiktok"`
}

// Metrics são os números dos scorecards.
type Metrics struct {
	TotalSpend   decimal.Decimal `json:"total_spend"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	ROAS         decimal.Decimal `json:"roas"`
}

// Dashboard reúne tudo o que a camada de apresentação precisa para uma seleção.
type Dashboard struct {
	SessionID string           `json:"session_id"`
	Filters   ExplorerFilters  `json:"filters"`
	Options   FilterOptions    `json:"options"`
	Rows      int              `json:"rows"`
	Days      int              `json:"days"`
	Timeline  []DailyAggregate `json:"timeline"`
	Metrics   Metrics          `json:"metrics"`
}

package dto

import "github.com/shopspring/decimal"

// DaySummaryRow faturamento e lucro somados de um dia.
type DaySummaryRow struct {
	Day     string          `json:"day"` // YYYY-MM-DD
	Revenue decimal.Decimal `json:"revenue"`
	Profit  decimal.Decimal `json:"profit"`
}

// DailySummaryResponse resumo diário de todas as vendas lançadas.
type DailySummaryResponse struct {
	Items []DaySummaryRow `json:"items"`
	Fees  FeesResponse    `json:"fees"`
}

// DashboardRequest filtros do dashboard. Campos vazios não filtram.
type DashboardRequest struct {
	Product     string `query:"product"`
	Marketplace string `query:"marketplace"`
	StartDate   string `query:"start_date"` // YYYY-MM-DD, inclusivo
	EndDate     string `query:"end_date"`   // YYYY-MM-DD, inclusivo
}

// DashboardResponse KPIs do período filtrado mais a série diária dos gráficos.
// Seleção vazia devolve série vazia e KPIs zerados, nunca erro.
type DashboardResponse struct {
	Revenue      decimal.Decimal `json:"revenue"`       // faturamento do período
	Profit       decimal.Decimal `json:"profit"`        // lucro do período
	RevenueLabel string          `json:"revenue_label"` // "R$ 1.234,56"
	ProfitLabel  string          `json:"profit_label"`
	Series       []DaySummaryRow `json:"series"`
	Fees         FeesResponse    `json:"fees"`
}

package dto

import "github.com/shopspring/decimal"

// MonthlyReportRequest parâmetros de GET /api/reports/monthly.
type MonthlyReportRequest struct {
	Year        int    `query:"year" validate:"required,min=2000,max=2100"`
	Month       int    `query:"month" validate:"required,min=1,max=12"`
	Marketplace string `query:"marketplace"` // vazio = todos
}

// RankingRow posição de um produto no ranking do mês
// (quantidade decrescente; empate por faturamento decrescente).
type RankingRow struct {
	Rank    int             `json:"rank"`
	Product string          `json:"product"`
	Qty     int64           `json:"qty"`
	Revenue decimal.Decimal `json:"revenue"`
	Profit  decimal.Decimal `json:"profit"`
}

// MonthlyReportResponse relatório do mês: produto campeão, ranking completo
// e resumo diário do mês filtrado.
type MonthlyReportResponse struct {
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	MonthLabel  string          `json:"month_label"` // ex.: "março 2026"
	Marketplace string          `json:"marketplace,omitempty"`
	BestSeller  *RankingRow     `json:"best_seller"` // nil quando o mês não tem vendas
	Ranking     []RankingRow    `json:"ranking"`
	Daily       []DaySummaryRow `json:"daily"`
	Fees        FeesResponse    `json:"fees"`
}

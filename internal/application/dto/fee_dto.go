package dto

import (
	"github.com/shopspring/decimal"

	"github.com/bmaciel/vendas-api/internal/domain"
	"github.com/bmaciel/vendas-api/internal/domain/finance"
)

// FeeQuery sobrescritas opcionais das taxas via query string.
// Campos ausentes usam o padrão configurado; dica: 0.20 = 20%.
type FeeQuery struct {
	Variable     *float64 `query:"fee_variable"`
	Fixed        *float64 `query:"fee_fixed"`
	Tax          *float64 `query:"fee_tax"`
	Anticipation *float64 `query:"fee_anticipation"`
}

// Resolve combina as sobrescritas com as taxas padrão.
// Taxas negativas são rejeitadas na borda; o motor em si não valida.
func (q FeeQuery) Resolve(defaults finance.FeeParams) (finance.FeeParams, error) {
	out := defaults
	if q.Variable != nil {
		out.Variable = decimal.NewFromFloat(*q.Variable)
	}
	if q.Fixed != nil {
		out.FixedPerUnit = decimal.NewFromFloat(*q.Fixed)
	}
	if q.Tax != nil {
		out.Tax = decimal.NewFromFloat(*q.Tax)
	}
	if q.Anticipation != nil {
		out.Anticipation = decimal.NewFromFloat(*q.Anticipation)
	}
	for _, rate := range []decimal.Decimal{out.Variable, out.FixedPerUnit, out.Tax, out.Anticipation} {
		if rate.IsNegative() {
			return finance.FeeParams{}, domain.ErrInvalidInput
		}
	}
	return out, nil
}

// FeesResponse taxas efetivamente aplicadas em uma consulta.
type FeesResponse struct {
	Variable     decimal.Decimal `json:"variable"`
	FixedPerUnit decimal.Decimal `json:"fixed_per_unit"`
	Tax          decimal.Decimal `json:"tax"`
	Anticipation decimal.Decimal `json:"anticipation"`
}

// NewFeesResponse converte os parâmetros do motor para o DTO de resposta.
func NewFeesResponse(p finance.FeeParams) FeesResponse {
	return FeesResponse{
		Variable:     p.Variable,
		FixedPerUnit: p.FixedPerUnit,
		Tax:          p.Tax,
		Anticipation: p.Anticipation,
	}
}

// Package finance implementa o motor de cálculo financeiro do painel de
// vendas (serviço de domínio, sem estado e sem I/O).
//
// Fórmulas por linha de venda, para quantidade q, preço unitário p,
// custo unitário c e taxas (v, f, t, a):
//
//	receita_bruta = q * p
//	taxa_unit     = v*p + f + t*p + a*p
//	total_taxas   = q * taxa_unit
//	custo_total   = q * c
//	lucro         = receita_bruta - total_taxas - custo_total
//
// Todo o cálculo usa decimal exato; arredondamento, se houver, é sempre
// responsabilidade da camada de apresentação.
package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeeParams são as quatro taxas ajustáveis que compõem a taxa por unidade.
// São passadas explicitamente em cada chamada: nunca viram estado ambiente,
// porque o operador pode alterá-las entre duas consultas aos mesmos dados.
type FeeParams struct {
	Variable     decimal.Decimal // fração sobre o preço (ex.: 0.20 = 20%)
	FixedPerUnit decimal.Decimal // valor fixo por unidade vendida (R$)
	Tax          decimal.Decimal // imposto, fração sobre o preço
	Anticipation decimal.Decimal // antecipação de recebíveis, fração sobre o preço
}

// PerUnit devolve a taxa por unidade para um dado preço de venda:
// v*p + f + t*p + a*p.
func (fp FeeParams) PerUnit(unitPrice decimal.Decimal) decimal.Decimal {
	pct := fp.Variable.Add(fp.Tax).Add(fp.Anticipation)
	return pct.Mul(unitPrice).Add(fp.FixedPerUnit)
}

// LineItem é uma linha de venda já resolvida (joins feitos pelo chamador).
// O motor nunca modifica a entrada.
type LineItem struct {
	Day         time.Time
	Product     string
	Marketplace string // vazio quando a venda não tem marketplace
	Qty         int64
	UnitPrice   decimal.Decimal
	UnitCost    decimal.Decimal
}

// Result são os quatro campos derivados de uma linha de venda.
// Invariante: Profit = GrossRevenue - TotalFees - TotalCost, exatamente.
type Result struct {
	GrossRevenue decimal.Decimal
	TotalFees    decimal.Decimal
	TotalCost    decimal.Decimal
	Profit       decimal.Decimal
}

// Compute calcula os campos derivados de uma linha de venda.
// Função pura: não valida faixas de entrada (a validação é da borda HTTP);
// multiplicação e subtração não falham para nenhum valor real.
func Compute(item LineItem, fees FeeParams) Result {
	qty := decimal.NewFromInt(item.Qty)
	gross := qty.Mul(item.UnitPrice)
	totalFees := qty.Mul(fees.PerUnit(item.UnitPrice))
	totalCost := qty.Mul(item.UnitCost)
	return Result{
		GrossRevenue: gross,
		TotalFees:    totalFees,
		TotalCost:    totalCost,
		Profit:       gross.Sub(totalFees).Sub(totalCost),
	}
}

// ComputeAll calcula os campos derivados de cada linha, preservando a ordem
// de entrada. Entrada vazia devolve fatia vazia.
func ComputeAll(items []LineItem, fees FeeParams) []Result {
	results := make([]Result, len(items))
	for i, item := range items {
		results[i] = Compute(item, fees)
	}
	return results
}

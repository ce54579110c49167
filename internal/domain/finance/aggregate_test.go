package finance_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmaciel/vendas-api/internal/domain/finance"
)

func dayItem(day time.Time, product string, qty int64, price, cost string) finance.LineItem {
	return finance.LineItem{
		Day:       day,
		Product:   product,
		Qty:       qty,
		UnitPrice: decimal.RequireFromString(price),
		UnitCost:  decimal.RequireFromString(cost),
	}
}

var (
	d1 = time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	d2 = time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC)
)

// ──────────────────────────────────────────────────────────────────────────────
// Resumo diário
// ──────────────────────────────────────────────────────────────────────────────

func TestSummarizeByDay_AgrupaEOrdena(t *testing.T) {
	items := []finance.LineItem{
		dayItem(d2, "Caneca", 1, "20.00", "8.00"),
		dayItem(d1, "Caneca", 2, "10.00", "4.00"),
		dayItem(d1, "Camiseta", 1, "30.00", "12.00"),
	}
	out := finance.SummarizeByDay(items, defaultFees())

	require.Len(t, out, 2)
	assert.True(t, out[0].Day.Before(out[1].Day), "resumo deve vir em ordem cronológica")
	assert.Equal(t, d1, out[0].Day)
	// dia 1: 2*10 + 1*30 = 50 de faturamento
	assert.True(t, out[0].Revenue.Equal(decimal.RequireFromString("50")),
		"faturamento do dia: veio %s", out[0].Revenue)
}

// A soma dos lucros de um grupo bate com receita_soma - taxas_soma - custo_soma
// do grupo (consistência da soma agrupada).
func TestSummarizeByDay_ConsistenciaComSomasPorCampo(t *testing.T) {
	fees := defaultFees()
	items := []finance.LineItem{
		dayItem(d1, "Caneca", 2, "10.00", "4.00"),
		dayItem(d1, "Camiseta", 3, "45.90", "17.50"),
		dayItem(d1, "Poster", 1, "9.99", "2.00"),
	}

	var revSum, feeSum, costSum decimal.Decimal
	for _, r := range finance.ComputeAll(items, fees) {
		revSum = revSum.Add(r.GrossRevenue)
		feeSum = feeSum.Add(r.TotalFees)
		costSum = costSum.Add(r.TotalCost)
	}

	out := finance.SummarizeByDay(items, fees)
	require.Len(t, out, 1)
	assert.True(t, out[0].Profit.Equal(revSum.Sub(feeSum).Sub(costSum)),
		"lucro agrupado %s != %s", out[0].Profit, revSum.Sub(feeSum).Sub(costSum))
}

func TestSummarizeByDay_Vazio(t *testing.T) {
	out := finance.SummarizeByDay(nil, defaultFees())
	assert.Empty(t, out)
}

// Linhas com carimbos de hora diferentes no mesmo dia caem no mesmo grupo.
func TestSummarizeByDay_IgnoraHora(t *testing.T) {
	items := []finance.LineItem{
		dayItem(d1.Add(9*time.Hour), "Caneca", 1, "10.00", "4.00"),
		dayItem(d1.Add(22*time.Hour), "Caneca", 1, "10.00", "4.00"),
	}
	out := finance.SummarizeByDay(items, defaultFees())
	require.Len(t, out, 1)
	assert.True(t, out[0].Revenue.Equal(decimal.RequireFromString("20")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Ranking de produtos
// ──────────────────────────────────────────────────────────────────────────────

// Empate em quantidade é desfeito por faturamento: dois produtos com
// qtd_soma=10, faturamentos 100 e 150 — o de 150 vem primeiro.
func TestRankProducts_EmpateDesfeitoPorFaturamento(t *testing.T) {
	items := []finance.LineItem{
		dayItem(d1, "Caneca", 10, "10.00", "4.00"),   // faturamento 100
		dayItem(d1, "Camiseta", 10, "15.00", "6.00"), // faturamento 150
	}
	out := finance.RankProducts(items, defaultFees())

	require.Len(t, out, 2)
	assert.Equal(t, "Camiseta", out[0].Product, "maior faturamento desempata")
	assert.Equal(t, "Caneca", out[1].Product)
	assert.Equal(t, int64(10), out[0].Qty)
}

func TestRankProducts_MaisVendidoPrimeiro(t *testing.T) {
	items := []finance.LineItem{
		dayItem(d1, "Poster", 2, "9.00", "1.00"),
		dayItem(d1, "Caneca", 3, "10.00", "4.00"),
		dayItem(d2, "Caneca", 4, "10.00", "4.00"),
		dayItem(d2, "Poster", 1, "9.00", "1.00"),
	}
	out := finance.RankProducts(items, defaultFees())

	require.Len(t, out, 2)
	assert.Equal(t, "Caneca", out[0].Product)
	assert.Equal(t, int64(7), out[0].Qty, "quantidades do mesmo produto devem somar")
	assert.True(t, out[0].Revenue.Equal(decimal.RequireFromString("70")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Totais do período
// ──────────────────────────────────────────────────────────────────────────────

func TestTotals_SomaGlobal(t *testing.T) {
	fees := defaultFees()
	items := []finance.LineItem{
		dayItem(d1, "Caneca", 3, "10.00", "4.00"), // lucro -2.7 (cenário de referência)
		dayItem(d2, "Caneca", 3, "10.00", "4.00"),
	}
	tt := finance.Totals(items, fees)

	assert.True(t, tt.Revenue.Equal(decimal.RequireFromString("60")))
	assert.True(t, tt.Profit.Equal(decimal.RequireFromString("-5.4")),
		"lucro do período: veio %s", tt.Profit)
}

func TestTotals_Vazio(t *testing.T) {
	tt := finance.Totals(nil, defaultFees())
	assert.True(t, tt.Revenue.IsZero())
	assert.True(t, tt.Profit.IsZero())
}

package finance_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmaciel/vendas-api/internal/domain/finance"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

// defaultFees são as taxas padrão do negócio: 20% variável, R$ 4 fixo por
// unidade, 8% de imposto e 1% de antecipação.
func defaultFees() finance.FeeParams {
	return finance.FeeParams{
		Variable:     decimal.NewFromFloat(0.20),
		FixedPerUnit: decimal.NewFromFloat(4.0),
		Tax:          decimal.NewFromFloat(0.08),
		Anticipation: decimal.NewFromFloat(0.01),
	}
}

func item(qty int64, price, cost string) finance.LineItem {
	return finance.LineItem{
		Day:       time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		Product:   "Caneca",
		Qty:       qty,
		UnitPrice: decimal.RequireFromString(price),
		UnitCost:  decimal.RequireFromString(cost),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Cenário de referência
// ──────────────────────────────────────────────────────────────────────────────

// TestCompute_CenarioReferencia valida o vetor calculado à mão:
// qty=3, preço=10.00, custo=4.00, taxas (0.20, 4.00, 0.08, 0.01)
//
//	taxa_unit   = 0.20*10 + 4 + 0.08*10 + 0.01*10 = 6.9
//	total_taxas = 20.7
//	receita     = 30; custo = 12; lucro = 30 - 20.7 - 12 = -2.7
func TestCompute_CenarioReferencia(t *testing.T) {
	r := finance.Compute(item(3, "10.00", "4.00"), defaultFees())

	assert.True(t, r.GrossRevenue.Equal(decimal.RequireFromString("30")),
		"receita bruta: esperado 30, veio %s", r.GrossRevenue)
	assert.True(t, r.TotalFees.Equal(decimal.RequireFromString("20.7")),
		"total de taxas: esperado 20.7, veio %s", r.TotalFees)
	assert.True(t, r.TotalCost.Equal(decimal.RequireFromString("12")),
		"custo total: esperado 12, veio %s", r.TotalCost)
	assert.True(t, r.Profit.Equal(decimal.RequireFromString("-2.7")),
		"lucro: esperado -2.7, veio %s", r.Profit)
}

// ──────────────────────────────────────────────────────────────────────────────
// Propriedades da fórmula
// ──────────────────────────────────────────────────────────────────────────────

// O invariante lucro = receita - taxas - custo vale exatamente para qualquer
// combinação de entradas, inclusive nonsense de negócio (qty zero, preço zero).
func TestCompute_InvarianteLucro(t *testing.T) {
	cases := []finance.LineItem{
		item(1, "0", "0"),
		item(7, "19.90", "7.35"),
		item(100, "0.01", "0.005"),
		item(0, "50", "20"),
		item(3, "33.33", "11.11"),
	}
	fees := defaultFees()
	for _, it := range cases {
		r := finance.Compute(it, fees)
		want := r.GrossRevenue.Sub(r.TotalFees).Sub(r.TotalCost)
		assert.True(t, r.Profit.Equal(want),
			"qty=%d preço=%s: lucro %s != %s", it.Qty, it.UnitPrice, r.Profit, want)
	}
}

// Com as quatro taxas zeradas, total_taxas é zero e lucro = receita - custo.
func TestCompute_TaxasZeradas(t *testing.T) {
	r := finance.Compute(item(5, "12.50", "3.00"), finance.FeeParams{})

	assert.True(t, r.TotalFees.IsZero(), "taxas devem ser zero, veio %s", r.TotalFees)
	assert.True(t, r.Profit.Equal(r.GrossRevenue.Sub(r.TotalCost)),
		"lucro deve ser receita - custo")
}

// Dobrar a quantidade dobra os quatro campos derivados (a fórmula é linear em q).
func TestCompute_EscalaComQuantidade(t *testing.T) {
	fees := defaultFees()
	two := decimal.NewFromInt(2)

	r1 := finance.Compute(item(4, "25.00", "9.90"), fees)
	r2 := finance.Compute(item(8, "25.00", "9.90"), fees)

	assert.True(t, r2.GrossRevenue.Equal(r1.GrossRevenue.Mul(two)))
	assert.True(t, r2.TotalFees.Equal(r1.TotalFees.Mul(two)))
	assert.True(t, r2.TotalCost.Equal(r1.TotalCost.Mul(two)))
	assert.True(t, r2.Profit.Equal(r1.Profit.Mul(two)))
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeAll
// ──────────────────────────────────────────────────────────────────────────────

// Entrada vazia devolve fatia vazia, sem erro (caso degenerado).
func TestComputeAll_EntradaVazia(t *testing.T) {
	out := finance.ComputeAll(nil, defaultFees())
	require.NotNil(t, out)
	assert.Empty(t, out)

	out = finance.ComputeAll([]finance.LineItem{}, defaultFees())
	assert.Empty(t, out)
}

// ComputeAll preserva a ordem e equivale a concatenar os resultados de cada
// metade calculada separadamente (linearidade sobre sequências).
func TestComputeAll_LinearidadeConcatenacao(t *testing.T) {
	fees := defaultFees()
	a := []finance.LineItem{item(1, "10.00", "2.00"), item(2, "15.00", "5.00")}
	b := []finance.LineItem{item(3, "7.77", "1.23")}

	whole := finance.ComputeAll(append(append([]finance.LineItem{}, a...), b...), fees)
	parts := append(finance.ComputeAll(a, fees), finance.ComputeAll(b, fees)...)

	require.Len(t, whole, len(parts))
	for i := range whole {
		assert.True(t, whole[i].Profit.Equal(parts[i].Profit), "posição %d", i)
		assert.True(t, whole[i].GrossRevenue.Equal(parts[i].GrossRevenue), "posição %d", i)
	}
}

// A entrada nunca é modificada pelo motor.
func TestComputeAll_NaoMutaEntrada(t *testing.T) {
	items := []finance.LineItem{item(2, "10.00", "4.00")}
	before := items[0]

	_ = finance.ComputeAll(items, defaultFees())

	assert.Equal(t, before, items[0])
}

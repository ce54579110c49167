package finance

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DaySummary soma de faturamento e lucro de um dia.
type DaySummary struct {
	Day     time.Time
	Revenue decimal.Decimal
	Profit  decimal.Decimal
}

// ProductTotals soma por produto dentro de um período filtrado.
type ProductTotals struct {
	Product string
	Qty     int64
	Revenue decimal.Decimal
	Profit  decimal.Decimal
}

// PeriodTotals soma global de um conjunto de linhas.
type PeriodTotals struct {
	Revenue decimal.Decimal
	Profit  decimal.Decimal
}

// SummarizeByDay calcula os campos derivados de cada linha e soma
// faturamento e lucro por dia, em ordem cronológica.
// Pela linearidade da fórmula, a soma dos lucros de um grupo é igual a
// receita_soma - taxas_soma - custo_soma do grupo.
func SummarizeByDay(items []LineItem, fees FeeParams) []DaySummary {
	byDay := make(map[time.Time]*DaySummary)
	for _, item := range items {
		day := truncateDay(item.Day)
		r := Compute(item, fees)
		s, ok := byDay[day]
		if !ok {
			s = &DaySummary{Day: day}
			byDay[day] = s
		}
		s.Revenue = s.Revenue.Add(r.GrossRevenue)
		s.Profit = s.Profit.Add(r.Profit)
	}

	out := make([]DaySummary, 0, len(byDay))
	for _, s := range byDay {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out
}

// RankProducts soma quantidade, faturamento e lucro por produto e ordena por
// quantidade vendida decrescente; empate é desfeito por faturamento
// decrescente. O primeiro elemento é o produto mais vendido.
func RankProducts(items []LineItem, fees FeeParams) []ProductTotals {
	byProduct := make(map[string]*ProductTotals)
	order := make([]string, 0)
	for _, item := range items {
		r := Compute(item, fees)
		t, ok := byProduct[item.Product]
		if !ok {
			t = &ProductTotals{Product: item.Product}
			byProduct[item.Product] = t
			order = append(order, item.Product)
		}
		t.Qty += item.Qty
		t.Revenue = t.Revenue.Add(r.GrossRevenue)
		t.Profit = t.Profit.Add(r.Profit)
	}

	out := make([]ProductTotals, 0, len(order))
	for _, name := range order {
		out = append(out, *byProduct[name])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Qty != out[j].Qty {
			return out[i].Qty > out[j].Qty
		}
		return out[i].Revenue.GreaterThan(out[j].Revenue)
	})
	return out
}

// Totals soma faturamento e lucro de todas as linhas (KPIs do período).
func Totals(items []LineItem, fees FeeParams) PeriodTotals {
	var t PeriodTotals
	for _, item := range items {
		r := Compute(item, fees)
		t.Revenue = t.Revenue.Add(r.GrossRevenue)
		t.Profit = t.Profit.Add(r.Profit)
	}
	return t
}

// truncateDay zera o componente de hora preservando o fuso.
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

package http

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmaciel/vendas-api/internal/application/dto"
)

func TestDailySummaryCSV(t *testing.T) {
	rows := []dto.DaySummaryRow{
		{Day: "2026-03-01", Revenue: decimal.NewFromFloat(150), Profit: decimal.NewFromFloat(32.5)},
		{Day: "2026-03-02", Revenue: decimal.NewFromFloat(80), Profit: decimal.NewFromFloat(-4.1)},
	}
	data, err := dailySummaryCSV(rows)
	require.NoError(t, err)

	out := string(data)
	assert.Equal(t, "data,faturamento,lucro\n2026-03-01,150.00,32.50\n2026-03-02,80.00,-4.10\n", out)
}

func TestDailySummaryCSV_Vazio(t *testing.T) {
	data, err := dailySummaryCSV(nil)
	require.NoError(t, err)
	assert.Equal(t, "data,faturamento,lucro\n", string(data), "só o cabeçalho quando não há dias")
}

func TestRankingCSV(t *testing.T) {
	rows := []dto.RankingRow{
		{Rank: 1, Product: "Caneca", Qty: 12, Revenue: decimal.NewFromFloat(360), Profit: decimal.NewFromFloat(90)},
		{Rank: 2, Product: "Camiseta", Qty: 7, Revenue: decimal.NewFromFloat(280), Profit: decimal.NewFromFloat(55.3)},
	}
	data, err := rankingCSV(rows)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "posicao,produto,qtd_total,faturamento,lucro")
	assert.Contains(t, out, "1,Caneca,12,360.00,90.00")
	assert.Contains(t, out, "2,Camiseta,7,280.00,55.30")
}

func TestSalesCSV_MarketplaceOpcional(t *testing.T) {
	mp := "Shopee"
	rows := []dto.SaleRowResponse{
		{
			Day: "2026-03-01", Product: "Caneca", Marketplace: &mp, Qty: 2,
			UnitPrice:    decimal.NewFromFloat(30),
			UnitCost:     decimal.NewFromFloat(12),
			GrossRevenue: decimal.NewFromFloat(60),
			TotalFees:    decimal.NewFromFloat(25.4),
			TotalCost:    decimal.NewFromFloat(24),
			Profit:       decimal.NewFromFloat(10.6),
		},
		{
			Day: "2026-03-02", Product: "Camiseta", Marketplace: nil, Qty: 1,
			UnitPrice:    decimal.NewFromFloat(40),
			UnitCost:     decimal.NewFromFloat(18),
			GrossRevenue: decimal.NewFromFloat(40),
			TotalFees:    decimal.NewFromFloat(15.6),
			TotalCost:    decimal.NewFromFloat(18),
			Profit:       decimal.NewFromFloat(6.4),
		},
	}
	data, err := salesCSV(rows)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "2026-03-01,Caneca,Shopee,2,30.00,12.00,60.00,25.40,24.00,10.60")
	assert.Contains(t, out, "2026-03-02,Camiseta,,1,40.00,18.00,40.00,15.60,18.00,6.40",
		"marketplace ausente vira campo vazio")
}

func TestMonthlyReportXML(t *testing.T) {
	best := dto.RankingRow{Rank: 1, Product: "Caneca", Qty: 12, Revenue: decimal.NewFromFloat(360), Profit: decimal.NewFromFloat(90)}
	report := &dto.MonthlyReportResponse{
		Year:       2026,
		Month:      3,
		MonthLabel: "março 2026",
		BestSeller: &best,
		Ranking:    []dto.RankingRow{best},
		Daily: []dto.DaySummaryRow{
			{Day: "2026-03-01", Revenue: decimal.NewFromFloat(360), Profit: decimal.NewFromFloat(90)},
		},
		Fees: dto.FeesResponse{
			Variable:     decimal.NewFromFloat(0.2),
			FixedPerUnit: decimal.NewFromFloat(4),
			Tax:          decimal.NewFromFloat(0.08),
			Anticipation: decimal.NewFromFloat(0.01),
		},
	}

	data, err := monthlyReportXML(report)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(data))

	root := doc.SelectElement("RelatorioMensal")
	require.NotNil(t, root)
	assert.Equal(t, "2026", root.SelectAttrValue("ano", ""))
	assert.Equal(t, "3", root.SelectAttrValue("mes", ""))
	assert.Equal(t, "março 2026", root.SelectElement("Titulo").Text())

	campeao := root.SelectElement("Campeao")
	require.NotNil(t, campeao)
	assert.Equal(t, "Caneca", campeao.SelectElement("Produto").Text())
	assert.Equal(t, "12", campeao.SelectElement("Quantidade").Text())

	ranking := root.SelectElement("Ranking")
	require.NotNil(t, ranking)
	assert.Len(t, ranking.SelectElements("Item"), 1)

	dias := root.SelectElement("ResumoDiario").SelectElements("Dia")
	require.Len(t, dias, 1)
	assert.Equal(t, "2026-03-01", dias[0].SelectAttrValue("data", ""))
	assert.Equal(t, "360.00", dias[0].SelectElement("Faturamento").Text())
}

func TestMonthlyReportXML_MesSemVendas(t *testing.T) {
	report := &dto.MonthlyReportResponse{
		Year:       2026,
		Month:      4,
		MonthLabel: "abril 2026",
	}
	data, err := monthlyReportXML(report)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(data))

	root := doc.SelectElement("RelatorioMensal")
	require.NotNil(t, root)
	assert.Nil(t, root.SelectElement("Campeao"), "mês sem vendas não tem campeão")
	assert.Empty(t, root.SelectElement("Ranking").SelectElements("Item"))
}

package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmaciel/vendas-api/internal/application/dto"
	"github.com/bmaciel/vendas-api/internal/application/usecase"
	"github.com/bmaciel/vendas-api/internal/domain/repository"
)

type fakePDFGenerator struct {
	lastReport *dto.MonthlyReportResponse
}

func (g *fakePDFGenerator) GenerateMonthlyReport(_ context.Context, report *dto.MonthlyReportResponse) ([]byte, error) {
	g.lastReport = report
	return []byte("%PDF-fake"), nil
}

func TestMonthlyReport_RankingECampeao(t *testing.T) {
	dia := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	saleRepo := &fakeSaleRepo{records: []repository.SaleRecord{
		record(dia, "Caneca", 2, 10, 4),
		record(dia, "Camiseta", 7, 40, 18),
		record(dia, "Caneca", 3, 10, 4),
	}}
	uc := usecase.NewReportUseCase(saleRepo, &fakePDFGenerator{}, testFees())

	out, err := uc.Monthly(context.Background(), dto.MonthlyReportRequest{Year: 2026, Month: 3}, dto.FeeQuery{})
	require.NoError(t, err)

	assert.Equal(t, "março 2026", out.MonthLabel)
	require.Len(t, out.Ranking, 2)
	assert.Equal(t, "Camiseta", out.Ranking[0].Product, "maior quantidade primeiro")
	assert.EqualValues(t, 7, out.Ranking[0].Qty)
	assert.Equal(t, "Caneca", out.Ranking[1].Product)
	assert.EqualValues(t, 5, out.Ranking[1].Qty, "as duas vendas do produto somam")

	require.NotNil(t, out.BestSeller)
	assert.Equal(t, "Camiseta", out.BestSeller.Product)
	assert.Equal(t, 1, out.BestSeller.Rank)
}

func TestMonthlyReport_IntervaloDoMes(t *testing.T) {
	saleRepo := &fakeSaleRepo{}
	uc := usecase.NewReportUseCase(saleRepo, &fakePDFGenerator{}, testFees())

	_, err := uc.Monthly(context.Background(), dto.MonthlyReportRequest{
		Year: 2026, Month: 2, Marketplace: "Shopee",
	}, dto.FeeQuery{})
	require.NoError(t, err)

	require.NotNil(t, saleRepo.lastFilter.Start)
	require.NotNil(t, saleRepo.lastFilter.End)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), *saleRepo.lastFilter.Start)
	assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), *saleRepo.lastFilter.End, "fevereiro de ano não bissexto")
	assert.Equal(t, "Shopee", saleRepo.lastFilter.Marketplace)
}

func TestMonthlyReport_MesSemVendas(t *testing.T) {
	uc := usecase.NewReportUseCase(&fakeSaleRepo{}, &fakePDFGenerator{}, testFees())

	out, err := uc.Monthly(context.Background(), dto.MonthlyReportRequest{Year: 2026, Month: 4}, dto.FeeQuery{})
	require.NoError(t, err, "mês vazio não é erro")

	assert.Nil(t, out.BestSeller)
	assert.Empty(t, out.Ranking)
	assert.Empty(t, out.Daily)
}

func TestMonthlyReport_EmpateDesempatadoPorFaturamento(t *testing.T) {
	dia := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	saleRepo := &fakeSaleRepo{records: []repository.SaleRecord{
		record(dia, "Caneca", 10, 10, 4),   // faturamento 100
		record(dia, "Camiseta", 10, 15, 6), // faturamento 150
	}}
	uc := usecase.NewReportUseCase(saleRepo, &fakePDFGenerator{}, testFees())

	out, err := uc.Monthly(context.Background(), dto.MonthlyReportRequest{Year: 2026, Month: 3}, dto.FeeQuery{})
	require.NoError(t, err)

	require.Len(t, out.Ranking, 2)
	assert.Equal(t, "Camiseta", out.Ranking[0].Product, "empate em quantidade resolve por faturamento")
	assert.True(t, out.Ranking[0].Revenue.Equal(decimal.NewFromFloat(150)))
}

func TestMonthlyPDF_DelegaAoGerador(t *testing.T) {
	dia := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	saleRepo := &fakeSaleRepo{records: []repository.SaleRecord{
		record(dia, "Caneca", 2, 10, 4),
	}}
	gen := &fakePDFGenerator{}
	uc := usecase.NewReportUseCase(saleRepo, gen, testFees())

	data, err := uc.MonthlyPDF(context.Background(), dto.MonthlyReportRequest{Year: 2026, Month: 3}, dto.FeeQuery{})
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-fake"), data)
	require.NotNil(t, gen.lastReport)
	assert.Equal(t, 2026, gen.lastReport.Year)
	assert.Equal(t, "Caneca", gen.lastReport.BestSeller.Product)
}

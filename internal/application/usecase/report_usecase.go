package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bmaciel/vendas-api/internal/application/dto"
	"github.com/bmaciel/vendas-api/internal/domain/finance"
	"github.com/bmaciel/vendas-api/internal/domain/repository"
	"github.com/bmaciel/vendas-api/pkg/brl"
)

// ReportPDFGenerator porto para a renderização do relatório mensal em PDF.
type ReportPDFGenerator interface {
	GenerateMonthlyReport(ctx context.Context, report *dto.MonthlyReportResponse) ([]byte, error)
}

// ReportUseCase relatório mensal: ranking de produtos, campeão de vendas e
// resumo diário do mês filtrado.
type ReportUseCase struct {
	saleRepo    repository.SaleRepository
	pdf         ReportPDFGenerator
	defaultFees finance.FeeParams
}

// NewReportUseCase constrói o caso de uso.
func NewReportUseCase(saleRepo repository.SaleRepository, pdf ReportPDFGenerator, defaultFees finance.FeeParams) *ReportUseCase {
	return &ReportUseCase{saleRepo: saleRepo, pdf: pdf, defaultFees: defaultFees}
}

// Monthly monta o relatório do mês. O campeão é o primeiro do ranking
// (quantidade decrescente, empate por faturamento); mês sem vendas devolve
// ranking vazio e BestSeller nil.
func (uc *ReportUseCase) Monthly(ctx context.Context, req dto.MonthlyReportRequest, feeQuery dto.FeeQuery) (*dto.MonthlyReportResponse, error) {
	fees, err := feeQuery.Resolve(uc.defaultFees)
	if err != nil {
		return nil, err
	}

	start := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1) // último dia do mês, inclusivo
	filter := repository.SaleFilter{
		Marketplace: req.Marketplace,
		Start:       &start,
		End:         &end,
	}
	records, err := uc.saleRepo.ListJoined(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := toLineItems(records)
	ranking := finance.RankProducts(items, fees)
	daily := finance.SummarizeByDay(items, fees)

	rows := make([]dto.RankingRow, 0, len(ranking))
	for i, r := range ranking {
		rows = append(rows, dto.RankingRow{
			Rank:    i + 1,
			Product: r.Product,
			Qty:     r.Qty,
			Revenue: r.Revenue,
			Profit:  r.Profit,
		})
	}
	var best *dto.RankingRow
	if len(rows) > 0 {
		best = &rows[0]
	}

	return &dto.MonthlyReportResponse{
		Year:        req.Year,
		Month:       req.Month,
		MonthLabel:  fmt.Sprintf("%s %d", brl.MonthName(req.Month), req.Year),
		Marketplace: req.Marketplace,
		BestSeller:  best,
		Ranking:     rows,
		Daily:       toDaySummaryRows(daily),
		Fees:        dto.NewFeesResponse(fees),
	}, nil
}

// MonthlyPDF gera a versão A4 do relatório do mês.
func (uc *ReportUseCase) MonthlyPDF(ctx context.Context, req dto.MonthlyReportRequest, feeQuery dto.FeeQuery) ([]byte, error) {
	report, err := uc.Monthly(ctx, req, feeQuery)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateMonthlyReport(ctx, report)
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bmaciel/vendas-api/internal/application/dto"
	"github.com/bmaciel/vendas-api/internal/domain"
	"github.com/bmaciel/vendas-api/internal/domain/finance"
	"github.com/bmaciel/vendas-api/internal/domain/repository"
	"github.com/bmaciel/vendas-api/pkg/brl"
)

// SummaryUseCase resumo diário e dashboard filtrado.
// Os agregados são recalculados em processo a cada chamada: as taxas vêm da
// requisição e não podem ser embutidas no SQL de antemão.
type SummaryUseCase struct {
	saleRepo    repository.SaleRepository
	defaultFees finance.FeeParams
}

// NewSummaryUseCase constrói o caso de uso.
func NewSummaryUseCase(saleRepo repository.SaleRepository, defaultFees finance.FeeParams) *SummaryUseCase {
	return &SummaryUseCase{saleRepo: saleRepo, defaultFees: defaultFees}
}

// Daily soma faturamento e lucro por dia sobre todas as vendas lançadas.
func (uc *SummaryUseCase) Daily(ctx context.Context, feeQuery dto.FeeQuery) (*dto.DailySummaryResponse, error) {
	fees, err := feeQuery.Resolve(uc.defaultFees)
	if err != nil {
		return nil, err
	}
	records, err := uc.saleRepo.ListJoined(ctx, repository.SaleFilter{})
	if err != nil {
		return nil, err
	}
	summary := finance.SummarizeByDay(toLineItems(records), fees)
	return &dto.DailySummaryResponse{
		Items: toDaySummaryRows(summary),
		Fees:  dto.NewFeesResponse(fees),
	}, nil
}

// Dashboard aplica os filtros (produto, marketplace, período) e devolve os
// KPIs do período mais a série diária. Seleção vazia devolve série vazia.
func (uc *SummaryUseCase) Dashboard(ctx context.Context, req dto.DashboardRequest, feeQuery dto.FeeQuery) (*dto.DashboardResponse, error) {
	fees, err := feeQuery.Resolve(uc.defaultFees)
	if err != nil {
		return nil, err
	}
	filter, err := buildFilter(req.Product, req.Marketplace, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	records, err := uc.saleRepo.ListJoined(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := toLineItems(records)
	totals := finance.Totals(items, fees)
	series := finance.SummarizeByDay(items, fees)

	return &dto.DashboardResponse{
		Revenue:      totals.Revenue,
		Profit:       totals.Profit,
		RevenueLabel: brl.Format(totals.Revenue),
		ProfitLabel:  brl.Format(totals.Profit),
		Series:       toDaySummaryRows(series),
		Fees:         dto.NewFeesResponse(fees),
	}, nil
}

// buildFilter monta o SaleFilter validando o formato das datas.
func buildFilter(product, marketplace, startStr, endStr string) (repository.SaleFilter, error) {
	filter := repository.SaleFilter{Product: product, Marketplace: marketplace}
	if startStr != "" {
		start, err := time.ParseInLocation(dayLayout, startStr, time.UTC)
		if err != nil {
			return repository.SaleFilter{}, fmt.Errorf("start_date inválido: %w", domain.ErrInvalidInput)
		}
		filter.Start = &start
	}
	if endStr != "" {
		end, err := time.ParseInLocation(dayLayout, endStr, time.UTC)
		if err != nil {
			return repository.SaleFilter{}, fmt.Errorf("end_date inválido: %w", domain.ErrInvalidInput)
		}
		filter.End = &end
	}
	if filter.Start != nil && filter.End != nil && filter.Start.After(*filter.End) {
		return repository.SaleFilter{}, fmt.Errorf("start_date posterior a end_date: %w", domain.ErrInvalidInput)
	}
	return filter, nil
}

func toDaySummaryRows(summary []finance.DaySummary) []dto.DaySummaryRow {
	rows := make([]dto.DaySummaryRow, 0, len(summary))
	for _, s := range summary {
		rows = append(rows, dto.DaySummaryRow{
			Day:     s.Day.Format(dayLayout),
			Revenue: s.Revenue,
			Profit:  s.Profit,
		})
	}
	return rows
}

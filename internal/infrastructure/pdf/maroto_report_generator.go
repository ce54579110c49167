// Package pdf implementa a versão A4 do relatório mensal de vendas.
//
// Layout da página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Relatório Mensal de Vendas  │  mês + marketplace   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESTAQUES: campeão de vendas / faturamento / lucro          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: # | Produto | Qtd | Faturamento | Lucro             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Dia | Faturamento | Lucro                           │
//	│  FOOTER: taxas aplicadas no cálculo                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/bmaciel/vendas-api/internal/application/dto"
	"github.com/bmaciel/vendas-api/internal/application/usecase"
	"github.com/bmaciel/vendas-api/pkg/brl"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 102, Blue: 68}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa usecase.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator constrói o gerador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateMonthlyReport gera o PDF e devolve seus bytes.
func (g *MarotoReportGenerator) GenerateMonthlyReport(_ context.Context, report *dto.MonthlyReportResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório Mensal de Vendas", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(highlightsRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(rankingHeaderRow())
	for _, r := range rankingRows(report.Ranking) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(dailyHeaderRow())
	for _, r := range dailyRows(report.Daily) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(feesFooterRow(report.Fees))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (esq) e mês + marketplace (dir).
func headerRow(report *dto.MonthlyReportResponse) core.Row {
	scope := report.MonthLabel
	if report.Marketplace != "" {
		scope += " — " + report.Marketplace
	}
	return row.New(14).Add(
		col.New(7).Add(
			text.New("Relatório Mensal de Vendas", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(scope, props.Text{
				Size: 10, Top: 3, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

// highlightsRow: os três destaques do mês.
func highlightsRow(report *dto.MonthlyReportResponse) core.Row {
	best := "—"
	bestQty := "—"
	bestProfit := "—"
	if report.BestSeller != nil {
		best = report.BestSeller.Product
		bestQty = strconv.FormatInt(report.BestSeller.Qty, 10) + " un."
		bestProfit = brl.Format(report.BestSeller.Profit)
	}
	return row.New(16).Add(
		highlightCol("Produto mais vendido", best),
		highlightCol("Quantidade vendida", bestQty),
		highlightCol("Lucro do campeão", bestProfit),
	)
}

func highlightCol(label, value string) core.Col {
	return col.New(4).Add(
		text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1}),
		text.New(value, props.Text{Size: 11, Style: fontstyle.Bold, Top: 6}),
	)
}

func rankingHeaderRow() core.Row {
	return row.New(8).Add(
		headerCell("#", 1),
		headerCell("Produto", 5),
		headerCell("Qtd", 2),
		headerCell("Faturamento", 2),
		headerCell("Lucro", 2),
	)
}

func rankingRows(ranking []dto.RankingRow) []core.Row {
	rows := make([]core.Row, 0, len(ranking))
	for _, r := range ranking {
		rows = append(rows, row.New(6).Add(
			bodyCell(strconv.Itoa(r.Rank), 1),
			bodyCell(r.Product, 5),
			bodyCell(strconv.FormatInt(r.Qty, 10), 2),
			bodyCell(brl.Format(r.Revenue), 2),
			bodyCell(brl.Format(r.Profit), 2),
		))
	}
	return rows
}

func dailyHeaderRow() core.Row {
	return row.New(8).Add(
		headerCell("Dia", 4),
		headerCell("Faturamento", 4),
		headerCell("Lucro", 4),
	)
}

func dailyRows(daily []dto.DaySummaryRow) []core.Row {
	rows := make([]core.Row, 0, len(daily))
	for _, d := range daily {
		rows = append(rows, row.New(6).Add(
			bodyCell(d.Day, 4),
			bodyCell(brl.Format(d.Revenue), 4),
			bodyCell(brl.Format(d.Profit), 4),
		))
	}
	return rows
}

// feesFooterRow registra as taxas usadas: o relatório é recalculado a cada
// geração e dois PDFs do mesmo mês podem diferir se as taxas mudaram.
func feesFooterRow(fees dto.FeesResponse) core.Row {
	label := fmt.Sprintf(
		"Taxas aplicadas: variável %s · fixa %s/un. · imposto %s · antecipação %s",
		fees.Variable.String(), brl.Format(fees.FixedPerUnit),
		fees.Tax.String(), fees.Anticipation.String(),
	)
	return row.New(8).Add(
		col.New(12).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 2}),
		),
	)
}

func headerCell(label string, size int) core.Col {
	return col.New(size).Add(
		text.New(label, props.Text{Size: 8, Style: fontstyle.Bold, Color: colorPrimary, Top: 2}),
	)
}

func bodyCell(value string, size int) core.Col {
	return col.New(size).Add(
		text.New(value, props.Text{Size: 8, Top: 1}),
	)
}

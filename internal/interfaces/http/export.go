package http

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/gofiber/fiber/v2"

	"github.com/bmaciel/vendas-api/internal/application/dto"
)

// Escritores de exportação. CSV sai com ponto decimal e cabeçalho em
// português, pronto para abrir em planilha; XML segue a mesma árvore do
// relatório JSON.

func salesCSV(rows []dto.SaleRowResponse) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"data", "produto", "marketplace", "qtd", "preco_unit", "custo_unit", "receita", "taxas", "custo", "lucro"}); err != nil {
		return nil, err
	}
	for _, r := range rows {
		marketplace := ""
		if r.Marketplace != nil {
			marketplace = *r.Marketplace
		}
		record := []string{
			r.Day,
			r.Product,
			marketplace,
			strconv.FormatInt(r.Qty, 10),
			r.UnitPrice.StringFixed(2),
			r.UnitCost.StringFixed(2),
			r.GrossRevenue.StringFixed(2),
			r.TotalFees.StringFixed(2),
			r.TotalCost.StringFixed(2),
			r.Profit.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func dailySummaryCSV(rows []dto.DaySummaryRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"data", "faturamento", "lucro"}); err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.Write([]string{r.Day, r.Revenue.StringFixed(2), r.Profit.StringFixed(2)}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func rankingCSV(rows []dto.RankingRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"posicao", "produto", "qtd_total", "faturamento", "lucro"}); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.Rank),
			r.Product,
			strconv.FormatInt(r.Qty, 10),
			r.Revenue.StringFixed(2),
			r.Profit.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// monthlyReportXML serializa o relatório mensal completo em XML.
func monthlyReportXML(report *dto.MonthlyReportResponse) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("RelatorioMensal")
	root.CreateAttr("ano", strconv.Itoa(report.Year))
	root.CreateAttr("mes", strconv.Itoa(report.Month))
	if report.Marketplace != "" {
		root.CreateAttr("marketplace", report.Marketplace)
	}
	root.CreateElement("Titulo").SetText(report.MonthLabel)

	fees := root.CreateElement("Taxas")
	fees.CreateElement("Variavel").SetText(report.Fees.Variable.String())
	fees.CreateElement("FixaPorUnidade").SetText(report.Fees.FixedPerUnit.String())
	fees.CreateElement("Imposto").SetText(report.Fees.Tax.String())
	fees.CreateElement("Antecipacao").SetText(report.Fees.Anticipation.String())

	if report.BestSeller != nil {
		best := root.CreateElement("Campeao")
		best.CreateElement("Produto").SetText(report.BestSeller.Product)
		best.CreateElement("Quantidade").SetText(strconv.FormatInt(report.BestSeller.Qty, 10))
		best.CreateElement("Faturamento").SetText(report.BestSeller.Revenue.StringFixed(2))
	}

	ranking := root.CreateElement("Ranking")
	for _, r := range report.Ranking {
		item := ranking.CreateElement("Item")
		item.CreateAttr("posicao", strconv.Itoa(r.Rank))
		item.CreateElement("Produto").SetText(r.Product)
		item.CreateElement("Quantidade").SetText(strconv.FormatInt(r.Qty, 10))
		item.CreateElement("Faturamento").SetText(r.Revenue.StringFixed(2))
		item.CreateElement("Lucro").SetText(r.Profit.StringFixed(2))
	}

	daily := root.CreateElement("ResumoDiario")
	for _, d := range report.Daily {
		dia := daily.CreateElement("Dia")
		dia.CreateAttr("data", d.Day)
		dia.CreateElement("Faturamento").SetText(d.Revenue.StringFixed(2))
		dia.CreateElement("Lucro").SetText(d.Profit.StringFixed(2))
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

// attachment marca a resposta como download com o nome de arquivo dado.
func attachment(c *fiber.Ctx, contentType, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
}

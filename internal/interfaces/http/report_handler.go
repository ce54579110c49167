package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/bmaciel/vendas-api/internal/application/dto"
	"github.com/bmaciel/vendas-api/internal/application/usecase"
	"github.com/bmaciel/vendas-api/internal/domain"
)

// ReportHandler relatório mensal em JSON, CSV, XML ou PDF.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Monthly godoc
// @Summary      Relatório mensal de ranking e resumo diário
// @Description  Ranking por quantidade decrescente (empate por faturamento).
// @Description  ?format=csv exporta o ranking, ?format=xml o relatório
// @Description  completo e ?format=pdf a versão A4.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        year         query  int     true   "Ano (2000-2100)"
// @Param        month        query  int     true   "Mês (1-12)"
// @Param        marketplace  query  string  false  "Filtro de marketplace"
// @Param        format       query  string  false  "csv, xml ou pdf"
// @Success      200  {object}  dto.MonthlyReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/monthly [get]
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	var req dto.MonthlyReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetros inválidos"})
	}
	if err := dto.Validate(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	feeQuery, err := parseFeeQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetros de taxa inválidos"})
	}

	if c.Query("format") == "pdf" {
		data, err := h.uc.MonthlyPDF(c.UserContext(), req, feeQuery)
		if err != nil {
			return h.reportError(c, err)
		}
		attachment(c, "application/pdf", fmt.Sprintf("relatorio_%d_%02d.pdf", req.Year, req.Month))
		return c.Send(data)
	}

	out, err := h.uc.Monthly(c.UserContext(), req, feeQuery)
	if err != nil {
		return h.reportError(c, err)
	}
	switch c.Query("format") {
	case "csv":
		data, err := rankingCSV(out.Ranking)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		attachment(c, "text/csv; charset=utf-8", fmt.Sprintf("ranking_produtos_%d_%02d.csv", req.Year, req.Month))
		return c.Send(data)
	case "xml":
		data, err := monthlyReportXML(out)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		attachment(c, "application/xml; charset=utf-8", fmt.Sprintf("relatorio_%d_%02d.xml", req.Year, req.Month))
		return c.Send(data)
	default:
		return c.JSON(out)
	}
}

func (h *ReportHandler) reportError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

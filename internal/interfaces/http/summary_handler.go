package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bmaciel/vendas-api/internal/application/dto"
	"github.com/bmaciel/vendas-api/internal/application/usecase"
	"github.com/bmaciel/vendas-api/internal/domain"
)

// SummaryHandler resumo diário e dashboard filtrado.
type SummaryHandler struct {
	uc *usecase.SummaryUseCase
}

// NewSummaryHandler constrói o handler.
func NewSummaryHandler(uc *usecase.SummaryUseCase) *SummaryHandler {
	return &SummaryHandler{uc: uc}
}

// Daily godoc
// @Summary      Resumo diário de faturamento e lucro
// @Description  Soma por dia sobre todas as vendas lançadas. Com ?format=csv
// @Description  devolve o arquivo resumo_diario.csv em vez de JSON.
// @Tags         summary
// @Security     Bearer
// @Produce      json
// @Param        format  query  string  false  "csv para exportar"
// @Success      200  {object}  dto.DailySummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/summary/daily [get]
func (h *SummaryHandler) Daily(c *fiber.Ctx) error {
	feeQuery, err := parseFeeQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetros de taxa inválidos"})
	}
	out, err := h.uc.Daily(c.UserContext(), feeQuery)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "taxas não podem ser negativas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if c.Query("format") == "csv" {
		data, err := dailySummaryCSV(out.Items)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		attachment(c, "text/csv; charset=utf-8", "resumo_diario.csv")
		return c.Send(data)
	}
	return c.JSON(out)
}

// Dashboard godoc
// @Summary      KPIs e série diária do período filtrado
// @Description  Filtros: product, marketplace, start_date e end_date
// @Description  (YYYY-MM-DD, inclusivos). Seleção vazia devolve série vazia
// @Description  e KPIs zerados.
// @Tags         summary
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *SummaryHandler) Dashboard(c *fiber.Ctx) error {
	var req dto.DashboardRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtros inválidos"})
	}
	feeQuery, err := parseFeeQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetros de taxa inválidos"})
	}
	out, err := h.uc.Dashboard(c.UserContext(), req, feeQuery)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

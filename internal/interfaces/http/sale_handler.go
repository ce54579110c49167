package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bmaciel/vendas-api/internal/application/dto"
	"github.com/bmaciel/vendas-api/internal/application/usecase"
	"github.com/bmaciel/vendas-api/internal/domain"
)

// SaleHandler lançamento, listagem, exclusão e exportação de vendas.
type SaleHandler struct {
	uc *usecase.SaleUseCase
}

// NewSaleHandler constrói o handler.
func NewSaleHandler(uc *usecase.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Create godoc
// @Summary      Lançar venda
// @Description  Valida na mesma transação que o produto e o dia existem.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Dados da venda"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
		case errors.Is(err, domain.ErrDateNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "dia não cadastrado"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantidade >= 1 e preço >= 0"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar vendas com receita, taxas, custo e lucro
// @Description  Os quatro campos derivados são recalculados sob as taxas da
// @Description  consulta (fee_variable, fee_fixed, fee_tax, fee_anticipation).
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SaleListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	feeQuery, err := parseFeeQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetros de taxa inválidos"})
	}
	out, err := h.uc.List(c.UserContext(), feeQuery)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "taxas não podem ser negativas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar vendas em CSV
// @Tags         sales
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string  "CSV"
// @Router       /api/sales/export [get]
func (h *SaleHandler) Export(c *fiber.Ctx) error {
	feeQuery, err := parseFeeQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetros de taxa inválidos"})
	}
	out, err := h.uc.List(c.UserContext(), feeQuery)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "taxas não podem ser negativas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	data, err := salesCSV(out.Items)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	attachment(c, "text/csv; charset=utf-8", "vendas.csv")
	return c.Send(data)
}

// Delete godoc
// @Summary      Excluir venda
// @Tags         sales
// @Security     Bearer
// @Param        id  path  string  true  "ID da venda"
// @Success      204
// @Router       /api/sales/{id} [delete]
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseFeeQuery lê as sobrescritas opcionais de taxa da query string.
func parseFeeQuery(c *fiber.Ctx) (dto.FeeQuery, error) {
	var q dto.FeeQuery
	if err := c.QueryParser(&q); err != nil {
		return dto.FeeQuery{}, err
	}
	return q, nil
}

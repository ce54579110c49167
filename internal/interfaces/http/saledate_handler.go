package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bmaciel/vendas-api/internal/application/dto"
	"github.com/bmaciel/vendas-api/internal/application/usecase"
	"github.com/bmaciel/vendas-api/internal/domain"
)

// SaleDateHandler trata as requisições HTTP do cadastro de dias de venda.
type SaleDateHandler struct {
	uc *usecase.SaleDateUseCase
}

// NewSaleDateHandler constrói o handler.
func NewSaleDateHandler(uc *usecase.SaleDateUseCase) *SaleDateHandler {
	return &SaleDateHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar dia de venda
// @Tags         dates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleDateRequest  true  "Dia no formato YYYY-MM-DD"
// @Success      201   {object}  dto.SaleDateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/dates [post]
func (h *SaleDateHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleDateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data inválida, use YYYY-MM-DD"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "dia já cadastrado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar dias cadastrados
// @Tags         dates
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SaleDateListResponse
// @Router       /api/dates [get]
func (h *SaleDateHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir dia (vendas do dia caem em cascata)
// @Tags         dates
// @Security     Bearer
// @Param        id  path  string  true  "ID do dia"
// @Success      204
// @Router       /api/dates/{id} [delete]
func (h *SaleDateHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para cadastrar um produto.
type CreateProductRequest struct {
	Name string          `json:"name" validate:"required,min=1,max=200"`
	Cost decimal.Decimal `json:"cost"` // custo unitário, >= 0 (checado no use case)
}

// UpdateProductRequest entrada para atualizar um produto (campos opcionais).
type UpdateProductRequest struct {
	Name *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Cost *decimal.Decimal `json:"cost"`
}

// ProductResponse saída de um produto.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Cost      decimal.Decimal `json:"cost"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse lista de produtos em ordem alfabética.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest entrada para lançar uma venda.
// Várias linhas com a mesma data representam vários produtos vendidos no dia.
type CreateSaleRequest struct {
	DateID      string          `json:"date_id" validate:"required,uuid4"`
	ProductID   string          `json:"product_id" validate:"required,uuid4"`
	Qty         int64           `json:"qty" validate:"required,min=1"`
	UnitPrice   decimal.Decimal `json:"unit_price"` // >= 0 (checado no use case)
	Marketplace *string         `json:"marketplace" validate:"omitempty,max=100"`
}

// SaleResponse saída de uma venda recém-criada.
type SaleResponse struct {
	ID          string          `json:"id"`
	DateID      string          `json:"date_id"`
	ProductID   string          `json:"product_id"`
	Qty         int64           `json:"qty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Marketplace *string         `json:"marketplace,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// SaleRowResponse linha de venda resolvida com os quatro campos derivados,
// recalculados sob as taxas da consulta.
type SaleRowResponse struct {
	ID           string          `json:"id"`
	Day          string          `json:"day"` // YYYY-MM-DD
	Product      string          `json:"product"`
	Marketplace  *string         `json:"marketplace,omitempty"`
	Qty          int64           `json:"qty"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	GrossRevenue decimal.Decimal `json:"gross_revenue"`
	TotalFees    decimal.Decimal `json:"total_fees"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	Profit       decimal.Decimal `json:"profit"`
}

// SaleListResponse vendas lançadas, em ordem de dia e criação, com as taxas
// aplicadas no cálculo.
type SaleListResponse struct {
	Items []SaleRowResponse `json:"items"`
	Total int               `json:"total"`
	Fees  FeesResponse      `json:"fees"`
}

package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bmaciel/vendas-api/internal/domain/entity"
)

// SaleRecord linha de venda já resolvida com os joins de produto e data.
// É o formato que alimenta o motor de cálculo; a DB produz, o use case
// converte em finance.LineItem.
type SaleRecord struct {
	ID          string
	Day         time.Time
	Product     string
	UnitCost    decimal.Decimal // products.cost no momento da consulta
	Qty         int64
	UnitPrice   decimal.Decimal
	Marketplace *string
	CreatedAt   time.Time
}

// SaleFilter filtros opcionais de listagem. Campos zero não filtram.
type SaleFilter struct {
	Product     string     // nome exato do produto
	Marketplace string     // rótulo exato do marketplace
	Start       *time.Time // dia inicial, inclusivo
	End         *time.Time // dia final, inclusivo
}

// SaleRepository define o porto de persistência para Sale.
// ListJoined é leitura analítica: recebe ctx como as consultas de relatório.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	Delete(id string) error
	ListJoined(ctx context.Context, filter SaleFilter) ([]SaleRecord, error)
}

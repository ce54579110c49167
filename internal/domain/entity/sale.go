package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale é uma linha de venda: N unidades de um produto em um dia,
// opcionalmente associada a um marketplace.
type Sale struct {
	ID          string
	DateID      string
	ProductID   string
	Qty         int64
	UnitPrice   decimal.Decimal // preço de venda por unidade
	Marketplace *string         // opcional
	CreatedAt   time.Time
}

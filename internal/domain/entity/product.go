package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto vendido nos marketplaces.
// Cost é o preço de custo unitário (R$/un.); o preço de venda varia por venda.
type Product struct {
	ID        string
	Name      string          // nome único
	Cost      decimal.Decimal // custo unitário
	CreatedAt time.Time
	UpdatedAt time.Time
}

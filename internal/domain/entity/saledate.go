package entity

import "time"

// SaleDate é um dia de venda cadastrado. As vendas referenciam dias
// cadastrados previamente; várias linhas de venda podem apontar para o mesmo dia.
type SaleDate struct {
	ID        string
	Day       time.Time // somente a parte da data é significativa
	CreatedAt time.Time
}

package repository

import "github.com/bmaciel/vendas-api/internal/domain/entity"

// SaleDateRepository define o porto de persistência para SaleDate.
type SaleDateRepository interface {
	Create(date *entity.SaleDate) error
	GetByID(id string) (*entity.SaleDate, error)
	List() ([]*entity.SaleDate, error) // ordenado por dia
	Delete(id string) error
}

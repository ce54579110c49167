package repository

import "github.com/bmaciel/vendas-api/internal/domain/entity"

// ProductRepository define o porto de persistência para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	List() ([]*entity.Product, error) // ordenado por nome
	Update(product *entity.Product) error
	Delete(id string) error
}

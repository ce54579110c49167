package repository

import "github.com/bmaciel/vendas-api/internal/domain/entity"

// UserRepository define o porto de persistência para User.
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
}

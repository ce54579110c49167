package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/bmaciel/vendas-api/internal/application/dto"
	"github.com/bmaciel/vendas-api/internal/domain"
	"github.com/bmaciel/vendas-api/internal/domain/entity"
	"github.com/bmaciel/vendas-api/internal/domain/repository"
)

const dayLayout = "2006-01-02"

// SaleDateUseCase casos de uso para o cadastro de dias de venda.
type SaleDateUseCase struct {
	repo repository.SaleDateRepository
}

// NewSaleDateUseCase constrói o caso de uso.
func NewSaleDateUseCase(repo repository.SaleDateRepository) *SaleDateUseCase {
	return &SaleDateUseCase{repo: repo}
}

// Create cadastra um dia. Dia já cadastrado devolve ErrDuplicate.
func (uc *SaleDateUseCase) Create(in dto.CreateSaleDateRequest) (*dto.SaleDateResponse, error) {
	day, err := time.ParseInLocation(dayLayout, in.Day, time.UTC)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	date := &entity.SaleDate{
		ID:        uuid.New().String(),
		Day:       day,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(date); err != nil {
		return nil, err
	}
	return toSaleDateResponse(date), nil
}

// List lista os dias cadastrados em ordem cronológica.
func (uc *SaleDateUseCase) List() (*dto.SaleDateListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleDateResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toSaleDateResponse(d))
	}
	return &dto.SaleDateListResponse{Items: items, Total: len(items)}, nil
}

// Delete exclui um dia. As vendas do dia caem em cascata (FK).
func (uc *SaleDateUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toSaleDateResponse(d *entity.SaleDate) *dto.SaleDateResponse {
	if d == nil {
		return nil
	}
	return &dto.SaleDateResponse{
		ID:  d.ID,
		Day: d.Day.Format(dayLayout),
	}
}

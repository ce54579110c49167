package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bmaciel/vendas-api/internal/domain"
	"github.com/bmaciel/vendas-api/internal/domain/entity"
	"github.com/bmaciel/vendas-api/internal/domain/repository"
)

var _ repository.SaleDateRepository = (*SaleDateRepo)(nil)

// SaleDateRepo implementação do porto SaleDateRepository sobre PostgreSQL.
type SaleDateRepo struct {
	q Querier
}

// NewSaleDateRepository constrói o adaptador de persistência de dias de venda.
func NewSaleDateRepository(q Querier) *SaleDateRepo {
	return &SaleDateRepo{q: q}
}

// Create persiste um novo dia. Dia já cadastrado devolve ErrDuplicate.
func (r *SaleDateRepo) Create(date *entity.SaleDate) error {
	query := `
		INSERT INTO sale_dates (id, day, created_at)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, date.ID, date.Day, date.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale date: %w", err)
	}
	return nil
}

// GetByID obtém um dia por ID. Devolve nil, nil quando não existe.
func (r *SaleDateRepo) GetByID(id string) (*entity.SaleDate, error) {
	query := `SELECT id, day, created_at FROM sale_dates WHERE id = $1`
	var d entity.SaleDate
	err := r.q.QueryRow(context.Background(), query, id).Scan(&d.ID, &d.Day, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale date: %w", err)
	}
	return &d, nil
}

// List lista os dias em ordem cronológica.
func (r *SaleDateRepo) List() ([]*entity.SaleDate, error) {
	query := `SELECT id, day, created_at FROM sale_dates ORDER BY day`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list sale dates: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleDate
	for rows.Next() {
		var d entity.SaleDate
		if err := rows.Scan(&d.ID, &d.Day, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale date: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Delete exclui um dia; as vendas do dia caem em cascata.
func (r *SaleDateRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sale_dates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale date: %w", err)
	}
	return nil
}

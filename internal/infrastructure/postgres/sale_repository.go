package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/bmaciel/vendas-api/internal/domain"
	"github.com/bmaciel/vendas-api/internal/domain/entity"
	"github.com/bmaciel/vendas-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementação do porto SaleRepository sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository constrói o adaptador de persistência de vendas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste uma linha de venda. FK inválida (corrida entre a checagem
// do use case e o insert) devolve ErrNotFound.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, date_id, product_id, qty, unit_price, marketplace, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.DateID, sale.ProductID, sale.Qty, sale.UnitPrice,
		sale.Marketplace, sale.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// Delete exclui uma venda por ID.
func (r *SaleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

// ListJoined devolve as vendas com os joins de produto e dia, em ordem de dia
// e criação. Os filtros zero não entram no WHERE; nenhum campo derivado é
// calculado aqui — as taxas são por consulta e o cálculo é do motor.
func (r *SaleRepo) ListJoined(ctx context.Context, filter repository.SaleFilter) ([]repository.SaleRecord, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if filter.Product != "" {
		conds = append(conds, "p.name = "+arg(filter.Product))
	}
	if filter.Marketplace != "" {
		conds = append(conds, "s.marketplace = "+arg(filter.Marketplace))
	}
	if filter.Start != nil {
		conds = append(conds, "d.day >= "+arg(*filter.Start))
	}
	if filter.End != nil {
		conds = append(conds, "d.day <= "+arg(*filter.End))
	}

	query := `
		SELECT s.id, d.day, p.name, p.cost, s.qty, s.unit_price, s.marketplace, s.created_at
		FROM sales s
		JOIN sale_dates d ON d.id = s.date_id
		JOIN products   p ON p.id = s.product_id`
	if len(conds) > 0 {
		query += "\n\t\tWHERE " + strings.Join(conds, " AND ")
	}
	query += "\n\t\tORDER BY d.day, s.created_at"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var records []repository.SaleRecord
	for rows.Next() {
		var rec repository.SaleRecord
		if err := rows.Scan(
			&rec.ID, &rec.Day, &rec.Product, &rec.UnitCost,
			&rec.Qty, &rec.UnitPrice, &rec.Marketplace, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

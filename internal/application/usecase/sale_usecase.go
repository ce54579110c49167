package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bmaciel/vendas-api/internal/application/dto"
	"github.com/bmaciel/vendas-api/internal/domain"
	"github.com/bmaciel/vendas-api/internal/domain/entity"
	"github.com/bmaciel/vendas-api/internal/domain/finance"
	"github.com/bmaciel/vendas-api/internal/domain/repository"
)

// TxRunner executa um callback com repositórios atados à mesma transação.
// Usado no lançamento de venda para checar produto e dia e inserir a linha
// atomicamente.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		dateRepo repository.SaleDateRepository,
	) error) error
}

// SaleUseCase lançamento, listagem e exclusão de vendas.
// A listagem devolve as linhas com os quatro campos derivados recalculados
// sob as taxas da consulta (nunca persistidos).
type SaleUseCase struct {
	tx          TxRunner
	saleRepo    repository.SaleRepository
	defaultFees finance.FeeParams
}

// NewSaleUseCase constrói o caso de uso.
func NewSaleUseCase(tx TxRunner, saleRepo repository.SaleRepository, defaultFees finance.FeeParams) *SaleUseCase {
	return &SaleUseCase{tx: tx, saleRepo: saleRepo, defaultFees: defaultFees}
}

// Create lança uma venda após confirmar, na mesma transação, que o produto e
// o dia existem. Produto ou dia ausente devolve ErrProductNotFound /
// ErrDateNotFound.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.Qty < 1 || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	var marketplace *string
	if in.Marketplace != nil && *in.Marketplace != "" {
		marketplace = in.Marketplace
	}
	sale := &entity.Sale{
		ID:          uuid.New().String(),
		DateID:      in.DateID,
		ProductID:   in.ProductID,
		Qty:         in.Qty,
		UnitPrice:   in.UnitPrice,
		Marketplace: marketplace,
		CreatedAt:   time.Now(),
	}

	err := uc.tx.Run(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		dateRepo repository.SaleDateRepository,
	) error {
		product, err := productRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		date, err := dateRepo.GetByID(in.DateID)
		if err != nil {
			return err
		}
		if date == nil {
			return domain.ErrDateNotFound
		}
		return saleRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// List devolve as vendas lançadas (ordem de dia e criação) com receita,
// taxas, custo e lucro calculados sob as taxas resolvidas da consulta.
func (uc *SaleUseCase) List(ctx context.Context, feeQuery dto.FeeQuery) (*dto.SaleListResponse, error) {
	fees, err := feeQuery.Resolve(uc.defaultFees)
	if err != nil {
		return nil, err
	}
	records, err := uc.saleRepo.ListJoined(ctx, repository.SaleFilter{})
	if err != nil {
		return nil, err
	}

	results := finance.ComputeAll(toLineItems(records), fees)
	items := make([]dto.SaleRowResponse, 0, len(records))
	for i, rec := range records {
		items = append(items, dto.SaleRowResponse{
			ID:           rec.ID,
			Day:          rec.Day.Format(dayLayout),
			Product:      rec.Product,
			Marketplace:  rec.Marketplace,
			Qty:          rec.Qty,
			UnitPrice:    rec.UnitPrice,
			UnitCost:     rec.UnitCost,
			GrossRevenue: results[i].GrossRevenue,
			TotalFees:    results[i].TotalFees,
			TotalCost:    results[i].TotalCost,
			Profit:       results[i].Profit,
		})
	}
	return &dto.SaleListResponse{
		Items: items,
		Total: len(items),
		Fees:  dto.NewFeesResponse(fees),
	}, nil
}

// Delete exclui uma venda por ID.
func (uc *SaleUseCase) Delete(id string) error {
	return uc.saleRepo.Delete(id)
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:          s.ID,
		DateID:      s.DateID,
		ProductID:   s.ProductID,
		Qty:         s.Qty,
		UnitPrice:   s.UnitPrice,
		Marketplace: s.Marketplace,
		CreatedAt:   s.CreatedAt,
	}
}

// toLineItems converte as linhas do repositório na entrada do motor.
func toLineItems(records []repository.SaleRecord) []finance.LineItem {
	items := make([]finance.LineItem, len(records))
	for i, rec := range records {
		marketplace := ""
		if rec.Marketplace != nil {
			marketplace = *rec.Marketplace
		}
		items[i] = finance.LineItem{
			Day:         rec.Day,
			Product:     rec.Product,
			Marketplace: marketplace,
			Qty:         rec.Qty,
			UnitPrice:   rec.UnitPrice,
			UnitCost:    rec.UnitCost,
		}
	}
	return items
}

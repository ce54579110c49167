package usecase_test

import (
	"context"

	"github.com/bmaciel/vendas-api/internal/domain/entity"
	"github.com/bmaciel/vendas-api/internal/domain/repository"
)

// Fakes em memória dos portos de persistência.

type fakeProductRepo struct {
	products map[string]*entity.Product // por ID
	byName   map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{
		products: map[string]*entity.Product{},
		byName:   map[string]*entity.Product{},
	}
	for _, p := range products {
		r.products[p.ID] = p
		r.byName[p.Name] = p
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	r.byName[p.Name] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) { return r.products[id], nil }

func (r *fakeProductRepo) GetByName(name string) (*entity.Product, error) { return r.byName[name], nil }

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

type fakeDateRepo struct {
	dates map[string]*entity.SaleDate
}

func newFakeDateRepo(dates ...*entity.SaleDate) *fakeDateRepo {
	r := &fakeDateRepo{dates: map[string]*entity.SaleDate{}}
	for _, d := range dates {
		r.dates[d.ID] = d
	}
	return r
}

func (r *fakeDateRepo) Create(d *entity.SaleDate) error {
	r.dates[d.ID] = d
	return nil
}

func (r *fakeDateRepo) GetByID(id string) (*entity.SaleDate, error) { return r.dates[id], nil }

func (r *fakeDateRepo) List() ([]*entity.SaleDate, error) {
	out := make([]*entity.SaleDate, 0, len(r.dates))
	for _, d := range r.dates {
		out = append(out, d)
	}
	return out, nil
}

func (r *fakeDateRepo) Delete(id string) error {
	delete(r.dates, id)
	return nil
}

type fakeSaleRepo struct {
	records    []repository.SaleRecord
	created    []*entity.Sale
	deleted    []string
	lastFilter repository.SaleFilter
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error {
	r.created = append(r.created, s)
	return nil
}

func (r *fakeSaleRepo) Delete(id string) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeSaleRepo) ListJoined(_ context.Context, filter repository.SaleFilter) ([]repository.SaleRecord, error) {
	r.lastFilter = filter
	return r.records, nil
}

// fakeTxRunner executa o callback direto, sem transação real.
type fakeTxRunner struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	dateRepo    repository.SaleDateRepository
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	dateRepo repository.SaleDateRepository,
) error) error {
	return fn(r.saleRepo, r.productRepo, r.dateRepo)
}

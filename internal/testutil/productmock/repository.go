package productmock

import (
	"context"

	domain "creditnow-backend/internal/domain/product"
)

// Repo is a function-backed mock that satisfies product.Repository.
type Repo struct {
	CreateFn     func(ctx context.Context, p *domain.LoanProduct) error
	GetByIDFn    func(ctx context.Context, id uint64) (*domain.LoanProduct, error)
	GetByTitleFn func(ctx context.Context, title string) (*domain.LoanProduct, error)
	ListFn       func(ctx context.Context) ([]domain.LoanProduct, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.LoanProduct) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.LoanProduct, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByTitle(ctx context.Context, title string) (*domain.LoanProduct, error) {
	if m.GetByTitleFn != nil {
		return m.GetByTitleFn(ctx, title)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.LoanProduct, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

package repaymentmock

import (
	"context"

	domain "creditnow-backend/internal/domain/repayment"

	"gorm.io/gorm"
)

// Repo is a function-backed mock that satisfies repayment.Repository.
type Repo struct {
	BulkCreateFn       func(ctx context.Context, rs []domain.Repayment) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.Repayment, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.Repayment, error)
	SaveFn             func(ctx context.Context, r *domain.Repayment) error
	ListByLoanIDFn     func(ctx context.Context, loanID uint64) ([]domain.Repayment, error)
	CreatePaymentFn    func(ctx context.Context, p *domain.Payment) error
}

func (m *Repo) BulkCreate(ctx context.Context, rs []domain.Repayment) error {
	if m.BulkCreateFn != nil {
		return m.BulkCreateFn(ctx, rs)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Repayment, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Repayment, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) Save(ctx context.Context, r *domain.Repayment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

func (m *Repo) ListByLoanID(ctx context.Context, loanID uint64) ([]domain.Repayment, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, nil
}

func (m *Repo) CreatePayment(ctx context.Context, p *domain.Payment) error {
	if m.CreatePaymentFn != nil {
		return m.CreatePaymentFn(ctx, p)
	}
	return nil
}

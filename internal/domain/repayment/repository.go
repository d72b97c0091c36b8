package repayment

import "context"

type Repository interface {
	// BulkCreate persists a full schedule in one statement; used once
	// per approval.
	BulkCreate(ctx context.Context, rs []Repayment) error
	GetByID(ctx context.Context, id uint64) (*Repayment, error)
	// GetByIDForUpdate locks the installment row for the duration of
	// the surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Repayment, error)
	Save(ctx context.Context, r *Repayment) error
	// ListByLoanID returns installments ordered by due date with their
	// payments populated.
	ListByLoanID(ctx context.Context, loanID uint64) ([]Repayment, error)
	CreatePayment(ctx context.Context, p *Payment) error
}

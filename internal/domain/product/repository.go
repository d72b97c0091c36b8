package product

import "context"

type Repository interface {
	Create(ctx context.Context, p *LoanProduct) error
	GetByID(ctx context.Context, id uint64) (*LoanProduct, error)
	GetByTitle(ctx context.Context, title string) (*LoanProduct, error)
	List(ctx context.Context) ([]LoanProduct, error)
}

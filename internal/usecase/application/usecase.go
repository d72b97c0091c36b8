package application

import (
	"context"
	"fmt"

	domain "creditnow-backend/internal/domain/application"
	"creditnow-backend/internal/domain/product"
	"creditnow-backend/pkg/id"
)

type Usecase struct {
	apps     domain.Repository
	products product.Repository
}

func NewUsecase(apps domain.Repository, products product.Repository) *Usecase {
	return &Usecase{apps: apps, products: products}
}

type ApplyInput struct {
	UserID    string
	ProductID uint64 // either ProductID or LoanType must be set
	LoanType  string // symbolic catalog key, e.g. "home"
	Amount    float64
	Tenure    int // months; 0 means the product default
}

// Apply validates the requested amount against the product's bounds
// and persists a PENDING application with the rate frozen from the
// product. Repeated identical calls create separate applications; the
// intake is deliberately not deduplicated.
func (u *Usecase) Apply(ctx context.Context, in ApplyInput) (*domain.LoanApplication, error) {
	if in.UserID == "" || in.Amount <= 0 {
		return nil, domain.ErrInvalidInput
	}

	p, err := u.resolveProduct(ctx, in)
	if err != nil {
		return nil, err
	}

	if in.Amount < p.MinAmount {
		return nil, &domain.BoundsError{Bound: "minAmount", Limit: p.MinAmount, Amount: in.Amount}
	}
	if in.Amount > p.MaxAmount {
		return nil, &domain.BoundsError{Bound: "maxAmount", Limit: p.MaxAmount, Amount: in.Amount}
	}

	tenure := in.Tenure
	if tenure == 0 {
		tenure = p.TenureMonths
	}
	if tenure < 1 || tenure > p.TenureMonths {
		return nil, fmt.Errorf("%w: tenure must be between 1 and %d months", domain.ErrInvalidInput, p.TenureMonths)
	}

	a := &domain.LoanApplication{
		ApplicationID: id.NewID32(),
		UserID:        in.UserID,
		ProductID:     p.ID,
		Amount:        in.Amount,
		Tenure:        tenure,
		InterestRate:  p.InterestRate, // frozen at application time
		Status:        domain.StatusPending,
	}
	if err := u.apps.Create(ctx, a); err != nil {
		return nil, err
	}
	a.Product = p
	return a, nil
}

func (u *Usecase) resolveProduct(ctx context.Context, in ApplyInput) (*product.LoanProduct, error) {
	if in.ProductID != 0 {
		p, err := u.products.GetByID(ctx, in.ProductID)
		if err != nil {
			return nil, product.ErrNotFound
		}
		return p, nil
	}
	if in.LoanType == "" {
		return nil, domain.ErrInvalidInput
	}
	t, err := product.ResolveTemplate(in.LoanType)
	if err != nil {
		return nil, err
	}
	return u.products.GetByTitle(ctx, t.Title)
}

// MyLoans returns all of the user's applications with nested product
// and repayments.
func (u *Usecase) MyLoans(ctx context.Context, userID string) ([]domain.LoanApplication, error) {
	return u.apps.ListByUserID(ctx, userID)
}

// ListAll is the administrator's view over every application.
func (u *Usecase) ListAll(ctx context.Context) ([]domain.LoanApplication, error) {
	return u.apps.ListAll(ctx)
}

package product

import (
	"context"
	"errors"
	"fmt"

	domain "creditnow-backend/internal/domain/product"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

type CreateProductInput struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	InterestRate float64 `json:"interestRate"`
	MinAmount    float64 `json:"minAmount"`
	MaxAmount    float64 `json:"maxAmount"`
	TenureMonths int     `json:"tenureMonths"`
}

func (u *Usecase) Create(ctx context.Context, in CreateProductInput) (*domain.LoanProduct, error) {
	if in.Title == "" || in.InterestRate < 0 || in.MinAmount <= 0 || in.TenureMonths < 1 {
		return nil, domain.ErrInvalidDefinition
	}
	if in.MaxAmount < in.MinAmount {
		return nil, fmt.Errorf("%w: maxAmount must not be below minAmount", domain.ErrInvalidDefinition)
	}
	p := &domain.LoanProduct{
		Title:        in.Title,
		Description:  in.Description,
		InterestRate: in.InterestRate,
		MinAmount:    in.MinAmount,
		MaxAmount:    in.MaxAmount,
		TenureMonths: in.TenureMonths,
	}
	if err := u.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (u *Usecase) List(ctx context.Context) ([]domain.LoanProduct, error) {
	return u.repo.List(ctx)
}

// SeedTemplates inserts the fixed loan-type catalog, skipping entries
// whose title already exists. Called once at startup.
func (u *Usecase) SeedTemplates(ctx context.Context) error {
	for _, t := range domain.Templates() {
		if _, err := u.repo.GetByTitle(ctx, t.Title); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		p := &domain.LoanProduct{
			Title:        t.Title,
			Description:  t.Description,
			InterestRate: t.InterestRate,
			MinAmount:    t.MinAmount,
			MaxAmount:    t.MaxAmount,
			TenureMonths: t.TenureMonths,
		}
		if err := u.repo.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

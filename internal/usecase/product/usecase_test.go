package product

import (
	"context"
	"errors"
	"testing"

	domain "creditnow-backend/internal/domain/product"
	"creditnow-backend/internal/testutil/productmock"
)

func TestCreate_Success(t *testing.T) {
	var created *domain.LoanProduct
	uc := NewUsecase(&productmock.Repo{
		CreateFn: func(ctx context.Context, p *domain.LoanProduct) error {
			created = p
			return nil
		},
	})

	out, err := uc.Create(context.Background(), CreateProductInput{
		Title:        "Gold Loan",
		Description:  "Loan against pledged gold.",
		InterestRate: 9.0,
		MinAmount:    5_000,
		MaxAmount:    300_000,
		TenureMonths: 36,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created == nil || out.Title != "Gold Loan" {
		t.Fatalf("product not persisted: %+v", out)
	}
}

func TestCreate_InvalidDefinitions(t *testing.T) {
	uc := NewUsecase(&productmock.Repo{
		CreateFn: func(ctx context.Context, p *domain.LoanProduct) error {
			t.Fatalf("Create must not be called for invalid input")
			return nil
		},
	})

	bad := []CreateProductInput{
		{Title: "", InterestRate: 9, MinAmount: 1, MaxAmount: 2, TenureMonths: 12},
		{Title: "X", InterestRate: -1, MinAmount: 1, MaxAmount: 2, TenureMonths: 12},
		{Title: "X", InterestRate: 9, MinAmount: 0, MaxAmount: 2, TenureMonths: 12},
		{Title: "X", InterestRate: 9, MinAmount: 10, MaxAmount: 5, TenureMonths: 12},
		{Title: "X", InterestRate: 9, MinAmount: 1, MaxAmount: 2, TenureMonths: 0},
	}
	for i, in := range bad {
		if _, err := uc.Create(context.Background(), in); !errors.Is(err, domain.ErrInvalidDefinition) {
			t.Errorf("case %d: got %v, want ErrInvalidDefinition", i, err)
		}
	}
}

func TestSeedTemplates_SkipsExisting(t *testing.T) {
	existing := map[string]bool{"Personal Loan": true}
	var inserted []string
	uc := NewUsecase(&productmock.Repo{
		GetByTitleFn: func(ctx context.Context, title string) (*domain.LoanProduct, error) {
			if existing[title] {
				return &domain.LoanProduct{Title: title}, nil
			}
			return nil, domain.ErrNotFound
		},
		CreateFn: func(ctx context.Context, p *domain.LoanProduct) error {
			inserted = append(inserted, p.Title)
			return nil
		},
	})

	if err := uc.SeedTemplates(context.Background()); err != nil {
		t.Fatalf("SeedTemplates: %v", err)
	}
	if len(inserted) != 2 {
		t.Fatalf("expected 2 inserts (home, auto), got %v", inserted)
	}
	for _, title := range inserted {
		if title == "Personal Loan" {
			t.Fatalf("existing product re-seeded")
		}
	}
}

func TestResolveTemplate(t *testing.T) {
	for _, key := range []string{"home", "HOME", "Home Loan"} {
		tpl, err := domain.ResolveTemplate(key)
		if err != nil {
			t.Fatalf("ResolveTemplate(%q): %v", key, err)
		}
		if tpl.Title != "Home Loan" || tpl.InterestRate != 5.5 {
			t.Fatalf("unexpected template for %q: %+v", key, tpl)
		}
	}
	if _, err := domain.ResolveTemplate("yacht"); err != domain.ErrUnknownLoanType {
		t.Fatalf("got %v, want ErrUnknownLoanType", err)
	}
}

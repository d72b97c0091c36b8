package application

import "context"

type Repository interface {
	Create(ctx context.Context, a *LoanApplication) error
	GetByApplicationID(ctx context.Context, applicationID string) (*LoanApplication, error)
	// GetByApplicationIDForUpdate locks the row for the duration of the
	// surrounding transaction (SELECT ... FOR UPDATE).
	GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*LoanApplication, error)
	Save(ctx context.Context, a *LoanApplication) error
	// ListByUserID returns the user's applications with product and
	// repayments populated, newest first.
	ListByUserID(ctx context.Context, userID string) ([]LoanApplication, error)
	ListAll(ctx context.Context) ([]LoanApplication, error)
}

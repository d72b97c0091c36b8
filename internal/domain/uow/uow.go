package uow

import (
	"context"

	"creditnow-backend/internal/domain/application"
	"creditnow-backend/internal/domain/audit"
	"creditnow-backend/internal/domain/document"
	"creditnow-backend/internal/domain/repayment"
)

// Repos bundles the repositories bound to one storage transaction.
type Repos struct {
	Applications application.Repository
	Repayments   repayment.Repository
	Audit        audit.Repository
	Documents    document.Repository
}

type UnitOfWork interface {
	// WithinTx runs fn inside a single transaction; any error from fn
	// rolls back every write made through r.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinApplicationTx locks the application row first, then passes
	// it in. Status transitions use it to serialize concurrent
	// approvals of the same application.
	WithinApplicationTx(ctx context.Context, applicationID string, fn func(r Repos, a *application.LoanApplication) error) error
}

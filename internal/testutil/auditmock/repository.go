package auditmock

import (
	"context"

	domain "creditnow-backend/internal/domain/audit"
)

// Repo is a function-backed mock that satisfies audit.Repository.
type Repo struct {
	CreateFn     func(ctx context.Context, a *domain.AdminAction) error
	ListRecentFn func(ctx context.Context, limit int) ([]domain.AdminAction, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.AdminAction) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) ListRecent(ctx context.Context, limit int) ([]domain.AdminAction, error) {
	if m.ListRecentFn != nil {
		return m.ListRecentFn(ctx, limit)
	}
	return nil, nil
}

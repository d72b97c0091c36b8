package audit

import "context"

type Repository interface {
	Create(ctx context.Context, a *AdminAction) error
	// ListRecent serves external reporting only.
	ListRecent(ctx context.Context, limit int) ([]AdminAction, error)
}

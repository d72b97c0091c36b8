package documentmock

import (
	"context"

	domain "creditnow-backend/internal/domain/document"

	"gorm.io/gorm"
)

// Repo is a function-backed mock that satisfies document.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, d *domain.UserDocument) error
	GetByIDFn      func(ctx context.Context, id uint64) (*domain.UserDocument, error)
	SaveFn         func(ctx context.Context, d *domain.UserDocument) error
	ListByUserIDFn func(ctx context.Context, userID string) ([]domain.UserDocument, error)
	ListPendingFn  func(ctx context.Context) ([]domain.UserDocument, error)
}

func (m *Repo) Create(ctx context.Context, d *domain.UserDocument) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.UserDocument, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) Save(ctx context.Context, d *domain.UserDocument) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, d)
	}
	return nil
}

func (m *Repo) ListByUserID(ctx context.Context, userID string) ([]domain.UserDocument, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}
	return nil, nil
}

func (m *Repo) ListPending(ctx context.Context) ([]domain.UserDocument, error) {
	if m.ListPendingFn != nil {
		return m.ListPendingFn(ctx)
	}
	return nil, nil
}

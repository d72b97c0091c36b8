package uowmock

import (
	"context"

	"creditnow-backend/internal/domain/application"
	"creditnow-backend/internal/domain/uow"

	"gorm.io/gorm"
)

// UoW routes transactional callbacks straight to a fixed set of repos,
// with no real transaction semantics. App is handed to
// WithinApplicationTx callbacks; a nil App simulates a missing row.
type UoW struct {
	Repos uow.Repos
	App   *application.LoanApplication
	Err   error // returned before fn runs, to simulate tx open failure
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.Err != nil {
		return m.Err
	}
	return fn(m.Repos)
}

func (m *UoW) WithinApplicationTx(ctx context.Context, applicationID string, fn func(r uow.Repos, a *application.LoanApplication) error) error {
	if m.Err != nil {
		return m.Err
	}
	if m.App == nil || m.App.ApplicationID != applicationID {
		return gorm.ErrRecordNotFound
	}
	return fn(m.Repos, m.App)
}

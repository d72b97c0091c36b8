package repayment

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainApp "creditnow-backend/internal/domain/application"
	domain "creditnow-backend/internal/domain/repayment"
	"creditnow-backend/internal/domain/uow"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Usecase struct {
	apps domainApp.Repository
	reps domain.Repository
	uow  uow.UnitOfWork
	now  func() time.Time
}

func NewUsecase(apps domainApp.Repository, reps domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{apps: apps, reps: reps, uow: tx, now: func() time.Time { return time.Now().UTC() }}
}

type PayInput struct {
	RepaymentID uint64
	Amount      float64
	Method      string // card / UPI / net-banking, free-form
}

// Pay appends an immutable Payment row against one installment and
// folds the amount into the installment's running total, all in one
// transaction. The installment flips to PAID (and paidAt is set) on
// the payment that carries the total past amountDue; an excess beyond
// amountDue is accepted as-is, there is no refund or carry-forward.
func (u *Usecase) Pay(ctx context.Context, in PayInput) (*domain.Payment, error) {
	if in.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	var out *domain.Payment
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		rep, err := r.Repayments.GetByIDForUpdate(ctx, in.RepaymentID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		if err != nil {
			return err
		}

		p := &domain.Payment{
			RepaymentID:   rep.ID,
			Amount:        in.Amount,
			Method:        in.Method,
			Status:        "success",
			TransactionID: fmt.Sprintf("TXN-%s", uuid.NewString()),
		}
		if err := r.Repayments.CreatePayment(ctx, p); err != nil {
			return err
		}

		// Decimal accumulation keeps the running total and the PAID
		// threshold comparison free of float drift.
		paid := decimal.NewFromFloat(rep.AmountPaid).Add(decimal.NewFromFloat(in.Amount)).Round(2)
		rep.AmountPaid = paid.InexactFloat64()
		if paid.GreaterThanOrEqual(decimal.NewFromFloat(rep.AmountDue)) {
			rep.PaymentStatus = domain.StatusPaid
			ts := u.now()
			rep.PaidAt = &ts
		}
		if err := r.Repayments.Save(ctx, rep); err != nil {
			return err
		}

		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Schedule lists a loan's installments with their payments, ordered
// by due date. Only the owner of the parent application may read it.
func (u *Usecase) Schedule(ctx context.Context, applicationID, userID string) ([]domain.Repayment, error) {
	a, err := u.apps.GetByApplicationID(ctx, applicationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainApp.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if a.UserID != userID {
		return nil, domain.ErrAccessDenied
	}
	return u.reps.ListByLoanID(ctx, a.ID)
}

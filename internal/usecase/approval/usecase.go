package approval

import (
	"context"
	"fmt"
	"time"

	domainApp "creditnow-backend/internal/domain/application"
	"creditnow-backend/internal/domain/audit"
	"creditnow-backend/internal/domain/repayment"
	"creditnow-backend/internal/domain/uow"
	"creditnow-backend/pkg/emi"
)

type Usecase struct {
	uow uow.UnitOfWork
	now func() time.Time
}

func NewUsecase(tx uow.UnitOfWork) *Usecase {
	return &Usecase{uow: tx, now: func() time.Time { return time.Now().UTC() }}
}

type TransitionInput struct {
	ApplicationID string
	Target        domainApp.Status // APPROVED or REJECTED
	AdminID       string
}

// Transition moves a PENDING application to a terminal status. On
// approval it fans out the full repayment schedule (one installment
// per tenure month, due dates one calendar month apart starting one
// month after the approval instant) and in every case appends an
// AdminAction record. Status update, schedule and audit row commit or
// roll back as one transaction, so a reader can never observe an
// APPROVED application without its installments.
//
// An application already in a terminal state is rejected with
// ErrInvalidTransition rather than regenerating a second schedule.
func (u *Usecase) Transition(ctx context.Context, in TransitionInput) (*domainApp.LoanApplication, error) {
	if in.Target != domainApp.StatusApproved && in.Target != domainApp.StatusRejected {
		return nil, fmt.Errorf("%w: status must be APPROVED or REJECTED", domainApp.ErrInvalidInput)
	}

	var out *domainApp.LoanApplication
	err := u.uow.WithinApplicationTx(ctx, in.ApplicationID, func(r uow.Repos, a *domainApp.LoanApplication) error {
		if a.Status.Terminal() {
			return domainApp.ErrInvalidTransition
		}

		a.Status = in.Target
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}

		action := audit.ActionReject
		if in.Target == domainApp.StatusApproved {
			action = audit.ActionApprove
			if err := u.generateSchedule(ctx, r, a); err != nil {
				return err
			}
		}

		loanID := a.ID
		act := &audit.AdminAction{
			AdminID: in.AdminID,
			LoanID:  &loanID,
			Action:  action,
			Note:    fmt.Sprintf("Loan %s by admin", a.Status),
		}
		if err := r.Audit.Create(ctx, act); err != nil {
			// A lost audit record must fail the whole transition.
			return err
		}

		out = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) generateSchedule(ctx context.Context, r uow.Repos, a *domainApp.LoanApplication) error {
	q, err := emi.Calculate(a.Amount, a.Tenure, a.InterestRate)
	if err != nil {
		return err
	}

	approvedAt := u.now()
	rows := make([]repayment.Repayment, a.Tenure)
	for i := range rows {
		rows[i] = repayment.Repayment{
			LoanID:        a.ID,
			DueDate:       approvedAt.AddDate(0, i+1, 0),
			AmountDue:     q.MonthlyPayment,
			AmountPaid:    0,
			PaymentStatus: repayment.StatusPending,
		}
	}
	return r.Repayments.BulkCreate(ctx, rows)
}

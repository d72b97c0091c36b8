package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	repayDomain "creditnow-backend/internal/domain/repayment"
	"creditnow-backend/pkg/id"

	"gorm.io/gorm"
)

func TestRepaymentBulkCreateAndList(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepaymentRepository(db)
	ctx := context.Background()

	p := seedProduct(t, db)
	a := seedApplication(t, db, id.NewID32(), id.NewID32(), p.ID)

	base := time.Now().UTC()
	rows := make([]repayDomain.Repayment, 12)
	for i := range rows {
		rows[i] = repayDomain.Repayment{
			LoanID:        a.ID,
			DueDate:       base.AddDate(0, i+1, 0),
			AmountDue:     4395.79,
			PaymentStatus: repayDomain.StatusPending,
		}
	}
	if err := repo.BulkCreate(ctx, rows); err != nil {
		t.Fatalf("BulkCreate: %v", err)
	}

	got, err := repo.ListByLoanID(ctx, a.ID)
	if err != nil {
		t.Fatalf("ListByLoanID: %v", err)
	}
	if len(got) != 12 {
		t.Fatalf("expected 12 installments, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if !got[i-1].DueDate.Before(got[i].DueDate) {
			t.Fatalf("due dates not strictly increasing at %d", i)
		}
	}
}

func TestRepaymentBulkCreate_Empty(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepaymentRepository(db)
	if err := repo.BulkCreate(context.Background(), nil); err != nil {
		t.Fatalf("BulkCreate(nil): %v", err)
	}
}

func TestRepaymentSaveAndPayments(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepaymentRepository(db)
	ctx := context.Background()

	p := seedProduct(t, db)
	a := seedApplication(t, db, id.NewID32(), id.NewID32(), p.ID)

	rep := repayDomain.Repayment{
		LoanID:        a.ID,
		DueDate:       time.Now().UTC().AddDate(0, 1, 0),
		AmountDue:     100,
		PaymentStatus: repayDomain.StatusPending,
	}
	if err := repo.BulkCreate(ctx, []repayDomain.Repayment{rep}); err != nil {
		t.Fatalf("BulkCreate: %v", err)
	}
	list, err := repo.ListByLoanID(ctx, a.ID)
	if err != nil || len(list) != 1 {
		t.Fatalf("ListByLoanID: %v len=%d", err, len(list))
	}
	got := list[0]

	pay := &repayDomain.Payment{
		RepaymentID:   got.ID,
		Amount:        40,
		Method:        "UPI",
		Status:        "success",
		TransactionID: "TXN-" + id.NewID32(),
	}
	if err := repo.CreatePayment(ctx, pay); err != nil {
		t.Fatalf("CreatePayment: %v", err)
	}

	got.AmountPaid = 40
	if err := repo.Save(ctx, &got); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, err := repo.GetByID(ctx, got.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if reloaded.AmountPaid != 40 {
		t.Fatalf("amountPaid = %v, want 40", reloaded.AmountPaid)
	}

	list, err = repo.ListByLoanID(ctx, a.ID)
	if err != nil {
		t.Fatalf("ListByLoanID: %v", err)
	}
	if len(list[0].Payments) != 1 || list[0].Payments[0].Method != "UPI" {
		t.Fatalf("payments not preloaded: %+v", list[0].Payments)
	}
}

func TestRepaymentGetByID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepaymentRepository(db)
	_, err := repo.GetByID(context.Background(), 424242)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

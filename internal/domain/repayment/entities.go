package repayment

import (
	"errors"
	"time"
)

type PaymentStatus string

const (
	StatusPending PaymentStatus = "PENDING"
	StatusPaid    PaymentStatus = "PAID"
)

var (
	ErrNotFound      = errors.New("repayment not found")
	ErrAccessDenied  = errors.New("access denied")
	ErrInvalidAmount = errors.New("payment amount must be greater than zero")
)

// Repayment is one scheduled installment of an approved loan.
// AmountPaid is a running total fed by Payment rows; PaymentStatus
// flips to PAID once AmountPaid covers AmountDue.
type Repayment struct {
	ID            uint64        `gorm:"primaryKey;column:id" json:"id"`
	LoanID        uint64        `gorm:"index:idx_repayments_loan" json:"loanId"`
	DueDate       time.Time     `json:"dueDate"`
	AmountDue     float64       `gorm:"type:decimal(18,2)" json:"amountDue"`
	AmountPaid    float64       `gorm:"type:decimal(18,2);default:0" json:"amountPaid"`
	PaymentStatus PaymentStatus `gorm:"size:16;default:'PENDING'" json:"paymentStatus"`
	PaidAt        *time.Time    `json:"paidAt,omitempty"`

	Payments []Payment `gorm:"foreignKey:RepaymentID" json:"payments,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Repayment) TableName() string { return "loan_repayments" }

// Payment is an immutable, append-only record of money received
// against one installment.
type Payment struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"id"`
	RepaymentID   uint64    `gorm:"index:idx_payments_repayment" json:"repaymentId"`
	Amount        float64   `gorm:"type:decimal(18,2)" json:"amount"`
	Method        string    `gorm:"size:32" json:"method"`
	Status        string    `gorm:"size:16" json:"status"`
	TransactionID string    `gorm:"size:64;uniqueIndex:ux_payments_txn" json:"transactionId"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Payment) TableName() string { return "payments" }

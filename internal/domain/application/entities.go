package application

import (
	"errors"
	"fmt"
	"time"

	"creditnow-backend/internal/domain/product"
	"creditnow-backend/internal/domain/repayment"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Terminal reports whether no further transition is legal from s.
// PENDING -> {APPROVED, REJECTED} is the only edge in the machine.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

var (
	ErrNotFound          = errors.New("loan application not found")
	ErrInvalidInput      = errors.New("invalid loan application input")
	ErrInvalidTransition = errors.New("loan application is already in a terminal state")
)

// BoundsError reports a requested amount outside the product's
// min/max window, naming the violated bound.
type BoundsError struct {
	Bound  string // "minAmount" or "maxAmount"
	Limit  float64
	Amount float64
}

func (e *BoundsError) Error() string {
	if e.Bound == "minAmount" {
		return fmt.Sprintf("amount %.2f is below the product minimum of %.2f", e.Amount, e.Limit)
	}
	return fmt.Sprintf("amount %.2f exceeds the product maximum of %.2f", e.Amount, e.Limit)
}

// LoanApplication is a user's request for a loan against a product.
// InterestRate is copied from the product at application time and
// never re-read; approved rates stay stable even if the product
// changes later.
type LoanApplication struct {
	ID            uint64  `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID string  `gorm:"size:32;uniqueIndex:ux_applications_app_id" json:"applicationId"`
	UserID        string  `gorm:"size:32;index:idx_applications_user" json:"userId"`
	ProductID     uint64  `gorm:"index" json:"productId"`
	Amount        float64 `gorm:"type:decimal(18,2)" json:"amount"`
	Tenure        int     `json:"tenure"`
	InterestRate  float64 `gorm:"type:decimal(6,2)" json:"interestRate"`
	Status        Status  `gorm:"size:16;default:'PENDING'" json:"status"`

	Product    *product.LoanProduct  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Repayments []repayment.Repayment `gorm:"foreignKey:LoanID" json:"repayments,omitempty"`

	AppliedAt time.Time `gorm:"autoCreateTime" json:"appliedAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (LoanApplication) TableName() string { return "loan_applications" }

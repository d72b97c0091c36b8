package product

import (
	"errors"
	"time"
)

var (
	ErrNotFound          = errors.New("loan product not found")
	ErrUnknownLoanType   = errors.New("unknown loan type")
	ErrInvalidDefinition = errors.New("invalid product definition")
)

// LoanProduct is immutable reference data: an offering template with
// amount bounds, an annual rate in percent and a default tenure.
// Applications are bounds-checked against it at intake.
type LoanProduct struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"id"`
	Title        string    `gorm:"size:191;uniqueIndex:ux_products_title" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	InterestRate float64   `gorm:"type:decimal(6,2)" json:"interestRate"`
	MinAmount    float64   `gorm:"type:decimal(18,2)" json:"minAmount"`
	MaxAmount    float64   `gorm:"type:decimal(18,2)" json:"maxAmount"`
	TenureMonths int       `json:"tenureMonths"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (LoanProduct) TableName() string { return "loan_products" }

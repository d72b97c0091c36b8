package agent

import (
	"context"
	"fmt"
	"math"
	"time"

	"creditnow-backend/internal/domain/product"
	"creditnow-backend/pkg/emi"

	"github.com/google/uuid"
)

// Tool is a descriptor a chatbot harness registers alongside the
// matching Client method.
type Tool struct {
	Name        string
	Description string
}

// Catalog lists every tool the agent surface exposes.
var Catalog = []Tool{
	{"calculateLoan", "Calculates the monthly payment for a loan from amount, months, and annual interest rate."},
	{"checkEligibility", "Checks whether the authenticated user can apply for a loan."},
	{"getLoanTypes", "Returns the available loan types with their starting interest rates."},
	{"applyForLoan", "Submits a loan application for the authenticated user."},
	{"getCustomerLoans", "Fetches the authenticated user's loans with outstanding balance and EMI."},
	{"getEMIDetails", "Fetches the next pending installment date and amount for a loan."},
	{"generatePaymentLink", "Generates a short-lived payment link for the customer."},
}

type LoanQuote struct {
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPayment   float64 `json:"totalPayment"`
	TotalInterest  float64 `json:"totalInterest"`
}

// CalculateLoan is local arithmetic, no backend round-trip.
func (c *Client) CalculateLoan(amount float64, months int, rate float64) (LoanQuote, error) {
	q, err := emi.Calculate(amount, months, rate)
	if err != nil {
		return LoanQuote{}, err
	}
	return LoanQuote{
		MonthlyPayment: q.MonthlyPayment,
		TotalPayment:   q.TotalPayment,
		TotalInterest:  q.TotalInterest,
	}, nil
}

type LoanType struct {
	Type        string  `json:"type"`
	Rate        float64 `json:"rate"`
	Description string  `json:"description"`
}

// GetLoanTypes serves the fixed catalog; it never fails.
func (c *Client) GetLoanTypes() []LoanType {
	tpls := product.Templates()
	out := make([]LoanType, 0, len(tpls))
	for _, t := range tpls {
		out = append(out, LoanType{Type: t.Title, Rate: t.InterestRate, Description: t.Description})
	}
	return out
}

type Eligibility struct {
	IsEligible    bool    `json:"isEligible"`
	Reason        string  `json:"reason,omitempty"`
	MaxLoanAmount float64 `json:"maxLoanAmount,omitempty"`
}

// CheckEligibility requires a valid session; callers without one are
// told to log in rather than handed an HTTP error.
func (c *Client) CheckEligibility(ctx context.Context) Eligibility {
	if c.token == "" {
		return Eligibility{IsEligible: false, Reason: "You need to be logged in to check eligibility."}
	}
	var loans []loanRecord
	if err := c.do(ctx, "GET", "/api/loans/my-loans", nil, &loans); err != nil {
		return Eligibility{IsEligible: false, Reason: err.Error()}
	}
	return Eligibility{IsEligible: true, MaxLoanAmount: 50_000}
}

type ApplyResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	LoanID  string `json:"loanId,omitempty"`
}

// ApplyForLoan submits an application by loan-type key; the backend
// resolves the key against the product catalog.
func (c *Client) ApplyForLoan(ctx context.Context, loanType string, amount float64, months int) ApplyResult {
	req := map[string]any{"loanType": loanType, "amount": amount, "tenure": months}
	var created struct {
		ApplicationID string `json:"applicationId"`
	}
	if err := c.do(ctx, "POST", "/api/loans/apply", req, &created); err != nil {
		return ApplyResult{Success: false, Message: err.Error()}
	}
	return ApplyResult{
		Success: true,
		Message: "Loan application submitted successfully!",
		LoanID:  created.ApplicationID,
	}
}

// loanRecord is the slice of the my-loans payload the tools consume.
type loanRecord struct {
	ApplicationID string  `json:"applicationId"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	Product       *struct {
		Title string `json:"title"`
	} `json:"product"`
	Repayments []installment `json:"repayments"`
}

type installment struct {
	DueDate       time.Time `json:"dueDate"`
	AmountDue     float64   `json:"amountDue"`
	PaymentStatus string    `json:"paymentStatus"`
}

type CustomerLoan struct {
	LoanType          string  `json:"loan_type"`
	Principal         float64 `json:"principal"`
	OutstandingAmount float64 `json:"outstanding_amount"`
	EMIAmount         float64 `json:"emi_amount"`
	Status            string  `json:"status"`
}

// GetCustomerLoans summarizes each loan: outstanding is the sum of the
// still-pending installments, EMI is the fixed installment amount.
func (c *Client) GetCustomerLoans(ctx context.Context) ([]CustomerLoan, error) {
	var loans []loanRecord
	if err := c.do(ctx, "GET", "/api/loans/my-loans", nil, &loans); err != nil {
		return nil, err
	}

	out := make([]CustomerLoan, 0, len(loans))
	for _, l := range loans {
		cl := CustomerLoan{
			LoanType:          "Unknown Loan",
			Principal:         l.Amount,
			OutstandingAmount: l.Amount,
			Status:            l.Status,
		}
		if l.Product != nil {
			cl.LoanType = l.Product.Title
		}
		if len(l.Repayments) > 0 {
			var outstanding float64
			for _, r := range l.Repayments {
				if r.PaymentStatus == "PENDING" {
					outstanding += r.AmountDue
				}
			}
			cl.OutstandingAmount = round2(outstanding)
			cl.EMIAmount = l.Repayments[0].AmountDue
		}
		out = append(out, cl)
	}
	return out, nil
}

type EMIDetails struct {
	NextEMIDate string  `json:"next_emi_date"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
}

// GetEMIDetails returns the earliest still-pending installment of the
// loan's schedule.
func (c *Client) GetEMIDetails(ctx context.Context, loanID string) (EMIDetails, error) {
	var rows []installment
	if err := c.do(ctx, "GET", "/api/repayments/"+loanID, nil, &rows); err != nil {
		return EMIDetails{}, err
	}
	for _, r := range rows {
		if r.PaymentStatus == "PENDING" {
			return EMIDetails{
				NextEMIDate: r.DueDate.Format("2006-01-02"),
				Amount:      r.AmountDue,
				Status:      r.PaymentStatus,
			}, nil
		}
	}
	return EMIDetails{}, fmt.Errorf("loan %s has no pending installments", loanID)
}

type PaymentLink struct {
	PaymentURL string `json:"payment_url"`
	Expiry     string `json:"expiry"`
}

// GeneratePaymentLink mints a short-lived synthetic link; the token is
// random so links cannot be guessed.
func (c *Client) GeneratePaymentLink(customerID string, amount float64) PaymentLink {
	expiry := time.Now().UTC().Add(30 * time.Minute)
	return PaymentLink{
		PaymentURL: fmt.Sprintf("https://creditnow.example/pay/%s?amt=%.2f&t=%s", customerID, amount, uuid.NewString()),
		Expiry:     expiry.Format(time.RFC3339),
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

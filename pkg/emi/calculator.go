package emi

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPrincipal = errors.New("principal must be greater than zero")
	ErrInvalidTenure    = errors.New("tenure must be at least one month")
	ErrInvalidRate      = errors.New("annual rate must not be negative")
)

// Quote holds the three figures of an amortized loan, each rounded to
// 2 decimal places. MonthlyPayment is the canonical value stored as
// every installment's amount due; TotalPayment and TotalInterest are
// derived from it so the identities
//
//	TotalPayment  = MonthlyPayment * months
//	TotalInterest = TotalPayment - principal
//
// hold exactly at 2-decimal precision.
type Quote struct {
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPayment   float64 `json:"totalPayment"`
	TotalInterest  float64 `json:"totalInterest"`
}

// Calculate computes the equated monthly installment for a principal,
// a tenure in months and an annual nominal rate in percent
// (e.g. 10.5 for 10.5%).
//
// EMI formula: P * r * (1+r)^N / ((1+r)^N - 1), with the monthly rate
// r = annualRate/100/12. A zero rate degenerates the denominator to
// zero, so it is special-cased to a plain P/N split.
func Calculate(principal float64, months int, annualRate float64) (Quote, error) {
	if principal <= 0 {
		return Quote{}, ErrInvalidPrincipal
	}
	if months < 1 {
		return Quote{}, ErrInvalidTenure
	}
	if annualRate < 0 {
		return Quote{}, ErrInvalidRate
	}

	r := annualRate / 100 / 12

	var raw float64
	if r == 0 {
		raw = principal / float64(months)
	} else {
		pow := math.Pow(1+r, float64(months))
		raw = principal * r * pow / (pow - 1)
	}

	payment := decimal.NewFromFloat(raw).Round(2)
	total := payment.Mul(decimal.NewFromInt(int64(months)))
	interest := total.Sub(decimal.NewFromFloat(principal)).Round(2)

	return Quote{
		MonthlyPayment: payment.InexactFloat64(),
		TotalPayment:   total.InexactFloat64(),
		TotalInterest:  interest.InexactFloat64(),
	}, nil
}

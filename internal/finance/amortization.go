// Package finance contains the pure calculators behind the derived
// financial metrics: loan amortization, SIP growth projection, and the
// categorical financial-health score. Nothing in this package touches
// storage; callers pass plain domain values and decide what to persist.
package finance

import (
	"math"

	apperrors "arthika/internal/errors"
)

// PrepaymentResult describes the impact of a lump-sum prepayment on a
// fixed-EMI loan. It is a simulation output only; the stored loan is not
// modified.
type PrepaymentResult struct {
	CurrentOutstanding float64 `json:"currentOutstanding"`
	NewOutstanding     float64 `json:"newOutstanding"`
	PrepaymentAmount   float64 `json:"prepaymentAmount"`
	TenureReduction    int     `json:"tenureReduction"`
	InterestSaved      float64 `json:"interestSaved"`
	NewTenureMonths    int     `json:"newTenureMonths"`
}

// MonthlyRate converts an annual percentage rate to a monthly fraction.
func MonthlyRate(annualRate float64) float64 {
	return annualRate / 100 / 12
}

// RemainingTenure returns the number of monthly payments needed to fully
// amortize the outstanding balance at the given EMI under a standard
// reducing-balance model: ceil(ln(1 + B*r/E) / ln(1+r)).
//
// The formula requires emi > outstanding*r; below that the interest accrued
// each month exceeds the payment and the loan never amortizes, which is
// reported as LOAN_NOT_AMORTIZING rather than computed as infinity.
func RemainingTenure(outstanding, emi, annualRate float64) (int, error) {
	if outstanding < 0 || emi <= 0 || annualRate <= 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "outstanding must be non-negative and EMI and rate positive")
	}
	if outstanding == 0 {
		return 0, nil
	}

	r := MonthlyRate(annualRate)
	if emi <= outstanding*r {
		return 0, apperrors.ErrLoanNotAmortizing
	}

	months := math.Ceil(math.Log(1+outstanding*r/emi) / math.Log(1+r))
	if math.IsNaN(months) || months < 0 {
		return 0, apperrors.ErrLoanNotAmortizing
	}
	return int(months), nil
}

// PrepaymentImpact simulates paying a lump sum against the outstanding
// balance. Interest saved is the EMI payments no longer due, net of the
// principal the prepayment itself retired.
func PrepaymentImpact(outstanding, emi, annualRate, prepayment float64) (*PrepaymentResult, error) {
	if prepayment <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "prepayment amount must be positive")
	}

	currentTenure, err := RemainingTenure(outstanding, emi, annualRate)
	if err != nil {
		return nil, err
	}

	newOutstanding := math.Max(0, outstanding-prepayment)

	newTenure := 0
	if newOutstanding > 0 {
		newTenure, err = RemainingTenure(newOutstanding, emi, annualRate)
		if err != nil {
			return nil, err
		}
	}

	tenureReduction := currentTenure - newTenure
	interestSaved := math.Max(0, float64(tenureReduction)*emi-(outstanding-newOutstanding))

	return &PrepaymentResult{
		CurrentOutstanding: outstanding,
		NewOutstanding:     newOutstanding,
		PrepaymentAmount:   prepayment,
		TenureReduction:    tenureReduction,
		InterestSaved:      interestSaved,
		NewTenureMonths:    newTenure,
	}, nil
}

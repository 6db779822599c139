package finance

import (
	"math"

	apperrors "arthika/internal/errors"
)

// DefaultProjectionYears is the horizon used when the caller does not ask
// for a specific one.
const DefaultProjectionYears = 10

// Holding is one SIP's inputs to a portfolio projection.
type Holding struct {
	CurrentValue  float64
	MonthlyAmount float64
	AnnualRate    float64 // expected return, annual %
}

// PortfolioProjection aggregates compound-growth projections across a set
// of holdings. Monetary outputs are rounded to whole currency units.
type PortfolioProjection struct {
	CurrentPortfolioValue float64 `json:"currentPortfolioValue"`
	MonthlyInvestment     float64 `json:"monthlyInvestment"`
	ProjectedValue        float64 `json:"projectedValue"`
	TotalInvested         float64 `json:"totalInvested"`
	ExpectedGains         float64 `json:"expectedGains"`
	ProjectionYears       int     `json:"projectionYears"`
}

// FutureValue projects a single holding forward: the current value grows at
// compound monthly interest, and each monthly contribution earns from the
// end of its period (ordinary annuity). A zero rate degenerates to simple
// accumulation, monthlyAmount*months.
func FutureValue(currentValue, monthlyAmount, annualRate float64, months int) (float64, error) {
	if currentValue < 0 || monthlyAmount < 0 || annualRate < 0 || months < 0 {
		return 0, apperrors.ErrInvalidProjection
	}

	r := MonthlyRate(annualRate)
	n := float64(months)

	if r == 0 {
		return currentValue + monthlyAmount*n, nil
	}

	growth := math.Pow(1+r, n)
	fv := currentValue*growth + monthlyAmount*((growth-1)/r)
	if math.IsNaN(fv) || math.IsInf(fv, 0) {
		return 0, apperrors.ErrInvalidProjection
	}
	return fv, nil
}

// ProjectPortfolio sums per-holding projections over the given horizon.
// Expected gains are the projected value net of today's value and of the
// contributions that will be paid in over the horizon.
func ProjectPortfolio(holdings []Holding, years int) (*PortfolioProjection, error) {
	if years <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "projection years must be positive")
	}

	months := years * 12
	var totalCurrent, totalMonthly, projected float64

	for _, h := range holdings {
		fv, err := FutureValue(h.CurrentValue, h.MonthlyAmount, h.AnnualRate, months)
		if err != nil {
			return nil, err
		}
		totalCurrent += h.CurrentValue
		totalMonthly += h.MonthlyAmount
		projected += fv
	}

	totalInvested := totalMonthly * 12 * float64(years)
	gains := projected - totalCurrent - totalInvested

	return &PortfolioProjection{
		CurrentPortfolioValue: totalCurrent,
		MonthlyInvestment:     totalMonthly,
		ProjectedValue:        math.Round(projected),
		TotalInvested:         totalInvested,
		ExpectedGains:         math.Round(gains),
		ProjectionYears:       years,
	}, nil
}

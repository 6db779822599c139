package finance

// HealthScore is the categorical summary of financial well-being.
type HealthScore string

const (
	HealthExcellent HealthScore = "EXCELLENT"
	HealthGood      HealthScore = "GOOD"
	HealthFair      HealthScore = "FAIR"
	HealthPoor      HealthScore = "POOR"
)

// SavingsRate returns the income-normalized savings percentage. Zero income
// is a valid state and yields a zero rate.
func SavingsRate(income, fixedExpenses, variableExpenses float64) float64 {
	if income <= 0 {
		return 0
	}
	return (income - fixedExpenses - variableExpenses) / income * 100
}

// InvestmentRate returns investments as a percentage of income.
func InvestmentRate(income, investments float64) float64 {
	if income <= 0 {
		return 0
	}
	return investments / income * 100
}

// HealthPoints computes the raw 0-100 score from the three ratios. Each
// input contributes independently: savings rate up to 30 points,
// investment rate up to 30, emergency-fund coverage up to 40.
func HealthPoints(savingsRate, investmentRate, emergencyFundMonths float64) int {
	score := 0

	switch {
	case savingsRate >= 20:
		score += 30
	case savingsRate >= 15:
		score += 25
	case savingsRate >= 10:
		score += 20
	case savingsRate >= 5:
		score += 15
	case savingsRate >= 0:
		score += 10
	}

	switch {
	case investmentRate >= 20:
		score += 30
	case investmentRate >= 15:
		score += 25
	case investmentRate >= 10:
		score += 20
	case investmentRate >= 5:
		score += 15
	}

	switch {
	case emergencyFundMonths >= 6:
		score += 40
	case emergencyFundMonths >= 3:
		score += 30
	case emergencyFundMonths >= 1:
		score += 20
	case emergencyFundMonths > 0:
		score += 10
	}

	return score
}

// ScoreToCategory maps a raw score to its category band.
func ScoreToCategory(score int) HealthScore {
	switch {
	case score >= 80:
		return HealthExcellent
	case score >= 60:
		return HealthGood
	case score >= 40:
		return HealthFair
	default:
		return HealthPoor
	}
}

// CalculateHealthScore maps savings rate, investment rate, and the
// emergency fund (expressed against monthly income) to a category.
func CalculateHealthScore(savingsRate, investmentRate, emergencyFund, monthlyIncome float64) HealthScore {
	months := 0.0
	if monthlyIncome > 0 {
		months = emergencyFund / monthlyIncome
	}
	return ScoreToCategory(HealthPoints(savingsRate, investmentRate, months))
}

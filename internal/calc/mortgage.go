package calc

import "math"

// DefaultAmortizationCapFactor bounds the payoff simulation at factor×term
// months. Degenerate extra-payment inputs could otherwise keep the balance
// from converging; hitting the cap simply stops the simulation there.
const DefaultAmortizationCapFactor = 2

// LoanParameters describes one mortgage scenario. The input contract
// guarantees principal >= 1000, rate in [0.1,30], term in [1,50] years and
// non-negative extras.
type LoanParameters struct {
	Principal         float64 `json:"loanAmount"`
	AnnualRatePercent float64 `json:"interestRate"`
	TermYears         int     `json:"loanTerm"`
	ExtraMonthly      float64 `json:"extraMonthly"`
	ExtraYearly       float64 `json:"extraYearly"`
}

type AmortizationResult struct {
	MonthlyPayment   float64 `json:"monthlyPayment"`
	MonthsToPayoff   int     `json:"monthsToPayoff"`
	YearsToPayoff    float64 `json:"yearsToPayoff"`
	TotalInterest    float64 `json:"totalInterest"`
	BaselineInterest float64 `json:"baselineInterest"`
	InterestSaved    float64 `json:"interestSaved"`
	TotalSaved       float64 `json:"totalSaved"`
	MonthsSaved      int     `json:"monthsSaved"`
}

// MonthlyPayment is the closed-form annuity payment for a loan of principal
// at the given annual rate over months payments.
func MonthlyPayment(principal, annualRatePercent float64, months int) float64 {
	r := annualRatePercent / 100 / 12
	n := float64(months)
	return principal * r * math.Pow(1+r, n) / (math.Pow(1+r, n) - 1)
}

// Amortize runs the month-by-month payoff simulation with extra payments.
// ExtraMonthly is added every month; ExtraYearly lands on every 12th month.
// Interest saved is measured against the no-extra baseline of the same loan.
// capFactor bounds the loop at capFactor×term months; values < 1 fall back
// to the default.
func Amortize(p LoanParameters, capFactor int) AmortizationResult {
	if capFactor < 1 {
		capFactor = DefaultAmortizationCapFactor
	}
	r := p.AnnualRatePercent / 100 / 12
	n := p.TermYears * 12
	payment := MonthlyPayment(p.Principal, p.AnnualRatePercent, n)
	baselineInterest := payment*float64(n) - p.Principal

	balance := p.Principal
	totalInterest := 0.0
	months := 0
	maxMonths := n * capFactor

	for balance > 0 && months < maxMonths {
		months++
		interest := balance * r
		principalPayment := payment - interest + p.ExtraMonthly
		if months%12 == 0 {
			principalPayment += p.ExtraYearly
		}
		if principalPayment >= balance {
			// Final month: only the interest on what was left accrues.
			totalInterest += interest
			balance = 0
			break
		}
		totalInterest += interest
		balance -= principalPayment
	}

	saved := baselineInterest - totalInterest
	return AmortizationResult{
		MonthlyPayment:   Round2(payment),
		MonthsToPayoff:   months,
		YearsToPayoff:    Round2(float64(months) / 12),
		TotalInterest:    Round2(totalInterest),
		BaselineInterest: Round2(baselineInterest),
		InterestSaved:    Round2(saved),
		TotalSaved:       Round2(saved),
		MonthsSaved:      n - months,
	}
}

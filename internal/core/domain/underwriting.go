package domain

import "math"

// MarginRate is the share of the monthly salary an employee may commit
// to a single payroll loan.
const MarginRate = 0.35

// MinLoanAmount is the smallest principal that can be requested.
const MinLoanAmount = 100.0

// Installment counts offered on every simulation.
const (
	MinInstallments = 1
	MaxInstallments = 4
)

// salaryBand maps an upper salary bound to the minimum score required
// for approval. Bands are ascending on both columns; first match wins.
type salaryBand struct {
	SalaryLimit float64
	MinScore    int
}

var salaryBands = []salaryBand{
	{SalaryLimit: 2000, MinScore: 400},
	{SalaryLimit: 4000, MinScore: 500},
	{SalaryLimit: 8000, MinScore: 600},
	{SalaryLimit: 12000, MinScore: 700},
}

// topBandScore applies to salaries above the last band.
const topBandScore = 700

// RequiredScore returns the minimum credit score for the given salary.
// It doubles as the deterministic fallback when the external score
// service is unavailable.
func RequiredScore(salary float64) int {
	for _, band := range salaryBands {
		if salary <= band.SalaryLimit {
			return band.MinScore
		}
	}
	return topBandScore
}

// CreditMargin returns the maximum principal the employee may request.
func CreditMargin(salary float64) float64 {
	return salary * MarginRate
}

// InstallmentOption is one entry of a simulation breakdown.
type InstallmentOption struct {
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

// InstallmentOptions returns the 1..4 installment breakdown for the
// requested principal. Each per-installment value is rounded to two
// decimals, half up. The schedule generator intentionally does NOT use
// these rounded values: persisted installments carry the full-precision
// division (see LoanService.generateSchedule).
func InstallmentOptions(amount float64) []InstallmentOption {
	options := make([]InstallmentOption, 0, MaxInstallments)
	for i := MinInstallments; i <= MaxInstallments; i++ {
		options = append(options, InstallmentOption{
			Count: i,
			Value: Round2(amount / float64(i)),
		})
	}
	return options
}

// Round2 rounds a monetary value to 2 decimal places, half up.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

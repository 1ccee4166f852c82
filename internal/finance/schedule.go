package finance

import "math"

// Installment is one month of an amortization schedule.
type Installment struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Remaining float64 `json:"remaining"`
}

// AmortizationSchedule is a full repayment breakdown for display alongside
// the advanced calculator.
type AmortizationSchedule struct {
	MonthlyPayment float64       `json:"monthlyPayment"`
	TotalPayment   float64       `json:"totalPayment"`
	TotalInterest  float64       `json:"totalInterest"`
	Installments   []Installment `json:"installments"`
}

// Schedule builds the month-by-month annuity breakdown for a loan. Returns
// nil for degenerate input, mirroring the NaN sentinel of MonthlyPayment.
func Schedule(principal, annualRatePercent float64, years int) *AmortizationSchedule {
	payment := MonthlyPayment(principal, annualRatePercent, years)
	if math.IsNaN(payment) {
		return nil
	}

	r := annualRatePercent / monthsPerYear / 100
	n := years * monthsPerYear
	installments := make([]Installment, 0, n)
	remaining := principal
	for month := 1; month <= n; month++ {
		interest := remaining * r
		repaid := payment - interest
		remaining -= repaid
		if month == n {
			// Absorb the residual rounding drift into the final installment.
			repaid += remaining
			remaining = 0
		}
		installments = append(installments, Installment{
			Month:     month,
			Payment:   payment,
			Principal: repaid,
			Interest:  interest,
			Remaining: remaining,
		})
	}

	total := payment * float64(n)
	return &AmortizationSchedule{
		MonthlyPayment: payment,
		TotalPayment:   total,
		TotalInterest:  total - principal,
		Installments:   installments,
	}
}

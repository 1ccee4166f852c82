// Package finance holds the annuity math used by the eligibility engine.
// Rates are whole-number percentages (4.99 means 4.99%), amounts are AED and
// unrounded; rounding is a presentation concern.
package finance

import "math"

const monthsPerYear = 12

// MonthlyPayment computes the fixed monthly annuity payment for a loan.
// Returns NaN for degenerate input (non-positive principal, rate or term);
// callers must guard with math.IsNaN or IsFinite before using the result.
func MonthlyPayment(principal, annualRatePercent float64, years int) float64 {
	if principal <= 0 || annualRatePercent <= 0 || years <= 0 {
		return math.NaN()
	}
	r := annualRatePercent / monthsPerYear / 100
	n := float64(years * monthsPerYear)
	growth := math.Pow(1+r, n)
	return principal * r * growth / (growth - 1)
}

// MaxPrincipal computes the largest principal an available monthly payment
// can service, the inverse of MonthlyPayment. Same degenerate-input caveat.
func MaxPrincipal(monthlyPayment, annualRatePercent float64, years int) float64 {
	if annualRatePercent <= 0 || years <= 0 {
		return math.NaN()
	}
	r := annualRatePercent / monthsPerYear / 100
	n := float64(years * monthsPerYear)
	return monthlyPayment * (1 - math.Pow(1+r, -n)) / r
}

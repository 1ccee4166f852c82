package models

// OtherIncome groups the secondary monthly income streams. Bonus is annual
// and amortized to a monthly figure; everything else is already monthly.
type OtherIncome struct {
	Rental     float64 `json:"rental"`
	Bonus      float64 `json:"bonus"`
	Commission float64 `json:"commission"`
	Other      float64 `json:"other"`
}

// Income is the step-three income record. TotalIncome is derived and must be
// recomputed whenever any component changes; the session reducer owns that.
type Income struct {
	MonthlySalary float64     `json:"monthlySalary"`
	OtherIncome   OtherIncome `json:"otherIncome"`
	TotalIncome   float64     `json:"totalIncome"`
}

// TotalMonthly derives total monthly income from its components.
func (i Income) TotalMonthly() float64 {
	return i.MonthlySalary +
		i.OtherIncome.Bonus/12 +
		i.OtherIncome.Commission +
		i.OtherIncome.Rental +
		i.OtherIncome.Other
}

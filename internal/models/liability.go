package models

// CreditCardExposureRate converts an aggregate credit-card limit into an
// assumed monthly exposure, per UAE underwriting convention.
const CreditCardExposureRate = 0.05

// CreditCards records whether the applicant holds cards and their combined
// limit.
type CreditCards struct {
	Has        bool    `json:"has"`
	TotalLimit float64 `json:"totalLimit"`
}

// Liability is the step-four liability record. TotalLiability and DBR are
// derived and recomputed by the session reducer on every change.
type Liability struct {
	CreditCards         CreditCards `json:"creditCards"`
	PersonalLoanEMI     float64     `json:"personalLoanEMI"`
	AutoLoanEMI         float64     `json:"autoLoanEMI"`
	ExistingMortgageEMI float64     `json:"existingMortgageEMI"`
	StressRate          float64     `json:"stressRate"` // percentage points added to the market rate
	TotalLiability      float64     `json:"totalLiability"`
	DBR                 float64     `json:"dbr"`
}

// TotalMonthly derives the total monthly liability from the EMI components
// plus the credit-card exposure.
func (l Liability) TotalMonthly() float64 {
	total := l.PersonalLoanEMI + l.AutoLoanEMI + l.ExistingMortgageEMI
	if l.CreditCards.Has {
		total += l.CreditCards.TotalLimit * CreditCardExposureRate
	}
	return total
}

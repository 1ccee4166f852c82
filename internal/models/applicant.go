package models

// ResidencyStatus drives LTV ceilings and minimum-income checks.
type ResidencyStatus string

const (
	ResidencyUAENational ResidencyStatus = "UAE National"
	ResidencyUAEResident ResidencyStatus = "UAE Resident"
	ResidencyNonResident ResidencyStatus = "Non-resident"
)

// ApplicationType distinguishes single and joint applications.
type ApplicationType string

const (
	ApplicationSingle ApplicationType = "Single"
	ApplicationJoint  ApplicationType = "Joint"
)

// AboutMe holds the applicant's identity details from step one of the wizard.
type AboutMe struct {
	FirstName       string          `json:"firstName"`
	LastName        string          `json:"lastName"`
	Age             int             `json:"age"`
	ResidencyStatus ResidencyStatus `json:"residencyStatus"`
	ApplicationType ApplicationType `json:"applicationType"`
	Nationality     string          `json:"nationality"`
}

// MortgageType is the product family the applicant is asking for.
type MortgageType string

const (
	MortgageIslamic      MortgageType = "Islamic"
	MortgageConventional MortgageType = "Conventional"
)

// RatePreference selects which of a bank's rate structures prices the offer.
type RatePreference string

const (
	RateFixed    RatePreference = "Fixed"
	RateVariable RatePreference = "Variable"
)

// FinancialRequirement captures what the applicant wants from the mortgage.
type FinancialRequirement struct {
	Purpose        string         `json:"purpose"` // "New Purchase" or "Refinance"
	MortgageType   MortgageType   `json:"mortgageType"`
	SalaryTransfer bool           `json:"salaryTransfer"`
	FeeFinancing   bool           `json:"feeFinancing"`
	RatePreference RatePreference `json:"ratePreference"`
}

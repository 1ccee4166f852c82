package models

// PolicyRow is one raw bank-policy key/value pair as stored in Postgres.
// Values are loosely typed strings; the normalizer resolves them.
type PolicyRow struct {
	BankName string `json:"bankName"`
	KeyName  string `json:"policyKeyName"`
	KeyValue string `json:"policyKeyValue"`
}

// FixedRate is a bank's fixed-rate structure.
type FixedRate struct {
	Rate       float64 `json:"rate"`
	Period     int     `json:"period"` // years
	StressRate float64 `json:"stressRate"`
}

// VariableRate is a bank's variable-rate structure. The effective rate is
// BaseRate + Spread; Floor is informational for display.
type VariableRate struct {
	BaseRate   float64 `json:"baseRate"`
	Spread     float64 `json:"spread"`
	Floor      float64 `json:"floor"`
	StressRate float64 `json:"stressRate"`
}

// Rates groups both rate structures.
type Rates struct {
	Fixed    FixedRate    `json:"fixed"`
	Variable VariableRate `json:"variable"`
}

// LTVByUsage is one row of the LTV matrix, in percent.
type LTVByUsage struct {
	Residential float64 `json:"residential"`
	Commercial  float64 `json:"commercial"`
	Investment  float64 `json:"investment"`
	OffPlan     float64 `json:"offPlan"`
}

// LTVMatrix keys LTV ceilings by residency status.
type LTVMatrix struct {
	UAENational LTVByUsage `json:"uaeNational"`
	Resident    LTVByUsage `json:"resident"`
	NonResident LTVByUsage `json:"nonResident"`
}

// PercentageFee is a percentage fee with optional min/max caps in AED.
type PercentageFee struct {
	Percentage float64 `json:"percentage"`
	Minimum    float64 `json:"minimum"`
	Maximum    float64 `json:"maximum"`
}

// PreApprovalFee is a flat pre-approval charge with a validity window.
type PreApprovalFee struct {
	Amount   float64 `json:"amount"`
	Validity int     `json:"validity"` // days
}

// InsuranceFees are annual insurance percentages of the loan amount.
type InsuranceFees struct {
	Life     float64 `json:"life"`
	Property float64 `json:"property"`
}

// PartialSettlementFee limits partial early repayments.
type PartialSettlementFee struct {
	Percentage     float64 `json:"percentage"`
	Maximum        float64 `json:"maximum"`
	AllowedPerYear int     `json:"allowedPerYear"`
}

// FeeSchedule is a bank's full fee schedule.
type FeeSchedule struct {
	PreApproval       PreApprovalFee       `json:"preApproval"`
	Processing        PercentageFee        `json:"processing"`
	ValuationFixed    float64              `json:"valuationFixed"` // flat AED fee
	Insurance         InsuranceFees        `json:"insurance"`
	EarlySettlement   PercentageFee        `json:"earlySettlement"`
	PartialSettlement PartialSettlementFee `json:"partialSettlement"`
}

// SalaryThreshold holds minimum and preferred monthly-income thresholds.
type SalaryThreshold struct {
	Minimum   float64 `json:"minimum"`
	Preferred float64 `json:"preferred"`
}

// AgeRange is the allowed applicant age band.
type AgeRange struct {
	Minimum int `json:"minimum"`
	Maximum int `json:"maximum"`
}

// DBRThreshold holds the bank's own DBR ceilings.
type DBRThreshold struct {
	Maximum    float64 `json:"maximum"`
	StressTest float64 `json:"stressTest"`
}

// ServiceLength holds length-of-service thresholds in years.
type ServiceLength struct {
	Minimum   float64 `json:"minimum"`
	Preferred float64 `json:"preferred"`
}

// CompanyRules holds the bank's employer/company requirements.
type CompanyRules struct {
	MinimumLength        float64  `json:"minimumLength"` // years in business
	ApprovedIndustries   []string `json:"approvedIndustries"`
	RestrictedIndustries []string `json:"restrictedIndustries"`
}

// EligibilityRules groups a bank's applicant thresholds.
type EligibilityRules struct {
	Salary  SalaryThreshold `json:"salary"`
	Age     AgeRange        `json:"age"`
	DBR     DBRThreshold    `json:"dbr"`
	LOS     ServiceLength   `json:"los"`
	Company CompanyRules    `json:"company"`
}

// TimedFeature is a feature that becomes available after a waiting period.
type TimedFeature struct {
	Available   bool `json:"available"`
	AfterMonths int  `json:"afterMonths"`
}

// OffsetAccount is an offset-account feature with its advertised saving.
type OffsetAccount struct {
	Available      bool    `json:"available"`
	InterestSaving float64 `json:"interestSaving"`
}

// GracePeriod holds repayment grace periods in months.
type GracePeriod struct {
	Construction  int `json:"construction"`
	ReadyProperty int `json:"readyProperty"`
}

// PaidFeature is a feature gated by a fee and a minimum period.
type PaidFeature struct {
	Available bool    `json:"available"`
	Fee       float64 `json:"fee"`
	MinPeriod int     `json:"minPeriod"` // months
	Frequency int     `json:"frequency,omitempty"`
}

// Deferment allows pausing installments.
type Deferment struct {
	Available bool `json:"available"`
	MaxTimes  int  `json:"maxTimes"`
	MaxPeriod int  `json:"maxPeriod"` // months
}

// Features are the bank's product feature flags.
type Features struct {
	SalaryTransfer       bool          `json:"salaryTransfer"`
	TopUp                TimedFeature  `json:"topUp"`
	BalanceTransfer      TimedFeature  `json:"balanceTransfer"`
	OffsetAccount        OffsetAccount `json:"offsetAccount"`
	GracePeriod          GracePeriod   `json:"gracePeriod"`
	PropertySwap         PaidFeature   `json:"propertySwap"`
	RateSwitch           PaidFeature   `json:"rateSwitch"`
	InstallmentDeferment Deferment     `json:"installmentDeferment"`
}

// Restrictions are comma-split restriction sets from the raw policy record.
type Restrictions struct {
	Nationalities []string `json:"nationalities"`
	Industries    []string `json:"industries"`
	Properties    []string `json:"properties"`
}

// BankProduct is a fully-populated mortgage product for one bank. Every
// numeric field carries either a policy value or a documented UAE-market
// default; the normalizer never leaves a field unset.
type BankProduct struct {
	Bank          string           `json:"bank"`
	Type          MortgageType     `json:"type"`
	Rates         Rates            `json:"rates"`
	LTVRatios     LTVMatrix        `json:"ltvRatios"`
	Fees          FeeSchedule      `json:"fees"`
	Eligibility   EligibilityRules `json:"eligibility"`
	Features      Features         `json:"features"`
	Restrictions  Restrictions     `json:"restrictions"`
	MinLoanAmount float64          `json:"minLoanAmount"`
	MaxLoanAmount float64          `json:"maxLoanAmount"`
	MaxTenure     int              `json:"maxTenure"` // years
}

package models

// OfferFees is the fee snapshot attached to a recommended offer for display.
type OfferFees struct {
	Insurance       InsuranceFees `json:"insurance"`
	ValuationFixed  float64       `json:"valuationFixed"`
	Processing      PercentageFee `json:"processing"`
	EarlySettlement PercentageFee `json:"earlySettlement"`
}

// OfferFeatures is the feature snapshot attached to a recommended offer.
type OfferFeatures struct {
	SalaryTransfer     bool    `json:"salaryTransfer"`
	FixedPeriod        int     `json:"fixedPeriod"` // 0 for variable-rate offers
	EarlySettlementFee float64 `json:"earlySettlementFee"`
	MaxTenure          int     `json:"maxTenure"`
	TopUp              bool    `json:"topUp"`
	BalanceTransfer    bool    `json:"balanceTransfer"`
}

// RecommendedBank is one ranked offer in the eligibility result.
type RecommendedBank struct {
	Bank          string        `json:"bank"`
	Product       string        `json:"product"`
	Rate          float64       `json:"rate"` // effective annual rate, percent
	EMI           float64       `json:"emi"`
	MaxLoanAmount float64       `json:"maxLoanAmount"` // capped final amount
	AppliedLTV    float64       `json:"appliedLTV"`
	Fees          OfferFees     `json:"fees"`
	Features      OfferFeatures `json:"features"`
}

// EligibilityResult is the calculator's output: headline affordability
// figures plus at most three ranked bank offers. An empty RecommendedBanks
// list means no eligible offers, not an error.
type EligibilityResult struct {
	EligibleAmount      float64           `json:"eligibleAmount"`
	MaxLoanAmount       float64           `json:"maxLoanAmount"`
	MaxLTV              float64           `json:"maxLTV"`
	MaxLoanTenure       int               `json:"maxLoanTenure"`
	DBR                 float64           `json:"dbr"`
	StressTestDBR       float64           `json:"stressTestDBR"`
	RequiredDownPayment float64           `json:"requiredDownPayment"`
	RecommendedBanks    []RecommendedBank `json:"recommendedBanks"`
}

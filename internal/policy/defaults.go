package policy

// UAE-market fallback values, one per raw policy key. A missing or
// non-numeric raw value always resolves to its entry here, never to zero and
// never to an error. Keys absent from a bank's record are the norm, not the
// exception; the normalizer must produce a complete product either way.
var numericDefaults = map[string]float64{
	"fixedRate":   4.99,
	"fixedPeriod": 3,
	"baseRate":    4.5,
	"spread":      2,
	"floorRate":   4.99,
	"stressRate":  6.5,

	"uaeNationalResidentialLTV": 85,
	"uaeNationalCommercialLTV":  85,
	"uaeNationalInvestmentLTV":  85,
	"uaeNationalOffPlanLTV":     85,
	"residentResidentialLTV":    80,
	"residentCommercialLTV":     80,
	"residentInvestmentLTV":     80,
	"residentOffPlanLTV":        80,
	"nonResidentResidentialLTV": 65,
	"nonResidentCommercialLTV":  65,
	"nonResidentInvestmentLTV":  65,
	"nonResidentOffPlanLTV":     65,

	"preApprovalFeeAmount":            0,
	"preApprovalFeeValidity":          0,
	"processingFeePercentage":         1,
	"processingFeeMinimum":            0,
	"processingFeeMaximum":            0,
	"valuationFeeFixed":               3000,
	"lifeInsuranceFee":                0.25,
	"propertyInsuranceFee":            0.04,
	"earlySettlementFeePercentage":    1,
	"earlySettlementFeeMaximum":       0,
	"partialSettlementFeePercentage":  0,
	"partialSettlementFeeMaximum":     0,
	"partialSettlementAllowedPerYear": 0,

	"minimumIncomeSalaried":    15000,
	"preferredIncomeSalaried":  20000,
	"minimumAge":               21,
	"maximumAge":               65,
	"maximumDBR":               50,
	"stressTestDBR":            55,
	"minimumLengthOfService":   1,
	"preferredLengthOfService": 2,
	"minimumCompanyLength":     1,

	"minimumLoan":   350000,
	"maximumLoan":   5000000,
	"maximumTenure": 25,
}

// DefaultMortgageType applies when a record carries no mortgageType key.
const DefaultMortgageType = "Conventional"

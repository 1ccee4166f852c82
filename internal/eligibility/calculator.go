package eligibility

import (
	"fmt"
	"math"
	"sort"

	"github.com/thekey8/prequal-service/internal/finance"
	"github.com/thekey8/prequal-service/internal/models"
)

const (
	// MaxDBR is the UAE Central Bank ceiling on debt burden for new
	// mortgage lending, in percent.
	MaxDBR = 49

	// StressRate is the affordability stress rate: the 4.5% market base
	// plus a 2-point stress add-on.
	StressRate = 4.5 + 2

	// DefaultTenure is the tenure in years assumed for the headline
	// affordability pass.
	DefaultTenure = 25

	fallbackBankCap = 5000000
	maxRecommended  = 3
)

// Calculate runs the full eligibility pipeline over a form state and the
// normalized bank catalog. It is pure: identical inputs produce identical
// results, and no bank passing the filter yields an empty offer list rather
// than an error.
func Calculate(form models.FormState, banks []models.BankProduct) models.EligibilityResult {
	income := form.Income.TotalMonthly()
	liabilities := form.Liability.TotalMonthly()
	maxLTV := headlineLTV(form.AboutMe.ResidencyStatus)

	if income <= 0 {
		return models.EligibilityResult{
			MaxLTV:           maxLTV,
			MaxLoanTenure:    DefaultTenure,
			RecommendedBanks: []models.RecommendedBank{},
		}
	}

	dbr := liabilities / income * 100

	availableEMI := income*(MaxDBR/100.0) - liabilities
	maxLoan := 0.0
	if availableEMI > 0 {
		if p := finance.MaxPrincipal(availableEMI, StressRate, DefaultTenure); !math.IsNaN(p) && p > 0 {
			maxLoan = p
		}
	}

	offers := make([]models.RecommendedBank, 0, len(banks))
	if income >= IncomeFloor {
		for _, bank := range banks {
			if offer, ok := buildOffer(bank, form, maxLoan); ok {
				offers = append(offers, offer)
			}
		}
	}

	// Rank by loan amount, best rate first among equals.
	sort.SliceStable(offers, func(i, j int) bool {
		if offers[i].MaxLoanAmount != offers[j].MaxLoanAmount {
			return offers[i].MaxLoanAmount > offers[j].MaxLoanAmount
		}
		return offers[i].Rate < offers[j].Rate
	})
	if len(offers) > maxRecommended {
		offers = offers[:maxRecommended]
	}

	return models.EligibilityResult{
		EligibleAmount:      maxLoan,
		MaxLoanAmount:       maxLoan,
		MaxLTV:              maxLTV,
		MaxLoanTenure:       DefaultTenure,
		DBR:                 dbr,
		StressTestDBR:       stressTestDBR(liabilities, income, maxLoan),
		RequiredDownPayment: maxLoan * (1 - maxLTV/100),
		RecommendedBanks:    offers,
	}
}

// buildOffer prices one bank against the applicant. The final amount is the
// lowest of the affordability cap, the LTV cap and the bank's own ceiling.
// Offers that cannot be priced to a finite amount and EMI are dropped so a
// NaN never reaches ranking or display.
func buildOffer(bank models.BankProduct, form models.FormState, affordabilityCap float64) (models.RecommendedBank, bool) {
	isFixed := form.FinancialRequirement.RatePreference == models.RateFixed
	rate := bank.Rates.Variable.BaseRate + bank.Rates.Variable.Spread
	if isFixed {
		rate = bank.Rates.Fixed.Rate
	}

	ltv := residentialLTV(bank.LTVRatios, form.AboutMe.ResidencyStatus)
	ltvCap := form.PropertyDetails.PropertyValue * ltv / 100

	bankCap := bank.MaxLoanAmount
	if bankCap <= 0 {
		bankCap = fallbackBankCap
	}

	amount := math.Min(affordabilityCap, math.Min(ltvCap, bankCap))
	if amount <= 0 || math.IsInf(amount, 0) {
		return models.RecommendedBank{}, false
	}

	tenure := bank.MaxTenure
	if tenure <= 0 {
		tenure = DefaultTenure
	}
	emi := finance.MonthlyPayment(amount, rate, tenure)
	if math.IsNaN(emi) || math.IsInf(emi, 0) {
		return models.RecommendedBank{}, false
	}

	fixedPeriod := 0
	if isFixed {
		fixedPeriod = bank.Rates.Fixed.Period
	}

	return models.RecommendedBank{
		Bank:          bank.Bank,
		Product:       fmt.Sprintf("%s Mortgage", form.FinancialRequirement.MortgageType),
		Rate:          rate,
		EMI:           emi,
		MaxLoanAmount: amount,
		AppliedLTV:    ltv,
		Fees: models.OfferFees{
			Insurance:       bank.Fees.Insurance,
			ValuationFixed:  bank.Fees.ValuationFixed,
			Processing:      bank.Fees.Processing,
			EarlySettlement: bank.Fees.EarlySettlement,
		},
		Features: models.OfferFeatures{
			SalaryTransfer:     bank.Features.SalaryTransfer,
			FixedPeriod:        fixedPeriod,
			EarlySettlementFee: bank.Fees.EarlySettlement.Percentage,
			MaxTenure:          tenure,
			TopUp:              bank.Features.TopUp.Available,
			BalanceTransfer:    bank.Features.BalanceTransfer.Available,
		},
	}, true
}

// stressTestDBR recomputes the burden as if the full eligible amount were
// drawn at the stress rate over the default tenure.
func stressTestDBR(liabilities, income, loanAmount float64) float64 {
	if loanAmount <= 0 {
		return liabilities / income * 100
	}
	stressEMI := finance.MonthlyPayment(loanAmount, StressRate, DefaultTenure)
	if math.IsNaN(stressEMI) {
		return liabilities / income * 100
	}
	return (liabilities + stressEMI) / income * 100
}

// headlineLTV is the market-standard LTV ceiling by residency, independent
// of any single bank's matrix.
func headlineLTV(status models.ResidencyStatus) float64 {
	switch status {
	case models.ResidencyUAENational:
		return 85
	case models.ResidencyUAEResident:
		return 80
	default:
		return 65
	}
}

// residentialLTV picks the residential column of a bank's LTV matrix for the
// applicant's residency. Usage is assumed residential for pre-qualification.
func residentialLTV(m models.LTVMatrix, status models.ResidencyStatus) float64 {
	switch status {
	case models.ResidencyUAENational:
		return m.UAENational.Residential
	case models.ResidencyUAEResident:
		return m.Resident.Residential
	default:
		return m.NonResident.Residential
	}
}

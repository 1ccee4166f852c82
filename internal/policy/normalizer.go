// Package policy turns raw, loosely-typed bank policy records into
// fully-populated bank products. Normalization is total: malformed or
// missing fields resolve through the defaults table, never to an error.
package policy

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/thekey8/prequal-service/internal/models"
)

// Group collects flat policy rows into per-bank key/value maps.
func Group(rows []models.PolicyRow) map[string]map[string]string {
	banks := make(map[string]map[string]string)
	for _, row := range rows {
		if row.BankName == "" {
			continue
		}
		if banks[row.BankName] == nil {
			banks[row.BankName] = make(map[string]string)
		}
		banks[row.BankName][row.KeyName] = row.KeyValue
	}
	return banks
}

// Normalize produces one complete BankProduct per bank, sorted by bank name
// so repeated runs over the same catalog yield identical output.
func Normalize(rows []models.PolicyRow) []models.BankProduct {
	grouped := Group(rows)
	products := make([]models.BankProduct, 0, len(grouped))
	for name, raw := range grouped {
		products = append(products, NormalizeBank(name, raw))
	}
	sort.Slice(products, func(i, j int) bool { return products[i].Bank < products[j].Bank })
	return products
}

// NormalizeBank builds a complete product from one bank's raw key/value
// pairs. Every numeric field resolves to either the parsed policy value or
// its documented UAE-market default.
func NormalizeBank(name string, raw map[string]string) models.BankProduct {
	return models.BankProduct{
		Bank: name,
		Type: mortgageType(raw),
		Rates: models.Rates{
			Fixed: models.FixedRate{
				Rate:       num(raw, "fixedRate"),
				Period:     integer(raw, "fixedPeriod"),
				StressRate: num(raw, "stressRate"),
			},
			Variable: models.VariableRate{
				BaseRate:   num(raw, "baseRate"),
				Spread:     num(raw, "spread"),
				Floor:      num(raw, "floorRate"),
				StressRate: num(raw, "stressRate"),
			},
		},
		LTVRatios: models.LTVMatrix{
			UAENational: models.LTVByUsage{
				Residential: num(raw, "uaeNationalResidentialLTV"),
				Commercial:  num(raw, "uaeNationalCommercialLTV"),
				Investment:  num(raw, "uaeNationalInvestmentLTV"),
				OffPlan:     num(raw, "uaeNationalOffPlanLTV"),
			},
			Resident: models.LTVByUsage{
				Residential: num(raw, "residentResidentialLTV"),
				Commercial:  num(raw, "residentCommercialLTV"),
				Investment:  num(raw, "residentInvestmentLTV"),
				OffPlan:     num(raw, "residentOffPlanLTV"),
			},
			NonResident: models.LTVByUsage{
				Residential: num(raw, "nonResidentResidentialLTV"),
				Commercial:  num(raw, "nonResidentCommercialLTV"),
				Investment:  num(raw, "nonResidentInvestmentLTV"),
				OffPlan:     num(raw, "nonResidentOffPlanLTV"),
			},
		},
		Fees: models.FeeSchedule{
			PreApproval: models.PreApprovalFee{
				Amount:   num(raw, "preApprovalFeeAmount"),
				Validity: integer(raw, "preApprovalFeeValidity"),
			},
			Processing: models.PercentageFee{
				Percentage: num(raw, "processingFeePercentage"),
				Minimum:    num(raw, "processingFeeMinimum"),
				Maximum:    num(raw, "processingFeeMaximum"),
			},
			ValuationFixed: num(raw, "valuationFeeFixed"),
			Insurance: models.InsuranceFees{
				Life:     num(raw, "lifeInsuranceFee"),
				Property: num(raw, "propertyInsuranceFee"),
			},
			EarlySettlement: models.PercentageFee{
				Percentage: num(raw, "earlySettlementFeePercentage"),
				Maximum:    num(raw, "earlySettlementFeeMaximum"),
			},
			PartialSettlement: models.PartialSettlementFee{
				Percentage:     num(raw, "partialSettlementFeePercentage"),
				Maximum:        num(raw, "partialSettlementFeeMaximum"),
				AllowedPerYear: integer(raw, "partialSettlementAllowedPerYear"),
			},
		},
		Eligibility: models.EligibilityRules{
			Salary: models.SalaryThreshold{
				Minimum:   num(raw, "minimumIncomeSalaried"),
				Preferred: num(raw, "preferredIncomeSalaried"),
			},
			Age: models.AgeRange{
				Minimum: integer(raw, "minimumAge"),
				Maximum: integer(raw, "maximumAge"),
			},
			DBR: models.DBRThreshold{
				Maximum:    num(raw, "maximumDBR"),
				StressTest: num(raw, "stressTestDBR"),
			},
			LOS: models.ServiceLength{
				Minimum:   num(raw, "minimumLengthOfService"),
				Preferred: num(raw, "preferredLengthOfService"),
			},
			Company: models.CompanyRules{
				MinimumLength:        num(raw, "minimumCompanyLength"),
				ApprovedIndustries:   split(raw, "approvedIndustries"),
				RestrictedIndustries: split(raw, "restrictedIndustries"),
			},
		},
		Features: models.Features{
			SalaryTransfer:  yes(raw, "salaryTransfer"),
			TopUp:           models.TimedFeature{Available: yes(raw, "topUpFacility"), AfterMonths: 12},
			BalanceTransfer: models.TimedFeature{Available: yes(raw, "balanceTransfer"), AfterMonths: 6},
			// Not captured in the policy sheet yet; off by default.
			OffsetAccount:        models.OffsetAccount{},
			GracePeriod:          models.GracePeriod{},
			PropertySwap:         models.PaidFeature{},
			RateSwitch:           models.PaidFeature{},
			InstallmentDeferment: models.Deferment{},
		},
		Restrictions: models.Restrictions{
			Nationalities: split(raw, "nationalities"),
			Industries:    split(raw, "industries"),
			Properties:    split(raw, "properties"),
		},
		MinLoanAmount: num(raw, "minimumLoan"),
		MaxLoanAmount: num(raw, "maximumLoan"),
		MaxTenure:     integer(raw, "maximumTenure"),
	}
}

// num resolves a numeric policy key: parsed value when present and finite,
// the documented default otherwise. ParseFloat accepts "NaN" and "Inf"
// spellings, which must fall back like any other malformed value.
func num(raw map[string]string, key string) float64 {
	if v, ok := raw[key]; ok {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err == nil && !math.IsNaN(parsed) && !math.IsInf(parsed, 0) {
			return parsed
		}
	}
	return numericDefaults[key]
}

func integer(raw map[string]string, key string) int {
	return int(num(raw, key))
}

// yes reports whether a flag key is set to "yes" (the sheet convention).
func yes(raw map[string]string, key string) bool {
	return strings.EqualFold(strings.TrimSpace(raw[key]), "yes")
}

// split turns a comma-separated restriction string into a set of trimmed
// entries; absent or empty strings normalize to an empty set.
func split(raw map[string]string, key string) []string {
	v := strings.TrimSpace(raw[key])
	if v == "" {
		return []string{}
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func mortgageType(raw map[string]string) models.MortgageType {
	if t := strings.TrimSpace(raw["mortgageType"]); t != "" {
		return models.MortgageType(t)
	}
	return DefaultMortgageType
}

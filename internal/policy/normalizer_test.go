package policy

import (
	"fmt"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thekey8/prequal-service/internal/models"
)

func TestNormalizeBankEmptyRecordGetsAllDefaults(t *testing.T) {
	p := NormalizeBank("Emirates NBD", map[string]string{})

	assert.Equal(t, "Emirates NBD", p.Bank)
	assert.Equal(t, models.MortgageType("Conventional"), p.Type)
	assert.Equal(t, 4.99, p.Rates.Fixed.Rate)
	assert.Equal(t, 3, p.Rates.Fixed.Period)
	assert.Equal(t, 6.5, p.Rates.Fixed.StressRate)
	assert.Equal(t, 4.5, p.Rates.Variable.BaseRate)
	assert.Equal(t, 2.0, p.Rates.Variable.Spread)
	assert.Equal(t, 4.99, p.Rates.Variable.Floor)
	assert.Equal(t, 85.0, p.LTVRatios.UAENational.Residential)
	assert.Equal(t, 80.0, p.LTVRatios.Resident.OffPlan)
	assert.Equal(t, 65.0, p.LTVRatios.NonResident.Commercial)
	assert.Equal(t, 3000.0, p.Fees.ValuationFixed)
	assert.Equal(t, 0.25, p.Fees.Insurance.Life)
	assert.Equal(t, 0.04, p.Fees.Insurance.Property)
	assert.Equal(t, 1.0, p.Fees.Processing.Percentage)
	assert.Equal(t, 15000.0, p.Eligibility.Salary.Minimum)
	assert.Equal(t, 20000.0, p.Eligibility.Salary.Preferred)
	assert.Equal(t, 21, p.Eligibility.Age.Minimum)
	assert.Equal(t, 65, p.Eligibility.Age.Maximum)
	assert.Equal(t, 50.0, p.Eligibility.DBR.Maximum)
	assert.Equal(t, 55.0, p.Eligibility.DBR.StressTest)
	assert.Equal(t, 350000.0, p.MinLoanAmount)
	assert.Equal(t, 5000000.0, p.MaxLoanAmount)
	assert.Equal(t, 25, p.MaxTenure)
	assert.Empty(t, p.Restrictions.Nationalities)
	assert.False(t, p.Features.SalaryTransfer)
}

func TestNormalizeBankParsesProvidedValues(t *testing.T) {
	raw := map[string]string{
		"mortgageType":                   "Islamic",
		"fixedRate":                      "3.89",
		"fixedPeriod":                    "5",
		"baseRate":                       "4.15",
		"spread":                         "1.49",
		"maximumLoan":                    "10000000",
		"maximumTenure":                  "30",
		"residentResidentialLTV":         "75",
		"salaryTransfer":                 "yes",
		"topUpFacility":                  "yes",
		"restrictedIndustries":           "Crypto, Gambling ,Defense",
		"minimumIncomeSalaried":          "12000",
		"valuationFeeFixed":              "2625",
		"partialSettlementFeePercentage": "0.5",
	}
	p := NormalizeBank("ADCB", raw)

	assert.Equal(t, models.MortgageType("Islamic"), p.Type)
	assert.Equal(t, 3.89, p.Rates.Fixed.Rate)
	assert.Equal(t, 5, p.Rates.Fixed.Period)
	assert.Equal(t, 4.15, p.Rates.Variable.BaseRate)
	assert.Equal(t, 1.49, p.Rates.Variable.Spread)
	assert.Equal(t, 10000000.0, p.MaxLoanAmount)
	assert.Equal(t, 30, p.MaxTenure)
	assert.Equal(t, 75.0, p.LTVRatios.Resident.Residential)
	assert.True(t, p.Features.SalaryTransfer)
	assert.True(t, p.Features.TopUp.Available)
	assert.False(t, p.Features.BalanceTransfer.Available)
	assert.Equal(t, []string{"Crypto", "Gambling", "Defense"}, p.Eligibility.Company.RestrictedIndustries)
	assert.Equal(t, 12000.0, p.Eligibility.Salary.Minimum)
	assert.Equal(t, 2625.0, p.Fees.ValuationFixed)
	assert.Equal(t, 0.5, p.Fees.PartialSettlement.Percentage)
}

func TestNormalizeBankMalformedValuesFallBack(t *testing.T) {
	raw := map[string]string{
		"fixedRate":     "n/a",
		"maximumDBR":    "",
		"maximumLoan":   "five million",
		"maximumTenure": "TBD",
	}
	p := NormalizeBank("RAKBANK", raw)

	assert.Equal(t, 4.99, p.Rates.Fixed.Rate)
	assert.Equal(t, 50.0, p.Eligibility.DBR.Maximum)
	assert.Equal(t, 5000000.0, p.MaxLoanAmount)
	assert.Equal(t, 25, p.MaxTenure)
}

// ParseFloat accepts "NaN" and "Inf" spellings; they must resolve to the
// defaults like any other malformed value instead of entering the product.
func TestNormalizeBankNonFiniteValuesFallBack(t *testing.T) {
	raw := map[string]string{
		"fixedRate":   "NaN",
		"maximumLoan": "+Inf",
		"baseRate":    "-Inf",
		"maximumDBR":  "inf",
	}
	p := NormalizeBank("HSBC", raw)

	assert.Equal(t, 4.99, p.Rates.Fixed.Rate)
	assert.Equal(t, 5000000.0, p.MaxLoanAmount)
	assert.Equal(t, 4.5, p.Rates.Variable.BaseRate)
	assert.Equal(t, 50.0, p.Eligibility.DBR.Maximum)
}

func TestNormalizeGroupsAndSortsByBankName(t *testing.T) {
	rows := []models.PolicyRow{
		{BankName: "Mashreq", KeyName: "fixedRate", KeyValue: "4.39"},
		{BankName: "ADCB", KeyName: "fixedRate", KeyValue: "4.24"},
		{BankName: "Mashreq", KeyName: "maximumTenure", KeyValue: "30"},
		{BankName: "", KeyName: "fixedRate", KeyValue: "9.99"}, // dropped
	}
	products := Normalize(rows)

	require.Len(t, products, 2)
	assert.Equal(t, "ADCB", products[0].Bank)
	assert.Equal(t, "Mashreq", products[1].Bank)
	assert.Equal(t, 4.39, products[1].Rates.Fixed.Rate)
	assert.Equal(t, 30, products[1].MaxTenure)
}

// Fuzzes random subsets of policy keys with a mix of valid, junk and empty
// values; no numeric field of the product may come out NaN or infinite.
func TestNormalizeBankNeverProducesNonFiniteFields(t *testing.T) {
	keys := make([]string, 0, len(numericDefaults))
	for k := range numericDefaults {
		keys = append(keys, k)
	}
	values := []string{"", "abc", "4.5", "0", "100000", "  7.25 ", "NaN", "+Inf", "-Inf", "-3"}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		raw := map[string]string{}
		for _, k := range keys {
			switch rng.Intn(3) {
			case 0: // absent
			default:
				raw[k] = values[rng.Intn(len(values))]
			}
		}
		p := NormalizeBank(fmt.Sprintf("Bank-%d", i), raw)
		assertAllFloatsFinite(t, reflect.ValueOf(p), "BankProduct")
	}
}

func assertAllFloatsFinite(t *testing.T, v reflect.Value, path string) {
	t.Helper()
	switch v.Kind() {
	case reflect.Float64:
		f := v.Float()
		assert.False(t, math.IsNaN(f) || math.IsInf(f, 0), "non-finite value at %s", path)
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			assertAllFloatsFinite(t, v.Field(i), path+"."+v.Type().Field(i).Name)
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			assertAllFloatsFinite(t, v.Index(i), fmt.Sprintf("%s[%d]", path, i))
		}
	}
}

// Package eligibility implements the pre-qualification engine: the input
// validator gate and the affordability/offer calculator.
package eligibility

import (
	"fmt"

	"github.com/thekey8/prequal-service/internal/models"
)

// Age bands per UAE retail lending practice.
const (
	minAge             = 21
	maxAgeSalaried     = 65
	maxAgeSelfEmployed = 70
)

// IncomeFloor is the flat minimum monthly income (AED) applied to every
// applicant regardless of residency. The legacy flow used a higher floor for
// UAE residents in one branch and this flat floor elsewhere; the flat floor
// is the documented policy here.
const IncomeFloor = 8000

// ValidationResult is the validator's verdict. Errors block calculation;
// warnings are informational and attached to the result for display.
type ValidationResult struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Validate checks applicant inputs against the regulatory minimums. It is a
// read-only gate: it never mutates the form state.
func Validate(form models.FormState) ValidationResult {
	errors := []string{}
	warnings := []string{}

	age := form.AboutMe.Age
	maxAge := maxAgeSalaried
	if form.Employment.Status == models.StatusSelfEmployed {
		maxAge = maxAgeSelfEmployed
	}
	if age <= 0 {
		errors = append(errors, fmt.Sprintf("Age is required (current: %d)", age))
	} else if age < minAge || age > maxAge {
		errors = append(errors, fmt.Sprintf("Age must be between %d and %d years (current: %d)", minAge, maxAge, age))
	}

	income := form.Income.TotalMonthly()
	if income <= 0 {
		errors = append(errors, fmt.Sprintf("Total income is required (current: %.0f)", income))
	} else if income < IncomeFloor {
		errors = append(errors, fmt.Sprintf("Minimum monthly income should be AED %d (current: %.0f)", IncomeFloor, income))
	}

	switch form.Employment.Status {
	case models.StatusUnemployed:
		warnings = append(warnings, "Applicant is currently unemployed; most lenders require active employment or business income")
	case models.StatusEmployed, models.StatusSelfEmployed:
		score, known := models.TenureScore(form.Employment.Duration)
		if !known {
			errors = append(errors, fmt.Sprintf("Unknown employment duration %q", form.Employment.Duration))
		} else if score < 0.5 {
			warnings = append(warnings, fmt.Sprintf("Short employment tenure (%s); banks typically prefer at least 6 months of service", form.Employment.Duration))
		}
	}

	if income > 0 {
		dbr := form.Liability.TotalMonthly() / income * 100
		if dbr >= MaxDBR {
			warnings = append(warnings, fmt.Sprintf("Existing liabilities already put the debt burden ratio at %.1f%%, at or above the %d%% regulatory ceiling", dbr, MaxDBR))
		}
	}

	return ValidationResult{
		IsValid:  len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	}
}

// Package session holds the wizard state machine: a pure reducer over the
// immutable application form state. Each transition returns a fresh value;
// callers own persistence.
package session

import "github.com/thekey8/prequal-service/internal/models"

// EventType enumerates the reducer's transitions.
type EventType string

const (
	// EventUpdateStep merges a partial step payload into the state.
	EventUpdateStep EventType = "UPDATE_STEP_DATA"
	// EventLoad replaces the state wholesale with a stored snapshot.
	EventLoad EventType = "LOAD_FROM_STORAGE"
	// EventReset returns the wizard to its initial state.
	EventReset EventType = "RESET_FORM"
)

// StepPayload carries the optional per-step updates of an EventUpdateStep.
// Nil sections are left untouched.
type StepPayload struct {
	AboutMe              *models.AboutMe              `json:"aboutMe,omitempty"`
	FinancialRequirement *models.FinancialRequirement `json:"financialRequirement,omitempty"`
	Employment           *models.Employment           `json:"employment,omitempty"`
	Income               *models.Income               `json:"income,omitempty"`
	Liability            *models.Liability            `json:"liability,omitempty"`
	PropertyDetails      *models.PropertyDetails      `json:"propertyDetails,omitempty"`
	CurrentStep          int                          `json:"currentStep,omitempty"`
}

// Event is one reducer input.
type Event struct {
	Type     EventType         `json:"type"`
	Payload  *StepPayload      `json:"payload,omitempty"`
	Snapshot *models.FormState `json:"snapshot,omitempty"`
}

// Initial returns the state a fresh wizard starts from.
func Initial() models.FormState {
	return models.FormState{
		AboutMe: models.AboutMe{
			ResidencyStatus: models.ResidencyUAEResident,
			ApplicationType: models.ApplicationSingle,
		},
		FinancialRequirement: models.FinancialRequirement{
			Purpose:        "New Purchase",
			MortgageType:   models.MortgageConventional,
			RatePreference: models.RateFixed,
		},
		Employment: models.Employment{
			Status:   models.StatusEmployed,
			Duration: models.TenureNewlyJoined,
		},
		Liability: models.Liability{StressRate: 2},
		PropertyDetails: models.PropertyDetails{
			Stage: models.StageResearching,
			Type:  models.PropertyCompleted,
			Usage: models.UsageResidential,
		},
		CurrentStep: 1,
	}
}

// Apply is the pure state-transition function. The input state is never
// mutated; derived totals are recomputed on every transition so they can
// never drift from their components.
func Apply(state models.FormState, event Event) models.FormState {
	switch event.Type {
	case EventUpdateStep:
		if event.Payload == nil {
			return rederive(state)
		}
		return rederive(merge(state, *event.Payload))
	case EventLoad:
		if event.Snapshot == nil {
			return rederive(state)
		}
		return rederive(*event.Snapshot)
	case EventReset:
		return Initial()
	default:
		return state
	}
}

// merge overlays the non-nil payload sections onto the state. A change of
// employment status resets the status-specific fields rather than carrying
// stale employer or business details across.
func merge(state models.FormState, p StepPayload) models.FormState {
	if p.AboutMe != nil {
		state.AboutMe = *p.AboutMe
	}
	if p.FinancialRequirement != nil {
		state.FinancialRequirement = *p.FinancialRequirement
	}
	if p.Employment != nil {
		next := *p.Employment
		if next.Status != state.Employment.Status {
			next = resetForStatus(next)
		}
		state.Employment = next
	}
	if p.Income != nil {
		state.Income = *p.Income
	}
	if p.Liability != nil {
		state.Liability = *p.Liability
	}
	if p.PropertyDetails != nil {
		state.PropertyDetails = *p.PropertyDetails
	}
	if p.CurrentStep > 0 {
		state.CurrentStep = p.CurrentStep
	}
	return state
}

// resetForStatus keeps only the fields meaningful for the new status.
func resetForStatus(e models.Employment) models.Employment {
	next := models.Employment{
		Status:   e.Status,
		Duration: e.Duration,
		Industry: e.Industry,
		Position: e.Position,
	}
	switch e.Status {
	case models.StatusEmployed:
		next.EmployerName = e.EmployerName
		next.EmploymentType = e.EmploymentType
		next.CompanyType = e.CompanyType
	case models.StatusSelfEmployed:
		next.BusinessName = e.BusinessName
		next.TradeLicenseNumber = e.TradeLicenseNumber
		next.BusinessStartDate = e.BusinessStartDate
		next.AnnualTurnover = e.AnnualTurnover
		next.NumberOfEmployees = e.NumberOfEmployees
	case models.StatusUnemployed:
		next.LastEmploymentDate = e.LastEmploymentDate
		next.ReasonForUnemployment = e.ReasonForUnemployment
		next.PreviousEmployer = e.PreviousEmployer
		next.PreviousDuration = e.PreviousDuration
	}
	return next
}

// rederive recomputes the denormalized totals from their inputs.
func rederive(state models.FormState) models.FormState {
	state.Income.TotalIncome = state.Income.TotalMonthly()
	state.Liability.TotalLiability = state.Liability.TotalMonthly()
	if state.Income.TotalIncome > 0 {
		state.Liability.DBR = state.Liability.TotalLiability / state.Income.TotalIncome * 100
	} else {
		state.Liability.DBR = 0
	}
	return state
}

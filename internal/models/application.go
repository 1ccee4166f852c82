package models

import "time"

// FormState is the aggregate wizard state for one in-progress application.
// It is treated as an immutable value: the session reducer returns a new
// FormState for every transition.
type FormState struct {
	AboutMe              AboutMe              `json:"aboutMe"`
	FinancialRequirement FinancialRequirement `json:"financialRequirement"`
	Employment           Employment           `json:"employment"`
	Income               Income               `json:"income"`
	Liability            Liability            `json:"liability"`
	PropertyDetails      PropertyDetails      `json:"propertyDetails"`
	CurrentStep          int                  `json:"currentStep"`
}

// Application is a saved application: the form snapshot plus the computed
// eligibility result.
type Application struct {
	ID          int64              `json:"id"`
	UserID      int64              `json:"user_id"`
	FormState   FormState          `json:"form_state"`
	Result      *EligibilityResult `json:"result,omitempty"`
	Status      string             `json:"status"`       // draft, submitted
	OfferStatus string             `json:"offer_status"` // pending, accepted, declined
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

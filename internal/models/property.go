package models

// PropertyStage is how far along the applicant is in finding a property.
type PropertyStage string

const (
	StageResearching PropertyStage = "Researching"
	StageViewing     PropertyStage = "Viewing"
	StageMadeOffer   PropertyStage = "Made Offer"
)

// PropertyType is the construction status of the property.
type PropertyType string

const (
	PropertyCompleted         PropertyType = "Completed"
	PropertyOffPlan           PropertyType = "Off-Plan"
	PropertyUnderConstruction PropertyType = "Under-Construction"
)

// PropertyUsage determines which LTV column of a bank's matrix applies.
type PropertyUsage string

const (
	UsageResidential PropertyUsage = "Residential"
	UsageCommercial  PropertyUsage = "Commercial"
	UsageMixed       PropertyUsage = "Mixed"
)

// PropertyDetails is the step-five property record.
type PropertyDetails struct {
	Stage         PropertyStage `json:"stage"`
	Type          PropertyType  `json:"type"`
	Usage         PropertyUsage `json:"usage"`
	PropertyValue float64       `json:"propertyValue"`
	Address       string        `json:"address,omitempty"`
	BuiltUpArea   float64       `json:"builtUpArea,omitempty"`
	Developer     string        `json:"developer,omitempty"`
}

package models

// EmploymentStatus is the applicant's current work situation.
type EmploymentStatus string

const (
	StatusEmployed     EmploymentStatus = "Employed"
	StatusSelfEmployed EmploymentStatus = "Self-Employed"
	StatusUnemployed   EmploymentStatus = "Unemployed"
)

// TenureBucket is a closed enumeration of employment-duration labels used by
// the wizard. Labels outside this set are a validation error, never a silent
// default.
type TenureBucket string

const (
	TenureNewlyJoined      TenureBucket = "Newly Joined"
	TenureLessThanMonth    TenureBucket = "Less than 1 month"
	TenureOneToThreeMonths TenureBucket = "1-3 months"
	TenureThreeToSixMonths TenureBucket = "3-6 months"
	TenureLessThanSixMo    TenureBucket = "Less than 6 months"
	TenureMoreThanSixMo    TenureBucket = "More than 6 months"
	TenureSixToTwelveMo    TenureBucket = "6-12 months"
	TenureMoreThanYear     TenureBucket = "More than 1 year"
)

// tenureScores maps each bucket to a years-employed score used when weighing
// length of service.
var tenureScores = map[TenureBucket]float64{
	TenureNewlyJoined:      0.1,
	TenureLessThanMonth:    0.1,
	TenureOneToThreeMonths: 0.25,
	TenureThreeToSixMonths: 0.5,
	TenureLessThanSixMo:    0.5,
	TenureMoreThanSixMo:    0.7,
	TenureSixToTwelveMo:    0.8,
	TenureMoreThanYear:     1.2,
}

// TenureScore returns the numeric years-employed score for a bucket. The
// second return is false for labels outside the enumeration.
func TenureScore(b TenureBucket) (float64, bool) {
	score, ok := tenureScores[b]
	return score, ok
}

// Employment holds the step-two employment record. Only the fields matching
// Status are meaningful; the rest stay zero-valued.
type Employment struct {
	Status   EmploymentStatus `json:"status"`
	Duration TenureBucket     `json:"duration"`
	Industry string           `json:"industry"`
	Position string           `json:"position"`

	// Employed
	EmployerName   string `json:"employerName,omitempty"`
	EmploymentType string `json:"employmentType,omitempty"`
	CompanyType    string `json:"companyType,omitempty"`

	// Self-employed
	BusinessName       string `json:"businessName,omitempty"`
	TradeLicenseNumber string `json:"tradeLicenseNumber,omitempty"`
	BusinessStartDate  string `json:"businessStartDate,omitempty"` // YYYY-MM-DD
	AnnualTurnover     string `json:"annualTurnover,omitempty"`
	NumberOfEmployees  string `json:"numberOfEmployees,omitempty"`

	// Unemployed
	LastEmploymentDate    string `json:"lastEmploymentDate,omitempty"`
	ReasonForUnemployment string `json:"reasonForUnemployment,omitempty"`
	PreviousEmployer      string `json:"previousEmployer,omitempty"`
	PreviousDuration      string `json:"previousEmploymentDuration,omitempty"`
}

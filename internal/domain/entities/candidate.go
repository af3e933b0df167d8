package entities

import "time"

// VerificationStatus represents the staff-approved trust state of a candidate.
//
// Domain notes:
//   - The lifecycle-service is the source of truth for verification state.
//   - Review by staff is mandatory: there is no direct path from unverified
//     or rejected to verified.
type VerificationStatus string

const (
	VerificationStatusUnverified VerificationStatus = "unverified"
	VerificationStatusPending    VerificationStatus = "pending"
	VerificationStatusVerified   VerificationStatus = "verified"
	VerificationStatusRejected   VerificationStatus = "rejected"
)

// ExperienceEntry is one position in a candidate's work history.
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartYear   int    `json:"start_year"`
	EndYear     int    `json:"end_year,omitempty"`
	Description string `json:"description,omitempty"`
}

// EducationEntry is one degree or qualification.
type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Year        int    `json:"year"`
}

// LanguageSkill pairs a language with a proficiency level (e.g. CEFR B2).
type LanguageSkill struct {
	Language string `json:"language"`
	Level    string `json:"level"`
}

// CandidateProfile groups the fields the candidate edits themselves and the
// completeness checklist evaluates.
type CandidateProfile struct {
	FirstName         string            `json:"first_name"`
	LastName          string            `json:"last_name"`
	Headline          string            `json:"headline"`
	Bio               string            `json:"bio"`
	Phone             string            `json:"phone"`
	Location          string            `json:"location"`
	Nationality       string            `json:"nationality"`
	BirthDate         string            `json:"birth_date"`
	YearsOfExperience int               `json:"years_of_experience"`
	Sector            string            `json:"sector"`
	SalaryExpectation float64           `json:"salary_expectation"`
	Skills            []string          `json:"skills"`
	Languages         []LanguageSkill   `json:"languages"`
	Experience        []ExperienceEntry `json:"experience"`
	Education         []EducationEntry  `json:"education"`
}

// Candidate is the candidate aggregate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Verification fields:
//   - RejectionReason is set by staff when rejecting and cleared once the
//     candidate edits their profile (silent reset back to unverified).
type Candidate struct {
	ID      string           `json:"id"`
	Email   string           `json:"email"`
	Profile CandidateProfile `json:"profile"`

	VerificationStatus        VerificationStatus `json:"verification_status"`
	RejectionReason           string             `json:"rejection_reason,omitempty"`
	VerificationPaymentStatus string             `json:"verification_payment_status,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Package checklist computes the profile and document completeness booleans
// that gate verification submission. It is pure: no network, no clock, no
// persistence.
package checklist

import (
	"strings"

	"talentbruecke/internal/domain/entities"
)

// ProfileEvaluation is the result of checking a candidate's profile fields.
// Missing enumerates every gap, not just the first, so the UI can render a
// full checklist.
type ProfileEvaluation struct {
	Complete bool     `json:"complete"`
	Missing  []string `json:"missing"`
}

// DocumentEvaluation reports which required document categories are covered
// by the candidate's uploads.
type DocumentEvaluation struct {
	HasID         bool `json:"has_id"`
	HasEducation  bool `json:"has_education"`
	HasCV         bool `json:"has_cv"`
	HasReferences bool `json:"has_references"`
}

const minSkills = 3

// Keyword sets matched against each document's declared type. Matching is
// case-insensitive substring; the first set that matches claims the
// document.
var (
	idKeywords        = []string{"passport", "id", "identity"}
	educationKeywords = []string{"diploma", "degree", "education", "certificate"}
	cvKeywords        = []string{"cv", "resume"}
	referenceKeywords = []string{"reference", "recommendation"}
)

// EvaluateProfile checks every required profile field and collects the
// missing ones under their API field names.
func EvaluateProfile(c entities.Candidate) ProfileEvaluation {
	p := c.Profile
	var missing []string

	require := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}

	require("firstName", p.FirstName)
	require("lastName", p.LastName)
	require("headline", p.Headline)
	require("bio", p.Bio)
	require("phone", p.Phone)
	require("location", p.Location)
	require("nationality", p.Nationality)
	require("birthDate", p.BirthDate)
	if p.YearsOfExperience <= 0 {
		missing = append(missing, "yearsOfExperience")
	}
	require("sector", p.Sector)
	if p.SalaryExpectation <= 0 {
		missing = append(missing, "salaryExpectation")
	}
	if len(p.Skills) < minSkills {
		missing = append(missing, "skills")
	}
	if len(p.Languages) == 0 {
		missing = append(missing, "languages")
	}
	if len(p.Experience) == 0 {
		missing = append(missing, "experience")
	}
	if len(p.Education) == 0 {
		missing = append(missing, "education")
	}

	return ProfileEvaluation{Complete: len(missing) == 0, Missing: missing}
}

// EvaluateDocuments classifies each document by substring-matching its type
// against the keyword sets. A document counts for at most one category.
func EvaluateDocuments(documents []entities.Document) DocumentEvaluation {
	var eval DocumentEvaluation
	for _, d := range documents {
		docType := strings.ToLower(string(d.Type))
		switch {
		case matchesAny(docType, idKeywords):
			eval.HasID = true
		case matchesAny(docType, educationKeywords):
			eval.HasEducation = true
		case matchesAny(docType, cvKeywords):
			eval.HasCV = true
		case matchesAny(docType, referenceKeywords):
			eval.HasReferences = true
		}
	}
	return eval
}

// CanSubmitForReview is the submission gate: profile complete plus an
// identity document, an education document and a CV. References are
// recommended but not required.
func CanSubmitForReview(c entities.Candidate, documents []entities.Document) bool {
	if !EvaluateProfile(c).Complete {
		return false
	}
	docs := EvaluateDocuments(documents)
	return docs.HasID && docs.HasEducation && docs.HasCV
}

func matchesAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

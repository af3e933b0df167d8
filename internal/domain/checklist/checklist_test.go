package checklist

import (
	"reflect"
	"testing"

	"talentbruecke/internal/domain/entities"
)

func completeCandidate() entities.Candidate {
	return entities.Candidate{
		ID: "cand-1",
		Profile: entities.CandidateProfile{
			FirstName:         "Amira",
			LastName:          "Haddad",
			Headline:          "Pediatric nurse",
			Bio:               "Eight years in pediatric care.",
			Phone:             "+216 20 000 000",
			Location:          "Tunis",
			Nationality:       "Tunisian",
			BirthDate:         "1994-03-12",
			YearsOfExperience: 8,
			Sector:            "healthcare",
			SalaryExpectation: 42000,
			Skills:            []string{"pediatrics", "emergency care", "documentation"},
			Languages:         []entities.LanguageSkill{{Language: "German", Level: "B2"}},
			Experience:        []entities.ExperienceEntry{{Title: "Nurse", Company: "Clinique Pasteur", StartYear: 2016}},
			Education:         []entities.EducationEntry{{Institution: "University of Tunis", Degree: "BSc Nursing", Year: 2015}},
		},
	}
}

func requiredDocuments() []entities.Document {
	return []entities.Document{
		{ID: "d1", Type: "passport", Status: entities.DocumentStatusPending},
		{ID: "d2", Type: "diploma", Status: entities.DocumentStatusPending},
		{ID: "d3", Type: "cv", Status: entities.DocumentStatusPending},
	}
}

func TestEvaluateProfile_Complete(t *testing.T) {
	eval := EvaluateProfile(completeCandidate())
	if !eval.Complete {
		t.Fatalf("expected complete profile, missing=%v", eval.Missing)
	}
	if len(eval.Missing) != 0 {
		t.Fatalf("expected no missing fields, got %v", eval.Missing)
	}
}

func TestEvaluateProfile_EnumeratesEveryMissingField(t *testing.T) {
	c := completeCandidate()
	c.Profile.FirstName = "  "
	c.Profile.Bio = ""
	c.Profile.SalaryExpectation = 0
	c.Profile.Education = nil

	eval := EvaluateProfile(c)
	if eval.Complete {
		t.Fatalf("expected incomplete profile")
	}
	want := []string{"firstName", "bio", "salaryExpectation", "education"}
	if !reflect.DeepEqual(eval.Missing, want) {
		t.Fatalf("expected missing %v, got %v", want, eval.Missing)
	}
}

func TestEvaluateProfile_SkillsBelowMinimum(t *testing.T) {
	c := completeCandidate()
	c.Profile.Skills = []string{}

	eval := EvaluateProfile(c)
	if eval.Complete {
		t.Fatalf("expected incomplete profile")
	}
	found := false
	for _, m := range eval.Missing {
		if m == "skills" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected missing to include skills, got %v", eval.Missing)
	}

	c.Profile.Skills = []string{"a", "b"}
	if EvaluateProfile(c).Complete {
		t.Fatalf("two skills must not satisfy the minimum of three")
	}
}

func TestEvaluateDocuments_KeywordMatching(t *testing.T) {
	cases := []struct {
		name string
		docs []entities.Document
		want DocumentEvaluation
	}{
		{name: "empty", docs: nil, want: DocumentEvaluation{}},
		{
			name: "canonical types",
			docs: requiredDocuments(),
			want: DocumentEvaluation{HasID: true, HasEducation: true, HasCV: true},
		},
		{
			name: "free-form types match case-insensitively",
			docs: []entities.Document{
				{Type: "National Identity Card"},
				{Type: "University Degree"},
				{Type: "Resume"},
				{Type: "Letter of Recommendation"},
			},
			want: DocumentEvaluation{HasID: true, HasEducation: true, HasCV: true, HasReferences: true},
		},
		{
			name: "first matching category wins per document",
			docs: []entities.Document{{Type: "id certificate"}},
			want: DocumentEvaluation{HasID: true},
		},
		{
			name: "unmatched types count for nothing",
			docs: []entities.Document{{Type: "other"}, {Type: "portfolio"}},
			want: DocumentEvaluation{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EvaluateDocuments(tc.docs); got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestCanSubmitForReview(t *testing.T) {
	t.Run("complete profile and required documents", func(t *testing.T) {
		if !CanSubmitForReview(completeCandidate(), requiredDocuments()) {
			t.Fatalf("expected submission to be allowed")
		}
	})

	t.Run("references are not required", func(t *testing.T) {
		if !CanSubmitForReview(completeCandidate(), requiredDocuments()) {
			t.Fatalf("expected submission to be allowed without references")
		}
	})

	t.Run("incomplete profile blocks submission", func(t *testing.T) {
		c := completeCandidate()
		c.Profile.Phone = ""
		if CanSubmitForReview(c, requiredDocuments()) {
			t.Fatalf("expected submission to be blocked")
		}
	})

	t.Run("each missing document category blocks submission", func(t *testing.T) {
		all := requiredDocuments()
		for drop := 0; drop < len(all); drop++ {
			docs := make([]entities.Document, 0, len(all)-1)
			for i, d := range all {
				if i != drop {
					docs = append(docs, d)
				}
			}
			if CanSubmitForReview(completeCandidate(), docs) {
				t.Fatalf("expected submission blocked without %s", all[drop].Type)
			}
		}
	})
}

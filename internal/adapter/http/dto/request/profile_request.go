package request

import "talentbruecke/internal/domain/entities"

type ExperienceEntryRequest struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	StartYear   int    `json:"start_year" binding:"required"`
	EndYear     int    `json:"end_year"`
	Description string `json:"description"`
}

type EducationEntryRequest struct {
	Institution string `json:"institution" binding:"required"`
	Degree      string `json:"degree" binding:"required"`
	Year        int    `json:"year"`
}

type LanguageSkillRequest struct {
	Language string `json:"language" binding:"required"`
	Level    string `json:"level" binding:"required"`
}

// ProfileUpdateRequest carries the full editable profile. Partial updates are
// not supported; the client always sends the complete profile.
type ProfileUpdateRequest struct {
	FirstName         string                   `json:"first_name"`
	LastName          string                   `json:"last_name"`
	Headline          string                   `json:"headline"`
	Bio               string                   `json:"bio"`
	Phone             string                   `json:"phone"`
	Location          string                   `json:"location"`
	Nationality       string                   `json:"nationality"`
	BirthDate         string                   `json:"birth_date"`
	YearsOfExperience int                      `json:"years_of_experience"`
	Sector            string                   `json:"sector"`
	SalaryExpectation float64                  `json:"salary_expectation"`
	Skills            []string                 `json:"skills"`
	Languages         []LanguageSkillRequest   `json:"languages"`
	Experience        []ExperienceEntryRequest `json:"experience"`
	Education         []EducationEntryRequest  `json:"education"`
}

func (r ProfileUpdateRequest) ToProfile() entities.CandidateProfile {
	languages := make([]entities.LanguageSkill, 0, len(r.Languages))
	for _, l := range r.Languages {
		languages = append(languages, entities.LanguageSkill{Language: l.Language, Level: l.Level})
	}
	experience := make([]entities.ExperienceEntry, 0, len(r.Experience))
	for _, e := range r.Experience {
		experience = append(experience, entities.ExperienceEntry{
			Title:       e.Title,
			Company:     e.Company,
			StartYear:   e.StartYear,
			EndYear:     e.EndYear,
			Description: e.Description,
		})
	}
	education := make([]entities.EducationEntry, 0, len(r.Education))
	for _, e := range r.Education {
		education = append(education, entities.EducationEntry{Institution: e.Institution, Degree: e.Degree, Year: e.Year})
	}

	return entities.CandidateProfile{
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		Headline:          r.Headline,
		Bio:               r.Bio,
		Phone:             r.Phone,
		Location:          r.Location,
		Nationality:       r.Nationality,
		BirthDate:         r.BirthDate,
		YearsOfExperience: r.YearsOfExperience,
		Sector:            r.Sector,
		SalaryExpectation: r.SalaryExpectation,
		Skills:            r.Skills,
		Languages:         languages,
		Experience:        experience,
		Education:         education,
	}
}

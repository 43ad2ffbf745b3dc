package model

// UserProfile is what the intake form collects and what recommendation
// sources receive. It is replaced wholesale on submit, never patched.
type UserProfile struct {
	Name            string     `json:"name" yaml:"name" validate:"required"`
	Email           string     `json:"email" yaml:"email" validate:"required,email"`
	TechnicalSkills []string   `json:"technicalSkills" yaml:"technicalSkills" validate:"min=1"`
	SoftSkills      []string   `json:"softSkills" yaml:"softSkills" validate:"min=1"`
	Interests       []string   `json:"interests" yaml:"interests" validate:"min=1"`
	Education       Education  `json:"education" yaml:"education"`
	Experience      Experience `json:"experience" yaml:"experience"`
}

// Education holds the highest degree the user reported.
type Education struct {
	Degree         string `json:"degree" yaml:"degree" validate:"required"`
	Institution    string `json:"institution" yaml:"institution" validate:"required"`
	GraduationYear int    `json:"graduationYear" yaml:"graduationYear" validate:"gt=1900"`
	Major          string `json:"major" yaml:"major" validate:"required"`
}

// Experience is the optional third step of the form.
type Experience struct {
	YearsOfExperience int    `json:"yearsOfExperience" yaml:"yearsOfExperience"`
	CurrentRole       string `json:"currentRole,omitempty" yaml:"currentRole,omitempty"`
	CurrentCompany    string `json:"currentCompany,omitempty" yaml:"currentCompany,omitempty"`
}

// AllSkills returns technical and soft skills as a set.
func (p UserProfile) AllSkills() map[string]struct{} {
	set := make(map[string]struct{}, len(p.TechnicalSkills)+len(p.SoftSkills))
	for _, s := range p.TechnicalSkills {
		set[s] = struct{}{}
	}
	for _, s := range p.SoftSkills {
		set[s] = struct{}{}
	}
	return set
}

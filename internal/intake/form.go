// Package intake holds the state of the three-step profile form: field
// values, skill selectors, step navigation and per-step validation.
package intake

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/amishk599/careernav/internal/model"
)

// Form steps, numbered from 1 as shown to the user.
const (
	StepBasicInfo  = 1
	StepSkills     = 2
	StepExperience = 3
	TotalSteps     = 3
)

var stepTitles = map[int]string{
	StepBasicInfo:  "Basic Info",
	StepSkills:     "Skills & Interests",
	StepExperience: "Experience",
}

// StepTitle is the progress-bar label for step.
func StepTitle(step int) string {
	return stepTitles[step]
}

// stepFields names the profile fields checked by each step.
var stepFields = map[int][]string{
	StepBasicInfo: {
		"Name", "Email",
		"Education.Degree", "Education.Institution", "Education.GraduationYear", "Education.Major",
	},
	StepSkills:     {"TechnicalSkills", "SoftSkills", "Interests"},
	StepExperience: nil,
}

var fieldMessages = map[string]string{
	"Name":            "full name is required",
	"Email":           "email address is required",
	"Degree":          "select your highest degree",
	"Institution":     "institution is required",
	"GraduationYear":  "graduation year must be after 1900",
	"Major":           "field of study is required",
	"TechnicalSkills": "add at least one technical skill",
	"SoftSkills":      "add at least one soft skill",
	"Interests":       "add at least one career interest",
}

// ErrInvalidStep is wrapped by Next and Submit when validation fails.
var ErrInvalidStep = errors.New("step is incomplete")

// Form is the intake form's state. Text fields live in Profile; list fields
// live in the three selectors and are copied into the profile on demand.
type Form struct {
	Profile   model.UserProfile
	Technical *Selector
	Soft      *Selector
	Interests *Selector

	step     int
	validate *validator.Validate
}

// NewForm returns an empty form on step 1. The graduation year defaults to
// the current year.
func NewForm(maxSkills int, now time.Time) *Form {
	return &Form{
		Profile: model.UserProfile{
			Education: model.Education{GraduationYear: now.Year()},
		},
		Technical: NewSelector(TechnicalSkillOptions, maxSkills),
		Soft:      NewSelector(SoftSkillOptions, maxSkills),
		Interests: NewSelector(InterestOptions, maxSkills),
		step:      StepBasicInfo,
		validate:  validator.New(),
	}
}

// Prefill loads an existing profile into the form, e.g. from a profile file.
func (f *Form) Prefill(p model.UserProfile) {
	f.Profile = p
	for _, pair := range []struct {
		sel    *Selector
		skills []string
	}{
		{f.Technical, p.TechnicalSkills},
		{f.Soft, p.SoftSkills},
		{f.Interests, p.Interests},
	} {
		pair.sel.Reset()
		for _, s := range pair.skills {
			pair.sel.Add(s)
		}
	}
}

// Step returns the current step (1-based).
func (f *Form) Step() int { return f.step }

// Next validates the current step and advances, stopping at the last step.
func (f *Form) Next() error {
	if errs := f.StepErrors(); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidStep, strings.Join(errs, ", "))
	}
	f.step = min(f.step+1, TotalSteps)
	return nil
}

// Back moves to the previous step, stopping at the first.
func (f *Form) Back() {
	f.step = max(f.step-1, StepBasicInfo)
}

// StepValid reports whether the current step may be left with Next.
func (f *Form) StepValid() bool {
	return len(f.StepErrors()) == 0
}

// StepErrors lists human-readable problems with the current step.
func (f *Form) StepErrors() []string {
	return f.errorsFor(stepFields[f.step])
}

// Submit validates every step and returns the trimmed profile.
func (f *Form) Submit() (model.UserProfile, error) {
	var all []string
	for step := StepBasicInfo; step <= TotalSteps; step++ {
		all = append(all, f.errorsFor(stepFields[step])...)
	}
	if len(all) > 0 {
		return model.UserProfile{}, fmt.Errorf("%w: %s", ErrInvalidStep, strings.Join(all, ", "))
	}
	return f.Snapshot(), nil
}

// Snapshot returns the profile as currently entered, with text fields
// trimmed and the selectors' choices copied in.
func (f *Form) Snapshot() model.UserProfile {
	p := f.Profile
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	p.Education.Degree = strings.TrimSpace(p.Education.Degree)
	p.Education.Institution = strings.TrimSpace(p.Education.Institution)
	p.Education.Major = strings.TrimSpace(p.Education.Major)
	p.Experience.CurrentRole = strings.TrimSpace(p.Experience.CurrentRole)
	p.Experience.CurrentCompany = strings.TrimSpace(p.Experience.CurrentCompany)
	p.TechnicalSkills = f.Technical.Selected()
	p.SoftSkills = f.Soft.Selected()
	p.Interests = f.Interests.Selected()
	return p
}

func (f *Form) errorsFor(fields []string) []string {
	if len(fields) == 0 {
		return nil
	}
	p := f.Snapshot()
	err := f.validate.StructPartial(p, fields...)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return msgs
}

func fieldMessage(fe validator.FieldError) string {
	if fe.Field() == "Email" && fe.Tag() == "email" {
		return "email address is not valid"
	}
	if msg, ok := fieldMessages[fe.Field()]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}

// ValidateProfile checks a profile that did not come through the form,
// such as one loaded from a file.
func ValidateProfile(p model.UserProfile) error {
	f := NewForm(0, time.Now())
	f.Prefill(p)
	_, err := f.Submit()
	return err
}

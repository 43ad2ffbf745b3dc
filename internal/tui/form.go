package tui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/careernav/internal/intake"
	"github.com/amishk599/careernav/internal/model"
)

// maxSuggestions is how many selector suggestions are listed at once.
const maxSuggestions = 6

type fieldID int

const (
	fieldName fieldID = iota
	fieldEmail
	fieldDegree
	fieldInstitution
	fieldGradYear
	fieldMajor
	fieldTechnical
	fieldSoft
	fieldInterests
	fieldExperience
	fieldRole
	fieldCompany
	fieldCount
)

type fieldKind int

const (
	kindText fieldKind = iota
	kindChoice
	kindSkills
)

var fieldLabels = [fieldCount]string{
	fieldName:        "Full Name",
	fieldEmail:       "Email",
	fieldDegree:      "Highest Degree",
	fieldInstitution: "Institution",
	fieldGradYear:    "Graduation Year",
	fieldMajor:       "Field of Study",
	fieldTechnical:   "Technical Skills",
	fieldSoft:        "Soft Skills",
	fieldInterests:   "Career Interests",
	fieldExperience:  "Experience",
	fieldRole:        "Current Role",
	fieldCompany:     "Current Company",
}

var fieldPlaceholders = [fieldCount]string{
	fieldName:        "Jane Doe",
	fieldEmail:       "jane@example.com",
	fieldInstitution: "University name",
	fieldGradYear:    "2024",
	fieldMajor:       "Computer Science",
	fieldTechnical:   "type to search, enter to add",
	fieldSoft:        "type to search, enter to add",
	fieldInterests:   "type to search, enter to add",
	fieldRole:        "optional",
	fieldCompany:     "optional",
}

var stepLayout = map[int][]fieldID{
	intake.StepBasicInfo:  {fieldName, fieldEmail, fieldDegree, fieldInstitution, fieldGradYear, fieldMajor},
	intake.StepSkills:     {fieldTechnical, fieldSoft, fieldInterests},
	intake.StepExperience: {fieldExperience, fieldRole, fieldCompany},
}

func kindOf(id fieldID) fieldKind {
	switch id {
	case fieldDegree, fieldExperience:
		return kindChoice
	case fieldTechnical, fieldSoft, fieldInterests:
		return kindSkills
	default:
		return kindText
	}
}

type formModel struct {
	form   *intake.Form
	inputs [fieldCount]textinput.Model

	focus      int // index into stepLayout[form.Step()]
	degree     int // index into DegreeOptions, -1 while unselected
	experience int // index into ExperienceOptions
	suggestion int // highlighted suggestion of the focused selector

	errors    []string
	width     int
	submitted bool
	quit      bool
	result    model.UserProfile
}

func newFormModel(form *intake.Form) formModel {
	m := formModel{form: form, degree: -1}
	for id := fieldID(0); id < fieldCount; id++ {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = fieldPlaceholders[id]
		ti.CharLimit = 120
		ti.Width = 40
		m.inputs[id] = ti
	}

	p := form.Profile
	m.inputs[fieldName].SetValue(p.Name)
	m.inputs[fieldEmail].SetValue(p.Email)
	m.inputs[fieldInstitution].SetValue(p.Education.Institution)
	if p.Education.GraduationYear > 0 {
		m.inputs[fieldGradYear].SetValue(strconv.Itoa(p.Education.GraduationYear))
	}
	m.inputs[fieldGradYear].CharLimit = 4
	m.inputs[fieldMajor].SetValue(p.Education.Major)
	m.inputs[fieldRole].SetValue(p.Experience.CurrentRole)
	m.inputs[fieldCompany].SetValue(p.Experience.CurrentCompany)
	m.degree = slices.Index(intake.DegreeOptions, p.Education.Degree)
	m.experience = experienceIndex(p.Experience.YearsOfExperience)

	m.focusCurrent()
	return m
}

func experienceIndex(years int) int {
	idx := 0
	for i, o := range intake.ExperienceOptions {
		if years >= o.Years {
			idx = i
		}
	}
	return idx
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m formModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.focusedField()
	kind := kindOf(id)

	switch msg.String() {
	case "ctrl+c", "esc":
		m.quit = true
		return m, tea.Quit
	case "tab":
		m.moveFocus(1)
		return m, nil
	case "shift+tab":
		m.moveFocus(-1)
		return m, nil
	case "ctrl+n":
		return m.advance()
	case "ctrl+b":
		m.form.Back()
		m.errors = nil
		m.focus = 0
		m.focusCurrent()
		return m, nil
	case "up":
		if kind == kindSkills {
			m.suggestion = max(m.suggestion-1, 0)
		} else {
			m.moveFocus(-1)
		}
		return m, nil
	case "down":
		if kind == kindSkills {
			m.suggestion = min(m.suggestion+1, max(len(m.suggestions())-1, 0))
		} else {
			m.moveFocus(1)
		}
		return m, nil
	case "enter":
		if kind == kindSkills {
			m.addSkill()
			return m, nil
		}
		if m.focus == len(stepLayout[m.form.Step()])-1 {
			return m.advance()
		}
		m.moveFocus(1)
		return m, nil
	}

	switch kind {
	case kindChoice:
		switch msg.String() {
		case "left", "h":
			m.cycleChoice(id, -1)
		case "right", "l", " ":
			m.cycleChoice(id, 1)
		}
		return m, nil
	case kindSkills:
		if msg.String() == "ctrl+x" || (msg.Type == tea.KeyBackspace && m.inputs[id].Value() == "") {
			sel := m.selectorFor(id)
			if picked := sel.Selected(); len(picked) > 0 {
				sel.Remove(picked[len(picked)-1])
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[id], cmd = m.inputs[id].Update(msg)
	if kind == kindSkills {
		m.suggestion = 0
	}
	m.sync()
	return m, cmd
}

// advance continues to the next step, or submits on the last one.
func (m formModel) advance() (tea.Model, tea.Cmd) {
	m.sync()
	if m.form.Step() == intake.TotalSteps {
		profile, err := m.form.Submit()
		if err != nil {
			m.errors = []string{err.Error()}
			return m, nil
		}
		m.result = profile
		m.submitted = true
		return m, tea.Quit
	}
	if err := m.form.Next(); err != nil {
		m.errors = m.form.StepErrors()
		return m, nil
	}
	m.errors = nil
	m.focus = 0
	m.focusCurrent()
	return m, nil
}

func (m *formModel) moveFocus(delta int) {
	n := len(stepLayout[m.form.Step()])
	m.focus = (m.focus + delta + n) % n
	m.suggestion = 0
	m.focusCurrent()
}

func (m *formModel) focusCurrent() {
	current := m.focusedField()
	for id := fieldID(0); id < fieldCount; id++ {
		if id == current && kindOf(id) != kindChoice {
			m.inputs[id].Focus()
		} else {
			m.inputs[id].Blur()
		}
	}
}

func (m formModel) focusedField() fieldID {
	layout := stepLayout[m.form.Step()]
	return layout[clamp(m.focus, 0, len(layout)-1)]
}

func (m *formModel) cycleChoice(id fieldID, delta int) {
	switch id {
	case fieldDegree:
		n := len(intake.DegreeOptions)
		if m.degree < 0 {
			m.degree = 0
			if delta < 0 {
				m.degree = n - 1
			}
		} else {
			m.degree = (m.degree + delta + n) % n
		}
	case fieldExperience:
		n := len(intake.ExperienceOptions)
		m.experience = (m.experience + delta + n) % n
	}
	m.sync()
}

func (m formModel) selectorFor(id fieldID) *intake.Selector {
	switch id {
	case fieldTechnical:
		return m.form.Technical
	case fieldSoft:
		return m.form.Soft
	default:
		return m.form.Interests
	}
}

func (m formModel) suggestions() []string {
	id := m.focusedField()
	if kindOf(id) != kindSkills {
		return nil
	}
	input := strings.TrimSpace(m.inputs[id].Value())
	if input == "" {
		return nil
	}
	s := m.selectorFor(id).Suggestions(input)
	if len(s) > maxSuggestions {
		s = s[:maxSuggestions]
	}
	return s
}

// addSkill adds the highlighted suggestion, or the typed text when nothing matches.
func (m *formModel) addSkill() {
	id := m.focusedField()
	sel := m.selectorFor(id)
	if s := m.suggestions(); len(s) > 0 {
		sel.Add(s[clamp(m.suggestion, 0, len(s)-1)])
	} else {
		sel.AddCustom(m.inputs[id].Value())
	}
	m.inputs[id].SetValue("")
	m.suggestion = 0
	m.sync()
}

// sync copies input values into the form's profile.
func (m *formModel) sync() {
	p := &m.form.Profile
	p.Name = m.inputs[fieldName].Value()
	p.Email = m.inputs[fieldEmail].Value()
	p.Education.Institution = m.inputs[fieldInstitution].Value()
	p.Education.Major = m.inputs[fieldMajor].Value()
	year, err := strconv.Atoi(strings.TrimSpace(m.inputs[fieldGradYear].Value()))
	if err != nil {
		year = 0
	}
	p.Education.GraduationYear = year
	p.Education.Degree = ""
	if m.degree >= 0 {
		p.Education.Degree = intake.DegreeOptions[m.degree]
	}
	p.Experience.YearsOfExperience = intake.ExperienceOptions[m.experience].Years
	p.Experience.CurrentRole = m.inputs[fieldRole].Value()
	p.Experience.CurrentCompany = m.inputs[fieldCompany].Value()
}

func (m formModel) View() string {
	if m.submitted || m.quit {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Build Your Career Profile"))
	b.WriteByte('\n')
	b.WriteString(subtitleStyle.Render("Tell us about yourself to get personalized career recommendations"))
	b.WriteByte('\n')
	b.WriteString("  " + m.renderProgress() + "\n\n")

	for i, id := range stepLayout[m.form.Step()] {
		b.WriteString(m.renderField(id, i == m.focus))
	}

	if len(m.errors) > 0 {
		b.WriteByte('\n')
		for _, e := range m.errors {
			b.WriteString("  " + errorStyle.Render("⚠ "+e) + "\n")
		}
	}

	hints := " tab/↑/↓ move  enter add/next  ctrl+n continue  ctrl+b back  esc quit"
	if m.form.Step() == intake.TotalSteps {
		hints = " tab/↑/↓ move  ←/→ choose  ctrl+n submit  ctrl+b back  esc quit"
	}
	b.WriteByte('\n')
	b.WriteString(statusBarStyle.Width(max(m.width, lipgloss.Width(hints)+2)).Render(hints))
	return b.String()
}

func (m formModel) renderProgress() string {
	step := m.form.Step()
	parts := make([]string, 0, intake.TotalSteps)
	for s := intake.StepBasicInfo; s <= intake.TotalSteps; s++ {
		label := fmt.Sprintf("%d %s", s, intake.StepTitle(s))
		switch {
		case s == step:
			parts = append(parts, activeTabStyle.Render(label))
		case s < step:
			parts = append(parts, lipgloss.NewStyle().Foreground(colorGreen).Render("✓ "+intake.StepTitle(s)))
		default:
			parts = append(parts, inactiveTabStyle.Render(label))
		}
	}
	progress := fmt.Sprintf("Step %d of %d", step, intake.TotalSteps)
	return mutedStyle.Render(progress) + "  " + strings.Join(parts, dividerStyle.Render(" ─ "))
}

func (m formModel) renderField(id fieldID, focused bool) string {
	prefix := "  "
	if focused {
		prefix = lipgloss.NewStyle().Foreground(colorAccent).Render("> ")
	}
	var b strings.Builder
	b.WriteString(prefix + labelStyle.Render(fieldLabels[id]))

	switch kindOf(id) {
	case kindChoice:
		b.WriteString(m.renderChoice(id, focused))
		b.WriteByte('\n')
	case kindText:
		b.WriteString(m.inputs[id].View())
		b.WriteByte('\n')
	case kindSkills:
		sel := m.selectorFor(id)
		b.WriteString(m.inputs[id].View())
		b.WriteByte('\n')
		count := fmt.Sprintf("(%d/%d)", len(sel.Selected()), sel.Max())
		b.WriteString("    " + chips(sel.Selected(), nil) + " " + mutedStyle.Render(count) + "\n")
		if sel.AtLimit() {
			b.WriteString("    " + hintStyle.Render(fmt.Sprintf("maximum of %d reached", sel.Max())) + "\n")
		}
		if focused {
			for i, s := range m.suggestions() {
				if i == m.suggestion {
					b.WriteString("      " + selectedItemStyle.Render(s) + "\n")
				} else {
					b.WriteString("      " + mutedStyle.Render(s) + "\n")
				}
			}
		}
	}
	return b.String()
}

func (m formModel) renderChoice(id fieldID, focused bool) string {
	var value string
	switch id {
	case fieldDegree:
		value = "Select degree"
		if m.degree >= 0 {
			value = intake.DegreeOptions[m.degree]
		}
	case fieldExperience:
		value = intake.ExperienceOptions[m.experience].Label
	}
	if focused {
		return "◀ " + itemTitleStyle.Render(value) + " ▶"
	}
	return value
}

// RunForm runs the intake form until the user submits or quits.
// ok is false when the user quit without submitting.
func RunForm(form *intake.Form) (profile model.UserProfile, ok bool, err error) {
	p := tea.NewProgram(newFormModel(form), tea.WithAltScreen())
	result, err := p.Run()
	if err != nil {
		return model.UserProfile{}, false, err
	}
	final := result.(formModel)
	if !final.submitted {
		return model.UserProfile{}, false, nil
	}
	return final.result, true, nil
}

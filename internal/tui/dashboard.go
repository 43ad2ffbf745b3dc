package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/careernav/internal/career"
	"github.com/amishk599/careernav/internal/model"
	"github.com/amishk599/careernav/internal/ranker"
)

const (
	noJobsMessage  = "No job matches found. Try updating your profile with more skills and experience."
	noCertsMessage = "No certification recommendations available. Try updating your profile with more details."
	noInsights     = "No career insights available yet."

	barWidth = 20
)

type tab int

const (
	tabJobs tab = iota
	tabSkills
	tabCertifications
	tabInsights
	tabCount
)

var tabTitles = [tabCount]string{
	tabJobs:           "Job Recommendations",
	tabSkills:         "Skill Gap Analysis",
	tabCertifications: "Recommended Certifications",
	tabInsights:       "Career Insights",
}

// tabKeys are the values recorded with tab_changed events.
var tabKeys = [tabCount]string{
	tabJobs:           "jobs",
	tabSkills:         "skills",
	tabCertifications: "certifications",
	tabInsights:       "insights",
}

// DashboardResult tells the caller how the dashboard was left.
type DashboardResult int

const (
	DashboardQuit DashboardResult = iota
	DashboardReset
)

// DashboardOptions configures RunDashboard.
type DashboardOptions struct {
	Profile  model.UserProfile
	Snapshot *model.Snapshot
	Recorder model.EventRecorder
	Filter   ranker.CostFilter
	Sort     ranker.SortKey
}

type dashboardModel struct {
	profile  model.UserProfile
	snap     model.Snapshot
	recorder model.EventRecorder
	opener   func(url string)

	active    tab
	jobCursor int // index of the selected job, shared by the jobs and skills tabs
	filter    ranker.CostFilter
	sort      ranker.SortKey

	viewport viewport.Model
	width    int
	height   int
	ready    bool
	result   DashboardResult
}

func newDashboardModel(opts DashboardOptions) dashboardModel {
	m := dashboardModel{
		profile:  opts.Profile,
		recorder: opts.Recorder,
		opener:   openURL,
		filter:   opts.Filter,
		sort:     opts.Sort,
	}
	if opts.Snapshot != nil {
		m.snap = *opts.Snapshot
	}
	if m.filter == "" {
		m.filter = ranker.FilterAll
	}
	if m.sort == "" {
		m.sort = ranker.SortRelevance
	}
	return m
}

func (m dashboardModel) Init() tea.Cmd {
	return nil
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalcLayout()
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m dashboardModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.result = DashboardQuit
		return m, tea.Quit
	case "u":
		m.result = DashboardReset
		return m, tea.Quit
	case "tab", "right", "l":
		m.switchTab((m.active + 1) % tabCount)
		return m, nil
	case "shift+tab", "left", "h":
		m.switchTab((m.active + tabCount - 1) % tabCount)
		return m, nil
	case "1", "2", "3", "4":
		m.switchTab(tab(msg.String()[0] - '1'))
		return m, nil
	case "j", "down":
		if m.active == tabJobs || m.active == tabSkills {
			m.moveJob(1)
			return m, nil
		}
	case "k", "up":
		if m.active == tabJobs || m.active == tabSkills {
			m.moveJob(-1)
			return m, nil
		}
	case "f":
		if m.active == tabCertifications {
			m.filter = m.filter.Next()
			m.record(model.EventFilterChanged, string(m.filter))
			m.refresh()
			return m, nil
		}
	case "s":
		if m.active == tabCertifications {
			m.sort = m.sort.Next()
			m.record(model.EventSortChanged, string(m.sort))
			m.refresh()
			return m, nil
		}
	case "o":
		if m.active == tabJobs {
			if job, ok := m.selectedJob(); ok && job.ApplyLink != "" {
				m.record(model.EventApplyOpened, job.ID)
				m.opener(job.ApplyLink)
			}
			return m, nil
		}
	}

	// Forward other keys (pgup/pgdn/home/end) to the viewport.
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *dashboardModel) switchTab(t tab) {
	if t == m.active || t < 0 || t >= tabCount {
		return
	}
	m.active = t
	m.record(model.EventTabChanged, tabKeys[t])
	m.refresh()
	m.viewport.SetYOffset(0)
}

func (m *dashboardModel) moveJob(delta int) {
	n := len(m.snap.JobRecommendations)
	if n == 0 {
		return
	}
	next := clamp(m.jobCursor+delta, 0, n-1)
	if next == m.jobCursor {
		return
	}
	m.jobCursor = next
	m.record(model.EventJobSelected, m.snap.JobRecommendations[next].ID)
	m.refresh()
}

func (m dashboardModel) selectedJob() (model.JobRecommendation, bool) {
	id := ""
	if m.jobCursor < len(m.snap.JobRecommendations) {
		id = m.snap.JobRecommendations[m.jobCursor].ID
	}
	return career.SelectJob(m.snap.JobRecommendations, id)
}

func (m dashboardModel) record(kind model.EventKind, value string) {
	if m.recorder == nil {
		return
	}
	m.recorder.Record(model.Event{Kind: kind, Value: value, At: time.Now()})
}

func (m *dashboardModel) recalcLayout() {
	// Title (2 lines) + tabs (1) + border (2) + status bar (1).
	w := max(m.width-2, 20)
	h := max(m.height-6, 5)
	if !m.ready {
		m.viewport = viewport.New(w, h)
		m.ready = true
	} else {
		m.viewport.Width = w
		m.viewport.Height = h
	}
	m.refresh()
}

func (m *dashboardModel) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTab())
}

func (m dashboardModel) renderTab() string {
	switch m.active {
	case tabSkills:
		return m.renderSkills()
	case tabCertifications:
		return m.renderCertifications()
	case tabInsights:
		return m.renderInsights()
	default:
		return m.renderJobs()
	}
}

func (m dashboardModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	greeting := fmt.Sprintf("Hi %s, here are your personalized career recommendations", career.FirstName(m.profile.Name))
	header := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1).Render(greeting)

	tabs := make([]string, 0, tabCount)
	for t := tab(0); t < tabCount; t++ {
		label := fmt.Sprintf("%d %s", t+1, tabTitles[t])
		if t == m.active {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	tabRow := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	content := panelStyle.Width(m.viewport.Width).Render(m.viewport.View())
	statusBar := statusBarStyle.Width(m.width).Render(m.statusText())

	return header + "\n" + tabRow + "\n" + content + "\n" + statusBar
}

func (m dashboardModel) statusText() string {
	common := "tab/1-4 switch  u update profile  q quit"
	switch m.active {
	case tabJobs:
		return " j/k select  o apply  " + common
	case tabSkills:
		return " j/k choose job  " + common
	case tabCertifications:
		return fmt.Sprintf(" f filter: %s  s sort: %s  ↑/↓ scroll  %s", m.filter, m.sort, common)
	default:
		return " ↑/↓ scroll  " + common
	}
}

func (m dashboardModel) wrapWidth() int {
	return max(m.viewport.Width-6, 20)
}

func (m dashboardModel) renderJobs() string {
	jobs := m.snap.JobRecommendations
	if len(jobs) == 0 {
		return hintStyle.Render("  " + noJobsMessage)
	}
	selected, _ := m.selectedJob()

	var b strings.Builder
	for i, j := range jobs {
		color := matchTierColor(career.JobMatchTier(j.MatchPercentage))
		title := fmt.Sprintf("%s · %s", j.Title, j.Company)
		if i == m.jobCursor {
			b.WriteString("> " + selectedItemStyle.Render(title))
		} else {
			b.WriteString("  " + itemTitleStyle.Render(title))
		}
		b.WriteByte('\n')
		b.WriteString("  " + mutedStyle.Render(fmt.Sprintf("%s · %s", j.Location, j.SalaryRange)))
		b.WriteString("  " + labelledBar(float64(j.MatchPercentage), barWidth, color) + " match\n")
		if i < len(jobs)-1 {
			b.WriteByte('\n')
		}
	}

	b.WriteString("\n\n" + divider("── "+selected.Title+" ", m.wrapWidth()) + "\n\n")
	if selected.Description != "" {
		b.WriteString(wordWrap(selected.Description, m.wrapWidth()) + "\n\n")
	}
	b.WriteString(labelStyle.Render("Required Skills") + chips(selected.RequiredSkills, nil) + "\n")
	if len(selected.Responsibilities) > 0 {
		b.WriteString("\n" + labelStyle.Render("Responsibilities") + "\n")
		for _, r := range selected.Responsibilities {
			b.WriteString("  • " + r + "\n")
		}
	}
	if len(selected.Benefits) > 0 {
		b.WriteString("\n" + labelStyle.Render("Benefits") + "\n")
		for _, r := range selected.Benefits {
			b.WriteString("  • " + r + "\n")
		}
	}
	if selected.ApplyLink != "" {
		b.WriteString("\n" + labelStyle.Render("Apply") + selected.ApplyLink + "\n")
	}
	return b.String()
}

func (m dashboardModel) renderSkills() string {
	jobs := m.snap.JobRecommendations
	if len(jobs) == 0 {
		return hintStyle.Render("  " + noJobsMessage)
	}
	job, _ := m.selectedJob()
	match := career.MatchSkills(m.profile, job)

	var b strings.Builder
	b.WriteString(labelStyle.Render("Job") + fmt.Sprintf("%s · %s  (%d/%d)\n", job.Title, job.Company, m.jobCursor+1, len(jobs)))
	color := matchTierColor(career.JobMatchTier(int(match.Percent)))
	b.WriteString(labelStyle.Render("Skill Match") + labelledBar(match.Percent, barWidth, color) + "\n\n")

	required := float64(match.Required)
	pct := func(n int) float64 {
		if required == 0 {
			return 0
		}
		return float64(n) / required * 100
	}
	b.WriteString(labelStyle.Render("Required") + fmt.Sprintf("%s %d\n", bar(100, barWidth, colorAccent), match.Required))
	b.WriteString(labelStyle.Render("Matching") + fmt.Sprintf("%s %d\n", bar(pct(len(match.Matched)), barWidth, colorGreen), len(match.Matched)))
	b.WriteString(labelStyle.Render("To Develop") + fmt.Sprintf("%s %d\n", bar(pct(len(match.ToDevelop)), barWidth, colorYellow), len(match.ToDevelop)))

	b.WriteString("\n" + labelStyle.Render("Your Skills") + chips(match.Matched, nil) + "\n")
	b.WriteString(labelStyle.Render("Skills to Develop") + chips(match.ToDevelop, func(string) bool { return true }) + "\n")

	gap, ok := career.GapFor(m.snap.SkillGaps, job.ID)
	b.WriteString("\n" + divider("── Skill Gap Details ", m.wrapWidth()) + "\n\n")
	if !ok || len(gap.MissingSkills) == 0 {
		b.WriteString(hintStyle.Render("  No skill gaps reported for this job.") + "\n")
		return b.String()
	}
	for _, ms := range gap.MissingSkills {
		label := fmt.Sprintf("%s (%s)", ms.Skill, career.CategoryLabel(ms.Category))
		b.WriteString("  " + lipgloss.NewStyle().Width(32).Render(label))
		b.WriteString(bar(float64(career.ImportancePercent(ms.Importance)), barWidth, colorRed))
		b.WriteString(fmt.Sprintf(" importance %d/10\n", ms.Importance))
	}
	return b.String()
}

func (m dashboardModel) renderCertifications() string {
	header := mutedStyle.Render(fmt.Sprintf("  filter: %s   sort: %s", m.filter, m.sort)) + "\n\n"
	ranked := ranker.Rank(m.snap.Certifications, m.snap.SkillGaps, m.filter, m.sort)
	if len(ranked) == 0 {
		return header + hintStyle.Render("  "+noCertsMessage)
	}
	missing := ranker.MissingSkills(m.snap.SkillGaps)
	isMissing := func(s string) bool {
		_, ok := missing[s]
		return ok
	}

	var b strings.Builder
	b.WriteString(header)
	for i, c := range ranked {
		pct := ranker.RelevancePercent(c.Certification, c.Score, missing)
		color := relevanceTierColor(ranker.RelevanceTier(pct))

		b.WriteString("  " + itemTitleStyle.Render(c.Name) + mutedStyle.Render(" by "+c.Provider) + "\n")
		b.WriteString("  " + labelStyle.Render("Cost") + c.Cost + "\n")
		b.WriteString("  " + labelStyle.Render("Duration") + c.Duration + "\n")
		b.WriteString("  " + labelStyle.Render("Relevance") + labelledBar(float64(pct), barWidth, color) + "\n")
		b.WriteString("  " + labelStyle.Render("Skills") + chips(c.SkillsCovered, isMissing) + "\n")
		if c.Link != "" {
			b.WriteString("  " + labelStyle.Render("Link") + c.Link + "\n")
		}
		if i < len(ranked)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m dashboardModel) renderInsights() string {
	insights := career.RenderableInsights(m.snap.CareerInsights)
	if len(insights) == 0 {
		return hintStyle.Render("  " + noInsights)
	}

	var b strings.Builder
	for i, in := range insights {
		b.WriteString(divider("── "+in.Title+" ", m.wrapWidth()) + "\n")
		if in.Description != "" {
			b.WriteString(mutedStyle.Render(wordWrap(in.Description, m.wrapWidth())) + "\n")
		}
		b.WriteByte('\n')

		switch in.Type {
		case model.InsightSkillMatch:
			for _, row := range career.SkillDemandRows(in) {
				b.WriteString("  " + lipgloss.NewStyle().Width(20).Render(row.Skill))
				b.WriteString("you    " + labelledBar(float64(row.Proficiency), barWidth, colorAccent) + "\n")
				b.WriteString("  " + lipgloss.NewStyle().Width(20).Render(""))
				b.WriteString("market " + labelledBar(float64(row.Demand), barWidth, colorYellow) + "\n")
			}
		case model.InsightSalaryTrend:
			for _, ring := range career.SalaryRings(in) {
				b.WriteString(fmt.Sprintf("  %d  %s %s\n", ring.Year, bar(ring.Percent, barWidth, colorGreen), ring.Label))
			}
		case model.InsightIndustryDemand:
			for _, s := range in.Data.Skills {
				b.WriteString("  " + lipgloss.NewStyle().Width(20).Render(s.Name))
				b.WriteString(labelledBar(float64(s.Demand), barWidth, colorAccent))
				b.WriteString("  " + lipgloss.NewStyle().Foreground(colorGreen).Render(s.Growth) + "\n")
			}
		}
		if i < len(insights)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// RunDashboard launches the tabbed recommendations dashboard.
// It returns DashboardReset when the user asked to update their profile.
func RunDashboard(opts DashboardOptions) (DashboardResult, error) {
	p := tea.NewProgram(newDashboardModel(opts), tea.WithAltScreen())
	result, err := p.Run()
	if err != nil {
		return DashboardQuit, err
	}
	final := result.(dashboardModel)
	return final.result, nil
}

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amishk599/careernav/internal/model"
	"github.com/amishk599/careernav/internal/ranker"
)

func sampleSnapshot() *model.Snapshot {
	return &model.Snapshot{
		JobRecommendations: []model.JobRecommendation{
			{
				ID: "job-1", Title: "Backend Engineer", Company: "Acme", MatchPercentage: 85,
				ApplyLink: "https://example.com/apply/1", RequiredSkills: []string{"Go", "Kubernetes"},
				Responsibilities: []string{"Own the billing service"},
			},
			{ID: "job-2", Title: "Data Engineer", Company: "Globex", MatchPercentage: 45, RequiredSkills: []string{"Python", "Spark"}},
		},
		SkillGaps: []model.SkillGap{
			{JobID: "job-1", MissingSkills: []model.MissingSkill{{Skill: "Kubernetes", Category: model.CategoryTechnical, Importance: 8}}},
			{JobID: "job-2", MissingSkills: []model.MissingSkill{{Skill: "Spark", Category: model.CategoryTechnical, Importance: 6}}},
		},
		Certifications: []model.Certification{
			{ID: "cka", Name: "Kubernetes Administrator", Provider: "CNCF", Cost: "₹29,000", Duration: "2 months", SkillsCovered: []string{"Kubernetes"}},
			{ID: "spark", Name: "Spark Basics", Provider: "Databricks", Cost: "Free", Duration: "20 hours", SkillsCovered: []string{"Spark"}},
		},
		CareerInsights: []model.CareerInsight{
			{Type: model.InsightSalaryTrend, Title: "Salary Trends", Data: &model.InsightData{Trends: []model.SalaryPoint{{Year: 2025, Salary: 1_250_000}}}},
			{Type: model.InsightIndustryDemand, Title: "No data"},
		},
	}
}

func newTestDashboard(t *testing.T, snap *model.Snapshot) (dashboardModel, *captureRecorder, *[]string) {
	t.Helper()
	rec := &captureRecorder{}
	opened := &[]string{}
	m := newDashboardModel(DashboardOptions{
		Profile:  model.UserProfile{Name: "Asha Rao", TechnicalSkills: []string{"Go"}},
		Snapshot: snap,
		Recorder: rec,
	})
	m.opener = func(url string) { *opened = append(*opened, url) }
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(dashboardModel), rec, opened
}

func TestDashboard_DefaultsToAllByRelevance(t *testing.T) {
	m, _, _ := newTestDashboard(t, sampleSnapshot())
	assert.Equal(t, ranker.FilterAll, m.filter)
	assert.Equal(t, ranker.SortRelevance, m.sort)
	assert.Equal(t, tabJobs, m.active)
}

func TestDashboard_GreetingUsesFirstName(t *testing.T) {
	m, _, _ := newTestDashboard(t, sampleSnapshot())
	assert.Contains(t, m.View(), "Hi Asha, here are your personalized career recommendations")
}

func TestDashboard_TabSwitchingRecordsEvents(t *testing.T) {
	m, rec, _ := newTestDashboard(t, sampleSnapshot())

	next, _ := press(m, "tab")
	assert.Equal(t, tabSkills, next.(dashboardModel).active)
	assert.Equal(t, model.Event{Kind: model.EventTabChanged, Value: "skills"}, stripTime(rec.last()))

	next, _ = press(next, "4", "4")
	assert.Equal(t, tabInsights, next.(dashboardModel).active)
	assert.Len(t, rec.events, 2, "re-selecting the active tab records nothing")

	next, _ = press(next, "shift+tab")
	assert.Equal(t, tabCertifications, next.(dashboardModel).active)
}

func TestDashboard_JobSelection(t *testing.T) {
	m, rec, _ := newTestDashboard(t, sampleSnapshot())

	next, _ := press(m, "k")
	assert.Empty(t, rec.events, "moving above the first job is a no-op")

	next, _ = press(next, "j")
	d := next.(dashboardModel)
	assert.Equal(t, 1, d.jobCursor)
	assert.Equal(t, model.Event{Kind: model.EventJobSelected, Value: "job-2"}, stripTime(rec.last()))
	assert.Contains(t, d.renderJobs(), "Data Engineer")

	next, _ = press(next, "2")
	assert.Contains(t, next.(dashboardModel).renderSkills(), "Spark")
}

func TestDashboard_FilterAndSortCycleOnCertificationsTab(t *testing.T) {
	m, rec, _ := newTestDashboard(t, sampleSnapshot())

	next, _ := press(m, "f")
	assert.Empty(t, rec.events, "f does nothing outside the certifications tab")

	next, _ = press(next, "3", "f")
	d := next.(dashboardModel)
	require.Equal(t, ranker.FilterFree, d.filter)
	assert.Equal(t, model.Event{Kind: model.EventFilterChanged, Value: "free"}, stripTime(rec.last()))

	out := d.renderCertifications()
	assert.Contains(t, out, "Spark Basics")
	assert.NotContains(t, out, "Kubernetes Administrator")

	next, _ = press(next, "s")
	d = next.(dashboardModel)
	assert.Equal(t, ranker.SortCost, d.sort)
	assert.Equal(t, model.Event{Kind: model.EventSortChanged, Value: "cost"}, stripTime(rec.last()))
}

func TestDashboard_OpenApplyLink(t *testing.T) {
	m, rec, opened := newTestDashboard(t, sampleSnapshot())

	press(m, "o")
	assert.Equal(t, []string{"https://example.com/apply/1"}, *opened)
	assert.Equal(t, model.EventApplyOpened, rec.last().Kind)

	// The second job has no apply link.
	next, _ := press(m, "j")
	press(next, "o")
	assert.Len(t, *opened, 1)
}

func TestDashboard_ResetAndQuit(t *testing.T) {
	m, _, _ := newTestDashboard(t, sampleSnapshot())

	next, cmd := press(m, "u")
	assert.Equal(t, DashboardReset, next.(dashboardModel).result)
	assert.NotNil(t, cmd)

	next, cmd = press(m, "q")
	assert.Equal(t, DashboardQuit, next.(dashboardModel).result)
	assert.NotNil(t, cmd)
}

func TestDashboard_EmptyStates(t *testing.T) {
	m, _, _ := newTestDashboard(t, &model.Snapshot{})

	assert.Contains(t, m.renderJobs(), noJobsMessage)
	assert.Contains(t, m.renderSkills(), noJobsMessage)
	assert.Contains(t, m.renderCertifications(), noCertsMessage)
	assert.Contains(t, m.renderInsights(), noInsights)

	// Nil snapshots render the same way.
	m, _, _ = newTestDashboard(t, nil)
	assert.Contains(t, m.renderJobs(), noJobsMessage)
}

func TestDashboard_InsightsSkipEmptyData(t *testing.T) {
	m, _, _ := newTestDashboard(t, sampleSnapshot())
	out := m.renderInsights()
	assert.Contains(t, out, "Salary Trends")
	assert.Contains(t, out, "₹12.5L")
	assert.NotContains(t, out, "No data")
}

func stripTime(ev model.Event) model.Event {
	return model.Event{Kind: ev.Kind, Value: ev.Value}
}

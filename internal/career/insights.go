package career

import (
	"fmt"

	"github.com/amishk599/careernav/internal/model"
)

// salaryRingMax is the salary that fills a trend ring completely.
const salaryRingMax = 3_500_000

// SkillDemandRow pairs a user's proficiency with market demand for one skill.
type SkillDemandRow struct {
	Skill       string
	Proficiency int
	Demand      int // 0 when the market has no entry for the skill
}

// SkillDemandRows builds the skillMatch chart. Nil when the insight lacks
// either series.
func SkillDemandRows(in model.CareerInsight) []SkillDemandRow {
	if in.Data == nil || len(in.Data.UserSkills) == 0 || len(in.Data.MarketDemand) == 0 {
		return nil
	}
	demand := make(map[string]int, len(in.Data.MarketDemand))
	for _, d := range in.Data.MarketDemand {
		if _, ok := demand[d.Name]; !ok {
			demand[d.Name] = d.Demand
		}
	}
	rows := make([]SkillDemandRow, 0, len(in.Data.UserSkills))
	for _, s := range in.Data.UserSkills {
		rows = append(rows, SkillDemandRow{
			Skill:       s.Name,
			Proficiency: clampPercent(s.Proficiency),
			Demand:      clampPercent(demand[s.Name]),
		})
	}
	return rows
}

// SalaryRing is one point of the salaryTrend chart.
type SalaryRing struct {
	Year    int
	Percent float64
	Label   string // "₹12.5L"
}

// SalaryRings maps salary points onto rings scaled against salaryRingMax.
func SalaryRings(in model.CareerInsight) []SalaryRing {
	if in.Data == nil {
		return nil
	}
	rings := make([]SalaryRing, 0, len(in.Data.Trends))
	for _, p := range in.Data.Trends {
		rings = append(rings, SalaryRing{
			Year:    p.Year,
			Percent: float64(p.Salary) / salaryRingMax * 100,
			Label:   FormatLakh(p.Salary),
		})
	}
	return rings
}

// FormatLakh renders rupees in lakhs with one decimal, e.g. 1250000 as "₹12.5L".
func FormatLakh(rupees int64) string {
	return fmt.Sprintf("₹%.1fL", float64(rupees)/100_000)
}

// RenderableInsights drops insights with no data payload.
func RenderableInsights(insights []model.CareerInsight) []model.CareerInsight {
	out := make([]model.CareerInsight, 0, len(insights))
	for _, in := range insights {
		if in.Data != nil {
			out = append(out, in)
		}
	}
	return out
}

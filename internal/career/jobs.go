// Package career derives the dashboard's views from a profile and a
// recommendation snapshot. Everything here is recomputed on demand.
package career

import (
	"strings"

	"github.com/amishk599/careernav/internal/model"
)

// SelectJob returns the job with id, falling back to the first job.
// ok is false when there are no jobs at all.
func SelectJob(jobs []model.JobRecommendation, id string) (model.JobRecommendation, bool) {
	for _, j := range jobs {
		if j.ID == id {
			return j, true
		}
	}
	if len(jobs) == 0 {
		return model.JobRecommendation{}, false
	}
	return jobs[0], true
}

// GapFor returns the skill gap recorded for jobID, falling back to the first gap.
func GapFor(gaps []model.SkillGap, jobID string) (model.SkillGap, bool) {
	for _, g := range gaps {
		if g.JobID == jobID {
			return g, true
		}
	}
	if len(gaps) == 0 {
		return model.SkillGap{}, false
	}
	return gaps[0], true
}

// SkillMatch compares a job's required skills with what the user has.
type SkillMatch struct {
	Required  int
	Matched   []string
	ToDevelop []string
	Percent   float64 // 0-100
}

// MatchSkills splits job.RequiredSkills into those the profile lists
// (technical or soft) and those it lacks. Percent is 0 when the job
// requires nothing.
func MatchSkills(profile model.UserProfile, job model.JobRecommendation) SkillMatch {
	have := profile.AllSkills()
	m := SkillMatch{Required: len(job.RequiredSkills)}
	for _, s := range job.RequiredSkills {
		if _, ok := have[s]; ok {
			m.Matched = append(m.Matched, s)
		} else {
			m.ToDevelop = append(m.ToDevelop, s)
		}
	}
	if m.Required > 0 {
		m.Percent = float64(len(m.Matched)) / float64(m.Required) * 100
	}
	return m
}

// MatchTier buckets a job's match percentage for colouring.
type MatchTier int

const (
	MatchLow MatchTier = iota
	MatchFair
	MatchGood
	MatchExcellent
)

// JobMatchTier maps >80 excellent, >60 good, >40 fair, otherwise low.
func JobMatchTier(percent int) MatchTier {
	switch {
	case percent > 80:
		return MatchExcellent
	case percent > 60:
		return MatchGood
	case percent > 40:
		return MatchFair
	default:
		return MatchLow
	}
}

// ImportancePercent converts a 1-10 importance into a bar width.
func ImportancePercent(importance int) int {
	return clampPercent(importance * 10)
}

// FirstName is the first whitespace-separated token of name.
func FirstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// CategoryLabel is the display name for a missing skill's category.
func CategoryLabel(c model.SkillCategory) string {
	if c == model.CategoryTechnical {
		return "Technical"
	}
	return "Soft Skill"
}

func clampPercent(v int) int {
	return max(0, min(v, 100))
}

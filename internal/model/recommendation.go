package model

import "time"

// JobRecommendation is a single job match produced by the recommendation engine.
type JobRecommendation struct {
	ID               string   `json:"id" yaml:"id"`
	Title            string   `json:"title" yaml:"title"`
	Company          string   `json:"company" yaml:"company"`
	Location         string   `json:"location" yaml:"location"`
	SalaryRange      string   `json:"salaryRange" yaml:"salaryRange"`
	MatchPercentage  int      `json:"matchPercentage" yaml:"matchPercentage"` // 0-100
	Description      string   `json:"description" yaml:"description"`
	Logo             string   `json:"logo,omitempty" yaml:"logo,omitempty"`
	ApplyLink        string   `json:"applyLink" yaml:"applyLink"`
	RequiredSkills   []string `json:"requiredSkills" yaml:"requiredSkills"`
	Responsibilities []string `json:"responsibilities,omitempty" yaml:"responsibilities,omitempty"`
	Benefits         []string `json:"benefits,omitempty" yaml:"benefits,omitempty"`
}

// SkillCategory tags a missing skill as technical or soft.
type SkillCategory string

const (
	CategoryTechnical SkillCategory = "technical"
	CategorySoft      SkillCategory = "soft"
)

// MissingSkill is one entry of a job's skill gap.
type MissingSkill struct {
	Skill      string        `json:"skill" yaml:"skill"`
	Category   SkillCategory `json:"category" yaml:"category"`
	Importance int           `json:"importance" yaml:"importance"` // 1-10
}

// SkillGap associates a job with the skills the profile lacks for it.
type SkillGap struct {
	JobID         string         `json:"jobId" yaml:"jobId"`
	MissingSkills []MissingSkill `json:"missingSkills" yaml:"missingSkills"`
}

// Certification is a course or credential that teaches a set of skills.
// Cost and Duration are free text as supplied upstream ("Free", "₹4,999",
// "3 months", "40 hours").
type Certification struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Provider      string   `json:"provider" yaml:"provider"`
	Cost          string   `json:"cost" yaml:"cost"`
	Duration      string   `json:"duration" yaml:"duration"`
	SkillsCovered []string `json:"skillsCovered" yaml:"skillsCovered"`
	Link          string   `json:"link" yaml:"link"`
	Logo          string   `json:"logo,omitempty" yaml:"logo,omitempty"`
}

// InsightType selects how an insight's data is charted.
type InsightType string

const (
	InsightSkillMatch     InsightType = "skillMatch"
	InsightSalaryTrend    InsightType = "salaryTrend"
	InsightIndustryDemand InsightType = "industryDemand"
)

// CareerInsight is one market-insight card. Only the Data fields relevant to
// Type are populated.
type CareerInsight struct {
	Type        InsightType  `json:"type" yaml:"type"`
	Title       string       `json:"title" yaml:"title"`
	Description string       `json:"description" yaml:"description"`
	Data        *InsightData `json:"data,omitempty" yaml:"data,omitempty"`
}

// InsightData is the union of chart payloads.
type InsightData struct {
	UserSkills   []SkillProficiency `json:"userSkills,omitempty" yaml:"userSkills,omitempty"`
	MarketDemand []SkillDemand      `json:"marketDemand,omitempty" yaml:"marketDemand,omitempty"`
	Trends       []SalaryPoint      `json:"trends,omitempty" yaml:"trends,omitempty"`
	Skills       []SkillGrowth      `json:"skills,omitempty" yaml:"skills,omitempty"`
}

type SkillProficiency struct {
	Name        string `json:"name" yaml:"name"`
	Proficiency int    `json:"proficiency" yaml:"proficiency"`
}

type SkillDemand struct {
	Name   string `json:"name" yaml:"name"`
	Demand int    `json:"demand" yaml:"demand"`
}

type SalaryPoint struct {
	Year   int   `json:"year" yaml:"year"`
	Salary int64 `json:"salary" yaml:"salary"` // annual, in rupees
}

type SkillGrowth struct {
	Name   string `json:"name" yaml:"name"`
	Demand int    `json:"demand" yaml:"demand"`
	Growth string `json:"growth" yaml:"growth"` // e.g. "+32%"
}

// Snapshot is everything the dashboard renders for one submitted profile.
type Snapshot struct {
	JobRecommendations []JobRecommendation `json:"jobRecommendations" yaml:"jobRecommendations"`
	SkillGaps          []SkillGap          `json:"skillGaps" yaml:"skillGaps"`
	Certifications     []Certification     `json:"certifications" yaml:"certifications"`
	CareerInsights     []CareerInsight     `json:"careerInsights" yaml:"careerInsights"`
	FetchedAt          time.Time           `json:"fetchedAt" yaml:"fetchedAt"`
}

// Package ranker scores certifications against a profile's skill gaps and
// produces the filtered, sorted list shown on the certifications tab.
package ranker

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/amishk599/careernav/internal/model"
)

// CostFilter restricts the list by cost category.
type CostFilter string

const (
	FilterAll  CostFilter = "all"
	FilterFree CostFilter = "free"
	FilterPaid CostFilter = "paid"
)

// SortKey selects the ordering of the ranked list.
type SortKey string

const (
	SortRelevance SortKey = "relevance"
	SortCost      SortKey = "cost"
	SortDuration  SortKey = "duration"
)

// Filters and SortKeys list the options in the order the dashboard cycles them.
var (
	Filters  = []CostFilter{FilterAll, FilterFree, FilterPaid}
	SortKeys = []SortKey{SortRelevance, SortCost, SortDuration}
)

// ParseFilter accepts "all", "free" or "paid" (case-insensitive).
func ParseFilter(s string) (CostFilter, error) {
	f := CostFilter(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Filters, f) {
		return f, nil
	}
	return "", fmt.Errorf("unknown cost filter %q (want all, free or paid)", s)
}

// ParseSortKey accepts "relevance", "cost" or "duration" (case-insensitive).
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(SortKeys, k) {
		return k, nil
	}
	return "", fmt.Errorf("unknown sort key %q (want relevance, cost or duration)", s)
}

// Next returns the filter after f, wrapping around.
func (f CostFilter) Next() CostFilter {
	i := slices.Index(Filters, f)
	return Filters[(i+1)%len(Filters)]
}

// Next returns the sort key after k, wrapping around.
func (k SortKey) Next() SortKey {
	i := slices.Index(SortKeys, k)
	return SortKeys[(i+1)%len(SortKeys)]
}

// ScoredCertification is a certification annotated with its relevance score.
type ScoredCertification struct {
	model.Certification
	Score int
}

// MissingSkills returns the union of missing-skill names across all gaps.
func MissingSkills(gaps []model.SkillGap) map[string]struct{} {
	set := make(map[string]struct{})
	for _, g := range gaps {
		for _, s := range g.MissingSkills {
			set[s.Skill] = struct{}{}
		}
	}
	return set
}

// Score counts the distinct covered skills that are in missing.
// The result never exceeds min(len(distinct covered), len(missing)).
func Score(cert model.Certification, missing map[string]struct{}) int {
	seen := make(map[string]struct{}, len(cert.SkillsCovered))
	score := 0
	for _, s := range cert.SkillsCovered {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		if _, ok := missing[s]; ok {
			score++
		}
	}
	return score
}

// Rank scores every certification, keeps those passing filter, and orders
// them by key. The sort is stable, so ties keep their input order.
// The input slice is not modified.
func Rank(certs []model.Certification, gaps []model.SkillGap, filter CostFilter, key SortKey) []ScoredCertification {
	missing := MissingSkills(gaps)

	out := make([]ScoredCertification, 0, len(certs))
	for _, c := range certs {
		if !filter.Match(c) {
			continue
		}
		out = append(out, ScoredCertification{Certification: c, Score: Score(c, missing)})
	}

	switch key {
	case SortRelevance:
		slices.SortStableFunc(out, func(a, b ScoredCertification) int {
			return b.Score - a.Score
		})
	case SortCost:
		slices.SortStableFunc(out, func(a, b ScoredCertification) int {
			return compareInt64(CostAmount(a.Cost), CostAmount(b.Cost))
		})
	case SortDuration:
		slices.SortStableFunc(out, func(a, b ScoredCertification) int {
			return compareFloat(DurationWeeks(a.Duration), DurationWeeks(b.Duration))
		})
	}
	return out
}

// Match reports whether cert falls in the filter's cost category.
// Unknown filters behave like FilterAll.
func (f CostFilter) Match(cert model.Certification) bool {
	switch f {
	case FilterFree:
		return IsFree(cert.Cost)
	case FilterPaid:
		return !IsFree(cert.Cost)
	default:
		return true
	}
}

// RelevancePercent is score relative to the best score cert could reach,
// rounded to a whole percent. Zero when either side is empty.
func RelevancePercent(cert model.Certification, score int, missing map[string]struct{}) int {
	maxScore := min(len(distinct(cert.SkillsCovered)), len(missing))
	if maxScore == 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(maxScore) * 100))
}

// Tier buckets a relevance percentage for colouring.
type Tier int

const (
	TierLow Tier = iota
	TierFair
	TierGood
	TierHigh
)

// RelevanceTier maps >75 high, >50 good, >25 fair, otherwise low.
func RelevanceTier(percent int) Tier {
	switch {
	case percent > 75:
		return TierHigh
	case percent > 50:
		return TierGood
	case percent > 25:
		return TierFair
	default:
		return TierLow
	}
}

func distinct(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, s := range items {
		set[s] = struct{}{}
	}
	return set
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

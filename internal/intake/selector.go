package intake

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// DefaultMaxSkills caps each selector unless configured otherwise.
const DefaultMaxSkills = 10

// Selector is a multi-select over a catalog that also accepts custom entries.
type Selector struct {
	options  []string
	selected []string
	max      int
	fold     cases.Caser
}

// NewSelector returns a selector over options. limit <= 0 means DefaultMaxSkills.
func NewSelector(options []string, limit int) *Selector {
	if limit <= 0 {
		limit = DefaultMaxSkills
	}
	return &Selector{options: options, max: limit, fold: cases.Fold()}
}

// Selected returns a copy of the chosen skills in insertion order.
func (s *Selector) Selected() []string {
	return slices.Clone(s.selected)
}

// Max is the selection limit.
func (s *Selector) Max() int { return s.max }

// AtLimit reports whether no more skills can be added.
func (s *Selector) AtLimit() bool {
	return len(s.selected) >= s.max
}

// Suggestions lists the options containing input (case-folded) that are not
// selected yet. An empty input suggests every unselected option.
func (s *Selector) Suggestions(input string) []string {
	needle := s.fold.String(input)
	var out []string
	for _, o := range s.options {
		if slices.Contains(s.selected, o) {
			continue
		}
		if strings.Contains(s.fold.String(o), needle) {
			out = append(out, o)
		}
	}
	return out
}

// Add appends skill when under the limit and not already chosen.
func (s *Selector) Add(skill string) bool {
	if skill == "" || s.AtLimit() || slices.Contains(s.selected, skill) {
		return false
	}
	s.selected = append(s.selected, skill)
	return true
}

// AddCustom adds free text typed by the user. Surrounding space is trimmed
// and blank input is ignored.
func (s *Selector) AddCustom(input string) bool {
	return s.Add(strings.TrimSpace(input))
}

// Remove drops skill from the selection.
func (s *Selector) Remove(skill string) {
	s.selected = slices.DeleteFunc(s.selected, func(v string) bool { return v == skill })
}

// Reset clears the selection.
func (s *Selector) Reset() {
	s.selected = nil
}
